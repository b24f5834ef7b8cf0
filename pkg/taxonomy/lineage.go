package taxonomy

import (
	"log/slog"
	"slices"
)

// LineageName is a name of an ancestor at a particular depth of a
// lineage.
type LineageName struct {
	// Depth starts with 1 for the top-most ancestor.
	Depth int    `json:"depth"`
	TaxID int    `json:"taxId"`
	Name  string `json:"name"`
}

// Ancestor is a taxon identifier with its scientific name.
type Ancestor struct {
	TaxID          int    `json:"taxId"`
	ScientificName string `json:"scientificName"`
}

// Lineage returns identifiers of ancestors of a taxon starting from the
// top-most one (a child of the root) and ending with the taxon itself.
// The root is not included unless the root itself is queried. Unknown
// taxa have an empty lineage.
func (g *Graph) Lineage(id int) []int {
	id = g.Resolve(id)
	if _, ok := g.nodes[id]; !ok {
		return nil
	}
	res := g.walkUp(id)
	slices.Reverse(res)
	return res
}

// walkUp collects id and its ancestors, nearest first. The walk stops at
// a missing parent, at the root, or at a self-referencing node. A
// revisited node means a cycle in the data, in this case the walk stops
// as well.
func (g *Graph) walkUp(id int) []int {
	var res []int
	visited := make(map[int]struct{})
	cur := id
	for {
		if _, ok := visited[cur]; ok {
			slog.Warn("Cycle in taxonomy lineage", "taxid", id, "revisited", cur)
			return res
		}
		visited[cur] = struct{}{}
		res = append(res, cur)

		n, ok := g.nodes[cur]
		if !ok || n.ParentID == cur || n.ParentID == RootID {
			return res
		}
		cur = n.ParentID
	}
}

// LineageWithNames returns names of all taxa of a lineage. For every
// ancestor the scientific name goes first, then its sorted common names.
func (g *Graph) LineageWithNames(id int) []LineageName {
	var res []LineageName
	for i, taxID := range g.Lineage(id) {
		depth := i + 1
		var names []string
		if sn, ok := g.ScientificName(taxID); ok {
			names = append(names, sn)
		}
		cns, _ := g.CommonNames(taxID)
		for _, cn := range cns {
			if slices.Contains(names, cn) {
				continue
			}
			names = append(names, cn)
		}
		for _, name := range names {
			res = append(res, LineageName{Depth: depth, TaxID: taxID, Name: name})
		}
	}
	return res
}

// AncestorSet returns the taxon and its ancestors as a set. The walk is
// the same as in Lineage.
func (g *Graph) AncestorSet(id int) map[int]struct{} {
	id = g.Resolve(id)
	res := make(map[int]struct{})
	if _, ok := g.nodes[id]; !ok {
		return res
	}
	for _, v := range g.walkUp(id) {
		res[v] = struct{}{}
	}
	return res
}

// IsAncestor returns true if anc is in the lineage of id. A taxon is
// considered an ancestor of itself.
func (g *Graph) IsAncestor(anc, id int) bool {
	_, ok := g.AncestorSet(id)[g.Resolve(anc)]
	return ok
}

// ParentScientificName returns the scientific name of the lineage
// element at the given depth, where depth 0 is the top-most ancestor.
func (g *Graph) ParentScientificName(id, depth int) (string, bool) {
	lin := g.Lineage(id)
	if depth < 0 || depth >= len(lin) {
		return "", false
	}
	return g.ScientificName(lin[depth])
}

// LineageScientificNames returns scientific names of the lineage
// elements. Taxa without a scientific name get an empty string.
func (g *Graph) LineageScientificNames(id int) []string {
	lin := g.Lineage(id)
	res := make([]string, len(lin))
	for i, v := range lin {
		res[i], _ = g.ScientificName(v)
	}
	return res
}

// ParentList returns ancestors of a taxon, nearest parent first. The
// taxon itself and the root are excluded.
func (g *Graph) ParentList(id int) []Ancestor {
	id = g.Resolve(id)
	if _, ok := g.nodes[id]; !ok {
		return nil
	}
	ids := g.walkUp(id)[1:]
	res := make([]Ancestor, 0, len(ids))
	for _, v := range ids {
		sn, _ := g.ScientificName(v)
		res = append(res, Ancestor{TaxID: v, ScientificName: sn})
	}
	return res
}
