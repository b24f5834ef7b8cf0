package taxonomy

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Graph is an immutable taxonomy with lazily derived indices.
type Graph struct {
	names  map[int]*Name
	nodes  map[int]Node
	merged map[int]int

	childrenOnce sync.Once
	children     map[int][]int

	lcaOnce sync.Once
	lca     *lcaIndex
}

// New creates a Graph from taxonomy tables. The graph takes ownership of
// the tables, they must not be modified afterwards.
func New(t *Tables) *Graph {
	if t == nil {
		t = &Tables{}
	}
	res := &Graph{
		names:  t.Names,
		nodes:  t.Nodes,
		merged: t.Merged,
	}
	if res.names == nil {
		res.names = make(map[int]*Name)
	}
	if res.nodes == nil {
		res.nodes = make(map[int]Node)
	}
	if res.merged == nil {
		res.merged = make(map[int]int)
	}
	return res
}

// Len returns the number of taxa in the node table.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Tables returns the tables the graph was built from.
func (g *Graph) Tables() *Tables {
	return &Tables{Names: g.names, Nodes: g.nodes, Merged: g.merged}
}

// Stats returns sizes of the graph tables.
func (g *Graph) Stats() Stats {
	return Stats{
		Names:  len(g.names),
		Nodes:  len(g.nodes),
		Merged: len(g.merged),
	}
}

// Resolve returns the surviving identifier of a merged taxon, or the
// identifier itself.
func (g *Graph) Resolve(id int) int {
	if newID, ok := g.merged[id]; ok {
		return newID
	}
	return id
}

// Has returns true if the node table contains the taxon.
func (g *Graph) Has(id int) bool {
	_, ok := g.nodes[g.Resolve(id)]
	return ok
}

// ScientificName returns the scientific name of a taxon.
func (g *Graph) ScientificName(id int) (string, bool) {
	n, ok := g.names[g.Resolve(id)]
	if !ok || n.ScientificName == "" {
		return "", false
	}
	return n.ScientificName, true
}

// PreferredCommonName returns the first common name found in the dump.
func (g *Graph) PreferredCommonName(id int) (string, bool) {
	n, ok := g.names[g.Resolve(id)]
	if !ok || n.PreferredCommonName == "" {
		return "", false
	}
	return n.PreferredCommonName, true
}

// CommonNames returns sorted unique non-scientific names of a taxon.
func (g *Graph) CommonNames(id int) ([]string, bool) {
	n, ok := g.names[g.Resolve(id)]
	if !ok || len(n.CommonNames) == 0 {
		return nil, false
	}
	res := slices.Clone(n.CommonNames)
	slices.Sort(res)
	return slices.Compact(res), true
}

// ParentID returns the parent of a taxon. The root has no parent.
func (g *Graph) ParentID(id int) (int, bool) {
	id = g.Resolve(id)
	n, ok := g.nodes[id]
	if !ok || n.ParentID == id {
		return 0, false
	}
	return n.ParentID, true
}

// Rank returns the rank of a taxon.
func (g *Graph) Rank(id int) (string, bool) {
	n, ok := g.nodes[g.Resolve(id)]
	if !ok {
		return "", false
	}
	return n.Rank, true
}

// Children returns identifiers of direct children of a taxon in
// ascending order. The children index is built on the first call.
func (g *Graph) Children(id int) []int {
	return slices.Clone(g.childrenOf(g.Resolve(id)))
}

func (g *Graph) childrenOf(id int) []int {
	g.childrenOnce.Do(g.buildChildren)
	return g.children[id]
}

func (g *Graph) buildChildren() {
	res := make(map[int][]int)
	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		parentID := g.nodes[id].ParentID
		if parentID == id {
			continue
		}
		res[parentID] = append(res[parentID], id)
	}
	g.children = res
	slog.Debug("Children index is built", "parents", len(res))
}
