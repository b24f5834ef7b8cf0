package taxonomy

import (
	"log/slog"
	"strconv"
)

// ExportNode is a record of a taxonomy tree export.
type ExportNode struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Parents []string `json:"parents,omitempty"`
	Depth   int      `json:"depth"`
}

// DisplayName returns the scientific name of a taxon followed by its
// preferred common name in parentheses, if the latter exists.
func (g *Graph) DisplayName(id int) string {
	sn, _ := g.ScientificName(id)
	if alt, ok := g.PreferredCommonName(id); ok {
		return sn + " (" + alt + ")"
	}
	return sn
}

// ExportNodeList converts the subtree of start into a list of export
// records in breadth-first order. If filter is not empty, only taxa from
// the filter are exported. The taxon root is skipped, its direct
// children have no parents and depth 0.
func (g *Graph) ExportNodeList(
	start, root int,
	filter map[int]struct{},
) []ExportNode {
	ids := g.BreadthFirst(start)
	slog.Info("Taxa in the exported subtree", "count", len(ids))
	depths := g.subtreeDepths(ids)
	if len(filter) > 0 {
		filtered := ids[:0:0]
		for _, id := range ids {
			if _, ok := filter[id]; ok {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
		slog.Info("Taxa left after filtering", "count", len(ids))
	}

	res := make([]ExportNode, 0, len(ids))
	for _, id := range ids {
		if id == root {
			continue
		}
		if _, ok := g.ScientificName(id); !ok {
			slog.Info("Taxon without scientific name", "taxid", id)
		}
		node := ExportNode{
			ID:   strconv.Itoa(id),
			Name: g.DisplayName(id),
		}
		parentID, ok := g.ParentID(id)
		if ok && parentID != root {
			node.Parents = []string{strconv.Itoa(parentID)}
			node.Depth = depths[id]
		}
		res = append(res, node)
	}
	return res
}

// subtreeDepths returns len(Lineage(id))-1 for every id of a breadth-first
// list. Only the first taxon is walked up, the others take the depth of
// their parent, which always precedes them in the list.
func (g *Graph) subtreeDepths(ids []int) map[int]int {
	res := make(map[int]int, len(ids))
	for i, id := range ids {
		if i == 0 {
			res[id] = len(g.Lineage(id)) - 1
			continue
		}
		parentID := g.nodes[id].ParentID
		if parentID == RootID {
			res[id] = 0
			continue
		}
		res[id] = res[parentID] + 1
	}
	return res
}
