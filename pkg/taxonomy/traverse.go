package taxonomy

// BreadthFirst returns the taxon and all its descendants in breadth-first
// order. Children of a node follow in ascending order of their
// identifiers.
func (g *Graph) BreadthFirst(start int) []int {
	start = g.Resolve(start)
	visited := map[int]struct{}{start: {}}
	queue := []int{start}
	var res []int
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res = append(res, id)
		for _, child := range g.childrenOf(id) {
			if _, ok := visited[child]; ok {
				continue
			}
			visited[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return res
}
