package taxonomy

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Pair is a pair of taxon identifiers for batched lowest common ancestor
// queries.
type Pair struct {
	A int
	B int
}

// lcaIndex is a heavy-light decomposition of the forest formed by
// parent-to-child edges of the node table. Vertices are stored by
// dense index, ids keeps the original taxon identifiers.
type lcaIndex struct {
	idx    map[int]int32
	ids    []int
	parent []int32
	depth  []int32
	head   []int32
	// tree is the index of the root of the tree a vertex belongs to.
	// Vertices that cannot be reached from any root (cycles) get -1.
	tree []int32
}

// LowestCommonAncestor returns the deepest taxon that is an ancestor of
// both a and b. A taxon is an ancestor of itself, so the result for
// a == b is a. Absent taxa and taxa from disconnected trees have no
// common ancestor.
func (g *Graph) LowestCommonAncestor(a, b int) (int, bool) {
	g.lcaOnce.Do(g.buildLCA)
	return g.lca.query(g.Resolve(a), g.Resolve(b))
}

// LowestCommonAncestors answers lowest common ancestor queries for many
// pairs. Pairs without a common ancestor are absent from the result.
func (g *Graph) LowestCommonAncestors(pairs []Pair) map[Pair]int {
	g.lcaOnce.Do(g.buildLCA)
	res := make(map[Pair]int, len(pairs))
	for _, p := range pairs {
		if id, ok := g.lca.query(g.Resolve(p.A), g.Resolve(p.B)); ok {
			res[p] = id
		}
	}
	return res
}

func (g *Graph) buildLCA() {
	start := time.Now()
	g.lca = newLCAIndex(g.nodes)
	slog.Info("LCA index is built",
		"vertices", len(g.lca.ids),
		"duration", time.Since(start).String(),
	)
}

func newLCAIndex(nodes map[int]Node) *lcaIndex {
	res := &lcaIndex{idx: make(map[int]int32, len(nodes))}
	add := func(id int) int32 {
		if i, ok := res.idx[id]; ok {
			return i
		}
		i := int32(len(res.ids))
		res.idx[id] = i
		res.ids = append(res.ids, id)
		return i
	}

	// deterministic vertex order
	for _, id := range slices.Sorted(maps.Keys(nodes)) {
		add(id)
	}
	for _, id := range slices.Sorted(maps.Keys(nodes)) {
		add(nodes[id].ParentID)
	}

	n := len(res.ids)
	res.parent = make([]int32, n)
	res.depth = make([]int32, n)
	res.head = make([]int32, n)
	res.tree = make([]int32, n)
	for i := range n {
		res.parent[i] = -1
		res.tree[i] = -1
	}

	// children in CSR layout
	childNum := make([]int32, n+1)
	for id, node := range nodes {
		if node.ParentID == id {
			continue
		}
		c, p := res.idx[id], res.idx[node.ParentID]
		res.parent[c] = p
		childNum[p+1]++
	}
	for i := 1; i <= n; i++ {
		childNum[i] += childNum[i-1]
	}
	offsets := childNum
	children := make([]int32, offsets[n])
	fill := slices.Clone(offsets[:n])
	for c := range n {
		p := res.parent[c]
		if p < 0 {
			continue
		}
		children[fill[p]] = int32(c)
		fill[p]++
	}

	// pre-order traversal of every tree
	order := make([]int32, 0, n)
	stack := make([]int32, 0, 64)
	for r := range n {
		if res.parent[r] != -1 {
			continue
		}
		res.tree[r] = int32(r)
		stack = append(stack[:0], int32(r))
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			order = append(order, u)
			for _, c := range children[offsets[u]:offsets[u+1]] {
				res.depth[c] = res.depth[u] + 1
				res.tree[c] = res.tree[r]
				stack = append(stack, c)
			}
		}
	}
	if len(order) < n {
		slog.Warn("Taxa unreachable from any root", "count", n-len(order))
	}

	// subtree sizes and heavy children, leaves first
	size := make([]int32, n)
	heavy := make([]int32, n)
	for i := range n {
		size[i] = 1
		heavy[i] = -1
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		p := res.parent[u]
		if p < 0 {
			continue
		}
		size[p] += size[u]
		if heavy[p] == -1 || size[u] > size[heavy[p]] {
			heavy[p] = u
		}
	}

	// heavy paths, parents first
	for _, u := range order {
		p := res.parent[u]
		if p < 0 || heavy[p] != u {
			res.head[u] = u
			continue
		}
		res.head[u] = res.head[p]
	}
	return res
}

func (l *lcaIndex) query(a, b int) (int, bool) {
	u, ok := l.idx[a]
	if !ok {
		return 0, false
	}
	v, ok := l.idx[b]
	if !ok {
		return 0, false
	}
	if l.tree[u] < 0 || l.tree[u] != l.tree[v] {
		return 0, false
	}
	for l.head[u] != l.head[v] {
		if l.depth[l.head[u]] > l.depth[l.head[v]] {
			u = l.parent[l.head[u]]
		} else {
			v = l.parent[l.head[v]]
		}
	}
	if l.depth[u] < l.depth[v] {
		return l.ids[u], true
	}
	return l.ids[v], true
}
