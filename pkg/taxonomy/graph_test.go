package taxonomy_test

import (
	"sync"
	"testing"

	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	g := fixtureGraph()
	tests := []struct {
		msg string
		id  int
		res int
	}{
		{"merged", 12345, 9606},
		{"merged to bacteria", 999999, 562},
		{"current", 9606, 9606},
		{"unknown", 424242, 424242},
	}

	for _, v := range tests {
		res := g.Resolve(v.id)
		assert.Equal(t, v.res, res, v.msg)
		assert.Equal(t, res, g.Resolve(res), v.msg+": idempotent")
	}
}

func TestLookups(t *testing.T) {
	g := fixtureGraph()

	t.Run("scientific name", func(t *testing.T) {
		sn, ok := g.ScientificName(9606)
		assert.True(t, ok)
		assert.Equal(t, "Homo sapiens", sn)

		sn, ok = g.ScientificName(12345)
		assert.True(t, ok)
		assert.Equal(t, "Homo sapiens", sn)

		_, ok = g.ScientificName(424242)
		assert.False(t, ok)
	})

	t.Run("common names", func(t *testing.T) {
		cn, ok := g.CommonNames(9606)
		assert.True(t, ok)
		assert.Equal(t, []string{"human", "man"}, cn)

		cn, ok = g.CommonNames(562)
		assert.True(t, ok)
		assert.Equal(t, []string{"Bacterium coli", "E. coli"}, cn)

		_, ok = g.CommonNames(9605)
		assert.False(t, ok)
	})

	t.Run("preferred common name", func(t *testing.T) {
		pcn, ok := g.PreferredCommonName(9606)
		assert.True(t, ok)
		assert.Equal(t, "man", pcn)

		_, ok = g.PreferredCommonName(9604)
		assert.False(t, ok, "genbank common name is not preferred")
	})

	t.Run("parent", func(t *testing.T) {
		p, ok := g.ParentID(9606)
		assert.True(t, ok)
		assert.Equal(t, 9605, p)

		p, ok = g.ParentID(12345)
		assert.True(t, ok)
		assert.Equal(t, 9605, p)

		_, ok = g.ParentID(taxonomy.RootID)
		assert.False(t, ok, "root has no parent")

		_, ok = g.ParentID(424242)
		assert.False(t, ok)
	})

	t.Run("rank", func(t *testing.T) {
		r, ok := g.Rank(9606)
		assert.True(t, ok)
		assert.Equal(t, "species", r)

		_, ok = g.Rank(424242)
		assert.False(t, ok)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, g.Has(12345))
		assert.False(t, g.Has(701))
	})
}

func TestChildren(t *testing.T) {
	g := fixtureGraph()
	tests := []struct {
		msg string
		id  int
		res []int
	}{
		{"species", 9606, []int{63221, 741158}},
		{"merged id", 12345, []int{63221, 741158}},
		{"root has no self loop", 1, []int{10239, 12908, 28384, 131567}},
		{"strain", 83333, []int{316407, 511145}},
		{"leaf", 63221, nil},
		{"absent parent", 701, []int{700}},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, g.Children(v.id), v.msg)
	}

	res := g.Children(9606)
	res[0] = 0
	assert.Equal(t, []int{63221, 741158}, g.Children(9606),
		"children slice is a copy")
}

func TestConcurrentReads(t *testing.T) {
	g := fixtureGraph()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, g.Children(9606), 2)
			id, ok := g.LowestCommonAncestor(63221, 741158)
			assert.True(t, ok)
			assert.Equal(t, 9606, id)
		}()
	}
	wg.Wait()
}
