package taxonomy_test

import (
	"testing"

	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestCompareTaxons(t *testing.T) {
	g := fixtureGraph()
	tests := []struct {
		msg        string
		query, ref int
		status     taxonomy.Status
		lca        int
		lcaRank    string
	}{
		{"matched", 9606, 9606, taxonomy.StatusMatched, 9606, "species"},
		{"matched merged", 12345, 9606, taxonomy.StatusMatched, 9606, "species"},
		{"ancestor", 9605, 9606, taxonomy.StatusQueryAncestor, 9605, "genus"},
		{"descendant", 9606, 9605, taxonomy.StatusQueryDescendant, 9605, "genus"},
		{"subspecies", 63221, 741158,
			taxonomy.StatusAlternateSubspecies, 9606, "species"},
		{"strains", 83333, 866768,
			taxonomy.StatusAlternateStrain, 562, "species"},
		{"serotypes", 119210, 114727,
			taxonomy.StatusAlternateStrain, 11320, "species"},
		{"variants", 387139, 387140,
			taxonomy.StatusAlternateVariants, 119210, "serotype"},
		{"strain lca", 511145, 316407,
			taxonomy.StatusAlternateStrainOnly, 83333, "strain"},
		{"species with no rank lca", 562, 9606,
			taxonomy.StatusOrthologous, 131567, "no rank"},
		{"apes", 9606, 9593, taxonomy.StatusOrthologous, 9604, "family"},
		{"bacteria", 866768, 2569093,
			taxonomy.StatusOrthologous, 2, "superkingdom"},
		{"suborder lca", 9604, 9477, taxonomy.StatusLCA, 376913, "suborder"},
		{"species and subspecies", 9593, 63221,
			taxonomy.StatusOrthologous, 9604, "family"},
		{"no common lineage", 32630, 9606, taxonomy.StatusNone, 0, ""},
		{"disconnected", 700, 9606, taxonomy.StatusNone, 0, ""},
		{"unknown", 424242, 9606, taxonomy.StatusNone, 0, ""},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := g.CompareTaxons(v.query, v.ref)
			assert.Equal(t, v.status, res.Status)
			assert.Equal(t, v.lca, res.LCA)
			assert.Equal(t, v.lcaRank, res.LCARank)
		})
	}
}

func TestCompareTaxonsSymmetry(t *testing.T) {
	g := fixtureGraph()
	for _, anc := range humanLineage[:len(humanLineage)-1] {
		res := g.CompareTaxons(anc, 9606)
		assert.Equal(t, taxonomy.StatusQueryAncestor, res.Status)
		assert.Equal(t, anc, res.LCA)

		res = g.CompareTaxons(9606, anc)
		assert.Equal(t, taxonomy.StatusQueryDescendant, res.Status)
		assert.Equal(t, anc, res.LCA)
	}
}

func TestCompareTaxonsMissingRanks(t *testing.T) {
	g := taxonomy.New(&taxonomy.Tables{
		Nodes: map[int]taxonomy.Node{
			1:  {ParentID: 1, Rank: "no rank"},
			10: {ParentID: 1},
			11: {ParentID: 10, Rank: "species"},
			12: {ParentID: 10},
		},
	})
	res := g.CompareTaxons(11, 12)
	assert.Equal(t, taxonomy.StatusLCA, res.Status)
	assert.Equal(t, 10, res.LCA)
	assert.Empty(t, res.LCARank)
}
