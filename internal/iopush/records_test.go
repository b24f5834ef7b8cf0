package iopush_test

import (
	"testing"

	"github.com/gnames/gntaxa/internal/iopush"
	gntaxa "github.com/gnames/gntaxa/pkg"
	"github.com/gnames/gntaxa/pkg/schema"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() *taxonomy.Graph {
	return taxonomy.New(&taxonomy.Tables{
		Names: map[int]*taxonomy.Name{
			1:    {ScientificName: "root"},
			2759: {ScientificName: "Eukaryota", PreferredCommonName: "eukaryotes",
				CommonNames: []string{"eukaryotes", "eucaryotes"}},
			9606: {ScientificName: "Homo sapiens", PreferredCommonName: "human",
				CommonNames: []string{"man", "human", "human"}},
		},
		Nodes: map[int]taxonomy.Node{
			1:    {ParentID: 1, Rank: "no rank"},
			2759: {ParentID: 1, Rank: "superkingdom"},
			9606: {ParentID: 2759, Rank: "species"},
			700:  {ParentID: 701, Rank: "species"},
		},
		Merged: map[int]int{12345: 9606, 63221: 9606},
	})
}

func TestTaxa(t *testing.T) {
	taxa := iopush.Taxa(testGraph())
	require.Len(t, taxa, 4)
	assert.Equal(t, []int{1, 700, 2759, 9606},
		[]int{taxa[0].ID, taxa[1].ID, taxa[2].ID, taxa[3].ID})

	human := taxa[3]
	assert.Equal(t, schema.Taxon{
		ID:                  9606,
		ParentID:            2759,
		Rank:                "species",
		ScientificName:      "Homo sapiens",
		PreferredCommonName: "human",
		Depth:               2,
		Domain:              "eukaryota",
	}, human)

	orphan := taxa[1]
	assert.Empty(t, orphan.ScientificName)
	assert.Empty(t, orphan.Domain)
	assert.Equal(t, 1, orphan.Depth)
}

func TestTaxonNames(t *testing.T) {
	names := iopush.TaxonNames(testGraph())
	require.Len(t, names, 4, "duplicate common names are removed")

	var preferred []string
	for _, v := range names {
		assert.Equal(t, iopush.NameID(v.TaxonID, v.Name), v.ID)
		if v.Preferred {
			preferred = append(preferred, v.Name)
		}
	}
	assert.Equal(t, []string{"eukaryotes", "human"}, preferred)
}

func TestNameID(t *testing.T) {
	id := iopush.NameID(9606, "human")
	assert.Equal(t, id, iopush.NameID(9606, "human"))
	assert.NotEqual(t, id, iopush.NameID(9605, "human"))
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestMergedTaxa(t *testing.T) {
	merged := iopush.MergedTaxa(testGraph())
	assert.Equal(t, []schema.MergedTaxon{
		{ID: 12345, TaxonID: 9606},
		{ID: 63221, TaxonID: 9606},
	}, merged)
}

func TestNewRelease(t *testing.T) {
	rel := iopush.NewRelease(testGraph())
	_, err := uuid.Parse(rel.ID)
	require.NoError(t, err)
	assert.Equal(t, gntaxa.Version, rel.Version)
	assert.Equal(t, 3, rel.Names)
	assert.Equal(t, 4, rel.Nodes)
	assert.Equal(t, 2, rel.Merged)
	assert.False(t, rel.CreatedAt.IsZero())
}
