package taxonomy_test

import (
	"testing"

	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNames(t *testing.T) {
	rows := [][]string{
		dumpRow("9606", "Homo sapiens", "", "scientific name"),
		dumpRow("9606", "man", "", "common name"),
		dumpRow("9606", "human", "", "genbank common name"),
		dumpRow("9606", "human", "", "common name"),
		dumpRow("9606", "Homo sapiens Linnaeus, 1758", "", "authority"),
		dumpRow("9606", "Homo sapiens sapiens", "", "scientific name"),
		dumpRow("562", "'Bacterium coli'", "", "synonym"),
		dumpRow("562", "E. coli", "", "acronym"),
		dumpRow("abc", "Bad id", "", "scientific name"),
		dumpRow("1", "too short"),
		{},
	}
	res := taxonomy.ParseNames(rows)
	require.Len(t, res, 2)

	human := res[9606]
	require.NotNil(t, human)
	assert.Equal(t, "Homo sapiens sapiens", human.ScientificName,
		"last scientific name wins")
	assert.Equal(t, "man", human.PreferredCommonName,
		"first common name wins")
	assert.Equal(t, []string{"man", "human", "human"}, human.CommonNames)

	ecoli := res[562]
	require.NotNil(t, ecoli)
	assert.Empty(t, ecoli.ScientificName)
	assert.Empty(t, ecoli.PreferredCommonName)
	assert.Equal(t, []string{"Bacterium coli", "E. coli"}, ecoli.CommonNames)
}

func TestParseNodes(t *testing.T) {
	rows := [][]string{
		dumpRow("1", "1", "no rank"),
		dumpRow("9606", "9605", " species "),
		dumpRow("9605", "x", "genus"),
		dumpRow("x", "1", "genus"),
		dumpRow("5", "1"),
	}
	res := taxonomy.ParseNodes(rows)
	assert.Equal(t, map[int]taxonomy.Node{
		1:    {ParentID: 1, Rank: "no rank"},
		9606: {ParentID: 9605, Rank: "species"},
	}, res)
}

func TestParseMerged(t *testing.T) {
	rows := [][]string{
		dumpRow("12", "74109"),
		dumpRow("30", "29"),
		{"31", "|"},
		dumpRow("bad", "29"),
		dumpRow("32", "bad"),
	}
	res := taxonomy.ParseMerged(rows)
	assert.Equal(t, map[int]int{12: 74109, 30: 29}, res)
}

func TestParseNil(t *testing.T) {
	res := taxonomy.Parse(nil)
	require.NotNil(t, res)
	assert.Empty(t, res.Names)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Merged)
}

func TestParseTaxID(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		id    int
		ok    bool
	}{
		{"number", "9606", 9606, true},
		{"spaces", " 9606 ", 9606, true},
		{"empty", "", 0, false},
		{"letters", "human", 0, false},
		{"float", "96.06", 0, false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			id, ok := taxonomy.ParseTaxID(v.input)
			assert.Equal(t, v.ok, ok)
			assert.Equal(t, v.id, id)
		})
	}
}

func TestStats(t *testing.T) {
	g := fixtureGraph()
	st := g.Stats()
	assert.Equal(t, len(fixtureNodes), st.Nodes)
	assert.Equal(t, len(fixtureMerged), st.Merged)
	assert.False(t, st.IsComplete(taxonomy.MinCompleteStats))
	assert.True(t, st.IsComplete(taxonomy.Stats{Names: 1, Nodes: 1, Merged: 1}))
}
