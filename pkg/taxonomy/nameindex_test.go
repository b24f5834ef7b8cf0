package taxonomy_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameIndex(t *testing.T) {
	g := fixtureGraph()
	ni, err := taxonomy.NewNameIndex(context.Background(), g, nil, 4)
	require.NoError(t, err)
	assert.Greater(t, ni.Len(), 20)

	tests := []struct {
		msg  string
		name string
		id   int
		ok   bool
	}{
		{"scientific name", "Homo sapiens", 9606, true},
		{"case insensitive", "homo SAPIENS", 9606, true},
		{"common name", " man ", 9606, true},
		{"acronym", "E. coli", 562, true},
		{"stripped quotes", "bacterium coli", 562, true},
		{"unknown", "Pan troglodytes", 0, false},
		{"empty", "", 0, false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			id, ok := ni.TaxID(v.name)
			assert.Equal(t, v.ok, ok)
			assert.Equal(t, v.id, id)
		})
	}
}

func TestNameIndexSharedName(t *testing.T) {
	g := taxonomy.New(&taxonomy.Tables{
		Names: map[int]*taxonomy.Name{
			20: {ScientificName: "Aus"},
			10: {ScientificName: "Aus"},
			30: {ScientificName: "Aus"},
		},
	})
	ni, err := taxonomy.NewNameIndex(context.Background(), g, nil, 3)
	require.NoError(t, err)
	id, ok := ni.TaxID("aus")
	assert.True(t, ok)
	assert.Equal(t, 10, id, "smallest id wins")
}

func TestNameIndexNormalizer(t *testing.T) {
	g := fixtureGraph()
	firstWord := func(s string) string {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return ""
		}
		return strings.ToLower(fields[0])
	}
	ni, err := taxonomy.NewNameIndex(context.Background(), g, firstWord, 1)
	require.NoError(t, err)

	id, ok := ni.TaxID("Homo erectus")
	assert.True(t, ok)
	assert.Equal(t, 9605, id, "Homo wins over Homo sapiens")
}

func TestNameIndexCanceled(t *testing.T) {
	g := fixtureGraph()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := taxonomy.NewNameIndex(ctx, g, nil, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
