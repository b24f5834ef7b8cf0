package ioprovider_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/gnames/gntaxa/internal/ioprovider"
	"github.com/gnames/gntaxa/internal/iosnapshot"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullGraph loads the complete NCBI taxonomy from the snapshot created by
// 'gntaxa fetch'. The test is skipped unless GNTAXA_FULL_TESTS=1 and the
// snapshot exists. It never downloads the dump.
func fullGraph(t *testing.T) *taxonomy.Graph {
	t.Helper()
	if testing.Short() || os.Getenv("GNTAXA_FULL_TESTS") != "1" {
		t.Skip("set GNTAXA_FULL_TESTS=1 to run tests on the full taxonomy")
	}
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	format := config.New().Taxonomy.SnapshotFormat
	if v, ok := os.LookupEnv("GNTAXA_TAXONOMY_SNAPSHOT_FORMAT"); ok {
		format = v
	}
	store, err := iosnapshot.New(format, config.SnapshotDir(home))
	require.NoError(t, err)
	if !store.Exists() {
		t.Skipf("no %s snapshot in %s, run 'gntaxa fetch' first",
			format, config.SnapshotDir(home))
	}

	f := &fakeFetcher{err: errors.New("download is disabled in tests")}
	g, err := ioprovider.New(true, f, store).Load(context.Background())
	require.NoError(t, err)
	require.Zero(t, f.calls, "taxonomy must come from the snapshot")
	return g
}

func TestFullTaxonomy(t *testing.T) {
	g := fullGraph(t)

	assert.True(t, g.Stats().IsComplete(taxonomy.MinCompleteStats))
	assert.Greater(t, g.Len(), taxonomy.MinCompleteStats.Nodes)

	t.Run("human", func(t *testing.T) {
		assert.GreaterOrEqual(t, len(g.Lineage(9606)), 30)

		name, ok := g.ScientificName(9606)
		require.True(t, ok)
		assert.Greater(t, len(name), 10)

		cns, ok := g.CommonNames(9606)
		require.True(t, ok)
		assert.GreaterOrEqual(t, len(cns), 2)
	})

	t.Run("lca", func(t *testing.T) {
		tests := []struct {
			a, b, res int
		}{
			{63221, 741158, 9606},
			{866768, 2569093, taxonomy.BacteriaID},
			{9606, 9606, 9606},
		}
		for _, v := range tests {
			lca, ok := g.LowestCommonAncestor(v.a, v.b)
			assert.True(t, ok)
			assert.Equal(t, v.res, lca, "LCA(%d, %d)", v.a, v.b)
		}
	})

	t.Run("domains of human", func(t *testing.T) {
		assert.True(t, g.IsEukaryota(9606))
		assert.False(t, g.IsBacteria(9606))
		assert.False(t, g.IsVirus(9606))
		assert.False(t, g.IsArchaea(9606))
		assert.False(t, g.IsOther(9606))
		assert.False(t, g.IsUnclassified(9606))
	})

	t.Run("compare", func(t *testing.T) {
		res := g.CompareTaxons(9606, 9606)
		assert.Equal(t, taxonomy.StatusMatched, res.Status)
		assert.Equal(t, 9606, res.LCA)
		assert.Equal(t, "species", res.LCARank)
	})
}
