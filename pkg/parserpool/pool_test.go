package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gntaxa/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name    string
		jobsNum int
	}{
		{"default size", 0},
		{"custom size 4", 4},
		{"custom size 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := parserpool.NewPool(tt.jobsNum)
			require.NotNil(t, pool)
			defer pool.Close()

			res, err := pool.Parse("Homo sapiens", nomcode.Botanical)
			require.NoError(t, err)
			assert.True(t, res.Parsed)
		})
	}
}

func TestParseCodes(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg  string
		name string
		code nomcode.Code
	}{
		{"botanical", "Plantago major L.", nomcode.Botanical},
		{"zoological", "Apis mellifera Linnaeus, 1758", nomcode.Zoological},
		{"bacterial", "Escherichia coli (Migula 1895) Castellani & Chalmers 1919",
			nomcode.Bacterial},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := pool.Parse(v.name, v.code)
			require.NoError(t, err)
			assert.True(t, res.Parsed)
			require.NotNil(t, res.Canonical)
			assert.NotEmpty(t, res.Canonical.Simple)
		})
	}
}

func TestParseUnsupportedCode(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	_, err := pool.Parse("Plantago major", nomcode.Unknown)
	assert.Error(t, err)
}

// "Aus (Bus)" keeps genus as the canonical form with botanical code.
func TestNormalizer(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()
	norm := pool.Normalizer()

	tests := []struct {
		msg   string
		input string
		res   string
	}{
		{"authorship removed", "Homo sapiens Linnaeus, 1758", "HOMO SAPIENS"},
		{"plain name", "Homo sapiens", "HOMO SAPIENS"},
		{"botanical subgenus", "Aus (Bus)", "AUS"},
		{"common name", "  human ", "HUMAN"},
		{"empty", "   ", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, norm(v.input), v.msg)
	}
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	names := []string{"Homo sapiens", "Pan troglodytes", "Gorilla gorilla"}
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range names {
				res, err := pool.Parse(n, nomcode.Zoological)
				assert.NoError(t, err)
				assert.True(t, res.Parsed)
			}
		}()
	}
	wg.Wait()
}
