// Package parserpool provides a pool of gnparser instances for concurrent
// name parsing. This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
// It maintains separate pools for botanical, zoological and bacterial
// nomenclatural codes.
type Pool interface {
	// Parse parses a scientific name string using the specified nomenclatural code.
	// This method is safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Normalizer returns a function that converts a name into a name
	// index key.
	Normalizer() taxonomy.Normalizer

	// Close shuts down the parser pools and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

type poolImpl struct {
	pools map[nomcode.Code]chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of workers
// per nomenclatural code. If jobsNum is 0, it defaults to
// runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	res := &poolImpl{pools: make(map[nomcode.Code]chan gnparser.GNparser)}
	for _, code := range []nomcode.Code{
		nomcode.Botanical, nomcode.Zoological, nomcode.Bacterial,
	} {
		cfg := gnparser.NewConfig(gnparser.OptCode(code))
		res.pools[code] = gnparser.NewPool(cfg, poolSize)
	}
	return res
}

// Parse parses a scientific name string using the specified nomenclatural code.
func (p *poolImpl) Parse(
	nameString string,
	code nomcode.Code,
) (parsed.Parsed, error) {
	ch, ok := p.pools[code]
	if !ok {
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	result := parser.ParseName(nameString)
	ch <- parser

	return result, nil
}

// Normalizer returns a normalizer that replaces scientific names with
// their simple canonical form in upper case. Names that cannot be parsed
// (most of common names) are trimmed and converted to upper case.
//
// Botanical code is used, so "Aus (Bus)" normalizes to "AUS", not "BUS".
func (p *poolImpl) Normalizer() taxonomy.Normalizer {
	return func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return ""
		}
		res, err := p.Parse(s, nomcode.Botanical)
		if err != nil || !res.Parsed || res.Canonical == nil {
			return taxonomy.NormalizeUpper(s)
		}
		return strings.ToUpper(res.Canonical.Simple)
	}
}

// Close shuts down all parser pools and releases resources.
func (p *poolImpl) Close() {
	for code, ch := range p.pools {
		close(ch)
		for range ch {
		}
		delete(p.pools, code)
	}
}
