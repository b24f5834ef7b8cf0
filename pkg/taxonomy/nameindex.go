package taxonomy

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Normalizer converts a name into a key of the name index.
type Normalizer func(string) string

// NormalizeUpper trims a name and converts it to upper case.
func NormalizeUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NameIndex maps normalized names to taxon identifiers.
type NameIndex struct {
	normalize Normalizer
	data      map[string]int
}

type nameKey struct {
	key   string
	taxID int
}

// NewNameIndex builds an index of scientific, preferred common and
// common names of all taxa. Names are normalized concurrently by jobs
// workers. When several taxa share a name, the taxon with the smallest
// identifier wins. A nil normalizer defaults to NormalizeUpper.
func NewNameIndex(
	ctx context.Context,
	g *Graph,
	normalize Normalizer,
	jobs int,
) (*NameIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if normalize == nil {
		normalize = NormalizeUpper
	}
	if jobs < 1 {
		jobs = 1
	}
	res := &NameIndex{
		normalize: normalize,
		data:      make(map[string]int, len(g.names)*2),
	}

	chIn := make(chan int)
	chOut := make(chan nameKey)
	gr, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		gr.Go(func() error {
			defer wg.Done()
			return res.indexWorker(ctx, g, chIn, chOut)
		})
	}

	gr.Go(func() error {
		for k := range chOut {
			if id, ok := res.data[k.key]; !ok || k.taxID < id {
				res.data[k.key] = k.taxID
			}
		}
		return nil
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	gr.Go(func() error {
		defer close(chIn)
		for _, id := range slices.Sorted(maps.Keys(g.names)) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- id:
			}
		}
		return nil
	})

	if err := gr.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (ni *NameIndex) indexWorker(
	ctx context.Context,
	g *Graph,
	chIn <-chan int,
	chOut chan<- nameKey,
) error {
	for id := range chIn {
		n := g.names[id]
		names := append([]string{n.ScientificName, n.PreferredCommonName},
			n.CommonNames...)
		for _, name := range names {
			if name == "" {
				continue
			}
			key := ni.normalize(name)
			if key == "" {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chOut <- nameKey{key: key, taxID: id}:
			}
		}
	}
	return nil
}

// TaxID returns the identifier of a taxon with the given name.
func (ni *NameIndex) TaxID(name string) (int, bool) {
	key := ni.normalize(name)
	if key == "" {
		return 0, false
	}
	id, ok := ni.data[key]
	return id, ok
}

// Len returns the number of distinct keys in the index.
func (ni *NameIndex) Len() int {
	return len(ni.data)
}
