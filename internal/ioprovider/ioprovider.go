// Package ioprovider builds the taxonomy graph from a local snapshot or
// from a freshly fetched taxonomy dump.
package ioprovider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

type provider struct {
	useCache bool
	fetcher  lifecycle.Fetcher
	store    lifecycle.SnapshotStore
}

// New creates a Loader. If useCache is true and the snapshot exists,
// the graph is built from the snapshot. Otherwise the snapshot is
// removed, the dump is fetched, and the new snapshot is saved.
func New(
	useCache bool,
	fetcher lifecycle.Fetcher,
	store lifecycle.SnapshotStore,
) lifecycle.Loader {
	return &provider{
		useCache: useCache,
		fetcher:  fetcher,
		store:    store,
	}
}

func (p *provider) Load(ctx context.Context) (*taxonomy.Graph, error) {
	start := time.Now()

	tables, err := p.tables(ctx)
	if err != nil {
		return nil, err
	}

	g := taxonomy.New(tables)
	stats := g.Stats()
	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Taxonomy is loaded",
		"names", stats.Names,
		"nodes", stats.Nodes,
		"merged", stats.Merged,
		"duration", dur,
	)
	if !stats.IsComplete(taxonomy.MinCompleteStats) {
		slog.Warn("Taxonomy looks incomplete",
			"names", stats.Names,
			"nodes", stats.Nodes,
			"merged", stats.Merged,
		)
		gn.Warn(
			"Taxonomy has only <em>%s</em> nodes, the data might be incomplete",
			humanize.Comma(int64(stats.Nodes)),
		)
	}
	return g, nil
}

func (p *provider) tables(ctx context.Context) (*taxonomy.Tables, error) {
	if p.useCache && p.store.Exists() {
		res, err := p.store.Load(ctx)
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		slog.Warn("Cannot load taxonomy snapshot, fetching taxonomy dump",
			"format", p.store.Format(), "error", err)
	}

	if err := p.store.Remove(); err != nil {
		return nil, err
	}

	raw, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	res := taxonomy.Parse(raw)
	err = p.store.Save(ctx, res)
	if err != nil {
		slog.Error("Cannot save taxonomy snapshot",
			"format", p.store.Format(), "error", err)
		gn.Warn("Taxonomy snapshot is not saved")
		return res, nil
	}
	gn.Info(fmt.Sprintf("Taxonomy snapshot saved in <em>%s</em> format",
		p.store.Format()))
	return res, nil
}
