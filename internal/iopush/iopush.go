// Package iopush copies the taxonomy graph into PostgreSQL tables.
package iopush

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/db"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/schema"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pusher struct {
	operator  db.Operator
	batchSize int
	progress  bool
}

// New creates a Pusher. Data are sent in batches of
// database.batch_size rows.
func New(op db.Operator, cfg *config.Config) lifecycle.Pusher {
	batchSize := cfg.Database.BatchSize
	if batchSize <= 0 {
		batchSize = 50_000
	}
	return &pusher{operator: op, batchSize: batchSize, progress: true}
}

// Push replaces taxa, names and merged ids in the database and records
// a new release.
func (p *pusher) Push(ctx context.Context, g *taxonomy.Graph) error {
	pool := p.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}
	start := time.Now()

	_, err := pool.Exec(ctx, "TRUNCATE taxa, taxon_names, merged_taxa")
	if err != nil {
		return CopyError("taxa", err)
	}

	taxa := Taxa(g)
	if err = copyModels(ctx, p, pool, "taxa", taxa); err != nil {
		return err
	}
	names := TaxonNames(g)
	if err = copyModels(ctx, p, pool, "taxon_names", names); err != nil {
		return err
	}
	merged := MergedTaxa(g)
	if err = copyModels(ctx, p, pool, "merged_taxa", merged); err != nil {
		return err
	}

	rel := NewRelease(g)
	if err = insertRelease(ctx, pool, rel); err != nil {
		return err
	}
	vacuumAnalyze(ctx, pool)

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Taxonomy is pushed to database",
		"taxa", len(taxa),
		"names", len(names),
		"merged", len(merged),
		"release", rel.ID,
		"duration", dur,
	)
	gn.Info(fmt.Sprintf(
		"Pushed <em>%s</em> taxa and <em>%s</em> common names in %s",
		humanize.Comma(int64(len(taxa))),
		humanize.Comma(int64(len(names))),
		dur,
	))
	return nil
}

func copyModels[T any](
	ctx context.Context,
	p *pusher,
	pool *pgxpool.Pool,
	table string,
	models []T,
) error {
	if len(models) == 0 {
		slog.Info("Nothing to copy", "table", table)
		return nil
	}
	columns := schema.Columns(models[0])

	var bar *pb.ProgressBar
	if p.progress {
		bar = pb.Full.Start(len(models))
		bar.Set("prefix", fmt.Sprintf("Copying %s: ", table))
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	var total int64
	for i := 0; i < len(models); i += p.batchSize {
		end := min(i+p.batchSize, len(models))
		batch := models[i:end]

		rows := make([][]any, len(batch))
		for j := range batch {
			rows[j] = schema.Values(batch[j])
		}

		count, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{table},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return CopyError(table, err)
		}
		total += count
		if bar != nil {
			bar.Add(len(batch))
		}
	}

	slog.Info("Copied rows", "table", table, "rows", total)
	return nil
}

func insertRelease(
	ctx context.Context,
	pool *pgxpool.Pool,
	rel schema.Release,
) error {
	columns := schema.Columns(rel)
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf("INSERT INTO releases (%s) VALUES (%s)",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	_, err := pool.Exec(ctx, q, schema.Values(rel)...)
	if err != nil {
		return ReleaseError(err)
	}
	return nil
}

// vacuumAnalyze reclaims space left by the truncated rows and updates
// query planner statistics. It cannot run inside a transaction.
func vacuumAnalyze(ctx context.Context, pool *pgxpool.Pool) {
	start := time.Now()
	_, err := pool.Exec(ctx, "VACUUM ANALYZE taxa, taxon_names, merged_taxa")
	if err != nil {
		slog.Warn("Cannot run VACUUM ANALYZE", "error", err)
		return
	}
	slog.Info("VACUUM ANALYZE completed",
		"duration", gnfmt.TimeString(time.Since(start).Seconds()))
}
