/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/internal/iofetch"
	"github.com/gnames/gntaxa/internal/ioprovider"
	"github.com/gnames/gntaxa/internal/iosnapshot"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// taxonomyFlags are flags of commands that load the taxonomy.
type taxonomyFlags struct {
	noCache        bool
	noCleanup      bool
	snapshotFormat string
	jobs           int
}

func addTaxonomyFlags(cmd *cobra.Command, f *taxonomyFlags) {
	cmd.Flags().BoolVarP(&f.noCache, "no-cache", "n", false,
		"ignore the saved snapshot and download the taxonomy again")
	cmd.Flags().BoolVar(&f.noCleanup, "no-cleanup", false,
		"keep downloaded dump files")
	cmd.Flags().StringVarP(&f.snapshotFormat, "snapshot-format", "s", "",
		"snapshot format: sqlite, gob or badger")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0,
		"number of concurrent jobs")
}

// options converts explicitly set flags to config options.
func (f *taxonomyFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("no-cache") {
		res = append(res, config.OptTaxonomyUseCache(!f.noCache))
	}
	if cmd.Flags().Changed("no-cleanup") {
		res = append(res, config.OptTaxonomyCleanup(!f.noCleanup))
	}
	if cmd.Flags().Changed("snapshot-format") {
		res = append(res, config.OptTaxonomySnapshotFormat(f.snapshotFormat))
	}
	if cmd.Flags().Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	return res
}

// newLoader creates the taxonomy loader configured by cfg.
func newLoader(cfg *config.Config) (lifecycle.Loader, error) {
	store, err := iosnapshot.New(
		cfg.Taxonomy.SnapshotFormat,
		config.SnapshotDir(cfg.HomeDir),
	)
	if err != nil {
		return nil, err
	}
	fetcher := iofetch.New(cfg, iofetch.OptProgress(true))
	return ioprovider.New(cfg.Taxonomy.UseCache, fetcher, store), nil
}

// loadGraph applies flag options to the configuration and loads the
// taxonomy graph.
func loadGraph(
	ctx context.Context,
	cmd *cobra.Command,
	f *taxonomyFlags,
) (*taxonomy.Graph, error) {
	if f != nil {
		cfg.Update(f.options(cmd))
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	gn.Info("Loaded <em>%s</em> taxa in %s",
		humanize.Comma(int64(g.Stats().Nodes)),
		gnfmt.TimeString(time.Since(start).Seconds()))
	return g, nil
}

// parseTaxID converts a command argument to a taxon ID.
func parseTaxID(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, TaxIDArgError(arg, err)
	}
	if id < 1 {
		return 0, TaxIDArgError(arg, strconv.ErrRange)
	}
	return id, nil
}

// knownTaxon parses arg and checks that the taxon, or the taxon it was
// merged into, is in the graph.
func knownTaxon(g *taxonomy.Graph, arg string) (int, error) {
	id, err := parseTaxID(arg)
	if err != nil {
		return 0, err
	}
	if !g.Has(id) {
		return 0, UnknownTaxonError(id)
	}
	return id, nil
}

// printJSON writes pretty JSON of obj to the command output.
func printJSON(cmd *cobra.Command, obj any) error {
	enc := gnfmt.GNjson{Pretty: true}
	out, err := enc.Encode(obj)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if _, err = w.Write(out); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
