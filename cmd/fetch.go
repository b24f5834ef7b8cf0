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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	var flags taxonomyFlags

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download NCBI taxonomy and save its snapshot",
		Long: `Fetch downloads the NCBI taxonomy dump, parses it and replaces
the saved snapshot of the taxonomy.

This command:
  1. Downloads taxdump.tar.gz from the primary URL
  2. Falls back to gzipped names, nodes and merged dumps if needed
  3. Parses the dumps and saves a snapshot in the configured format
  4. Reports the size of the taxonomy

Later commands read the snapshot instead of downloading the dump.

Examples:
  gntaxa fetch
  gntaxa fetch --snapshot-format gob
  gntaxa fetch --no-cleanup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, &flags)
		},
	}

	addTaxonomyFlags(fetchCmd, &flags)
	return fetchCmd
}

func runFetch(cmd *cobra.Command, flags *taxonomyFlags) error {
	ctx := context.Background()
	// the snapshot is always replaced
	cfg.Update([]config.Option{config.OptTaxonomyUseCache(false)})

	g, err := loadGraph(ctx, cmd, flags)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	stats := g.Stats()
	gn.Info("Snapshot <em>%s</em> is saved to %s",
		cfg.Taxonomy.SnapshotFormat, config.SnapshotDir(cfg.HomeDir))
	gn.Info("Names: %s, nodes: %s, merged: %s",
		humanize.Comma(int64(stats.Names)),
		humanize.Comma(int64(stats.Nodes)),
		humanize.Comma(int64(stats.Merged)))
	return nil
}
