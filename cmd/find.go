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
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/ioweb"
	"github.com/gnames/gntaxa/pkg/parserpool"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// getFindCmd returns the find command.
func getFindCmd() *cobra.Command {
	var flags taxonomyFlags

	findCmd := &cobra.Command{
		Use:   "find NAME",
		Short: "Find a taxon ID by a scientific or common name",
		Long: `Find looks up a taxon by its scientific name, preferred common
name or common name. Scientific names are compared by their canonical
form, so authors and ranks do not need to match.

When several taxa share a name, the taxon with the smallest ID wins.

Examples:
  gntaxa find "Homo sapiens"
  gntaxa find "Homo sapiens Linnaeus, 1758"
  gntaxa find human`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, &flags)
		},
	}

	addTaxonomyFlags(findCmd, &flags)
	return findCmd
}

func runFind(cmd *cobra.Command, args []string, flags *taxonomyFlags) error {
	ctx := context.Background()
	name := strings.Join(args, " ")

	g, err := loadGraph(ctx, cmd, flags)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	idx, err := taxonomy.NewNameIndex(ctx, g, pool.Normalizer(), cfg.JobsNumber)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	id, ok := idx.TaxID(name)
	if !ok {
		err = NameNotFoundError(name)
		gn.PrintErrorMessage(err)
		return err
	}
	return printJSON(cmd, ioweb.FindResponse{Name: name, ID: id})
}
