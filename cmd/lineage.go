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

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/ioweb"
	"github.com/spf13/cobra"
)

// getLineageCmd returns the lineage command.
func getLineageCmd() *cobra.Command {
	var flags taxonomyFlags

	lineageCmd := &cobra.Command{
		Use:   "lineage TAXID",
		Short: "Show the lineage of a taxon",
		Long: `Lineage prints ancestors of a taxon as JSON, starting from a
child of the taxonomy root and ending with the taxon itself.

Examples:
  gntaxa lineage 9606`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLineage(cmd, args, &flags)
		},
	}

	addTaxonomyFlags(lineageCmd, &flags)
	return lineageCmd
}

func runLineage(cmd *cobra.Command, args []string, flags *taxonomyFlags) error {
	if _, err := parseTaxID(args[0]); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	g, err := loadGraph(context.Background(), cmd, flags)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	id, err := knownTaxon(g, args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return printJSON(cmd, ioweb.LineageResponse{
		ID:      g.Resolve(id),
		Lineage: g.LineageWithNames(id),
	})
}
