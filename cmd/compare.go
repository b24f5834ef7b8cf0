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

// getCompareCmd returns the compare command.
func getCompareCmd() *cobra.Command {
	var flags taxonomyFlags

	compareCmd := &cobra.Command{
		Use:   "compare QUERY REF",
		Short: "Compare a query taxon with a reference taxon",
		Long: `Compare classifies the relationship of a query taxon to a
reference taxon and prints the status, the lowest common ancestor and
its rank as JSON.

Statuses:
  matched, query is ancestor, query is descendant,
  alternate subspecies, alternate strain, alternate variants,
  orthologous match (by lca), lowest common ancestor

Examples:
  gntaxa compare 9606 9606
  gntaxa compare 9606 63221`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, &flags)
		},
	}

	addTaxonomyFlags(compareCmd, &flags)
	return compareCmd
}

func runCompare(cmd *cobra.Command, args []string, flags *taxonomyFlags) error {
	for _, arg := range args {
		if _, err := parseTaxID(arg); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}
	g, err := loadGraph(context.Background(), cmd, flags)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	query, err := knownTaxon(g, args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	ref, err := knownTaxon(g, args[1])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return printJSON(cmd, ioweb.CompareResponse{
		Query:      query,
		Ref:        ref,
		Comparison: g.CompareTaxons(query, ref),
	})
}
