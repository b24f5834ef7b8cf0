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

// getLCACmd returns the lca command.
func getLCACmd() *cobra.Command {
	var flags taxonomyFlags

	lcaCmd := &cobra.Command{
		Use:   "lca TAXID TAXID",
		Short: "Find the lowest common ancestor of two taxa",
		Long: `LCA prints the lowest common ancestor of two taxa with its
scientific name and rank as JSON.

Examples:
  gntaxa lca 63221 741158
  gntaxa lca 866768 2569093`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLCA(cmd, args, &flags)
		},
	}

	addTaxonomyFlags(lcaCmd, &flags)
	return lcaCmd
}

func runLCA(cmd *cobra.Command, args []string, flags *taxonomyFlags) error {
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

	ids := make([]int, len(args))
	for i, arg := range args {
		if ids[i], err = knownTaxon(g, arg); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	res := ioweb.LCAResponse{A: ids[0], B: ids[1]}
	lca, ok := g.LowestCommonAncestor(ids[0], ids[1])
	if !ok {
		gn.Warn("Taxa <em>%d</em> and <em>%d</em> have no common ancestor",
			ids[0], ids[1])
		return printJSON(cmd, res)
	}
	res.LCA = lca
	res.ScientificName, _ = g.ScientificName(lca)
	res.Rank, _ = g.Rank(lca)
	return printJSON(cmd, res)
}
