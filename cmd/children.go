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

// getChildrenCmd returns the children command.
func getChildrenCmd() *cobra.Command {
	var flags taxonomyFlags

	childrenCmd := &cobra.Command{
		Use:   "children TAXID",
		Short: "Show direct children of a taxon",
		Long: `Children prints sorted IDs of direct children of a taxon as JSON.

Examples:
  gntaxa children 9605`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChildren(cmd, args, &flags)
		},
	}

	addTaxonomyFlags(childrenCmd, &flags)
	return childrenCmd
}

func runChildren(cmd *cobra.Command, args []string, flags *taxonomyFlags) error {
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
	children := g.Children(id)
	if children == nil {
		children = []int{}
	}
	return printJSON(cmd, ioweb.ChildrenResponse{
		ID:       g.Resolve(id),
		Children: children,
	})
}
