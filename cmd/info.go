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

// getInfoCmd returns the info command.
func getInfoCmd() *cobra.Command {
	var flags taxonomyFlags

	infoCmd := &cobra.Command{
		Use:   "info TAXID",
		Short: "Show names, rank, parent and domains of a taxon",
		Long: `Info prints data about a taxon as JSON: its scientific name,
preferred and other common names, rank, parent and domains.

A merged taxon ID is resolved to the ID it was merged into.

Examples:
  gntaxa info 9606
  gntaxa info 12345 --no-cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args, &flags)
		},
	}

	addTaxonomyFlags(infoCmd, &flags)
	return infoCmd
}

func runInfo(cmd *cobra.Command, args []string, flags *taxonomyFlags) error {
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
	return printJSON(cmd, ioweb.NewTaxonResponse(g, id))
}
