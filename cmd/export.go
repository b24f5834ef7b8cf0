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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/gnames/gntaxa/internal/ioexport"
	"github.com/gnames/gntaxa/internal/iofs"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var flags taxonomyFlags
	var start, root int
	var filter []int
	var output string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a taxonomy subtree as a JSON node tree",
		Long: `Export writes taxa of a subtree into ` + ioexport.FileName + `.

Taxa are listed in breadth-first order starting from the --start taxon.
Every record has an ID, a display name (scientific name with the
preferred common name in parentheses), the parent ID and the depth.
The --root taxon is not exported, its children have no parents.

When --filter is given, only the listed taxa are exported.

Examples:
  gntaxa export
  gntaxa export --start 2759 --root 2759
  gntaxa export --start 9443 --filter 9605,9606 -o /tmp/export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, &flags, start, root, filter, output)
		},
	}

	addTaxonomyFlags(exportCmd, &flags)
	exportCmd.Flags().IntVar(&start, "start", taxonomy.RootID,
		"taxon ID where the traversal starts")
	exportCmd.Flags().IntVar(&root, "root", taxonomy.RootID,
		"taxon ID that is treated as the root and is not exported")
	exportCmd.Flags().IntSliceVar(&filter, "filter", nil,
		"export only these taxon IDs (comma-separated)")
	exportCmd.Flags().StringVarP(&output, "output", "o", "",
		"output directory (default ~/.cache/gntaxa/export)")

	return exportCmd
}

func runExport(
	cmd *cobra.Command,
	flags *taxonomyFlags,
	start, root int,
	filter []int,
	output string,
) error {
	if output == "" {
		output = config.ExportDir(cfg.HomeDir)
	}
	if err := gnsys.MakeDir(output); err != nil {
		err = iofs.CreateDirError(output, err)
		gn.PrintErrorMessage(err)
		return err
	}

	g, err := loadGraph(context.Background(), cmd, flags)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var filterSet map[int]struct{}
	if len(filter) > 0 {
		filterSet = make(map[int]struct{}, len(filter))
		for _, id := range filter {
			filterSet[g.Resolve(id)] = struct{}{}
		}
	}

	nodes := g.ExportNodeList(g.Resolve(start), g.Resolve(root), filterSet)
	path, err := ioexport.New(output).Export(nodes)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
