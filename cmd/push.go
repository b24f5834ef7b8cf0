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
	"github.com/gnames/gntaxa/internal/iodb"
	"github.com/gnames/gntaxa/internal/iopush"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/spf13/cobra"
)

// getPushCmd returns the push command.
func getPushCmd() *cobra.Command {
	var flags taxonomyFlags
	var batchSize int

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the taxonomy to PostgreSQL",
		Long: `Push loads the taxonomy and uploads it into a PostgreSQL
database created by 'gntaxa create'.

This command:
  1. Loads the taxonomy from the snapshot or downloads it
  2. Connects to PostgreSQL using configuration settings
  3. Replaces taxa, common names and merged IDs in the database
  4. Records a new release with the sizes of the taxonomy

Examples:
  gntaxa push
  gntaxa push --no-cache
  gntaxa push --batch-size 10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, &flags, batchSize)
		},
	}

	addTaxonomyFlags(pushCmd, &flags)
	pushCmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0,
		"number of rows sent to the database at once")
	return pushCmd
}

func runPush(cmd *cobra.Command, flags *taxonomyFlags, batchSize int) error {
	ctx := context.Background()

	if cmd.Flags().Changed("batch-size") {
		cfg.Update([]config.Option{config.OptDatabaseBatchSize(batchSize)})
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !hasTables {
		err = EmptyDatabaseError()
		gn.PrintErrorMessage(err)
		return err
	}

	g, err := loadGraph(ctx, cmd, flags)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iopush.New(op, cfg).Push(ctx, g); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
