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
	"github.com/gnames/gntaxa/internal/iodb"
	"github.com/gnames/gntaxa/internal/ioschema"
	"github.com/gnames/gntaxa/pkg/schema"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Update the schema of taxonomy tables in PostgreSQL",
		Long: `Migrate brings the taxonomy tables of an existing database to
the layout of the current gntaxa version.

Tables kept in sync with the models:
  taxa         nodes with parent, rank, depth and domain
  taxon_names  common names with the preferred flag
  merged_taxa  retired taxon IDs and their replacements
  releases     one row per push with taxonomy sizes

AutoMigrate adds missing tables, columns and indexes. It never drops
columns or tables, pushed taxonomy data stays in place. An empty
database gets all four tables.

Run it after upgrading gntaxa, then 'gntaxa push' to refresh the data.

Examples:
  gntaxa migrate
  GNTAXA_DATABASE_DATABASE=ncbi gntaxa migrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args)
		},
	}

	return migrateCmd
}

// taxonomyTables are the tables created from pkg/schema models.
var taxonomyTables = []string{
	schema.Taxon{}.TableName(),
	schema.TaxonName{}.TableName(),
	schema.MergedTaxon{}.TableName(),
	schema.Release{}.TableName(),
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	var missing []string
	for _, table := range taxonomyTables {
		ok, err := op.TableExists(ctx, table)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if !ok {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		gn.Warn("Tables <em>%s</em> are missing and will be created",
			strings.Join(missing, ", "))
	}

	if err := ioschema.NewManager(op).Migrate(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Taxonomy schema of <em>%s</em> is up to date",
		cfg.Database.Database)
	return nil
}
