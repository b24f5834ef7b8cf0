// Package ioschema creates and migrates the PostgreSQL schema of the
// taxonomy with GORM AutoMigrate.
package ioschema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/db"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// collatedColumns are sorted byte-wise, so scientific names order the
// same way regardless of the database locale.
var collatedColumns = []struct {
	table, column string
	varchar       int
}{
	{"taxa", "scientific_name", 500},
	{"taxon_names", "name", 500},
}

type manager struct {
	operator db.Operator
}

// NewManager creates a SchemaManager that works through the pool of the
// given operator.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create runs AutoMigrate and sets "C" collation on name columns.
func (m *manager) Create(ctx context.Context, cfg *config.Config) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}
	slog.Info("Database schema is created", "database", cfg.Database.Database)
	return nil
}

// Migrate brings existing tables to the current models.
func (m *manager) Migrate(ctx context.Context, cfg *config.Config) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}
	slog.Info("Database schema is migrated", "database", cfg.Database.Database)
	return nil
}

func (m *manager) gorm(ctx context.Context) (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}

func collationSQL(table, column string, varchar int) string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		table, column, varchar,
	)
}

func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	for _, v := range collatedColumns {
		q := collationSQL(v.table, v.column, v.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(v.table, v.column, err)
		}
	}
	return nil
}
