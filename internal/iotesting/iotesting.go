// Package iotesting provides helpers for tests that need PostgreSQL.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gnames/gntaxa/internal/iodb"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/db"
)

// TestDatabaseName is the database used by all integration tests, so
// they never touch a production database.
const TestDatabaseName = "gntaxa_test"

// GetTestConfig returns default settings updated from GNTAXA_DATABASE_*
// environment variables. The database name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if v, ok := os.LookupEnv("GNTAXA_DATABASE_HOST"); ok {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v, ok := os.LookupEnv("GNTAXA_DATABASE_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v, ok := os.LookupEnv("GNTAXA_DATABASE_USER"); ok {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v, ok := os.LookupEnv("GNTAXA_DATABASE_PASSWORD"); ok {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	cfg.Update(opts)

	cfg.Database.Database = TestDatabaseName
	return cfg
}

// GetTestDatabaseConfig returns only the database part of GetTestConfig.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// ConnectOrSkip returns a connected operator. The test is skipped in
// short mode or when the test database is not reachable.
func ConnectOrSkip(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, GetTestDatabaseConfig())
	if err != nil {
		t.Skipf("PostgreSQL database %s is not available: %v",
			TestDatabaseName, err)
	}
	t.Cleanup(func() { _ = op.Close() })
	return op
}
