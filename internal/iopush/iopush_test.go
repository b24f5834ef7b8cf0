package iopush_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/iodb"
	"github.com/gnames/gntaxa/internal/iopush"
	"github.com/gnames/gntaxa/internal/ioschema"
	"github.com/gnames/gntaxa/internal/iotesting"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushNotConnected(t *testing.T) {
	p := iopush.New(iodb.NewPgxOperator(), config.New())
	err := p.Push(context.Background(), testGraph())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestPush(t *testing.T) {
	op := iotesting.ConnectOrSkip(t)
	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	cfg.Database.BatchSize = 2

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx, cfg))

	p := iopush.New(op, cfg)
	// pushing twice replaces data
	for range 2 {
		require.NoError(t, p.Push(ctx, testGraph()))
	}

	pool := op.Pool()
	var count int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM taxa").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	err = pool.QueryRow(ctx, "SELECT count(*) FROM taxon_names").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	err = pool.QueryRow(ctx, "SELECT count(*) FROM releases").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var name string
	err = pool.QueryRow(ctx,
		`SELECT t.scientific_name FROM merged_taxa m
     JOIN taxa t ON t.id = m.taxon_id WHERE m.id = 12345`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", name)
}
