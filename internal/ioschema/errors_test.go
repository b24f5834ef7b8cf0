package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"GORMConnectionError", GORMConnectionError(originalErr),
			errcode.SchemaGORMConnectionError},
		{"CreateSchemaError", CreateSchemaError(originalErr),
			errcode.SchemaCreateError},
		{"MigrateSchemaError", MigrateSchemaError(originalErr),
			errcode.SchemaMigrateError},
		{"CollationError", CollationError("taxa", "scientific_name", originalErr),
			errcode.SchemaCollationError},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			gnErr, ok := v.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.ErrorIs(t, gnErr.Err, originalErr)
		})
	}
}

func TestCollationError_Vars(t *testing.T) {
	err := CollationError("taxa", "scientific_name", errors.New("denied"))
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, []any{"taxa", "scientific_name"}, gnErr.Vars)
	assert.Contains(t, gnErr.Msg, "%s.%s")
}

func TestNotConnectedError_Structure(t *testing.T) {
	gnErr, ok := NotConnectedError().(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
