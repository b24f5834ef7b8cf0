package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	origErr := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		v    string
	}{
		{"create dir", CreateDirError("/test/dir", origErr),
			errcode.CreateDirError, "/test/dir"},
		{"copy file", CopyFileError("/test/config.yaml", origErr),
			errcode.CopyFileError, "/test/config.yaml"},
		{"read file", ReadFileError("/test/file", origErr),
			errcode.ReadFileError, "/test/file"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			gnErr, ok := v.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, v.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, v.v, gnErr.Vars[0])
			assert.ErrorIs(t, gnErr.Err, origErr)
			assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrors")
		})
	}
}
