package iopush

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Cannot push taxonomy without database connection",
		Err:  fmt.Errorf("from %s: not connected to database", fn.Name()),
	}
}

func CopyError(table string, err error) error {
	msg := "Cannot copy data to table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PushCopyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot copy to %s: %w",
			fn.Name(), table, err),
	}
}

func ReleaseError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PushReleaseError,
		Msg:  "Cannot save release information",
		Err:  fmt.Errorf("from %s: cannot insert release: %w", fn.Name(), err),
	}
}
