package ioweb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func StartError(addr string, err error) error {
	msg := "Cannot start web service at <em>%s</em>"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ServerStartError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot serve on %s: %w", fn.Name(), addr, err),
	}
}

func ReloadError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ServerReloadError,
		Msg:  "Cannot reload taxonomy, the previous taxonomy is kept",
		Err:  fmt.Errorf("from %s: reload failed: %w", fn.Name(), err),
	}
}
