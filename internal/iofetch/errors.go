package iofetch

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func DownloadError(url string, err error) error {
	msg := "Cannot download <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchDownloadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot download %s: %w", fn.Name(), url, err),
	}
}

func HTTPStatusError(url string, status int) error {
	msg := "Server returned status <em>%d</em> for <em>%s</em>"
	vars := []any{status, url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchHTTPStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: bad HTTP status %d for %s",
			fn.Name(), status, url),
	}
}

func ArchiveError(path string, err error) error {
	msg := "Cannot extract taxonomy dump from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchArchiveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot extract %s: %w", fn.Name(), path, err),
	}
}

func MissingDumpError(path string, missing []string) error {
	msg := "Archive <em>%s</em> misses <em>%s</em>"
	list := strings.Join(missing, ", ")
	vars := []any{path, list}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchMissingDumpError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: files %s are not found in %s",
			fn.Name(), list, path),
	}
}

func AllSourcesFailedError(url, fallbackURL string, err error) error {
	msg := "Cannot get taxonomy dump from <em>%s</em> or from <em>%s</em>"
	vars := []any{url, fallbackURL}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchAllSourcesFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: all taxonomy sources failed: %w", fn.Name(), err),
	}
}

func EmptyDumpError(dir string) error {
	msg := "Names or nodes data are empty in <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchEmptyDumpError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: empty taxonomy dump in %s", fn.Name(), dir),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), path, err),
	}
}
