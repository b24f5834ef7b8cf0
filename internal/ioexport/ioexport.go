// Package ioexport saves taxonomy tree exports as JSON files.
package ioexport

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// FileName is the name of the export file.
const FileName = "taxonomy_node_tree.json"

type exporter struct {
	dir string
	enc gnfmt.GNjson
}

// New creates an Exporter that writes FileName into dir.
func New(dir string) lifecycle.Exporter {
	return &exporter{
		dir: dir,
		enc: gnfmt.GNjson{Pretty: true},
	}
}

// Export writes nodes as a JSON array. An empty list is an error, an
// export of nothing usually means a wrong start taxon.
func (e *exporter) Export(nodes []taxonomy.ExportNode) (string, error) {
	path := filepath.Join(e.dir, FileName)
	if len(nodes) == 0 {
		return "", EmptyError()
	}

	data, err := e.enc.Encode(nodes)
	if err != nil {
		return "", WriteError(path, err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return "", WriteError(path, err)
	}

	slog.Info("Taxonomy tree exported", "nodes", len(nodes), "path", path)
	gn.Info(fmt.Sprintf("Exported <em>%s</em> taxa to %s",
		humanize.Comma(int64(len(nodes))), path))
	return path, nil
}

func EmptyError() error {
	msg := "Nothing to export"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportEmptyError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: export node list is empty", fn.Name()),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write export to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), path, err),
	}
}
