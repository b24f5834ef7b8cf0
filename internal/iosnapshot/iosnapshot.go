// Package iosnapshot keeps parsed taxonomy tables on local disk, so
// the taxonomy dump does not have to be downloaded and parsed every time.
package iosnapshot

import (
	"os"
	"path/filepath"

	"github.com/gnames/gntaxa/pkg/lifecycle"
)

// Supported snapshot formats.
const (
	FormatSQLite = "sqlite"
	FormatGob    = "gob"
	FormatBadger = "badger"
)

// New returns a snapshot store of the given format that keeps its
// data in dir.
func New(format, dir string) (lifecycle.SnapshotStore, error) {
	switch format {
	case FormatSQLite:
		return &sqliteStore{path: filepath.Join(dir, "taxonomy.sqlite")}, nil
	case FormatGob:
		return &gobStore{path: filepath.Join(dir, "taxonomy.gob")}, nil
	case FormatBadger:
		return &badgerStore{dir: filepath.Join(dir, "taxonomy.badger")}, nil
	default:
		return nil, FormatError(format)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

func removePath(path string) error {
	err := os.RemoveAll(path)
	if err != nil {
		return WriteError(path, err)
	}
	return nil
}
