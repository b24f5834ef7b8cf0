package iosnapshot

import (
	"context"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

type gobStore struct {
	path string
}

func (s *gobStore) Format() string {
	return FormatGob
}

func (s *gobStore) Exists() bool {
	return fileExists(s.path)
}

func (s *gobStore) Load(ctx context.Context) (*taxonomy.Tables, error) {
	if !s.Exists() {
		return nil, NotFoundError(s.path)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ReadError(s.path, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var res taxonomy.Tables
	enc := gnfmt.GNgob{}
	err = enc.Decode(data, &res)
	if err != nil {
		return nil, ReadError(s.path, err)
	}
	slog.Info("Snapshot loaded", "format", FormatGob, "path", s.path)
	return fillTables(&res), nil
}

func (s *gobStore) Save(ctx context.Context, t *taxonomy.Tables) error {
	enc := gnfmt.GNgob{}
	data, err := enc.Encode(t)
	if err != nil {
		return WriteError(s.path, err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, data, 0644)
	if err != nil {
		return WriteError(tmp, err)
	}
	err = os.Rename(tmp, s.path)
	if err != nil {
		return WriteError(s.path, err)
	}
	slog.Info("Snapshot saved", "format", FormatGob, "path", s.path)
	return nil
}

func (s *gobStore) Remove() error {
	return removePath(s.path)
}

// fillTables replaces nil maps with empty ones. Gob does not transmit
// empty maps.
func fillTables(t *taxonomy.Tables) *taxonomy.Tables {
	if t.Names == nil {
		t.Names = make(map[int]*taxonomy.Name)
	}
	if t.Nodes == nil {
		t.Nodes = make(map[int]taxonomy.Node)
	}
	if t.Merged == nil {
		t.Merged = make(map[int]int)
	}
	return t
}
