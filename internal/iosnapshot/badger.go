package iosnapshot

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// Key prefixes of badger records.
var (
	prefixName   = []byte("name:")
	prefixNode   = []byte("node:")
	prefixMerged = []byte("merged:")
)

// badgerStore keeps every record of the tables under its own key. Names
// and nodes are gob-encoded, merged values are decimal identifiers.
type badgerStore struct {
	dir string
}

func (s *badgerStore) Format() string {
	return FormatBadger
}

func (s *badgerStore) Exists() bool {
	return fileExists(filepath.Join(s.dir, "MANIFEST"))
}

func (s *badgerStore) open() (*badger.DB, error) {
	options := badger.DefaultOptions(s.dir)
	options.Logger = nil

	db, err := badger.Open(options)
	if err != nil {
		return nil, OpenError(s.dir, err)
	}
	return db, nil
}

func (s *badgerStore) Load(ctx context.Context) (*taxonomy.Tables, error) {
	if !s.Exists() {
		return nil, NotFoundError(s.dir)
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	res := fillTables(&taxonomy.Tables{})
	enc := gnfmt.GNgob{}
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var count int
		for it.Rewind(); it.Valid(); it.Next() {
			count++
			if count%100_000 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err = decodeRecord(enc, item.Key(), val, res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, ReadError(s.dir, err)
	}

	slog.Info("Snapshot loaded", "format", FormatBadger, "path", s.dir)
	return res, nil
}

func decodeRecord(
	enc gnfmt.GNgob,
	key, val []byte,
	t *taxonomy.Tables,
) error {
	switch {
	case bytes.HasPrefix(key, prefixName):
		id, err := keyID(key, prefixName)
		if err != nil {
			return err
		}
		var name taxonomy.Name
		if err = enc.Decode(val, &name); err != nil {
			return err
		}
		t.Names[id] = &name
	case bytes.HasPrefix(key, prefixNode):
		id, err := keyID(key, prefixNode)
		if err != nil {
			return err
		}
		var node taxonomy.Node
		if err = enc.Decode(val, &node); err != nil {
			return err
		}
		t.Nodes[id] = node
	case bytes.HasPrefix(key, prefixMerged):
		id, err := keyID(key, prefixMerged)
		if err != nil {
			return err
		}
		newID, err := strconv.Atoi(string(val))
		if err != nil {
			return err
		}
		t.Merged[id] = newID
	default:
		slog.Warn("Unknown key in badger snapshot", "key", string(key))
	}
	return nil
}

func keyID(key, prefix []byte) (int, error) {
	return strconv.Atoi(string(key[len(prefix):]))
}

func recordKey(prefix []byte, id int) []byte {
	return strconv.AppendInt(bytes.Clone(prefix), int64(id), 10)
}

// Save recreates the database. A partially written database is removed.
func (s *badgerStore) Save(ctx context.Context, t *taxonomy.Tables) error {
	if err := s.Remove(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return WriteError(s.dir, err)
	}

	err := s.write(ctx, t)
	if err != nil {
		_ = os.RemoveAll(s.dir)
		return err
	}
	slog.Info("Snapshot saved", "format", FormatBadger, "path", s.dir)
	return nil
}

func (s *badgerStore) write(ctx context.Context, t *taxonomy.Tables) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	wb := db.NewWriteBatch()
	defer wb.Cancel()

	enc := gnfmt.GNgob{}
	for id, v := range t.Names {
		val, err := enc.Encode(v)
		if err != nil {
			return WriteError(s.dir, err)
		}
		if err = wb.Set(recordKey(prefixName, id), val); err != nil {
			return WriteError(s.dir, err)
		}
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	for id, v := range t.Nodes {
		val, err := enc.Encode(v)
		if err != nil {
			return WriteError(s.dir, err)
		}
		if err = wb.Set(recordKey(prefixNode, id), val); err != nil {
			return WriteError(s.dir, err)
		}
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	for k, v := range t.Merged {
		val := strconv.AppendInt(nil, int64(v), 10)
		if err = wb.Set(recordKey(prefixMerged, k), val); err != nil {
			return WriteError(s.dir, err)
		}
	}

	if err = wb.Flush(); err != nil {
		return WriteError(s.dir, err)
	}
	return nil
}

func (s *badgerStore) Remove() error {
	return removePath(s.dir)
}
