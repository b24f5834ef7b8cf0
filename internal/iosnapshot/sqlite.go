package iosnapshot

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gnames/gntaxa/pkg/taxonomy"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE name (
  taxon_id INTEGER PRIMARY KEY,
  scientific_name TEXT NOT NULL,
  preferred_common_name TEXT NOT NULL
);
CREATE TABLE common_name (
  taxon_id INTEGER NOT NULL,
  ord INTEGER NOT NULL,
  name TEXT NOT NULL,
  PRIMARY KEY (taxon_id, ord)
);
CREATE TABLE node (
  taxon_id INTEGER PRIMARY KEY,
  parent_id INTEGER NOT NULL,
  rank TEXT NOT NULL
);
CREATE TABLE merged (
  old_id INTEGER PRIMARY KEY,
  new_id INTEGER NOT NULL
);
`

type sqliteStore struct {
	path string
}

func (s *sqliteStore) Format() string {
	return FormatSQLite
}

func (s *sqliteStore) Exists() bool {
	return fileExists(s.path)
}

func (s *sqliteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, OpenError(s.path, err)
	}
	return db, nil
}

func (s *sqliteStore) Load(ctx context.Context) (*taxonomy.Tables, error) {
	if !s.Exists() {
		return nil, NotFoundError(s.path)
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	res := fillTables(&taxonomy.Tables{})
	loaders := []func(context.Context, *sql.DB, *taxonomy.Tables) error{
		loadNames, loadCommonNames, loadNodes, loadMerged,
	}
	for _, load := range loaders {
		if err = load(ctx, db, res); err != nil {
			return nil, ReadError(s.path, err)
		}
	}

	slog.Info("Snapshot loaded", "format", FormatSQLite, "path", s.path)
	return res, nil
}

func loadNames(ctx context.Context, db *sql.DB, t *taxonomy.Tables) error {
	rows, err := db.QueryContext(ctx,
		"SELECT taxon_id, scientific_name, preferred_common_name FROM name")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		name := &taxonomy.Name{}
		err = rows.Scan(&id, &name.ScientificName, &name.PreferredCommonName)
		if err != nil {
			return err
		}
		t.Names[id] = name
	}
	return rows.Err()
}

func loadCommonNames(ctx context.Context, db *sql.DB, t *taxonomy.Tables) error {
	rows, err := db.QueryContext(ctx,
		"SELECT taxon_id, name FROM common_name ORDER BY taxon_id, ord")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var name string
		if err = rows.Scan(&id, &name); err != nil {
			return err
		}
		entry, ok := t.Names[id]
		if !ok {
			entry = &taxonomy.Name{}
			t.Names[id] = entry
		}
		entry.CommonNames = append(entry.CommonNames, name)
	}
	return rows.Err()
}

func loadNodes(ctx context.Context, db *sql.DB, t *taxonomy.Tables) error {
	rows, err := db.QueryContext(ctx,
		"SELECT taxon_id, parent_id, rank FROM node")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var node taxonomy.Node
		if err = rows.Scan(&id, &node.ParentID, &node.Rank); err != nil {
			return err
		}
		t.Nodes[id] = node
	}
	return rows.Err()
}

func loadMerged(ctx context.Context, db *sql.DB, t *taxonomy.Tables) error {
	rows, err := db.QueryContext(ctx, "SELECT old_id, new_id FROM merged")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var oldID, newID int
		if err = rows.Scan(&oldID, &newID); err != nil {
			return err
		}
		t.Merged[oldID] = newID
	}
	return rows.Err()
}

// Save writes tables into a new database file that replaces the old
// snapshot after all data are inserted.
func (s *sqliteStore) Save(ctx context.Context, t *taxonomy.Tables) error {
	tmp := &sqliteStore{path: s.path + ".tmp"}
	if err := removePath(tmp.path); err != nil {
		return err
	}

	err := tmp.write(ctx, t)
	if err != nil {
		_ = os.Remove(tmp.path)
		return err
	}

	if err = os.Rename(tmp.path, s.path); err != nil {
		return WriteError(s.path, err)
	}
	slog.Info("Snapshot saved", "format", FormatSQLite, "path", s.path)
	return nil
}

func (s *sqliteStore) write(ctx context.Context, t *taxonomy.Tables) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx,
		"PRAGMA journal_mode = OFF; PRAGMA synchronous = OFF;")
	if err != nil {
		return WriteError(s.path, err)
	}
	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		return WriteError(s.path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return WriteError(s.path, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err = insertTables(ctx, tx, t); err != nil {
		return WriteError(s.path, err)
	}
	if err = tx.Commit(); err != nil {
		return WriteError(s.path, err)
	}
	return nil
}

func insertTables(ctx context.Context, tx *sql.Tx, t *taxonomy.Tables) error {
	nameStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO name VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer nameStmt.Close()

	commonStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO common_name VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer commonStmt.Close()

	for id, v := range t.Names {
		_, err = nameStmt.ExecContext(ctx,
			id, v.ScientificName, v.PreferredCommonName)
		if err != nil {
			return err
		}
		for i, cn := range v.CommonNames {
			if _, err = commonStmt.ExecContext(ctx, id, i, cn); err != nil {
				return err
			}
		}
	}

	nodeStmt, err := tx.PrepareContext(ctx, "INSERT INTO node VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer nodeStmt.Close()
	for id, v := range t.Nodes {
		if _, err = nodeStmt.ExecContext(ctx, id, v.ParentID, v.Rank); err != nil {
			return err
		}
	}

	mergedStmt, err := tx.PrepareContext(ctx, "INSERT INTO merged VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer mergedStmt.Close()
	for k, v := range t.Merged {
		if _, err = mergedStmt.ExecContext(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteStore) Remove() error {
	return removePath(s.path)
}
