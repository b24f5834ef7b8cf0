// Package lifecycle defines contracts between gntaxa commands and the
// impure components that load, persist and publish the taxonomy.
package lifecycle

import (
	"context"

	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// Fetcher retrieves rows of the names, nodes and merged dumps from a
// remote source.
type Fetcher interface {
	// Fetch downloads and reads the dumps. It returns an error if no
	// source could provide non-empty names and nodes.
	Fetch(ctx context.Context) (*taxonomy.RawRecords, error)
}

// SnapshotStore persists parsed taxonomy tables locally. Whatever is
// saved must be loaded back into identical tables.
type SnapshotStore interface {
	// Format returns the name of the snapshot format.
	Format() string

	// Exists returns true if a snapshot was saved before.
	Exists() bool

	// Load reads tables from the snapshot.
	Load(ctx context.Context) (*taxonomy.Tables, error)

	// Save replaces the snapshot with the given tables.
	Save(ctx context.Context, t *taxonomy.Tables) error

	// Remove deletes the snapshot if it exists.
	Remove() error
}

// Loader provides a ready to use taxonomy graph, either from a snapshot
// or from freshly fetched dumps.
type Loader interface {
	Load(ctx context.Context) (*taxonomy.Graph, error)
}

// Exporter writes a taxonomy tree export.
type Exporter interface {
	// Export saves nodes and returns the path of the created file.
	Export(nodes []taxonomy.ExportNode) (string, error)
}

// Pusher copies a taxonomy graph to a database.
type Pusher interface {
	Push(ctx context.Context, g *taxonomy.Graph) error
}
