// Package taxonomy provides an in-memory model of the NCBI taxonomy and
// algorithms that query it.
//
// The model is built once from three record sets (names, nodes and merged
// identifiers) and is never mutated afterwards. All queries are safe for
// concurrent use. Derived indices (children adjacency and the structure
// used for lowest common ancestor queries) are built lazily on first use
// and belong to the Graph instance that built them.
//
// Lookups never fail with an error. They return a value with a boolean
// flag, an empty slice, or a zero value when a taxon is absent, and log
// anomalies with log/slog.
//
// This package has no I/O dependencies. Fetching dumps and persisting
// snapshots are implemented in internal/io* packages.
package taxonomy

// RootID is the identifier of the conventional root of the NCBI taxonomy.
// The root refers to itself as a parent.
const RootID = 1

// Identifiers of taxa used by domain predicates.
const (
	BacteriaID     = 2
	ArchaeaID      = 2157
	EukaryotaID    = 2759
	VirusesID      = 10239
	OtherID        = 28384
	UnclassifiedID = 12908
)

// Node is an entry of the node table.
type Node struct {
	// ParentID is the identifier of the parent taxon. For the root it is
	// equal to the identifier of the root itself.
	ParentID int

	// Rank is a taxonomic rank ("species", "genus", "no rank", "strain"...).
	Rank string
}

// Name is an entry of the name table.
type Name struct {
	// ScientificName is the canonical display name of a taxon.
	ScientificName string

	// PreferredCommonName is the first "common name" met during parsing.
	// Empty string means there is no such name.
	PreferredCommonName string

	// CommonNames keeps all retained non-scientific names in the order
	// they were met. Duplicates are possible here and are removed by
	// lookups.
	CommonNames []string
}

// Tables holds the three record sets of a taxonomy.
type Tables struct {
	// Names maps taxon identifier to its names.
	Names map[int]*Name

	// Nodes maps taxon identifier to its parent and rank.
	Nodes map[int]Node

	// Merged maps a retired identifier to the identifier that replaced it.
	Merged map[int]int
}

// RawRecords contains rows of the names, nodes and merged dumps.
// Every row is a slice of tab-separated fields, so the field separators
// ('|') are kept as separate fields and meaningful values have even
// indices.
type RawRecords struct {
	Names  [][]string
	Nodes  [][]string
	Merged [][]string
}

// Stats provides sizes of the taxonomy tables.
type Stats struct {
	Names  int `json:"names"`
	Nodes  int `json:"nodes"`
	Merged int `json:"merged"`
}

// MinCompleteStats are lower limits for a complete NCBI taxonomy. Smaller
// tables usually mean that a download was truncated.
var MinCompleteStats = Stats{
	Names:  2_100_000,
	Nodes:  2_100_000,
	Merged: 54_000,
}

// IsComplete returns true if every table is larger than the corresponding
// table of min.
func (s Stats) IsComplete(min Stats) bool {
	return s.Names > min.Names && s.Nodes > min.Nodes && s.Merged > min.Merged
}
