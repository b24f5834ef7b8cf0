// Package schema provides database models for the PostgreSQL copy of the
// taxonomy.
package schema

import (
	"time"
)

// Taxon is a node of the taxonomy with its scientific name.
type Taxon struct {
	// ID is the NCBI taxon identifier.
	ID int `db:"id" gorm:"primaryKey;autoIncrement:false"`

	// ParentID is the identifier of the parent taxon. It is equal to ID
	// for the root.
	ParentID int `db:"parent_id" gorm:"not null;index"`

	// Rank of the taxon.
	Rank string `db:"rank" gorm:"type:varchar(100)"`

	// ScientificName is the canonical display name.
	ScientificName string `db:"scientific_name" gorm:"type:varchar(500);index"`

	// PreferredCommonName is the first common name of the taxon.
	PreferredCommonName string `db:"preferred_common_name" gorm:"type:varchar(500)"`

	// Depth is the length of the lineage of the taxon.
	Depth int `db:"depth" gorm:"not null;default:0"`

	// Domain is the top-level domain of the taxon ('bacteria',
	// 'eukaryota' etc.), empty if none applies.
	Domain string `db:"domain" gorm:"type:varchar(50)"`
}

// TaxonName is a common name of a taxon.
type TaxonName struct {
	// ID is UUID v5 generated from taxon ID and the name.
	ID string `db:"id" gorm:"type:uuid;primaryKey"`

	// TaxonID refers to Taxon.ID.
	TaxonID int `db:"taxon_id" gorm:"not null;index"`

	// Name is the common name.
	Name string `db:"name" gorm:"type:varchar(500);not null;index"`

	// Preferred is true for the preferred common name.
	Preferred bool `db:"preferred" gorm:"not null;default:false"`
}

// MergedTaxon maps a retired taxon identifier to the current one.
type MergedTaxon struct {
	// ID is the retired identifier.
	ID int `db:"id" gorm:"primaryKey;autoIncrement:false"`

	// TaxonID is the identifier that replaced the retired one.
	TaxonID int `db:"taxon_id" gorm:"not null;index"`
}

// Release keeps metadata about a push of the taxonomy to the database.
type Release struct {
	// ID is a random UUID of the release.
	ID string `db:"id" gorm:"type:uuid;primaryKey"`

	// Version of gntaxa that created the release.
	Version string `db:"version" gorm:"type:varchar(50)"`

	// Names is the number of taxa with names.
	Names int `db:"names"`

	// Nodes is the number of taxa.
	Nodes int `db:"nodes"`

	// Merged is the number of retired identifiers.
	Merged int `db:"merged"`

	// CreatedAt is the time of the release.
	CreatedAt time.Time `db:"created_at" gorm:"not null"`
}
