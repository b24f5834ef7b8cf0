package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Taxon{},
		&TaxonName{},
		&MergedTaxon{},
		&Release{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

func (Taxon) TableName() string {
	return "taxa"
}

func (TaxonName) TableName() string {
	return "taxon_names"
}

func (MergedTaxon) TableName() string {
	return "merged_taxa"
}

func (Release) TableName() string {
	return "releases"
}
