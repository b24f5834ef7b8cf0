package iopush

import (
	"maps"
	"slices"
	"strconv"
	"time"

	gntaxa "github.com/gnames/gntaxa/pkg"
	"github.com/gnames/gntaxa/pkg/schema"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Taxa converts nodes of the graph into taxa rows sorted by id.
func Taxa(g *taxonomy.Graph) []schema.Taxon {
	t := g.Tables()
	ids := slices.Sorted(maps.Keys(t.Nodes))
	res := make([]schema.Taxon, 0, len(ids))
	for _, id := range ids {
		node := t.Nodes[id]
		sn, _ := g.ScientificName(id)
		pcn, _ := g.PreferredCommonName(id)
		var domain string
		if ds := g.Domains(id); len(ds) > 0 {
			domain = ds[0]
		}
		res = append(res, schema.Taxon{
			ID:                  id,
			ParentID:            node.ParentID,
			Rank:                node.Rank,
			ScientificName:      sn,
			PreferredCommonName: pcn,
			Depth:               len(g.Lineage(id)),
			Domain:              domain,
		})
	}
	return res
}

// NameID generates a stable UUID v5 for a common name of a taxon.
func NameID(taxonID int, name string) string {
	return gnuuid.New(strconv.Itoa(taxonID) + "|" + name).String()
}

// TaxonNames converts common names of the graph into rows. Every distinct
// name of a taxon becomes one row.
func TaxonNames(g *taxonomy.Graph) []schema.TaxonName {
	t := g.Tables()
	ids := slices.Sorted(maps.Keys(t.Names))
	var res []schema.TaxonName
	for _, id := range ids {
		preferred, _ := g.PreferredCommonName(id)
		names, _ := g.CommonNames(id)
		for _, name := range names {
			res = append(res, schema.TaxonName{
				ID:        NameID(id, name),
				TaxonID:   id,
				Name:      name,
				Preferred: name == preferred,
			})
		}
	}
	return res
}

// MergedTaxa converts merged identifiers into rows sorted by retired id.
func MergedTaxa(g *taxonomy.Graph) []schema.MergedTaxon {
	t := g.Tables()
	ids := slices.Sorted(maps.Keys(t.Merged))
	res := make([]schema.MergedTaxon, 0, len(ids))
	for _, id := range ids {
		res = append(res, schema.MergedTaxon{ID: id, TaxonID: t.Merged[id]})
	}
	return res
}

// NewRelease creates release metadata for the graph.
func NewRelease(g *taxonomy.Graph) schema.Release {
	stats := g.Stats()
	return schema.Release{
		ID:        uuid.New().String(),
		Version:   gntaxa.Version,
		Names:     stats.Names,
		Nodes:     stats.Nodes,
		Merged:    stats.Merged,
		CreatedAt: time.Now().UTC(),
	}
}
