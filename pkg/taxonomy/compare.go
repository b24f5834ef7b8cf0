package taxonomy

import (
	"slices"
	"strings"
)

// Status describes the relationship between a query taxon and a reference
// taxon.
type Status string

const (
	StatusNone                Status = ""
	StatusMatched             Status = "matched"
	StatusQueryAncestor       Status = "query is ancestor"
	StatusQueryDescendant     Status = "query is descendant"
	StatusLCA                 Status = "lowest common ancestor"
	StatusAlternateVariants   Status = "alternate variants"
	StatusOrthologous         Status = "orthologous match (by lca)"
	StatusAlternateSubspecies Status = "alternate subspecies"
	StatusAlternateStrain     Status = "alternate strain/serotype/isolate/genotype"
	StatusAlternateStrainOnly Status = "alternate strain"
)

// Comparison is the result of CompareTaxons.
type Comparison struct {
	// Status of the relationship. It is empty if taxa have no common
	// ancestor.
	Status Status `json:"status"`

	// LCA is the lowest common ancestor, 0 if there is none.
	LCA int `json:"lca"`

	// LCARank is the rank of the LCA.
	LCARank string `json:"lcaRank"`
}

var (
	variantRanks = []string{"serotype", "serogroup"}

	orthologousRanks = []string{
		"clade", "class", "family", "genotype", "genus", "infraorder",
		"isolate", "kingdom", "order", "parvorder", "phylum", "subfamily",
		"subgenus", "superkingdom", "superorder", "tribe", "species group",
	}

	strainLikeRanks = []string{
		"strain", "serotype", "serovar", "serogroup", "biotype", "isolate",
		"no rank", "genotype",
	}

	speciesOrStrain = []string{"species", "strain"}

	noRankOrStrain = []string{"no rank", "strain"}
)

// CompareTaxons classifies the relationship of a query taxon to a
// reference taxon using their lineages and the rank of their lowest
// common ancestor.
func (g *Graph) CompareTaxons(query, ref int) Comparison {
	query, ref = g.Resolve(query), g.Resolve(ref)

	if query == ref {
		return g.comparison(StatusMatched, query)
	}

	refLineage := g.Lineage(ref)
	if slices.Contains(refLineage, query) {
		return g.comparison(StatusQueryAncestor, query)
	}

	queryLineage := g.Lineage(query)
	if slices.Contains(queryLineage, ref) {
		return g.comparison(StatusQueryDescendant, ref)
	}

	refSet := make(map[int]struct{}, len(refLineage))
	for _, v := range refLineage {
		refSet[v] = struct{}{}
	}

	var lca int
	var found bool
	for i := len(queryLineage) - 1; i >= 0; i-- {
		if _, ok := refSet[queryLineage[i]]; ok {
			lca = queryLineage[i]
			found = true
			break
		}
	}
	if !found {
		return Comparison{}
	}

	lcaRank, _ := g.Rank(lca)
	queryRank, _ := g.Rank(query)
	refRank, _ := g.Rank(ref)
	status := refineStatus(lcaRank, queryRank, refRank)
	return Comparison{Status: status, LCA: lca, LCARank: lcaRank}
}

func (g *Graph) comparison(status Status, lca int) Comparison {
	rank, _ := g.Rank(lca)
	return Comparison{Status: status, LCA: lca, LCARank: rank}
}

// refineStatus applies rank rules in order, the first match wins.
// Empty ranks never match.
func refineStatus(lcaRank, queryRank, refRank string) Status {
	bothIn := func(set []string) bool {
		return inRanks(set, queryRank) && inRanks(set, refRank)
	}
	bothContain := func(sub string) bool {
		return containsRank(queryRank, sub) && containsRank(refRank, sub)
	}

	switch {
	case inRanks(variantRanks, lcaRank):
		return StatusAlternateVariants
	case inRanks(orthologousRanks, lcaRank):
		return StatusOrthologous
	case containsRank(lcaRank, "species") && bothContain("subspecies"):
		return StatusAlternateSubspecies
	case containsRank(lcaRank, "species") && bothIn(strainLikeRanks):
		return StatusAlternateStrain
	case containsRank(lcaRank, "no rank") && bothIn(speciesOrStrain):
		return StatusOrthologous
	case lcaRank == "strain" && bothIn(noRankOrStrain):
		return StatusAlternateStrainOnly
	}
	return StatusLCA
}

func inRanks(set []string, rank string) bool {
	return rank != "" && slices.Contains(set, rank)
}

func containsRank(rank, sub string) bool {
	return rank != "" && strings.Contains(rank, sub)
}
