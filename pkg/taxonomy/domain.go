package taxonomy

func (g *Graph) hasAncestor(id, anchor int) bool {
	_, ok := g.AncestorSet(id)[anchor]
	return ok
}

// IsBacteria returns true for taxa under Bacteria.
func (g *Graph) IsBacteria(id int) bool {
	return g.hasAncestor(id, BacteriaID)
}

// IsEukaryota returns true for taxa under Eukaryota.
func (g *Graph) IsEukaryota(id int) bool {
	return g.hasAncestor(id, EukaryotaID)
}

// IsVirus returns true for taxa under Viruses.
func (g *Graph) IsVirus(id int) bool {
	return g.hasAncestor(id, VirusesID)
}

// IsArchaea returns true for taxa under Archaea.
func (g *Graph) IsArchaea(id int) bool {
	return g.hasAncestor(id, ArchaeaID)
}

// IsOther returns true for taxa under "other entries" (synthetic
// constructs, plasmids and so on).
func (g *Graph) IsOther(id int) bool {
	return g.hasAncestor(id, OtherID)
}

// IsUnclassified returns true for taxa under "unclassified entries".
func (g *Graph) IsUnclassified(id int) bool {
	return g.hasAncestor(id, UnclassifiedID)
}

// Domains returns the names of domain predicates that are true for a
// taxon.
func (g *Graph) Domains(id int) []string {
	anc := g.AncestorSet(id)
	var res []string
	for _, v := range []struct {
		name string
		id   int
	}{
		{"bacteria", BacteriaID},
		{"archaea", ArchaeaID},
		{"eukaryota", EukaryotaID},
		{"viruses", VirusesID},
		{"other", OtherID},
		{"unclassified", UnclassifiedID},
	} {
		if _, ok := anc[v.id]; ok {
			res = append(res, v.name)
		}
	}
	return res
}
