package taxonomy

import (
	"maps"
	"slices"
)

// Equal returns true if both tables contain the same records. The order
// of common names is not significant, their multiplicity is.
func (t *Tables) Equal(other *Tables) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !maps.Equal(t.Nodes, other.Nodes) || !maps.Equal(t.Merged, other.Merged) {
		return false
	}
	return maps.EqualFunc(t.Names, other.Names, func(a, b *Name) bool {
		if a == nil || b == nil {
			return a == b
		}
		if a.ScientificName != b.ScientificName ||
			a.PreferredCommonName != b.PreferredCommonName ||
			len(a.CommonNames) != len(b.CommonNames) {
			return false
		}
		ac, bc := slices.Clone(a.CommonNames), slices.Clone(b.CommonNames)
		slices.Sort(ac)
		slices.Sort(bc)
		return slices.Equal(ac, bc)
	})
}
