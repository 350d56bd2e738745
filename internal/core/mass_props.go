package core

import "vspcatalog/internal/types"

// planarBits are the three independent mirror planes; each set bit doubles
// the instance count.
var planarBits = []int{1, 2, 4}

// MassPropInstances returns how many mass-property result rows one geometry
// instance produces under its symmetry configuration.
func MassPropInstances(kind types.GeomKind, sym types.Symmetry) int {
	if kind.SymmetryExempt() {
		return 0
	}
	count := 1
	if sym.AxialFlag != 0 {
		count = sym.RotationN
	}
	for _, bit := range planarBits {
		if sym.PlanarBits&bit == bit {
			count *= 2
		}
	}
	if kind == types.GeomKindPropeller {
		count *= sym.BladeCount
	}
	return count
}
