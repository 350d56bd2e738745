package types

import "fmt"

// GeomKind is the extraction variant of a geometry instance. The document
// carries a numeric type code; ParseGeomKind is the only place that code is
// interpreted.
type GeomKind string

const (
	GeomKindGeneric          GeomKind = "generic"
	GeomKindFuselage         GeomKind = "fuselage"
	GeomKindWing             GeomKind = "wing"
	GeomKindBlank            GeomKind = "blank"
	GeomKindStack            GeomKind = "stack"
	GeomKindPropeller        GeomKind = "propeller"
	GeomKindHinge            GeomKind = "hinge"
	GeomKindBodyOfRevolution GeomKind = "body_of_revolution"
)

var geomKindByCode = map[int]GeomKind{
	4:  GeomKindFuselage,
	5:  GeomKindWing,
	6:  GeomKindBlank,
	8:  GeomKindStack,
	11: GeomKindPropeller,
	12: GeomKindHinge,
	15: GeomKindBodyOfRevolution,
}

// ParseGeomKind maps a document type code to its variant. Unknown codes are
// generic geometries with no type-specific groups.
func ParseGeomKind(code int) GeomKind {
	if kind, ok := geomKindByCode[code]; ok {
		return kind
	}
	return GeomKindGeneric
}

// SymmetryExempt reports whether instances of this kind never produce
// mass-property instances.
func (k GeomKind) SymmetryExempt() bool {
	return k == GeomKindBlank || k == GeomKindHinge
}

// Symmetry is the symmetry configuration of one geometry instance.
type Symmetry struct {
	AxialFlag  int
	PlanarBits int
	RotationN  int
	BladeCount int
}

// SubSurfaceKind names a sub-surface element type, indexed by the document's
// SubSurfaceInfo/Type code.
type SubSurfaceKind string

var subSurfaceKinds = []SubSurfaceKind{"SubSurface", "SS_Rectangle", "SS_Ellipse", "SS_Control"}

func ParseSubSurfaceKind(code int) (SubSurfaceKind, error) {
	if code < 0 || code >= len(subSurfaceKinds) {
		return "", fmt.Errorf("unknown sub-surface type %d", code)
	}
	return subSurfaceKinds[code], nil
}

// SubSurfaceKinds returns the known sub-surface kinds in type-code order.
func SubSurfaceKinds() []SubSurfaceKind {
	return append([]SubSurfaceKind(nil), subSurfaceKinds...)
}

// DriverCandidates are the wing section quantities that become outputs when
// the section's driver vector does not select them.
var DriverCandidates = []string{"Aspect", "Span", "Area", "Taper", "Avg_Chord", "Root_Chord", "Tip_Chord", "Sec_Sweep"}
