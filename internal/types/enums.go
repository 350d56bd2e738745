package types

// Classification governs whether a variable is applied to the geometry or
// reported back from it.
type Classification string

const (
	ClassificationInput    Classification = "Input"
	ClassificationOutput   Classification = "Output"
	ClassificationMCOutput Classification = "MCOutput"
)

// ParseClassification maps a persisted STATE attribute to a Classification.
func ParseClassification(value string) (Classification, bool) {
	switch Classification(value) {
	case ClassificationInput, ClassificationOutput, ClassificationMCOutput:
		return Classification(value), true
	default:
		return "", false
	}
}

type CompareStatus string

const (
	CompareSame      CompareStatus = "SAME"
	CompareSimilar   CompareStatus = "SIMILAR"
	CompareDifferent CompareStatus = "DIFFERENT"
)

type WarningKind string

const (
	WarningVersionMismatch WarningKind = "version_mismatch"
	WarningNotFound        WarningKind = "not_found"
	WarningAmbiguous       WarningKind = "ambiguous"
	WarningDuplicate       WarningKind = "duplicate"
	WarningDrift           WarningKind = "drift"
	WarningInputNotApplied WarningKind = "input_not_applied"
)

// Output bucket and container names shared by the extractor, the results
// readers and the script formatter.
const (
	ContainerUserParms  = "UserParms"
	ContainerFile       = "File"
	ContainerCompGeom   = "CompGeom"
	ContainerTagGeom    = "TagCompGeom"
	ContainerMassProps  = "MassProperties"
	GroupCFDFile        = "CFDFile"
	GroupTotals         = "Totals"
	CFDMeshSettingsName = "CFDMeshSettings"
)

var (
	// FileExports lists the export file types offered by the File container.
	FileExports = []string{"vsp3", "DegenGeom", "des", "hrm", "p3d", "stl", "dat", "tri", "msh",
		"pov", "inc", "x3d", "stp", "igs", "dxf", "svg"}
	// CFDExports lists the CFD mesh file types appended to CFDMeshSettings.
	CFDExports = []string{"stl", "poly", "tri", "obj", "dat", "key", "msh", "srf", "tkey", "facet"}
	// CompGeomFields are the per-component aggregate geometry values.
	CompGeomFields = []string{"TheoreticalArea", "WettedArea", "TheoreticalVolume", "WettedVolume"}
	// TagCompGeomFields are the per-tag aggregate geometry values.
	TagCompGeomFields = []string{"TagTheoreticalArea", "TagWettedArea"}
	// MassPropFields are the values reported per mass-property instance.
	MassPropFields = []string{"Mass", "cgX", "cgY", "cgZ", "Ixx", "Iyy", "Izz", "Ixy", "Ixz", "Iyz", "Volume"}
)
