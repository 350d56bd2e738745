package core

import (
	"fmt"
	"path"
	"strings"

	"vspcatalog/internal/types"
)

// Names of the files exchanged with the geometry tool's script run.
const (
	ScriptDesFile      = "vspcatalog.des"
	ScriptGeometryFile = "vspcatalog.vsp3"
	ScriptCompGeomCSV  = "vspcatalogCompGeom.csv"
	ScriptCompGeomTXT  = "vspcatalogCompGeom.txt"
	ScriptMassPropTXT  = "vspcatalogMassProp.txt"
	ScriptDegenGeomCSV = "vspcatalogDegenGeom.csv"
	scriptExportPrefix = "vspcatalog."
	scriptCFDPrefix    = "vspcatalogCFD."
)

var exportTypes = map[string]string{
	"hrm": "EXPORT_XSEC",
	"stl": "EXPORT_STL",
	"dat": "EXPORT_NASCART",
	"tri": "EXPORT_CART3D",
	"msh": "EXPORT_GMSH",
	"pov": "EXPORT_POVRAY",
	"x3d": "EXPORT_X3D",
	"stp": "EXPORT_STEP",
	"p3d": "EXPORT_PLOT3D",
	"igs": "EXPORT_IGES",
	"dxf": "EXPORT_DXF",
	"svg": "EXPORT_SVG",
}

var cfdTypes = map[string]string{
	"stl":   "CFD_STL_TYPE",
	"poly":  "CFD_POLY_TYPE",
	"tri":   "CFD_TRI_TYPE",
	"obj":   "CFD_OBJ_TYPE",
	"dat":   "CFD_DAT_TYPE",
	"key":   "CFD_KEY_TYPE",
	"msh":   "CFD_GMSH_TYPE",
	"srf":   "CFD_SRF_TYPE",
	"tkey":  "CFD_TKEY_TYPE",
	"facet": "CFD_FACET_TYPE",
}

// Exports that leave a mesh geometry behind in the model.
var meshExports = map[string]bool{"stl": true, "dat": true, "tri": true, "msh": true}

// FormatScript renders the tool script that applies the design file,
// writes the geometry and produces every selected output. Result files are
// written under workDir.
func FormatScript(snapshot types.Snapshot, workDir string) string {
	setID := snapshot.Settings.SetID
	dir := strings.ReplaceAll(workDir, "\\", "/")
	var sb strings.Builder
	line := func(format string, args ...any) {
		sb.WriteString("  ")
		fmt.Fprintf(&sb, format, args...)
		sb.WriteString("\n")
	}
	cutMesh := func() {
		line(`meshgeoms = FindGeomsWithName("MeshGeom");`)
		line(`CutGeomToClipboard(meshgeoms[meshgeoms.length - 1]);`)
	}

	sb.WriteString("void main()\n{\n")
	line("array<string> meshgeoms;")
	for i := 0; i < snapshot.Settings.NApplyDes; i++ {
		line(`ReadApplyDESFile("%s");`, ScriptDesFile)
	}
	line(`WriteVSPFile("%s", 0);`, ScriptGeometryFile)

	for _, v := range snapshot.WithID(types.ContainerFile) {
		switch v.Name {
		case "vsp3", "des", "inc":
		case "DegenGeom":
			line(`SetComputationFileName(DEGEN_GEOM_CSV_TYPE, "%s");`, ScriptDegenGeomCSV)
			line("ComputeDegenGeom(%d, DEGEN_GEOM_CSV_TYPE);", setID)
		default:
			exportType, ok := exportTypes[v.Name]
			if !ok {
				continue
			}
			line(`ExportFile("%s", %d, %s);`, scriptExportPrefix+v.Name, setID, exportType)
			if meshExports[v.Name] {
				cutMesh()
			}
		}
	}

	if len(snapshot.WithID(types.ContainerCompGeom)) > 0 || len(snapshot.WithID(types.ContainerTagGeom)) > 0 {
		line(`SetComputationFileName(COMP_GEOM_TXT_TYPE, "%s");`, path.Join(dir, ScriptCompGeomTXT))
		line(`SetComputationFileName(COMP_GEOM_CSV_TYPE, "%s");`, path.Join(dir, ScriptCompGeomCSV))
		line("ComputeCompGeom(%d, false, COMP_GEOM_CSV_TYPE);", setID)
		cutMesh()
	}
	if len(snapshot.WithID(types.ContainerMassProps)) > 0 {
		line(`SetComputationFileName(MASS_PROP_TXT_TYPE, "%s");`, path.Join(dir, ScriptMassPropTXT))
		line("ComputeMassProps(%d, 100);", setID)
		cutMesh()
	}
	for _, v := range snapshot.WithID(types.GroupCFDFile) {
		cfdType, ok := cfdTypes[v.Name]
		if !ok {
			continue
		}
		line(`SetComputationFileName(%s, "%s");`, cfdType, path.Join(dir, scriptCFDPrefix+v.Name))
		line("ComputeCFDMesh(%d, %s);", setID, cfdType)
	}
	writeErrorDrain(&sb)
	return sb.String()
}

// FormatCompGeomScript renders the minimal script that only computes the
// aggregate geometry tables into the current directory.
func FormatCompGeomScript() string {
	var sb strings.Builder
	sb.WriteString("void main()\n{\n")
	fmt.Fprintf(&sb, "  SetComputationFileName(COMP_GEOM_TXT_TYPE, \"./%s\");\n", ScriptCompGeomTXT)
	fmt.Fprintf(&sb, "  SetComputationFileName(COMP_GEOM_CSV_TYPE, \"./%s\");\n", ScriptCompGeomCSV)
	sb.WriteString("  ComputeCompGeom(0, false, COMP_GEOM_CSV_TYPE);\n")
	writeErrorDrain(&sb)
	return sb.String()
}

func writeErrorDrain(sb *strings.Builder) {
	sb.WriteString("  while ( GetNumTotalErrors() > 0 )\n")
	sb.WriteString("  {\n")
	sb.WriteString("    ErrorObj err = PopLastError();\n")
	sb.WriteString("    Print( err.GetErrorString() );\n")
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
}
