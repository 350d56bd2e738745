package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vspcatalog/internal/types"
)

func TestFormatScript(t *testing.T) {
	snapshot := types.Snapshot{
		Filename: "pod.vsp3",
		Settings: types.Settings{SetID: 0, NApplyDes: 2},
		Versions: testVersions,
		Variables: []types.Variable{
			input("Pod", "Design", "Length", "PODLENGTHAA", "4.0"),
			output("File", "File", "vsp3", "File", "0"),
			output("File", "File", "DegenGeom", "File", "0"),
			output("File", "File", "stl", "File", "0"),
			output("File", "File", "inc", "File", "0"),
			output("File", "File", "svg", "File", "0"),
			output("CompGeom", "Pod0", "WettedArea", "CompGeom", "0"),
			output("MassProperties", "Totals", "Mass", "MassProperties", "0"),
			output("CFDMeshSettings", "CFDFile", "tri", "CFDFile", "0"),
		},
	}
	want := strings.Join([]string{
		"void main()",
		"{",
		"  array<string> meshgeoms;",
		`  ReadApplyDESFile("vspcatalog.des");`,
		`  ReadApplyDESFile("vspcatalog.des");`,
		`  WriteVSPFile("vspcatalog.vsp3", 0);`,
		`  SetComputationFileName(DEGEN_GEOM_CSV_TYPE, "vspcatalogDegenGeom.csv");`,
		"  ComputeDegenGeom(0, DEGEN_GEOM_CSV_TYPE);",
		`  ExportFile("vspcatalog.stl", 0, EXPORT_STL);`,
		`  meshgeoms = FindGeomsWithName("MeshGeom");`,
		"  CutGeomToClipboard(meshgeoms[meshgeoms.length - 1]);",
		`  ExportFile("vspcatalog.svg", 0, EXPORT_SVG);`,
		`  SetComputationFileName(COMP_GEOM_TXT_TYPE, "/work/run/vspcatalogCompGeom.txt");`,
		`  SetComputationFileName(COMP_GEOM_CSV_TYPE, "/work/run/vspcatalogCompGeom.csv");`,
		"  ComputeCompGeom(0, false, COMP_GEOM_CSV_TYPE);",
		`  meshgeoms = FindGeomsWithName("MeshGeom");`,
		"  CutGeomToClipboard(meshgeoms[meshgeoms.length - 1]);",
		`  SetComputationFileName(MASS_PROP_TXT_TYPE, "/work/run/vspcatalogMassProp.txt");`,
		"  ComputeMassProps(0, 100);",
		`  meshgeoms = FindGeomsWithName("MeshGeom");`,
		"  CutGeomToClipboard(meshgeoms[meshgeoms.length - 1]);",
		`  SetComputationFileName(CFD_TRI_TYPE, "/work/run/vspcatalogCFD.tri");`,
		"  ComputeCFDMesh(0, CFD_TRI_TYPE);",
		"  while ( GetNumTotalErrors() > 0 )",
		"  {",
		"    ErrorObj err = PopLastError();",
		"    Print( err.GetErrorString() );",
		"  }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, FormatScript(snapshot, `\work\run`))
}

func TestFormatScriptMinimal(t *testing.T) {
	snapshot := types.Snapshot{
		Settings:  types.DefaultSettings(),
		Variables: []types.Variable{input("Pod", "Design", "Length", "PODLENGTHAA", "4.0")},
	}
	script := FormatScript(snapshot, "/tmp")
	assert.Equal(t, 1, strings.Count(script, "ReadApplyDESFile"))
	assert.NotContains(t, script, "ComputeCompGeom")
	assert.NotContains(t, script, "ComputeMassProps")
	assert.NotContains(t, script, "ExportFile")
}

func TestFormatCompGeomScript(t *testing.T) {
	script := FormatCompGeomScript()
	assert.Contains(t, script, `SetComputationFileName(COMP_GEOM_CSV_TYPE, "./vspcatalogCompGeom.csv");`)
	assert.Contains(t, script, "ComputeCompGeom(0, false, COMP_GEOM_CSV_TYPE);")
	assert.True(t, strings.HasSuffix(script, "}\n"))
}
