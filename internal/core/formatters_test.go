package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"vspcatalog/internal/types"
)

func TestApplyOrder(t *testing.T) {
	vars := []types.Variable{
		input("WingGeom", "XSec_1", "Span", "A", "1"),
		input("WingGeom", "XSec_2", "Span", "A", "1"),
		input("WingGeom", "XSec_10", "Span", "A", "1"),
		input("Pod", "Design", "Length", "B", "1"),
		input("WingGeom", "XSec_2", "Area", "A", "1"),
		input("WingGeom", "XSecCurve_0", "ThickChord", "A", "1"),
	}
	want := []string{
		"Pod:Design:Length",
		"WingGeom:XSecCurve_0:ThickChord",
		"WingGeom:XSec_2:Area",
		"WingGeom:XSec_2:Span",
		"WingGeom:XSec_10:Span",
		"WingGeom:XSec_1:Span",
	}
	var got []string
	for _, v := range ApplyOrder(vars) {
		got = append(got, v.FullName())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("apply order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "WingGeom:XSec_1:Span", vars[0].FullName())
}

func formatterSnapshot() types.Snapshot {
	return types.Snapshot{
		Filename: "pod.vsp3",
		Settings: types.DefaultSettings(),
		Versions: testVersions,
		Variables: []types.Variable{
			input("WingGeom", "XSec_1", "Span", "WINGSEC1SPN", "5.0"),
			input("Pod", "Design", "Length", "PODLENGTHAA", "4.0"),
			mcOutput("Pod", "Design", "FineRatio", "PODFINEAAAA", "15.0"),
			output("MassProperties", "Totals", "Mass", "MassProperties", "0"),
		},
	}
}

func TestFormatDes(t *testing.T) {
	snapshot := formatterSnapshot()

	ordered := strings.Join([]string{
		"2",
		"PODLENGTHAA:Pod:Design:Length: 4.0",
		"WINGSEC1SPN:WingGeom:XSec_1:Span: 5.0",
		"",
	}, "\n")
	assert.Equal(t, ordered, FormatDes(snapshot, true))

	unordered := strings.Join([]string{
		"2",
		"WINGSEC1SPN:WingGeom:XSec_1:Span: 5.0",
		"PODLENGTHAA:Pod:Design:Length: 4.0",
		"",
	}, "\n")
	assert.Equal(t, unordered, FormatDes(snapshot, false))
}

func TestFormatDesWithoutInputs(t *testing.T) {
	snapshot := types.Snapshot{Variables: []types.Variable{output("File", "File", "stl", "File", "0")}}
	assert.Equal(t, "0\n", FormatDes(snapshot, true))
}

func TestFormatXDDM(t *testing.T) {
	want := `<?xml version="1.0"?>
<Model ID="pod.vsp3" Modeler="OpenVSP" Wrapper="wrap_vsp.csh">
  <Variable ID="WingGeom:XSec_1:Span" Value="5.0" Min="0.0" Max="1.0" VSPID="WINGSEC1SPN"/>
  <Variable ID="Pod:Design:Length" Value="4.0" Min="0.0" Max="1.0" VSPID="PODLENGTHAA"/>
</Model>
`
	assert.Equal(t, want, FormatXDDM(formatterSnapshot()))
}
