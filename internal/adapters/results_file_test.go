package adapters

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vspcatalog/tests/testutil"
)

func TestParseCompGeomFixture(t *testing.T) {
	components, tags, err := NewResultsFileAdapter().ReadCompGeom(filepath.Join(testutil.RepoRoot(t), "fixtures", "compgeom.csv"))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{"CompGeom:Pod0:TheoreticalArea", "12.566371"},
		{"CompGeom:WingGeom0:WettedArea", "14.900000"},
		{"CompGeom:WingGeom1:WettedVolume", "0.740000"},
		{"CompGeom:Totals:WettedArea", "41.901400"},
	}
	for _, tt := range tests {
		got, ok := components.Get(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
	assert.Equal(t, 16, components.Len())

	got, ok := tags.Get("TagCompGeom:WingGeom_Upper:TagWettedArea")
	require.True(t, ok)
	assert.Equal(t, "7.450000", got)
	got, ok = tags.Get("TagCompGeom:Pod:TagTheoreticalArea")
	require.True(t, ok)
	assert.Equal(t, "12.566371", got)
	assert.Equal(t, 6, tags.Len())
}

func TestParseCompGeomErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong column count", "Name, Theo_Area\nPod,1,2,3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCompGeom(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestParseMassPropsFixture(t *testing.T) {
	results, err := NewResultsFileAdapter().ReadMassProps(filepath.Join(testutil.RepoRoot(t), "fixtures", "massprop.txt"))
	require.NoError(t, err)

	got, ok := results.Get("MassProperties:WingGeom1:cgY")
	require.True(t, ok)
	assert.Equal(t, "-2.500000", got)
	got, ok = results.Get("MassProperties:Totals:Mass")
	require.True(t, ok)
	assert.Equal(t, "3.790100", got)
	_, ok = results.Get("MassProperties:Totals0:Mass")
	assert.False(t, ok)
	assert.Equal(t, 4*11, results.Len())
}

func TestParseMassPropsIgnoresPreamble(t *testing.T) {
	input := "Pod 1 2 3 4 5 6 7 8 9 10 11\nName Mass\nPod 9 2 3 4 5 6 7 8 9 10 11\n"
	results, err := ParseMassProps(strings.NewReader(input))
	require.NoError(t, err)
	got, ok := results.Get("MassProperties:Pod0:Mass")
	require.True(t, ok)
	assert.Equal(t, "9", got)
	assert.Equal(t, 11, results.Len())
}

func TestReadResultsMissingFile(t *testing.T) {
	_, err := NewResultsFileAdapter().ReadMassProps(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
