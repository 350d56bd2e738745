package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vspcatalog/internal/types"
)

func TestBuildSnapshotCopiesCheckedVariables(t *testing.T) {
	catalog := podCatalog(t)
	selectNames(t, &catalog, "Pod:XForm:X_Location", "Pod:Design:Length")
	eps := 0.01
	settings := types.Settings{Naming: types.NamingOptions{FlatNames: true}, Epsilon: &eps, SetID: 2, NApplyDes: 3}

	snapshot := BuildSnapshot(t.Context(), "pod.vsp3", catalog, Checked, settings, testVersions)

	assert.Equal(t, "pod.vsp3", snapshot.Filename)
	assert.Equal(t, testVersions, snapshot.Versions)
	assert.Equal(t, 3, snapshot.Settings.NApplyDes)
	require.NotNil(t, snapshot.Settings.Epsilon)
	if diff := cmp.Diff([]string{"Pod:Design:Length", "Pod:XForm:X_Location"}, snapshot.FullNames()); diff != "" {
		t.Fatalf("snapshot names mismatch (-want +got):\n%s", diff)
	}
	for _, v := range snapshot.Variables {
		assert.True(t, v.Selected)
	}

	catalog.Variables[0].Value = "100.0"
	eps = 5
	assert.Equal(t, "4.0", snapshot.Variables[0].Value)
	assert.Equal(t, 0.01, *snapshot.Settings.Epsilon)
}

func TestBuildSnapshotWithCustomPredicate(t *testing.T) {
	catalog := podCatalog(t)
	snapshot := BuildSnapshot(t.Context(), "pod.vsp3", catalog, types.Variable.IsOutput, types.DefaultSettings(), testVersions)
	assert.Equal(t, []string{"MassProperties:Totals:Mass"}, snapshot.FullNames())
}
