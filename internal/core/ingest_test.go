package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vspcatalog/internal/policies"
	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

func ingestSnapshot() types.Snapshot {
	return types.Snapshot{
		Settings: types.DefaultSettings(),
		Versions: testVersions,
		Variables: []types.Variable{
			input("Pod", "Design", "Length", "PODLENGTHAA", "4.0"),
			output("CompGeom", "Pod0", "WettedArea", "CompGeom", "0"),
			output("MassProperties", "Totals", "Mass", "MassProperties", "0"),
		},
	}
}

func ingestResults() types.ResultSet {
	results := types.NewResultSet()
	results.Put("CompGeom:Pod0:WettedArea", "12.1014")
	results.Put("MassProperties:Totals:Mass", "3.7901")
	return results
}

func TestIngestResults(t *testing.T) {
	snapshot := ingestSnapshot()
	got, err := IngestResults(t.Context(), snapshot, []string{types.ContainerCompGeom, types.ContainerMassProps}, ingestResults())
	require.NoError(t, err)

	assert.Equal(t, "4.0", got.Variables[0].Value)
	assert.Equal(t, "12.1014", got.Variables[1].Value)
	assert.Equal(t, "3.7901", got.Variables[2].Value)
	source, ok := got.Variables[2].SourceValue()
	require.True(t, ok)
	assert.Equal(t, "3.7901", source)
	assert.Equal(t, "0", snapshot.Variables[1].Value)
}

func TestIngestResultsOnlyTouchesNamedBuckets(t *testing.T) {
	results := types.NewResultSet()
	results.Put("MassProperties:Totals:Mass", "3.7901")
	got, err := IngestResults(t.Context(), ingestSnapshot(), []string{types.ContainerMassProps}, results)
	require.NoError(t, err)
	assert.Equal(t, "0", got.Variables[1].Value)
	assert.Equal(t, "3.7901", got.Variables[2].Value)
}

func TestIngestResultsMismatch(t *testing.T) {
	results := types.NewResultSet()
	results.Put("CompGeom:Pod0:WettedArea", "12.1014")
	snapshot := ingestSnapshot()

	got, err := IngestResults(t.Context(), snapshot, []string{types.ContainerCompGeom, types.ContainerMassProps}, results)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), shared.PrefixIngestionMismatch+"could not find MassProperties:Totals:Mass"))
	assert.Equal(t, "0", got.Variables[1].Value)
}

func TestIngestCatalogResultsUsesSelection(t *testing.T) {
	catalog := buildCatalog(t, false,
		output("MassProperties", "Pod0", "Mass", "MassProperties", "0"),
		output("MassProperties", "Totals", "Mass", "MassProperties", "0"),
	)
	selectNames(t, &catalog, "MassProperties:Totals:Mass")
	results := types.NewResultSet()
	results.Put("MassProperties:Totals:Mass", "3.7901")

	got, err := IngestCatalogResults(t.Context(), catalog, []string{types.ContainerMassProps}, results)
	require.NoError(t, err)
	assert.Equal(t, "0", got.Variables[0].Value)
	assert.Equal(t, "3.7901", got.Variables[1].Value)
}

func TestPopulateAggregates(t *testing.T) {
	catalog := buildCatalog(t, false, input("Pod", "Design", "Length", "PODLENGTHAA", "4.0"))
	b := newCatalogBuilder(policies.NewNamingPolicy(false))
	for _, name := range []string{types.ContainerCompGeom, types.ContainerTagGeom} {
		b.commit(b.newContainer(name))
	}
	catalog.Containers = append(catalog.Containers, b.build().Containers...)

	components := types.NewResultSet()
	components.Put("CompGeom:Pod0:TheoreticalArea", "12.57")
	components.Put("CompGeom:Pod0:WettedArea", "12.10")
	components.Put("CompGeom:Totals:TheoreticalArea", "42.77")

	got, err := PopulateAggregates(t.Context(), catalog, policies.NewNamingPolicy(false), map[string]types.ResultSet{
		types.ContainerCompGeom: components,
	})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"Pod0", "Totals"}, got.GroupNames(types.ContainerCompGeom)); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, got.GroupNames(types.ContainerTagGeom))
	assert.Equal(t, []string{"Design"}, got.GroupNames("Pod"))

	wetted := findVariable(t, got.Variables, "CompGeom:Pod0:WettedArea")
	assert.Equal(t, "12.10", wetted.Value)
	assert.Equal(t, types.ContainerCompGeom, wetted.ID)
	assert.Equal(t, types.ClassificationOutput, wetted.Classification())
	assert.Len(t, catalog.Variables, 1)
}
