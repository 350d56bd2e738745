package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vspcatalog/internal/policies"
	"vspcatalog/internal/types"
)

var testVersions = types.Versions{Tool: "dev", External: "3.36.0", LogLevel: "INFO"}

func input(container, group, name, id, value string) types.Variable {
	v := types.NewVariable(container, group, name, id, value)
	v.Locator = "/" + container + "/" + group + "/" + name
	return v
}

func output(container, group, name, id, value string) types.Variable {
	v := input(container, group, name, id, value)
	_ = v.SetClassification(types.ClassificationOutput)
	return v
}

func mcOutput(container, group, name, id, value string) types.Variable {
	v := input(container, group, name, id, value)
	_ = v.SetClassification(types.ClassificationMCOutput)
	return v
}

// buildCatalog adds vars through the catalog builder, opening a new
// container or group whenever the name changes.
func buildCatalog(t *testing.T, addID bool, vars ...types.Variable) types.Catalog {
	t.Helper()
	b := newCatalogBuilder(policies.NewNamingPolicy(addID))
	var c *containerBuilder
	var group *types.Group
	flushGroup := func() {
		if group != nil {
			c.addGroup(*group)
			group = nil
		}
	}
	for _, v := range vars {
		if c == nil || c.name() != v.Container {
			flushGroup()
			if c != nil {
				b.commit(c)
			}
			c = b.newContainer(v.Container)
		}
		if group == nil || group.Name != v.Group {
			flushGroup()
			group = &types.Group{Name: v.Group}
		}
		require.NoError(t, c.add(group, v.Name, v.ID, v.Value, v.Locator, v.Classification() == types.ClassificationOutput))
		if v.Classification() == types.ClassificationMCOutput {
			last := &b.catalog.Variables[len(b.catalog.Variables)-1]
			require.NoError(t, last.SetClassification(types.ClassificationMCOutput))
		}
	}
	flushGroup()
	if c != nil {
		b.commit(c)
	}
	return b.build()
}

// selectNames marks the named variables selected.
func selectNames(t *testing.T, catalog *types.Catalog, fullNames ...string) {
	t.Helper()
	for _, name := range fullNames {
		found := false
		for i := range catalog.Variables {
			if catalog.Variables[i].FullName() == name {
				catalog.Variables[i].Selected = true
				found = true
			}
		}
		require.True(t, found, "no variable %s", name)
	}
}

// record is the comparable projection of a variable.
type record struct {
	FullName string
	ID       string
	Value    string
	State    types.Classification
	Locator  string
}

func records(vars []types.Variable) []record {
	out := make([]record, 0, len(vars))
	for _, v := range vars {
		out = append(out, record{
			FullName: v.FullName(),
			ID:       v.ID,
			Value:    v.Value,
			State:    v.Classification(),
			Locator:  v.Locator,
		})
	}
	return out
}

func findVariable(t *testing.T, vars []types.Variable, fullName string) types.Variable {
	t.Helper()
	for _, v := range vars {
		if v.FullName() == fullName {
			return v
		}
	}
	require.Failf(t, "variable not found", "%s", fullName)
	return types.Variable{}
}

type fakeAck struct {
	silence      bool
	substitute   bool
	acknowledged []types.Warning
	asked        []string
}

func (f *fakeAck) Acknowledge(w types.Warning) bool {
	f.acknowledged = append(f.acknowledged, w)
	return f.silence
}

func (f *fakeAck) ConfirmSubstitution(missing string, candidate string) bool {
	f.asked = append(f.asked, missing+" -> "+candidate)
	return f.substitute
}
