package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vspcatalog/internal/types"
)

func compareBase() types.Snapshot {
	return types.Snapshot{
		Filename: "pod.vsp3",
		Settings: types.DefaultSettings(),
		Versions: testVersions,
		Variables: []types.Variable{
			input("Pod", "Design", "Length", "PODLENGTHAA", "4.0"),
			output("MassProperties", "Totals", "Mass", "MassProperties", "0"),
		},
	}
}

func TestCompare(t *testing.T) {
	eps := 0.001
	tests := []struct {
		name   string
		modify func(*types.Snapshot)
		want   types.CompareStatus
	}{
		{"same", func(*types.Snapshot) {}, types.CompareSame},
		{"values are not compared", func(s *types.Snapshot) { s.Variables[0].Value = "5.0" }, types.CompareSame},
		{"apply count", func(s *types.Snapshot) { s.Settings.NApplyDes = 2 }, types.CompareSimilar},
		{"tool version", func(s *types.Snapshot) { s.Versions.Tool = "1.4" }, types.CompareSimilar},
		{"geometry tool version", func(s *types.Snapshot) { s.Versions.External = "3.37.0" }, types.CompareSimilar},
		{"log level", func(s *types.Snapshot) { s.Versions.LogLevel = "DEBUG" }, types.CompareSimilar},
		{"file", func(s *types.Snapshot) { s.Filename = "other.vsp3" }, types.CompareDifferent},
		{"naming", func(s *types.Snapshot) { s.Settings.Naming.AddID = true }, types.CompareDifferent},
		{"set", func(s *types.Snapshot) { s.Settings.SetID = 3 }, types.CompareDifferent},
		{"epsilon", func(s *types.Snapshot) { s.Settings.Epsilon = &eps }, types.CompareDifferent},
		{"removed", func(s *types.Snapshot) { s.Variables = s.Variables[:1] }, types.CompareDifferent},
		{"renamed", func(s *types.Snapshot) { s.Variables[0].Name = "Width" }, types.CompareDifferent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := compareBase()
			b := compareBase()
			tt.modify(&b)
			assert.Equal(t, tt.want, Compare(a, b))
		})
	}
}

func TestDiff(t *testing.T) {
	a := compareBase()
	b := compareBase()
	eps := 0.5
	b.Versions.Tool = "1.4"
	b.Settings.Epsilon = &eps
	b.Settings.NApplyDes = 2
	b.Variables[0].Name = "Width"
	b.Variables = append(b.Variables, input("Pod", "XForm", "X_Location", "PODXLOCAAAA", "0.0"))

	want := "Tool version: dev -> 1.4\n" +
		"Epsilon: null -> 0.500000\n" +
		"Apply count: 1 -> 2\n" +
		"Variables: 2 -> 3\n" +
		"Removed Pod:Design:Length\n" +
		"Added Pod:Design:Width\n" +
		"Added Pod:XForm:X_Location\n"
	assert.Equal(t, want, Diff(a, b))
	assert.Empty(t, Diff(a, compareBase()))
}
