package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vspcatalog/internal/types"
	"vspcatalog/tests/testutil"
)

func TestLoadSelectionFixture(t *testing.T) {
	selection, err := NewSelectionFileAdapter().LoadSelection(filepath.Join(testutil.RepoRoot(t), "fixtures", "selection.yaml"))
	require.NoError(t, err)

	require.Len(t, selection.Variables, 7)
	want := types.SelectionEntry{Name: "Pod:XForm:X_Location", Value: "0.5"}
	if diff := cmp.Diff(want, selection.Variables[1]); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.ClassificationMCOutput, selection.Variables[4].State)
}

func TestLoadSelectionErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errbuilder.ErrCode
	}{
		{name: "invalid yaml", content: "variables: [", code: errbuilder.CodeInvalidArgument},
		{name: "entry without name", content: "variables:\n  - value: \"1\"\n", code: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "selection.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := NewSelectionFileAdapter().LoadSelection(path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errbuilder.CodeOf(err))
		})
	}

	_, err := NewSelectionFileAdapter().LoadSelection(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
