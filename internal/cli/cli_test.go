package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
	"vspcatalog/tests/testutil"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{
		"catalog", "select", "reconcile", "export",
		"compare", "ingest", "refresh", "watch",
	}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		flags []string
	}{
		{newCatalogCommand(), []string{"geometry", "compgeom", "xlsx", "flat-names", "add-id", "group-outputs"}},
		{newSelectCommand(), []string{"geometry", "compgeom", "selection", "state", "epsilon", "set-id", "n-apply-des"}},
		{newReconcileCommand(), []string{"geometry", "compgeom", "state", "out", "add-id", "prompt"}},
		{newExportCommand(), []string{"state", "format", "out", "apply-order", "work-dir"}},
		{newCompareCommand(), []string{"a", "b"}},
		{newIngestCommand(), []string{"state", "compgeom", "massprop", "out"}},
		{newRefreshCommand(), []string{"state", "geometry", "out", "prompt"}},
		{newWatchCommand(), []string{"geometry", "compgeom", "state", "add-id", "prompt"}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			for _, name := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(name), "missing flag: %s", name)
			}
		})
	}
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBoolAndInt(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))
	assert.Equal(t, 42, resolveInt(nil, 42, "test_key", "test-flag"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

func TestResolveSettings(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	opts := settingsOptions{}
	addSettingsFlags(cmd, &opts)
	require.NoError(t, cmd.Flags().Set("add-id", "true"))
	require.NoError(t, cmd.Flags().Set("epsilon", "1e-4"))
	require.NoError(t, cmd.Flags().Set("set-id", "3"))

	settings, err := resolveSettings(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, types.NamingOptions{AddID: true}, settings.Naming)
	assert.Equal(t, 3, settings.SetID)
	assert.Equal(t, 1, settings.NApplyDes)
	require.NotNil(t, settings.Epsilon)
	assert.InDelta(t, 1e-4, *settings.Epsilon, 1e-12)
}

func TestResolveSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		flag string
		val  string
	}{
		{"n-apply-des below one", "n-apply-des", "0"},
		{"non-numeric epsilon", "epsilon", "tight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			opts := settingsOptions{}
			addSettingsFlags(cmd, &opts)
			require.NoError(t, cmd.Flags().Set(tt.flag, tt.val))
			_, err := resolveSettings(cmd, opts)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"D":       "debug",
		"o":       "disabled",
		" WARN ":  "warn",
		"":        "info",
		"f":       "error",
		"Off":     "disabled",
		"verbose": "verbose",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeLevel(in), "level %q", in)
	}
}

func TestStampLevel(t *testing.T) {
	tests := map[string]string{
		"T":        "TRACE",
		"debug":    "DEBUG",
		"":         "INFO",
		"w":        "WARN",
		"F":        "FATAL",
		"error":    "FATAL",
		"O":        "OFF",
		"disabled": "OFF",
		"OFF":      "OFF",
	}
	for in, want := range tests {
		assert.Equal(t, want, stampLevel(in), "level %q", in)
	}
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name:     "duplicate name",
			err:      shared.DuplicateName("Pod:Design:Length"),
			expected: 2,
		},
		{
			name: "output cannot be toggled",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("Pod:Design:Length is an output and cannot become MCOutput"),
			expected: 3,
		},
		{
			name:     "ingestion mismatch",
			err:      shared.IngestionMismatch("MassProperties:Totals:Mass"),
			expected: 4,
		},
		{
			name: "not found generic",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("state file not found: x.xml"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "errbuilder with msg",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("something broke"),
			expected: "something broke",
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			expected: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorMessage(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ---------- Command runs ----------

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--log-level", "o"}, args...))
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestCatalogCommandPrintsTree(t *testing.T) {
	geometry := filepath.Join(testutil.RepoRoot(t), "fixtures", "model.vsp3")
	out, err := runRoot(t, "catalog", "--geometry", geometry, "--add-id")
	require.NoError(t, err)
	assert.Contains(t, out, "Pod\n  Design\n")
	assert.Contains(t, out, "    Pod.Design.Length_PODLENGTHAA = ")
	assert.Contains(t, out, "MassProperties\n")
}

func TestSelectAndExportCommands(t *testing.T) {
	dir := t.TempDir()
	geometry := filepath.Join(testutil.RepoRoot(t), "fixtures", "model.vsp3")
	selection := filepath.Join(dir, "selection.yaml")
	require.NoError(t, os.WriteFile(selection, []byte("variables:\n  - name: \"Pod:Design:Length\"\n"), 0644))
	state := filepath.Join(dir, "state.xml")

	out, err := runRoot(t, "select", "--geometry", geometry, "--selection", selection, "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "selected: 1 variables\n", out)
	written, err := os.ReadFile(state)
	require.NoError(t, err)
	assert.Contains(t, string(written), `LogLevel="OFF"`)

	des := filepath.Join(dir, "model.des")
	out, err = runRoot(t, "export", "--state", state, "--out", des)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "exported: "))
	data, err := os.ReadFile(des)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "1\nPODLENGTHAA:Pod:Design:Length: "))

	out, err = runRoot(t, "compare", "--a", state, "--b", state)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, string(types.CompareSame)))
}

func TestCommandErrorsCarryCodes(t *testing.T) {
	_, err := runRoot(t, "export", "--state", filepath.Join(t.TempDir(), "missing.xml"), "--out", "x.des")
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}
