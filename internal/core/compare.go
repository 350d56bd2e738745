package core

import (
	"fmt"
	"slices"
	"strings"

	"vspcatalog/internal/types"
)

// Compare classifies how far b is from a. Differences that change what the
// external tool is asked to do are DIFFERENT; differences in stamps and the
// repeat count are SIMILAR.
func Compare(a types.Snapshot, b types.Snapshot) types.CompareStatus {
	removed, added := nameChanges(a, b)
	if a.Filename != b.Filename ||
		a.Settings.Naming.Code() != b.Settings.Naming.Code() ||
		a.Settings.SetID != b.Settings.SetID ||
		len(a.Variables) != len(b.Variables) ||
		len(removed) > 0 || len(added) > 0 ||
		!sameEpsilon(a.Settings.Epsilon, b.Settings.Epsilon) {
		return types.CompareDifferent
	}
	if a.Settings.NApplyDes != b.Settings.NApplyDes ||
		a.Versions.Tool != b.Versions.Tool ||
		a.Versions.External != b.Versions.External ||
		a.Versions.LogLevel != b.Versions.LogLevel {
		return types.CompareSimilar
	}
	return types.CompareSame
}

// Diff lists every differing field of a and b, one per line, followed by
// the removed and added full names.
func Diff(a types.Snapshot, b types.Snapshot) string {
	var sb strings.Builder
	if a.Versions.Tool != b.Versions.Tool {
		fmt.Fprintf(&sb, "Tool version: %s -> %s\n", a.Versions.Tool, b.Versions.Tool)
	}
	if a.Versions.External != b.Versions.External {
		fmt.Fprintf(&sb, "Geometry tool version: %s -> %s\n", a.Versions.External, b.Versions.External)
	}
	if a.Filename != b.Filename {
		fmt.Fprintf(&sb, "Geometry file: %s -> %s\n", a.Filename, b.Filename)
	}
	if a.Settings.Naming.Code() != b.Settings.Naming.Code() {
		fmt.Fprintf(&sb, "Naming code: %s -> %s\n", a.Settings.Naming.Code(), b.Settings.Naming.Code())
	}
	if !sameEpsilon(a.Settings.Epsilon, b.Settings.Epsilon) {
		fmt.Fprintf(&sb, "Epsilon: %s -> %s\n", FormatEpsilon(a.Settings.Epsilon), FormatEpsilon(b.Settings.Epsilon))
	}
	if a.Settings.SetID != b.Settings.SetID {
		fmt.Fprintf(&sb, "Set ID: %d -> %d\n", a.Settings.SetID, b.Settings.SetID)
	}
	if a.Settings.NApplyDes != b.Settings.NApplyDes {
		fmt.Fprintf(&sb, "Apply count: %d -> %d\n", a.Settings.NApplyDes, b.Settings.NApplyDes)
	}
	if a.Versions.LogLevel != b.Versions.LogLevel {
		fmt.Fprintf(&sb, "Log level: %s -> %s\n", a.Versions.LogLevel, b.Versions.LogLevel)
	}
	if len(a.Variables) != len(b.Variables) {
		fmt.Fprintf(&sb, "Variables: %d -> %d\n", len(a.Variables), len(b.Variables))
	}
	removed, added := nameChanges(a, b)
	for _, name := range removed {
		fmt.Fprintf(&sb, "Removed %s\n", name)
	}
	for _, name := range added {
		fmt.Fprintf(&sb, "Added %s\n", name)
	}
	return sb.String()
}

// nameChanges returns the full names only in a and only in b, each in the
// order of its snapshot.
func nameChanges(a types.Snapshot, b types.Snapshot) ([]string, []string) {
	left := a.FullNames()
	right := b.FullNames()
	var removed, added []string
	for _, name := range left {
		if !slices.Contains(right, name) {
			removed = append(removed, name)
		}
	}
	for _, name := range right {
		if !slices.Contains(left, name) {
			added = append(added, name)
		}
	}
	return removed, added
}

func sameEpsilon(a *float64, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
