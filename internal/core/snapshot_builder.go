package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/types"
)

// BuildSnapshot copies the checked variables of catalog into a new
// snapshot. Later changes to the catalog are not seen by the snapshot.
func BuildSnapshot(ctx context.Context, filename string, catalog types.Catalog, checked func(types.Variable) bool,
	settings types.Settings, versions types.Versions) types.Snapshot {
	assert.NotEmpty(ctx, settings.Naming.Code(), "naming code must be set")
	assert.NotEmpty(ctx, versions.Tool, "tool version must be set")

	snapshot := types.Snapshot{
		Filename: filename,
		Settings: settings,
		Versions: versions,
	}
	for _, v := range catalog.Variables {
		if checked(v) {
			v.Selected = true
			snapshot.Variables = append(snapshot.Variables, v)
		}
	}
	log.Ctx(ctx).Debug().Str("file", filename).Int("variables", len(snapshot.Variables)).Msg("snapshot built")
	return snapshot.Clone()
}

// Checked selects the variables whose selection flag is set.
func Checked(v types.Variable) bool {
	return v.Selected
}
