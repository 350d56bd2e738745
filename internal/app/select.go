package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/core"
)

// Select builds a snapshot from the catalog variables a selection manifest
// names and writes it as a state document.
func (s Service) Select(ctx context.Context, req SelectRequest) (SelectResult, error) {
	if strings.TrimSpace(req.SelectionPath) == "" {
		return SelectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("selection path is required")
	}
	if strings.TrimSpace(req.StatePath) == "" {
		return SelectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("state path is required")
	}
	extraction, err := s.load(ctx, req.GeometryPath, req.Settings.Naming.AddID, req.CompGeomPath)
	if err != nil {
		return SelectResult{}, err
	}
	selection, err := s.Selections.LoadSelection(req.SelectionPath)
	if err != nil {
		return SelectResult{}, err
	}
	catalog, err := core.ApplySelection(ctx, extraction.Catalog, selection)
	if err != nil {
		return SelectResult{}, err
	}
	snapshot := core.BuildSnapshot(ctx, req.GeometryPath, catalog, core.Checked, req.Settings, s.Versions)
	if err := s.States.Write(req.StatePath, snapshot); err != nil {
		return SelectResult{}, err
	}
	log.Ctx(ctx).Info().Str("path", req.StatePath).Int("variables", len(snapshot.Variables)).Msg("state written")
	return SelectResult{Snapshot: snapshot}, nil
}
