package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/core"
	"vspcatalog/internal/types"
)

// Reconcile reloads the geometry, restores the persisted selection onto it
// and, when an output path is given, writes the state rebuilt from the
// reconciled selection. Aggregate results, when given, are loaded first so
// aggregate variables can be matched.
func (s Service) Reconcile(ctx context.Context, req ReconcileRequest) (ReconcileResult, error) {
	if strings.TrimSpace(req.StatePath) == "" {
		return ReconcileResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("state path is required")
	}
	snapshot, err := s.States.Read(ctx, req.StatePath)
	if err != nil {
		return ReconcileResult{}, err
	}
	geometryPath := req.GeometryPath
	if strings.TrimSpace(geometryPath) == "" {
		geometryPath = snapshot.Filename
	}
	extraction, err := s.load(ctx, geometryPath, req.AddID || snapshot.Settings.Naming.AddID, req.CompGeomPath)
	if err != nil {
		return ReconcileResult{}, err
	}
	result, err := core.NewReconciler(req.Acknowledger, s.Versions).Reconcile(ctx, snapshot, extraction.Catalog)
	if err != nil {
		return ReconcileResult{}, err
	}
	rebuilt := s.rebuild(ctx, geometryPath, result, snapshot.Settings)
	if strings.TrimSpace(req.OutputPath) != "" {
		if err := s.States.Write(req.OutputPath, rebuilt); err != nil {
			return ReconcileResult{}, err
		}
		log.Ctx(ctx).Info().Str("path", req.OutputPath).Msg("reconciled state written")
	}
	return ReconcileResult{Result: result, Snapshot: rebuilt}, nil
}

// rebuild snapshots the selected variables of a reconciled catalog under
// the running stamps. Records the pass could not place are kept so they are
// not dropped from the persisted selection.
func (s Service) rebuild(ctx context.Context, geometryPath string, result types.ReconcileResult, settings types.Settings) types.Snapshot {
	rebuilt := core.BuildSnapshot(ctx, geometryPath, result.Catalog, core.Checked, settings, s.Versions)
	return core.RetainUnmatched(ctx, rebuilt, result)
}
