package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vspcatalog/internal/core"
	"vspcatalog/internal/types"
)

// Ingest copies computed results into the state's aggregate and
// mass-property variables. Nothing is written if any selected variable has
// no result.
func (s Service) Ingest(ctx context.Context, req IngestRequest) (IngestResult, error) {
	if strings.TrimSpace(req.CompGeomPath) == "" && strings.TrimSpace(req.MassPropPath) == "" {
		return IngestResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one results file is required")
	}
	snapshot, err := s.States.Read(ctx, req.StatePath)
	if err != nil {
		return IngestResult{}, err
	}
	results := types.NewResultSet()
	var buckets []string
	if strings.TrimSpace(req.CompGeomPath) != "" {
		components, tags, err := s.Results.ReadCompGeom(req.CompGeomPath)
		if err != nil {
			return IngestResult{}, err
		}
		results.Merge(components)
		results.Merge(tags)
		buckets = append(buckets, types.ContainerCompGeom, types.ContainerTagGeom)
	}
	if strings.TrimSpace(req.MassPropPath) != "" {
		massProps, err := s.Results.ReadMassProps(req.MassPropPath)
		if err != nil {
			return IngestResult{}, err
		}
		results.Merge(massProps)
		buckets = append(buckets, types.ContainerMassProps)
	}
	updated, err := core.IngestResults(ctx, snapshot, buckets, results)
	if err != nil {
		return IngestResult{}, err
	}
	if strings.TrimSpace(req.OutputPath) != "" {
		if err := s.States.Write(req.OutputPath, updated); err != nil {
			return IngestResult{}, err
		}
	}
	return IngestResult{Snapshot: updated}, nil
}
