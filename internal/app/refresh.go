package app

import (
	"context"
	"strings"

	"vspcatalog/internal/core"
)

// Refresh reads computed outputs back from the geometry the tool wrote
// after applying the design file.
func (s Service) Refresh(ctx context.Context, req RefreshRequest) (RefreshResult, error) {
	snapshot, err := s.States.Read(ctx, req.StatePath)
	if err != nil {
		return RefreshResult{}, err
	}
	doc, err := s.Documents.Load(req.GeometryPath)
	if err != nil {
		return RefreshResult{}, err
	}
	refreshed, warnings, err := core.NewRefresher(req.Acknowledger).Refresh(ctx, snapshot, doc)
	if err != nil {
		return RefreshResult{}, err
	}
	if strings.TrimSpace(req.OutputPath) != "" {
		if err := s.States.Write(req.OutputPath, refreshed); err != nil {
			return RefreshResult{}, err
		}
	}
	return RefreshResult{Snapshot: refreshed, Warnings: warnings}, nil
}
