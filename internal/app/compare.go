package app

import (
	"context"

	"vspcatalog/internal/core"
)

func (s Service) Compare(ctx context.Context, req CompareRequest) (CompareResult, error) {
	a, err := s.States.Read(ctx, req.APath)
	if err != nil {
		return CompareResult{}, err
	}
	b, err := s.States.Read(ctx, req.BPath)
	if err != nil {
		return CompareResult{}, err
	}
	return CompareResult{Status: core.Compare(a, b), Diff: core.Diff(a, b)}, nil
}
