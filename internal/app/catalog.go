package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/core"
	"vspcatalog/internal/policies"
	"vspcatalog/internal/types"
)

func (s Service) Catalog(ctx context.Context, req CatalogRequest) (CatalogResult, error) {
	extraction, err := s.load(ctx, req.GeometryPath, req.AddID, req.CompGeomPath)
	if err != nil {
		return CatalogResult{}, err
	}
	catalog := extraction.Catalog
	if strings.TrimSpace(req.WorkbookPath) != "" {
		if err := s.Report.WriteCatalog(req.WorkbookPath, catalog); err != nil {
			return CatalogResult{}, err
		}
		log.Ctx(ctx).Info().Str("path", req.WorkbookPath).Msg("catalog workbook written")
	}
	return CatalogResult{Catalog: catalog, SetNames: extraction.SetNames}, nil
}

// load extracts the geometry and, when an aggregate results path is given,
// fills the aggregate containers from it. Either both succeed or nothing is
// returned.
func (s Service) load(ctx context.Context, geometryPath string, addID bool, compGeomPath string) (core.Extraction, error) {
	extraction, err := s.extract(ctx, geometryPath, addID)
	if err != nil {
		return core.Extraction{}, err
	}
	if strings.TrimSpace(compGeomPath) == "" {
		return extraction, nil
	}
	catalog, err := s.populateAggregates(ctx, extraction.Catalog, compGeomPath, addID)
	if err != nil {
		return core.Extraction{}, err
	}
	extraction.Catalog = catalog
	return extraction, nil
}

func (s Service) extract(ctx context.Context, geometryPath string, addID bool) (core.Extraction, error) {
	geometryPath = strings.TrimSpace(geometryPath)
	if geometryPath == "" {
		return core.Extraction{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("geometry path is required")
	}
	doc, err := s.Documents.Load(geometryPath)
	if err != nil {
		return core.Extraction{}, err
	}
	extractor := core.NewGeometryExtractor(policies.NewNamingPolicy(addID))
	return extractor.Extract(ctx, doc)
}

func (s Service) populateAggregates(ctx context.Context, catalog types.Catalog, path string, addID bool) (types.Catalog, error) {
	components, tags, err := s.Results.ReadCompGeom(path)
	if err != nil {
		return catalog, err
	}
	return core.PopulateAggregates(ctx, catalog, policies.NewNamingPolicy(addID), map[string]types.ResultSet{
		types.ContainerCompGeom: components,
		types.ContainerTagGeom:  tags,
	})
}
