package ports

import "vspcatalog/internal/types"

// SelectionSourcePort loads selection manifests.
type SelectionSourcePort interface {
	LoadSelection(path string) (types.Selection, error)
}

// CatalogReportPort renders a catalog for review.
type CatalogReportPort interface {
	WriteCatalog(path string, catalog types.Catalog) error
}
