package app

import (
	"vspcatalog/internal/adapters"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

type Service struct {
	Documents  ports.DocumentLoaderPort
	States     ports.SnapshotStorePort
	Results    ports.ResultsReaderPort
	Selections ports.SelectionSourcePort
	Report     ports.CatalogReportPort
	Watcher    ports.GeometryWatcherPort
	// Versions are the running stamps written into new snapshots and
	// checked against loaded ones.
	Versions types.Versions
}

func NewService(versions types.Versions) Service {
	return Service{
		Documents:  adapters.NewXMLDocumentAdapter(),
		States:     adapters.NewStateFileAdapter(),
		Results:    adapters.NewResultsFileAdapter(),
		Selections: adapters.NewSelectionFileAdapter(),
		Report:     adapters.NewCatalogWorkbookAdapter(),
		Watcher:    adapters.NewGeometryWatcher(0),
		Versions:   versions,
	}
}
