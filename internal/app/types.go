package app

import (
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

type CatalogRequest struct {
	GeometryPath string
	AddID        bool
	CompGeomPath string
	WorkbookPath string
}

type CatalogResult struct {
	Catalog  types.Catalog
	SetNames []string
}

type SelectRequest struct {
	GeometryPath  string
	CompGeomPath  string
	SelectionPath string
	StatePath     string
	Settings      types.Settings
}

type SelectResult struct {
	Snapshot types.Snapshot
}

type ReconcileRequest struct {
	GeometryPath string
	CompGeomPath string
	StatePath    string
	OutputPath   string
	AddID        bool
	Acknowledger ports.AcknowledgerPort
}

type ReconcileResult struct {
	Result types.ReconcileResult
	// Snapshot is the state rebuilt from the reconciled selection.
	Snapshot types.Snapshot
}

type ExportFormat string

const (
	ExportDes    ExportFormat = "des"
	ExportXDDM   ExportFormat = "xddm"
	ExportState  ExportFormat = "state"
	ExportScript ExportFormat = "script"
)

type ExportRequest struct {
	StatePath  string
	Format     ExportFormat
	OutputPath string
	ApplyOrder bool
	WorkDir    string
}

type ExportResult struct {
	OutputPath string
}

type CompareRequest struct {
	APath string
	BPath string
}

type CompareResult struct {
	Status types.CompareStatus
	Diff   string
}

type IngestRequest struct {
	StatePath    string
	CompGeomPath string
	MassPropPath string
	OutputPath   string
}

type IngestResult struct {
	Snapshot types.Snapshot
}

type RefreshRequest struct {
	StatePath    string
	GeometryPath string
	OutputPath   string
	Acknowledger ports.AcknowledgerPort
}

type RefreshResult struct {
	Snapshot types.Snapshot
	Warnings []types.Warning
}

type WatchRequest struct {
	GeometryPath string
	CompGeomPath string
	StatePath    string
	AddID        bool
	Acknowledger ports.AcknowledgerPort
}
