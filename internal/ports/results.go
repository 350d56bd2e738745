package ports

import "vspcatalog/internal/types"

// ResultsReaderPort reads computed results written by the external tool.
type ResultsReaderPort interface {
	// ReadCompGeom returns the aggregate and tagged aggregate results.
	ReadCompGeom(path string) (types.ResultSet, types.ResultSet, error)
	ReadMassProps(path string) (types.ResultSet, error)
}
