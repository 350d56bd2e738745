package ports

import "vspcatalog/internal/types"

// OutputPort writes the external text formats produced from a snapshot.
type OutputPort interface {
	WriteDes(path string, snapshot types.Snapshot, applyOrder bool) error
	WriteXDDM(path string, snapshot types.Snapshot) error
	WriteScript(path string, snapshot types.Snapshot, workDir string) error
}
