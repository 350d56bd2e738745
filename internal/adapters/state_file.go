package adapters

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vspcatalog/internal/core"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// StateFileAdapter stores snapshots as state documents.
type StateFileAdapter struct{}

func NewStateFileAdapter() StateFileAdapter {
	return StateFileAdapter{}
}

func (a StateFileAdapter) Read(ctx context.Context, path string) (types.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("state file not found: " + path).
			WithCause(err)
	}
	return core.DecodeState(ctx, data)
}

// Write replaces path atomically so a watcher or a concurrent reader never
// sees a half-written state.
func (a StateFileAdapter) Write(path string, snapshot types.Snapshot) error {
	return writeFileAtomic(path, []byte(core.EncodeState(snapshot)))
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temp file").
			WithCause(err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to set permissions on " + path).
			WithCause(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to replace " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.SnapshotStorePort = StateFileAdapter{}
