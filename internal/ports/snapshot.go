package ports

import (
	"context"

	"vspcatalog/internal/types"
)

// SnapshotStorePort persists snapshots as state documents.
type SnapshotStorePort interface {
	Read(ctx context.Context, path string) (types.Snapshot, error)
	Write(path string, snapshot types.Snapshot) error
}
