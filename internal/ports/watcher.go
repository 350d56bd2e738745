package ports

import "context"

// GeometryWatcherPort reports changes to a geometry file.
type GeometryWatcherPort interface {
	// Watch blocks until ctx is done, calling onChange after each settled
	// change to path.
	Watch(ctx context.Context, path string, onChange func()) error
}
