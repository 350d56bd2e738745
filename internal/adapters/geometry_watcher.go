package adapters

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/ports"
)

const defaultDebounce = 500 * time.Millisecond

// GeometryWatcher reports settled changes to one geometry file. It watches
// the parent directory so editors that save by rename are still seen.
type GeometryWatcher struct {
	debounce time.Duration
}

func NewGeometryWatcher(debounce time.Duration) GeometryWatcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return GeometryWatcher{debounce: debounce}
}

func (w GeometryWatcher) Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to start file watcher").
			WithCause(err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to watch " + target).
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("file", target).Msg("watching geometry")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Ctx(ctx).Debug().Str("op", event.Op.String()).Msg("geometry changed")
			timer.Reset(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Ctx(ctx).Warn().Err(err).Msg("file watcher error")
		case <-timer.C:
			onChange()
		}
	}
}

var _ ports.GeometryWatcherPort = GeometryWatcher{}
