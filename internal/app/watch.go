package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Watch keeps the state file in step with the geometry until ctx is done.
// A failed reload is logged and the previous state is kept. Records a reload
// cannot place stay in the written state.
func (s Service) Watch(ctx context.Context, req WatchRequest) error {
	if strings.TrimSpace(req.StatePath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("state path is required")
	}
	snapshot, err := s.States.Read(ctx, req.StatePath)
	if err != nil {
		return err
	}
	geometryPath := req.GeometryPath
	if strings.TrimSpace(geometryPath) == "" {
		geometryPath = snapshot.Filename
	}
	session := NewSession(s, geometryPath, req.CompGeomPath, req.AddID, req.Acknowledger)
	session.Restore(snapshot)

	resync := func() {
		if _, err := session.Reload(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("reload failed; keeping previous state")
			return
		}
		_, current, _ := session.Current()
		if err := s.States.Write(req.StatePath, current); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to write state")
		}
	}
	resync()
	return s.Watcher.Watch(ctx, geometryPath, resync)
}
