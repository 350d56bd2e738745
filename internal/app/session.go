package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"vspcatalog/internal/core"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// Session owns the published catalog and snapshot of one geometry file.
// Readers only ever see a pair produced by a completed reload.
type Session struct {
	service      Service
	geometryPath string
	compGeomPath string
	addID        bool
	ack          ports.AcknowledgerPort

	mu       sync.RWMutex
	catalog  types.Catalog
	snapshot types.Snapshot
	restored bool

	reloads singleflight.Group
}

// NewSession tracks geometryPath. compGeomPath, when set, is read on every
// reload to fill the aggregate containers before reconciling.
func NewSession(service Service, geometryPath string, compGeomPath string, addID bool, ack ports.AcknowledgerPort) *Session {
	return &Session{service: service, geometryPath: geometryPath, compGeomPath: compGeomPath, addID: addID, ack: ack}
}

// Restore seeds the session with a persisted snapshot that the next reload
// reconciles against.
func (s *Session) Restore(snapshot types.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot.Clone()
	s.restored = true
}

// Current returns copies of the published pair and whether a snapshot is
// held.
func (s *Session) Current() (types.Catalog, types.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone(), s.snapshot.Clone(), s.restored
}

// Reload extracts the geometry again and reconciles the current snapshot
// against it. Concurrent calls share one pass. On error the published pair
// is left as it was.
func (s *Session) Reload(ctx context.Context) (types.ReconcileReport, error) {
	v, err, shared := s.reloads.Do("reload", func() (any, error) {
		return s.reload(ctx)
	})
	if err != nil {
		return types.ReconcileReport{}, err
	}
	if shared {
		log.Ctx(ctx).Debug().Msg("reload shared with a concurrent caller")
	}
	return v.(types.ReconcileReport), nil
}

func (s *Session) reload(ctx context.Context) (types.ReconcileReport, error) {
	_, previous, hadSnapshot := s.Current()
	addID := s.addID || previous.Settings.Naming.AddID
	extraction, err := s.service.load(ctx, s.geometryPath, addID, s.compGeomPath)
	if err != nil {
		return types.ReconcileReport{}, err
	}

	catalog := extraction.Catalog
	snapshot := previous
	var report types.ReconcileReport
	if hadSnapshot {
		result, err := core.NewReconciler(s.ack, s.service.Versions).Reconcile(ctx, previous, catalog)
		if err != nil {
			return types.ReconcileReport{}, err
		}
		catalog = result.Catalog
		snapshot = s.service.rebuild(ctx, s.geometryPath, result, previous.Settings)
		report = result.Report
	}

	s.mu.Lock()
	s.catalog = catalog
	if hadSnapshot {
		s.snapshot = snapshot
	}
	s.mu.Unlock()
	log.Ctx(ctx).Info().
		Int("variables", len(catalog.Variables)).
		Int("warnings", len(report.Warnings)).
		Msg("geometry reloaded")
	return report, nil
}
