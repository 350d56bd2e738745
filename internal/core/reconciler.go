package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"vspcatalog/internal/policies"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// Reconciler restores a persisted selection onto a freshly extracted
// catalog.
type Reconciler struct {
	ack     ports.AcknowledgerPort
	running types.Versions
}

func NewReconciler(ack ports.AcknowledgerPort, running types.Versions) Reconciler {
	return Reconciler{ack: ack, running: running}
}

// Reconcile matches every snapshot record against catalog. Both inputs are
// left untouched; the result carries a reconciled copy of each.
func (r Reconciler) Reconcile(ctx context.Context, snapshot types.Snapshot, catalog types.Catalog) (types.ReconcileResult, error) {
	out := catalog.Clone()
	out.ClearSelection()
	snap := snapshot.Clone()
	gate := newWarningGate(r.ack)
	report := types.ReconcileReport{}

	if StampChanged(snap.Versions.Tool, r.running.Tool) || StampChanged(snap.Versions.External, r.running.External) {
		gate.warn(ctx, types.Warning{
			Kind: types.WarningVersionMismatch,
			Message: fmt.Sprintf("state written by %s with geometry tool %s, running %s (%s) with geometry tool %s (%s)",
				snap.Versions.Tool, snap.Versions.External,
				r.running.Tool, describeStamp(snap.Versions.Tool, r.running.Tool),
				r.running.External, describeStamp(snap.Versions.External, r.running.External)),
		})
	}

	primary := out.Index(types.Variable.MatchKey)
	secondary := out.Index(types.Variable.StableKey)

	for i := range snap.Variables {
		record := &snap.Variables[i]
		matches := primary[record.MatchKey()]
		switch len(matches) {
		case 1:
			if err := r.restore(ctx, gate, record, &out.Variables[matches[0]]); err != nil {
				return types.ReconcileResult{}, err
			}
			report.Matched++
			continue
		case 0:
			candidates := secondary[record.StableKey()]
			if len(candidates) == 1 {
				candidate := &out.Variables[candidates[0]]
				accepted := r.ack != nil && r.ack.ConfirmSubstitution(record.MatchKey(), candidate.MatchKey())
				report.Substitutions = append(report.Substitutions, types.Substitution{
					Missing:   record.MatchKey(),
					Candidate: candidate.MatchKey(),
					Accepted:  accepted,
				})
				if accepted {
					if err := r.restore(ctx, gate, record, candidate); err != nil {
						return types.ReconcileResult{}, err
					}
					report.Matched++
					continue
				}
			}
			kind := types.WarningNotFound
			if len(candidates) > 1 {
				kind = types.WarningAmbiguous
			}
			gate.warn(ctx, types.Warning{
				Kind:     kind,
				Variable: record.MatchKey(),
				Message:  fmt.Sprintf("could not find %s (%d candidates)", record.MatchKey(), len(candidates)),
			})
		default:
			gate.warn(ctx, types.Warning{
				Kind:     types.WarningDuplicate,
				Variable: record.MatchKey(),
				Message:  fmt.Sprintf("found %d variables named %s", len(matches), record.MatchKey()),
			})
		}
		report.Unselected = append(report.Unselected, record.MatchKey())
	}

	report.Warnings = gate.warnings
	report.Silenced = gate.silenced
	log.Ctx(ctx).Debug().
		Int("matched", report.Matched).
		Int("warnings", len(report.Warnings)).
		Int("unselected", len(report.Unselected)).
		Msg("snapshot reconciled")
	return types.ReconcileResult{Catalog: out, Snapshot: snap, Report: report}, nil
}

// restore copies a record onto its catalog match under the drift policy and
// then back-fills the record.
func (r Reconciler) restore(ctx context.Context, gate *warningGate, record *types.Variable, target *types.Variable) error {
	prior := *target
	decision := policies.ResolveClassification(record.Classification(), target.Classification())
	switch decision.Action {
	case policies.DriftWarn:
		gate.warn(ctx, types.Warning{
			Kind:     types.WarningDrift,
			Variable: record.MatchKey(),
			Message:  fmt.Sprintf("%s %s", record.MatchKey(), decision.Reason),
		})
	case policies.DriftRestoreToggle:
		if err := target.SetClassification(decision.Classification); err != nil {
			return err
		}
	}
	if decision.ApplyValue {
		target.Value = record.Value
	}
	target.Selected = true
	backfillSnapshotRecord(record, prior)
	return nil
}

// backfillSnapshotRecord stores what the catalog knew about the matched
// variable before the record was applied: its value becomes the record's
// source value and its locator and id replace the record's, so a later
// reconcile of the written state matches directly.
func backfillSnapshotRecord(record *types.Variable, matched types.Variable) {
	record.SetSourceValue(matched.Value)
	record.Locator = matched.Locator
	record.ID = matched.ID
}

// RetainUnmatched appends the records a reconcile pass could not place to
// rebuilt, in snapshot order. A variable that is missing from one load then
// comes back when a later load has it again.
func RetainUnmatched(ctx context.Context, rebuilt types.Snapshot, result types.ReconcileResult) types.Snapshot {
	if len(result.Report.Unselected) == 0 {
		return rebuilt
	}
	out := rebuilt.Clone()
	unmatched := make(map[string]struct{}, len(result.Report.Unselected))
	for _, key := range result.Report.Unselected {
		unmatched[key] = struct{}{}
	}
	present := make(map[string]struct{}, len(out.Variables))
	for _, v := range out.Variables {
		present[v.FullName()] = struct{}{}
	}
	retained := 0
	for _, record := range result.Snapshot.Variables {
		if _, ok := unmatched[record.MatchKey()]; !ok {
			continue
		}
		if _, ok := present[record.FullName()]; ok {
			continue
		}
		record.Selected = true
		out.Variables = append(out.Variables, record)
		present[record.FullName()] = struct{}{}
		retained++
	}
	log.Ctx(ctx).Debug().Int("retained", retained).Msg("unmatched records carried forward")
	return out
}
