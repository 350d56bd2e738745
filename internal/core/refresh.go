package core

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"vspcatalog/internal/ports"
	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

// Refresher reads values back from the geometry written after the design
// file was applied.
type Refresher struct {
	ack ports.AcknowledgerPort
}

func NewRefresher(ack ports.AcknowledgerPort) Refresher {
	return Refresher{ack: ack}
}

// Refresh updates every located output of snapshot from doc. When the
// snapshot has a match tolerance, each located input is also checked
// against doc and an input_not_applied warning is raised when they differ
// by more than the tolerance.
func (r Refresher) Refresh(ctx context.Context, snapshot types.Snapshot, doc ports.DocumentPort) (types.Snapshot, []types.Warning, error) {
	out := snapshot.Clone()
	refreshed := 0
	for i := range out.Variables {
		v := &out.Variables[i]
		if !v.IsOutput() || v.Locator == "" {
			continue
		}
		value, _, err := documentValue(doc, v.Locator)
		if err != nil {
			return snapshot, nil, err
		}
		v.Value = strconv.FormatFloat(value, 'f', 6, 64)
		v.SetSourceValue(v.Value)
		refreshed++
	}

	gate := newWarningGate(r.ack)
	if eps := out.Settings.Epsilon; eps != nil {
		tolerance := math.Abs(*eps)
		for _, v := range out.Variables {
			if v.IsOutput() || v.Locator == "" {
				continue
			}
			applied, raw, err := documentValue(doc, v.Locator)
			if err != nil {
				return snapshot, nil, err
			}
			requested, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
			if err != nil {
				return snapshot, nil, shared.SchemaViolation("%s: value %q is not numeric", v.FullName(), v.Value)
			}
			if math.Abs(applied-requested) > tolerance {
				gate.warn(ctx, types.Warning{
					Kind:     types.WarningInputNotApplied,
					Variable: v.FullName(),
					Message:  fmt.Sprintf("%s not applied: design file = %s, geometry = %s", v.FullName(), v.Value, raw),
				})
			}
		}
	}
	log.Ctx(ctx).Debug().Int("refreshed", refreshed).Int("warnings", len(gate.warnings)).Msg("state refreshed from geometry")
	return out, gate.warnings, nil
}

func documentValue(doc ports.DocumentPort, locator string) (float64, string, error) {
	node, ok := doc.Node(locator)
	if !ok {
		return 0, "", shared.SchemaViolation("nothing found at %s", locator)
	}
	raw := doc.Attr(node, "Value", "")
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, raw, shared.SchemaViolation("%s: value %q is not numeric", locator, raw)
	}
	return value, raw, nil
}
