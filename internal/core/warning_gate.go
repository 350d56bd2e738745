package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// warningGate records warnings and routes them to the acknowledger until it
// asks to ignore the rest of the pass.
type warningGate struct {
	ack      ports.AcknowledgerPort
	silenced bool
	warnings []types.Warning
}

func newWarningGate(ack ports.AcknowledgerPort) *warningGate {
	return &warningGate{ack: ack}
}

func (g *warningGate) warn(ctx context.Context, warning types.Warning) {
	g.warnings = append(g.warnings, warning)
	log.Ctx(ctx).Warn().Str("kind", string(warning.Kind)).Str("variable", warning.Variable).Msg(warning.Message)
	if g.silenced || g.ack == nil {
		return
	}
	if g.ack.Acknowledge(warning) {
		g.silenced = true
	}
}
