package adapters

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vspcatalog/internal/policies"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// PolicyAcknowledger answers reconciliation questions without a user:
// warnings are never silenced and substitutions follow the prompt mode.
type PolicyAcknowledger struct {
	Mode policies.PromptMode
}

func NewPolicyAcknowledger(mode policies.PromptMode) PolicyAcknowledger {
	return PolicyAcknowledger{Mode: mode}
}

func (a PolicyAcknowledger) Acknowledge(types.Warning) bool {
	return false
}

func (a PolicyAcknowledger) ConfirmSubstitution(string, string) bool {
	return a.Mode == policies.PromptAccept
}

// TerminalAcknowledger asks on a terminal. End of input answers no.
type TerminalAcknowledger struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalAcknowledger(in io.Reader, out io.Writer) *TerminalAcknowledger {
	return &TerminalAcknowledger{in: bufio.NewReader(in), out: out}
}

func (a *TerminalAcknowledger) Acknowledge(warning types.Warning) bool {
	fmt.Fprintf(a.out, "%s\n", warning.Message)
	return a.ask("Ignore all other warnings?")
}

func (a *TerminalAcknowledger) ConfirmSubstitution(missing string, candidate string) bool {
	return a.ask(fmt.Sprintf("Could not find %s. Replace with %s?", missing, candidate))
}

func (a *TerminalAcknowledger) ask(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N] ", question)
	answer, err := a.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// NewAcknowledger picks the acknowledger for mode.
func NewAcknowledger(mode policies.PromptMode, in io.Reader, out io.Writer) ports.AcknowledgerPort {
	if mode == policies.PromptInteractive {
		return NewTerminalAcknowledger(in, out)
	}
	return NewPolicyAcknowledger(mode)
}

var (
	_ ports.AcknowledgerPort = PolicyAcknowledger{}
	_ ports.AcknowledgerPort = (*TerminalAcknowledger)(nil)
)
