package ports

import "vspcatalog/internal/types"

// AcknowledgerPort is the caller-owned conflict gate used during
// reconciliation and verification.
type AcknowledgerPort interface {
	// Acknowledge presents a warning. Returning true silences the remaining
	// warnings of the current pass; they are still recorded in the report.
	Acknowledge(warning types.Warning) (ignoreRemaining bool)
	// ConfirmSubstitution asks whether candidate may stand in for a
	// snapshot variable that has no exact match.
	ConfirmSubstitution(missing string, candidate string) bool
}
