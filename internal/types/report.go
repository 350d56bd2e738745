package types

// Warning is a recoverable condition found while reconciling or verifying a
// snapshot. Warnings are reported, never returned as errors.
type Warning struct {
	Kind     WarningKind
	Variable string
	Message  string
}

func (w Warning) String() string {
	return string(w.Kind) + ": " + w.Message
}

// Substitution records a secondary-key match offered during reconciliation.
type Substitution struct {
	Missing   string
	Candidate string
	Accepted  bool
}

type ReconcileReport struct {
	Matched       int
	Warnings      []Warning
	Substitutions []Substitution
	Unselected    []string
	// Silenced is set once the acknowledger asked to ignore the remaining
	// warnings of the pass.
	Silenced bool
}

// ReconcileResult carries the reconciled catalog and the back-filled
// snapshot. Neither shares storage with the inputs.
type ReconcileResult struct {
	Catalog  Catalog
	Snapshot Snapshot
	Report   ReconcileReport
}
