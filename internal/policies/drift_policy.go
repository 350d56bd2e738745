package policies

import (
	"fmt"

	"vspcatalog/internal/types"
)

type DriftAction string

const (
	// DriftNone: classifications agree.
	DriftNone DriftAction = "none"
	// DriftRestoreToggle: the snapshot carries a user toggle the fresh
	// catalog does not know about yet.
	DriftRestoreToggle DriftAction = "restore-toggle"
	// DriftAccept: a computed variable became an input. Accepted silently;
	// the catalog keeps its classification and value.
	DriftAccept DriftAction = "accept"
	// DriftWarn: any other disagreement. Needs acknowledgement; the value is
	// applied and the catalog keeps its classification.
	DriftWarn DriftAction = "warn"
)

// DriftDecision is the outcome of comparing a snapshot record's
// classification with its catalog match.
type DriftDecision struct {
	Action         DriftAction
	Classification types.Classification
	ApplyValue     bool
	Reason         string
}

// ResolveClassification decides how a snapshot classification is applied to
// the matching catalog variable.
func ResolveClassification(snapshot types.Classification, catalog types.Classification) DriftDecision {
	switch {
	case snapshot == catalog:
		return DriftDecision{Action: DriftNone, Classification: catalog, ApplyValue: true}
	case snapshot == types.ClassificationMCOutput && catalog == types.ClassificationInput:
		return DriftDecision{
			Action:         DriftRestoreToggle,
			Classification: types.ClassificationMCOutput,
			ApplyValue:     true,
		}
	case snapshot == types.ClassificationOutput && catalog == types.ClassificationInput:
		return DriftDecision{
			Action:         DriftAccept,
			Classification: catalog,
			ApplyValue:     false,
			Reason:         "output became input",
		}
	default:
		return DriftDecision{
			Action:         DriftWarn,
			Classification: catalog,
			ApplyValue:     true,
			Reason:         fmt.Sprintf("changed from %s to %s", snapshot, catalog),
		}
	}
}
