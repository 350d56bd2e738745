package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Variable is one named geometry parameter. Container, Group and Name form
// the full name, the identity that survives reloads; ID and Locator are
// document-specific and may change between loads.
type Variable struct {
	Container string
	Group     string
	Name      string
	ID        string
	Value     string
	Locator   string
	Selected  bool

	state       Classification
	sourceValue string
	hasSource   bool
}

func NewVariable(container, group, name, id, value string) Variable {
	return Variable{
		Container: container,
		Group:     group,
		Name:      name,
		ID:        id,
		Value:     value,
		state:     ClassificationInput,
	}
}

// FullName returns container:group:name.
func (v Variable) FullName() string {
	return v.Container + ":" + v.Group + ":" + v.Name
}

func (v Variable) Classification() Classification {
	if v.state == "" {
		return ClassificationInput
	}
	return v.state
}

// IsOutput reports whether the variable is exposed as a workflow output,
// which holds for both Output and MCOutput.
func (v Variable) IsOutput() bool {
	return v.Classification() != ClassificationInput
}

// SetClassification assigns a classification. Once a variable is Output it
// stays Output.
func (v *Variable) SetClassification(c Classification) error {
	if _, ok := ParseClassification(string(c)); !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown classification %q for %s", c, v.FullName()))
	}
	if v.Classification() == ClassificationOutput && c != ClassificationOutput {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s is an output and cannot become %s", v.FullName(), c))
	}
	v.state = c
	return nil
}

// Toggle flips Input and MCOutput and selects the variable. Output variables
// are left untouched and false is returned.
func (v *Variable) Toggle() bool {
	switch v.Classification() {
	case ClassificationInput:
		v.state = ClassificationMCOutput
	case ClassificationMCOutput:
		v.state = ClassificationInput
	default:
		return false
	}
	v.Selected = true
	return true
}

// SourceValue returns the last value known to be in the geometry document.
func (v Variable) SourceValue() (string, bool) {
	return v.sourceValue, v.hasSource
}

func (v *Variable) SetSourceValue(value string) {
	v.sourceValue = value
	v.hasSource = true
}

// DisplayName derives the label used both in listings and as the external
// workflow variable name.
func (v Variable) DisplayName(opts NamingOptions) string {
	sep := "."
	prefix := ""
	if opts.GroupOutputs {
		if v.IsOutput() {
			prefix = "Output" + sep
		} else {
			prefix = "Input" + sep
		}
	}
	if opts.FlatNames {
		sep = "_"
	}
	var name string
	if v.Container == v.Group {
		name = prefix + v.Container + sep + v.Name
	} else {
		name = prefix + v.Container + sep + v.Group + sep + v.Name
	}
	if opts.AddID {
		name += "_" + v.ID
	}
	return name
}

// MatchKey is the primary reconciliation key: the hierarchical name with the
// id suffix.
func (v Variable) MatchKey() string {
	return v.DisplayName(NamingOptions{AddID: true})
}

// StableKey is the id-free hierarchical name, stable across reloads.
func (v Variable) StableKey() string {
	return v.DisplayName(NamingOptions{})
}

func (v Variable) String() string {
	return v.Name + " " + v.Value
}
