package types

// Selection is the manifest form of a user's checked variables.
type Selection struct {
	Variables []SelectionEntry `yaml:"variables"`
}

// SelectionEntry selects every catalog variable whose full name matches
// Name (glob patterns allowed). ID narrows the match when ids are shown.
type SelectionEntry struct {
	Name  string         `yaml:"name"`
	ID    string         `yaml:"id,omitempty"`
	Value string         `yaml:"value,omitempty"`
	State Classification `yaml:"state,omitempty"`
}
