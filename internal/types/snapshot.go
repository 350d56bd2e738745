package types

// Settings are the global options persisted alongside a selection.
type Settings struct {
	Naming    NamingOptions
	Epsilon   *float64
	SetID     int
	NApplyDes int
}

// DefaultSettings mirrors what a snapshot without the attributes decodes to.
func DefaultSettings() Settings {
	return Settings{SetID: 1, NApplyDes: 1}
}

// Versions are the stamps recorded when a snapshot is built.
type Versions struct {
	Tool     string
	External string
	LogLevel string
}

// Snapshot is a persisted selection: copies of the selected variables plus
// settings and version stamps. Its variables never alias a catalog.
type Snapshot struct {
	Filename  string
	Variables []Variable
	Settings  Settings
	Versions  Versions
}

func (s Snapshot) Clone() Snapshot {
	out := s
	out.Variables = append([]Variable(nil), s.Variables...)
	if s.Settings.Epsilon != nil {
		eps := *s.Settings.Epsilon
		out.Settings.Epsilon = &eps
	}
	return out
}

// FullNames lists the full names of the snapshot's variables in order.
func (s Snapshot) FullNames() []string {
	names := make([]string, 0, len(s.Variables))
	for _, v := range s.Variables {
		names = append(names, v.FullName())
	}
	return names
}

// Inputs returns the variables applied to the geometry, in snapshot order.
func (s Snapshot) Inputs() []Variable {
	var out []Variable
	for _, v := range s.Variables {
		if !v.IsOutput() {
			out = append(out, v)
		}
	}
	return out
}

// WithID returns the variables whose ID equals id.
func (s Snapshot) WithID(id string) []Variable {
	var out []Variable
	for _, v := range s.Variables {
		if v.ID == id {
			out = append(out, v)
		}
	}
	return out
}
