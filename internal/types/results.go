package types

// ResultSet is an insertion-ordered map of computed values keyed by
// bucket:qualifier:field.
type ResultSet struct {
	keys   []string
	values map[string]string
}

func NewResultSet() ResultSet {
	return ResultSet{values: map[string]string{}}
}

// Put stores value under key. Re-putting a key keeps its first position.
func (r *ResultSet) Put(key string, value string) {
	if r.values == nil {
		r.values = map[string]string{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r ResultSet) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

func (r ResultSet) Keys() []string {
	return append([]string(nil), r.keys...)
}

func (r ResultSet) Len() int {
	return len(r.keys)
}

// Merge appends other's entries after r's.
func (r *ResultSet) Merge(other ResultSet) {
	for _, key := range other.keys {
		r.Put(key, other.values[key])
	}
}
