package utils

// Set is a set of strings, used for keyword lookups.
type Set map[string]struct{}

func (s Set) Add(key string) { s[key] = struct{}{} }

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

// NewSet returns a set containing [values].
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// IsIn returns true if [s] is one of [l].
func IsIn(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
