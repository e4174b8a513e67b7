package relation

import "sort"

// Kind is a semantic relation between two words, e.g. synonymy.
// The string value is the name persisted in the table 'relation_type'.
type Kind string

const (
	Synonymy         Kind = "synonymy"
	Antonymy         Kind = "antonymy"
	Hypernymy        Kind = "hypernymy"
	Hyponymy         Kind = "hyponymy"
	Holonymy         Kind = "holonymy"
	Meronymy         Kind = "meronymy"
	Troponymy        Kind = "troponymy"
	CoordinateTerm   Kind = "coordinate_term"
	OtherwiseRelated Kind = "otherwise_related"
)

var kinds = map[Kind]struct{}{
	Synonymy:         {},
	Antonymy:         {},
	Hypernymy:        {},
	Hyponymy:         {},
	Holonymy:         {},
	Meronymy:         {},
	Troponymy:        {},
	CoordinateTerm:   {},
	OtherwiseRelated: {},
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	k := Kind(name)
	if !k.Valid() {
		return "", false
	}
	return k, true
}

// AllKinds returns every kind sorted by name.
func AllKinds() []Kind {
	all := make([]Kind, 0, len(kinds))
	for k := range kinds {
		all = append(all, k)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Size is the number of kinds in the enumeration.
func Size() int {
	return len(kinds)
}
