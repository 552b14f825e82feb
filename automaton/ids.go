package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// State is an opaque, nonnegative integer state identifier.
type State int

// Symbol is an opaque, nonnegative integer symbol identifier.
type Symbol int

// Trans is a single (source, symbol, target) transition. It is comparable
// and can be used directly as a map key or set element.
type Trans struct {
	Src  State
	Symb Symbol
	Tgt  State
}

// StatePair keys a ProductMap; comparable, so Go's own map hashing does the
// tuple hashing for us.
type StatePair struct {
	L, R State
}

// ProductMap remembers which pair of states a product construction folded
// into which resulting state.
type ProductMap map[StatePair]State

// StateSet is an unordered collection of states. Ranging over it directly
// has no defined order; Sorted and Key present its members in ascending id
// order.
type StateSet map[State]struct{}

// NewStateSet builds a StateSet from the given states.
func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Add inserts a state, a no-op if already present.
func (s StateSet) Add(st State) { s[st] = struct{}{} }

// Has reports whether st is a member.
func (s StateSet) Has(st State) bool {
	_, ok := s[st]
	return ok
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a canonical string representation, suitable for use as a map
// key when a set itself must be a lookup key (see SubsetMap).
func (s StateSet) Key() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}

// Union returns a new set containing the members of both.
func (s StateSet) Union(other StateSet) StateSet {
	out := make(StateSet, len(s)+len(other))
	for st := range s {
		out[st] = struct{}{}
	}
	for st := range other {
		out[st] = struct{}{}
	}
	return out
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s StateSet) IsSubsetOf(other StateSet) bool {
	for st := range s {
		if !other.Has(st) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one member.
func (s StateSet) Intersects(other StateSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for st := range small {
		if big.Has(st) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for st := range s {
		out[st] = struct{}{}
	}
	return out
}

func sortedSymbols(m map[Symbol]StateSet) []Symbol {
	out := make([]Symbol, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
