package automaton

import "sort"

type subsetEntry struct {
	set StateSet
	id  State
}

// SubsetMap remembers which subset of the original automaton's states a
// determinization step folded into which resulting state, keyed by the
// subset's canonical (sorted, comma-joined) string.
type SubsetMap struct {
	byKey map[string]subsetEntry
}

// NewSubsetMap returns an empty subset map.
func NewSubsetMap() *SubsetMap {
	return &SubsetMap{byKey: map[string]subsetEntry{}}
}

func (m *SubsetMap) getOrAllocate(s StateSet) (State, bool) {
	key := s.Key()
	if e, ok := m.byKey[key]; ok {
		return e.id, false
	}
	id := State(len(m.byKey))
	m.byKey[key] = subsetEntry{set: s.Clone(), id: id}
	return id, true
}

// Lookup returns the id assigned to s, if any.
func (m *SubsetMap) Lookup(s StateSet) (State, bool) {
	e, ok := m.byKey[s.Key()]
	return e.id, ok
}

// Each visits every (subset, id) pair, ascending by id.
func (m *SubsetMap) Each(fn func(StateSet, State)) {
	entries := make([]subsetEntry, 0, len(m.byKey))
	for _, e := range m.byKey {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	for _, e := range entries {
		fn(e.set, e.id)
	}
}

// Determinize performs subset construction. The initial subset (the
// automaton's own initial states) is assigned id 0; further subsets are
// assigned ids lazily, in the order they are first reached. If subsetMap is
// non-nil it is populated (and consulted first, so an already-known subset
// keeps its id). The second return value is the highest id allocated.
func Determinize(aut *Nfa, subsetMap *SubsetMap) (*Nfa, State) {
	if subsetMap == nil {
		subsetMap = NewSubsetMap()
	}
	out := New()

	initSet := aut.Initial.Clone()
	initID, _ := subsetMap.getOrAllocate(initSet)
	out.AddInitial(initID)

	lastID := initID
	queue := []StateSet{initSet}
	processed := map[string]bool{}

	for i := 0; i < len(queue); i++ {
		S := queue[i]
		key := S.Key()
		if processed[key] {
			continue
		}
		processed[key] = true

		id, _ := subsetMap.getOrAllocate(S)
		if id > lastID {
			lastID = id
		}
		if S.Intersects(aut.Final) {
			out.AddFinal(id)
		}

		symbols := map[Symbol]struct{}{}
		for s := range S {
			for sym := range aut.post[s] {
				symbols[sym] = struct{}{}
			}
		}
		symList := make([]Symbol, 0, len(symbols))
		for sym := range symbols {
			symList = append(symList, sym)
		}
		sort.Slice(symList, func(a, b int) bool { return symList[a] < symList[b] })

		for _, sym := range symList {
			Sp := aut.PostOnSymbol(S, sym)
			if len(Sp) == 0 {
				continue
			}
			spID, _ := subsetMap.getOrAllocate(Sp)
			if spID > lastID {
				lastID = spID
			}
			out.AddTransition(id, sym, spID)
			if !processed[Sp.Key()] {
				queue = append(queue, Sp)
			}
		}
	}

	return out, lastID
}

// MakeComplete adds, for every reachable state and every symbol missing
// from its outgoing transitions, a transition to sink. sink itself is
// completed with a self-loop on every symbol, so it must not already be a
// meaningful state of aut.
func MakeComplete(aut *Nfa, alphabet Alphabet, sink State) error {
	visited := NewStateSet()
	queue := aut.Initial.Sorted()
	for _, s := range queue {
		visited.Add(s)
	}
	if !visited.Has(sink) {
		visited.Add(sink)
		queue = append(queue, sink)
	}

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		used := make([]Symbol, 0, len(aut.post[cur]))
		for sym := range aut.post[cur] {
			used = append(used, sym)
		}
		missing, err := alphabet.Complement(used)
		if err != nil {
			return err
		}
		for _, sym := range missing {
			aut.AddTransition(cur, sym, sink)
		}

		for _, sym := range sortedSymbols(aut.post[cur]) {
			for _, t := range aut.post[cur][sym].Sorted() {
				if !visited.Has(t) {
					visited.Add(t)
					queue = append(queue, t)
				}
			}
		}
	}
	return nil
}

// Complement determinizes aut, completes it against alphabet with a fresh
// sink state, and flips which states are final. params is reserved for
// future algorithm selection; only the classical algorithm is implemented.
func Complement(aut *Nfa, alphabet Alphabet, params Params, subsetMap *SubsetMap) (*Nfa, error) {
	det, lastID := Determinize(aut, subsetMap)
	sink := lastID + 1
	if err := MakeComplete(det, alphabet, sink); err != nil {
		return nil, err
	}
	newFinal := NewStateSet()
	for _, s := range det.AllStates().Sorted() {
		if !det.Final.Has(s) {
			newFinal.Add(s)
		}
	}
	det.Final = newFinal
	return det, nil
}
