package automaton

import "sort"

// Nfa is a nondeterministic finite automaton: an indexed transition table
// plus initial and final state sets. The zero value is not usable; build
// one with New or Construct.
type Nfa struct {
	Initial StateSet
	Final   StateSet

	post map[State]map[Symbol]StateSet
}

// New returns an empty automaton.
func New() *Nfa {
	return &Nfa{
		Initial: NewStateSet(),
		Final:   NewStateSet(),
		post:    map[State]map[Symbol]StateSet{},
	}
}

// AddInitial marks s as an initial state.
func (n *Nfa) AddInitial(s State) { n.Initial.Add(s) }

// AddFinal marks s as a final (accepting) state.
func (n *Nfa) AddFinal(s State) { n.Final.Add(s) }

// AddTransition records src --symb--> tgt. Adding the same transition twice
// is a no-op.
func (n *Nfa) AddTransition(src State, symb Symbol, tgt State) {
	bySym, ok := n.post[src]
	if !ok {
		bySym = map[Symbol]StateSet{}
		n.post[src] = bySym
	}
	tgts, ok := bySym[symb]
	if !ok {
		tgts = NewStateSet()
		bySym[symb] = tgts
	}
	tgts.Add(tgt)
}

// HasTransition reports whether src --symb--> tgt is present.
func (n *Nfa) HasTransition(src State, symb Symbol, tgt State) bool {
	bySym, ok := n.post[src]
	if !ok {
		return false
	}
	tgts, ok := bySym[symb]
	if !ok {
		return false
	}
	return tgts.Has(tgt)
}

// TransitionCount returns the total number of (src, symbol, tgt) triples.
func (n *Nfa) TransitionCount() int {
	c := 0
	for _, bySym := range n.post {
		for _, tgts := range bySym {
			c += len(tgts)
		}
	}
	return c
}

// Post returns a defensive copy of state's outgoing symbol-to-targets
// mapping. Mutating the result never affects the automaton.
func (n *Nfa) Post(state State) map[Symbol]StateSet {
	out := map[Symbol]StateSet{}
	bySym, ok := n.post[state]
	if !ok {
		return out
	}
	for sym, tgts := range bySym {
		out[sym] = tgts.Clone()
	}
	return out
}

// PostOnSymbol returns the union of the targets of every state in states
// over the single symbol symb.
func (n *Nfa) PostOnSymbol(states StateSet, symb Symbol) StateSet {
	out := NewStateSet()
	for s := range states {
		if bySym, ok := n.post[s]; ok {
			if tgts, ok := bySym[symb]; ok {
				for t := range tgts {
					out.Add(t)
				}
			}
		}
	}
	return out
}

// Transitions flattens the transition table into a slice, ascending by
// (src, symbol, tgt).
func (n *Nfa) Transitions() []Trans {
	srcs := make([]State, 0, len(n.post))
	for s := range n.post {
		srcs = append(srcs, s)
	}
	sort.Slice(srcs, func(i, j int) bool { return srcs[i] < srcs[j] })

	var out []Trans
	for _, s := range srcs {
		bySym := n.post[s]
		for _, sym := range sortedSymbols(bySym) {
			for _, t := range bySym[sym].Sorted() {
				out = append(out, Trans{Src: s, Symb: sym, Tgt: t})
			}
		}
	}
	return out
}

// AllStates returns the union of the initial states, the final states,
// every transition source and every transition target.
func (n *Nfa) AllStates() StateSet {
	out := n.Initial.Union(n.Final)
	for src, bySym := range n.post {
		out.Add(src)
		for _, tgts := range bySym {
			for t := range tgts {
				out.Add(t)
			}
		}
	}
	return out
}
