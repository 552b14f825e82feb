package automaton

// UnionNoRename merges lhs and rhs without touching any state identifier.
// The caller must ensure the two automata are state-disjoint (see
// AreStateDisjoint); otherwise a state shared by both acquires the union of
// its roles and transitions from either side.
func UnionNoRename(lhs, rhs *Nfa) *Nfa {
	out := New()
	for _, s := range lhs.Initial.Sorted() {
		out.AddInitial(s)
	}
	for _, s := range rhs.Initial.Sorted() {
		out.AddInitial(s)
	}
	for _, s := range lhs.Final.Sorted() {
		out.AddFinal(s)
	}
	for _, s := range rhs.Final.Sorted() {
		out.AddFinal(s)
	}
	for _, t := range lhs.Transitions() {
		out.AddTransition(t.Src, t.Symb, t.Tgt)
	}
	for _, t := range rhs.Transitions() {
		out.AddTransition(t.Src, t.Symb, t.Tgt)
	}
	return out
}

// UnionRename merges lhs and rhs after renaming every state to a fresh id.
// Each input gets its own rename dictionary, reset between the two, but
// both draw from one shared, monotonically increasing counter - which is
// what actually keeps their new ranges disjoint.
func UnionRename(lhs, rhs *Nfa) *Nfa {
	out := New()
	var nextID State

	renameInto := func(src *Nfa) {
		mapping := map[State]State{}
		get := func(s State) State {
			if id, ok := mapping[s]; ok {
				return id
			}
			id := nextID
			nextID++
			mapping[s] = id
			return id
		}
		for _, s := range src.AllStates().Sorted() {
			get(s)
		}
		for _, s := range src.Initial.Sorted() {
			out.AddInitial(get(s))
		}
		for _, s := range src.Final.Sorted() {
			out.AddFinal(get(s))
		}
		for _, t := range src.Transitions() {
			out.AddTransition(get(t.Src), t.Symb, get(t.Tgt))
		}
	}

	renameInto(lhs)
	renameInto(rhs)
	return out
}

// Intersection computes the product of lhs and rhs: a state of the result
// is a pair of states, one from each input, and is final iff both halves
// are final. If productMap is non-nil it is consulted and extended in
// place, so repeated calls with the same map reuse prior ids.
func Intersection(lhs, rhs *Nfa, productMap ProductMap) *Nfa {
	if productMap == nil {
		productMap = ProductMap{}
	}
	out := New()

	var nextID State
	for _, id := range productMap {
		if id >= nextID {
			nextID = id + 1
		}
	}

	getID := func(pair StatePair) (id State, isNew bool) {
		if id, ok := productMap[pair]; ok {
			return id, false
		}
		id = nextID
		nextID++
		productMap[pair] = id
		return id, true
	}

	type item struct {
		pair StatePair
		id   State
	}
	var queue []item
	seen := map[StatePair]bool{}

	for _, l := range lhs.Initial.Sorted() {
		for _, r := range rhs.Initial.Sorted() {
			pair := StatePair{l, r}
			id, _ := getID(pair)
			out.AddInitial(id)
			if lhs.Final.Has(l) && rhs.Final.Has(r) {
				out.AddFinal(id)
			}
			if !seen[pair] {
				seen[pair] = true
				queue = append(queue, item{pair, id})
			}
		}
	}

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		lBySym := lhs.post[cur.pair.L]
		rBySym := rhs.post[cur.pair.R]
		for _, sym := range sortedSymbols(lBySym) {
			rTgts, ok := rBySym[sym]
			if !ok {
				continue
			}
			lTgts := lBySym[sym]
			for _, lTgt := range lTgts.Sorted() {
				for _, rTgt := range rTgts.Sorted() {
					pair := StatePair{lTgt, rTgt}
					id, _ := getID(pair)
					out.AddTransition(cur.id, sym, id)
					if !seen[pair] {
						seen[pair] = true
						if lhs.Final.Has(lTgt) && rhs.Final.Has(rTgt) {
							out.AddFinal(id)
						}
						queue = append(queue, item{pair, id})
					}
				}
			}
		}
	}

	return out
}

// Revert reverses every transition and swaps the initial and final sets.
func Revert(aut *Nfa) *Nfa {
	out := New()
	for _, s := range aut.Final.Sorted() {
		out.AddInitial(s)
	}
	for _, s := range aut.Initial.Sorted() {
		out.AddFinal(s)
	}
	for _, t := range aut.Transitions() {
		out.AddTransition(t.Tgt, t.Symb, t.Src)
	}
	return out
}

// RemoveEpsilon eliminates transitions on eps by folding each state's
// epsilon-closure into its non-epsilon transitions and finality.
func RemoveEpsilon(aut *Nfa, eps Symbol) *Nfa {
	states := aut.AllStates().Sorted()

	closure := map[State]StateSet{}
	for _, s := range states {
		closure[s] = NewStateSet(s)
	}

	for changed := true; changed; {
		changed = false
		for _, s := range states {
			tgts, ok := aut.post[s][eps]
			if !ok {
				continue
			}
			for _, t := range tgts.Sorted() {
				before := len(closure[s])
				closure[s] = closure[s].Union(closure[t])
				if len(closure[s]) != before {
					changed = true
				}
			}
		}
	}

	out := New()
	for _, s := range aut.Initial.Sorted() {
		out.AddInitial(s)
	}
	for _, s := range states {
		for _, t := range closure[s].Sorted() {
			if aut.Final.Has(t) {
				out.AddFinal(s)
			}
			bySym := aut.post[t]
			for _, sym := range sortedSymbols(bySym) {
				if sym == eps {
					continue
				}
				for _, tgt := range bySym[sym].Sorted() {
					out.AddTransition(s, sym, tgt)
				}
			}
		}
	}
	return out
}
