package automaton

import "fmt"

// IsLanguageEmpty reports whether aut accepts no word. When it does not,
// the second return value is a shortest initial-to-final witness path.
func IsLanguageEmpty(aut *Nfa) (bool, []State) {
	path, ok := shortestPathToFinal(aut)
	if !ok {
		return true, nil
	}
	return false, path
}

// IsLanguageEmptyCex is IsLanguageEmpty with the witness path reconstructed
// into a word. A witness path that cannot be turned into a word indicates a
// broken pairing between shortestPathToFinal and PathToWord, which should
// be unreachable.
func IsLanguageEmptyCex(aut *Nfa) (bool, []Symbol) {
	empty, path := IsLanguageEmpty(aut)
	if empty {
		return true, nil
	}
	word, ok := PathToWord(aut, path)
	if !ok {
		panic(fmt.Sprintf("automaton: witness path %v has no corresponding word", path))
	}
	return false, word
}

// IsInLanguage reports whether aut accepts word exactly.
func IsInLanguage(aut *Nfa, word []Symbol) bool {
	current := aut.Initial.Clone()
	for _, sym := range word {
		current = aut.PostOnSymbol(current, sym)
		if len(current) == 0 {
			return false
		}
	}
	return current.Intersects(aut.Final)
}

// IsPrefixInLanguage reports whether some prefix of word (including the
// empty prefix) is accepted by aut.
func IsPrefixInLanguage(aut *Nfa, word []Symbol) bool {
	current := aut.Initial.Clone()
	if current.Intersects(aut.Final) {
		return true
	}
	for _, sym := range word {
		current = aut.PostOnSymbol(current, sym)
		if len(current) == 0 {
			return false
		}
		if current.Intersects(aut.Final) {
			return true
		}
	}
	return false
}

// AcceptsEpsilon reports whether the empty word is accepted.
func AcceptsEpsilon(aut *Nfa) bool {
	return aut.Initial.Intersects(aut.Final)
}

// IsDeterministic reports whether aut has exactly one initial state and
// every (state, symbol) pair has at most one target.
func IsDeterministic(aut *Nfa) bool {
	if len(aut.Initial) != 1 {
		return false
	}
	for _, bySym := range aut.post {
		for _, tgts := range bySym {
			if len(tgts) != 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every state reachable from the initial states
// has an outgoing transition for every symbol in alphabet. It fails if a
// reachable transition uses a symbol outside alphabet.
func IsComplete(aut *Nfa, alphabet Alphabet) (bool, error) {
	symbols, err := alphabet.Enumerate()
	if err != nil {
		return false, err
	}
	inAlphabet := make(map[Symbol]bool, len(symbols))
	for _, s := range symbols {
		inAlphabet[s] = true
	}

	visited := NewStateSet()
	queue := aut.Initial.Sorted()
	for _, s := range queue {
		visited.Add(s)
	}

	complete := true
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		bySym := aut.post[cur]
		for sym := range bySym {
			if !inAlphabet[sym] {
				return false, fmt.Errorf("encountered a symbol that is not in the provided alphabet")
			}
		}
		for _, sym := range symbols {
			tgts, ok := bySym[sym]
			if !ok || len(tgts) == 0 {
				complete = false
				continue
			}
			for _, t := range tgts.Sorted() {
				if !visited.Has(t) {
					visited.Add(t)
					queue = append(queue, t)
				}
			}
		}
	}
	return complete, nil
}

// AreStateDisjoint reports whether lhs and rhs share no state identifier.
func AreStateDisjoint(lhs, rhs *Nfa) bool {
	return !lhs.AllStates().Intersects(rhs.AllStates())
}
