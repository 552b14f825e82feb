package automaton

// ForwardReachable returns every state reachable from the initial states by
// following any sequence of transitions.
func ForwardReachable(aut *Nfa) StateSet {
	visited := NewStateSet()
	queue := aut.Initial.Sorted()
	for _, s := range queue {
		visited.Add(s)
	}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, sym := range sortedSymbols(aut.post[cur]) {
			for _, t := range aut.post[cur][sym].Sorted() {
				if !visited.Has(t) {
					visited.Add(t)
					queue = append(queue, t)
				}
			}
		}
	}
	return visited
}

// shortestPathToFinal returns the states along a shortest initial-to-final
// path (inclusive of both ends), or (nil, false) if the language is empty.
func shortestPathToFinal(aut *Nfa) ([]State, bool) {
	parent := map[State]State{}
	visited := NewStateSet()
	var queue []State

	for _, s := range aut.Initial.Sorted() {
		if !visited.Has(s) {
			visited.Add(s)
			parent[s] = s
			queue = append(queue, s)
		}
	}

	var final State
	found := false
	for _, s := range queue {
		if aut.Final.Has(s) {
			final, found = s, true
			break
		}
	}

	for i := 0; i < len(queue) && !found; i++ {
		cur := queue[i]
		for _, sym := range sortedSymbols(aut.post[cur]) {
			for _, t := range aut.post[cur][sym].Sorted() {
				if visited.Has(t) {
					continue
				}
				visited.Add(t)
				parent[t] = cur
				queue = append(queue, t)
				if aut.Final.Has(t) {
					final, found = t, true
					break
				}
			}
			if found {
				break
			}
		}
	}

	if !found {
		return nil, false
	}

	path := []State{final}
	cur := final
	for parent[cur] != cur {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// PathToWord reconstructs a word that drives aut along the given sequence
// of states, picking the smallest symbol available between each pair. It
// fails if some consecutive pair has no direct transition.
func PathToWord(aut *Nfa, path []State) ([]Symbol, bool) {
	if len(path) == 0 {
		return []Symbol{}, true
	}
	word := make([]Symbol, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		cur, next := path[i], path[i+1]
		bySym := aut.post[cur]
		found := false
		for _, sym := range sortedSymbols(bySym) {
			if bySym[sym].Has(next) {
				word = append(word, sym)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return word, true
}
