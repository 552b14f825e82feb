package automaton

import "fmt"

// IsUniversal reports whether aut accepts every word over alphabet.
// params["algo"] selects "antichains" (default) or "classical"; any other
// value falls back to antichains.
func IsUniversal(aut *Nfa, alphabet Alphabet, params Params) (bool, []Symbol, error) {
	switch algoOf(params, "antichains") {
	case "classical":
		return isUniversalClassical(aut, alphabet)
	default:
		return isUniversalAntichain(aut, alphabet)
	}
}

func isUniversalClassical(aut *Nfa, alphabet Alphabet) (bool, []Symbol, error) {
	comp, err := Complement(aut, alphabet, nil, nil)
	if err != nil {
		return false, nil, err
	}
	empty, word := IsLanguageEmptyCex(comp)
	if empty {
		return true, nil, nil
	}
	return false, word, nil
}

func isUniversalAntichain(aut *Nfa, alphabet Alphabet) (bool, []Symbol, error) {
	universal, err := trivialUniversalNfa(alphabet)
	if err != nil {
		return false, nil, err
	}
	return isInclAntichain(universal, aut, alphabet)
}

func trivialUniversalNfa(alphabet Alphabet) (*Nfa, error) {
	symbols, err := alphabet.Enumerate()
	if err != nil {
		return nil, err
	}
	u := New()
	u.AddInitial(0)
	u.AddFinal(0)
	for _, sym := range symbols {
		u.AddTransition(0, sym, 0)
	}
	return u, nil
}

// IsIncl reports whether L(smaller) is a subset of L(bigger), both over
// alphabet. params["algo"] selects "antichains" (default) or "classical".
func IsIncl(smaller, bigger *Nfa, alphabet Alphabet, params Params) (bool, []Symbol, error) {
	switch algoOf(params, "antichains") {
	case "classical":
		return isInclClassical(smaller, bigger, alphabet)
	default:
		return isInclAntichain(smaller, bigger, alphabet)
	}
}

func isInclClassical(smaller, bigger *Nfa, alphabet Alphabet) (bool, []Symbol, error) {
	comp, err := Complement(bigger, alphabet, nil, nil)
	if err != nil {
		return false, nil, err
	}
	inter := Intersection(smaller, comp, nil)
	empty, word := IsLanguageEmptyCex(inter)
	if empty {
		return true, nil, nil
	}
	return false, word, nil
}

// isInclAntichain checks L(smaller) subseteq L(bigger) by exploring pairs
// (a, B) of a smaller-automaton state and a reachable macrostate of bigger,
// without ever materializing bigger's full subset construction. A pair is
// dominated, and safely skipped, once some previously verified (a, B') has
// B' subseteq B: bigger having strictly more live states can only help it
// accept, so whatever already held for B' holds for B too.
func isInclAntichain(smaller, bigger *Nfa, alphabet Alphabet) (bool, []Symbol, error) {
	symbols, err := alphabet.Enumerate()
	if err != nil {
		return false, nil, err
	}

	key := func(a State, B StateSet) string {
		return fmt.Sprintf("%d|%s", a, B.Key())
	}

	verified := map[State][]StateSet{}
	isDominated := func(a State, B StateSet) bool {
		for _, Bp := range verified[a] {
			if Bp.IsSubsetOf(B) {
				return true
			}
		}
		return false
	}

	type parentLink struct {
		prevKey string
		sym     Symbol
		hasPrev bool
	}
	parents := map[string]parentLink{}

	type item struct {
		a State
		B StateSet
	}
	var queue []item

	B0 := bigger.Initial.Clone()
	for _, a0 := range smaller.Initial.Sorted() {
		k := key(a0, B0)
		if _, seen := parents[k]; seen {
			continue
		}
		parents[k] = parentLink{}
		queue = append(queue, item{a0, B0})
	}

	var violation *item
	for i := 0; i < len(queue) && violation == nil; i++ {
		cur := queue[i]
		if isDominated(cur.a, cur.B) {
			continue
		}
		if smaller.Final.Has(cur.a) && !cur.B.Intersects(bigger.Final) {
			v := cur
			violation = &v
			break
		}
		verified[cur.a] = append(verified[cur.a], cur.B)

		for _, sym := range symbols {
			aTargets := smaller.post[cur.a][sym]
			if len(aTargets) == 0 {
				continue
			}
			Bnext := bigger.PostOnSymbol(cur.B, sym)
			for _, aNext := range aTargets.Sorted() {
				nk := key(aNext, Bnext)
				if _, seen := parents[nk]; seen {
					continue
				}
				parents[nk] = parentLink{prevKey: key(cur.a, cur.B), sym: sym, hasPrev: true}
				queue = append(queue, item{aNext, Bnext})
			}
		}
	}

	if violation == nil {
		return true, nil, nil
	}

	var wordRev []Symbol
	curKey := key(violation.a, violation.B)
	for {
		p, ok := parents[curKey]
		if !ok || !p.hasPrev {
			break
		}
		wordRev = append(wordRev, p.sym)
		curKey = p.prevKey
	}
	word := make([]Symbol, len(wordRev))
	for i, s := range wordRev {
		word[len(wordRev)-1-i] = s
	}
	return false, word, nil
}
