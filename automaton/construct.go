package automaton

import "fmt"

// TypeNFA is the only ParsedSection.Type Construct accepts.
const TypeNFA = "NFA"

// ParsedSection is the generic textual-format contract: a type tag, a
// dictionary of named lists (recognized keys "Initial" and "Final"), and a
// body of whitespace-tokenized rows. It has no dependency on any specific
// parser; package section produces and consumes it.
type ParsedSection struct {
	Type string
	Dict map[string][]string
	Body [][]string
}

// Construct builds an automaton from a parsed section. State names are
// translated through stateDict (a fresh one is allocated if nil); symbol
// names are translated through alphabet. A body row of length 3 is a
// transition; length 2 is a rejected epsilon transition; any other length
// is invalid.
func Construct(ps *ParsedSection, alphabet Alphabet, stateDict StateDict) (*Nfa, error) {
	if ps.Type != TypeNFA {
		return nil, fmt.Errorf("expecting type %s, got %q", TypeNFA, ps.Type)
	}
	alloc := newStateAllocator(stateDict)
	aut := New()
	for _, name := range ps.Dict["Initial"] {
		aut.AddInitial(alloc.id(name))
	}
	for _, name := range ps.Dict["Final"] {
		aut.AddFinal(alloc.id(name))
	}
	for _, row := range ps.Body {
		switch len(row) {
		case 2:
			return nil, fmt.Errorf("epsilon transitions not supported")
		case 3:
			src := alloc.id(row[0])
			symb, err := alphabet.Translate(row[1])
			if err != nil {
				return nil, err
			}
			tgt := alloc.id(row[2])
			aut.AddTransition(src, symb, tgt)
		default:
			return nil, fmt.Errorf("invalid transition: %v", row)
		}
	}
	return aut, nil
}

// ConstructWithSymbolDict is Construct with an OnTheFlyAlphabet built from
// symbolDict, for the common case where symbol names should simply be
// interned in appearance order.
func ConstructWithSymbolDict(ps *ParsedSection, symbolDict SymbolDict, stateDict StateDict) (*Nfa, error) {
	return Construct(ps, NewOnTheFlyAlphabet(symbolDict), stateDict)
}

// Serialize renders an automaton back to a ParsedSection. When symbolNames
// or stateNames is nil, ids are rendered as a<id>/q<id>; when non-nil, a
// missing entry fails.
func Serialize(aut *Nfa, symbolNames map[Symbol]string, stateNames map[State]string) (*ParsedSection, error) {
	stateName := func(s State) (string, error) {
		if stateNames == nil {
			return fmt.Sprintf("q%d", s), nil
		}
		name, ok := stateNames[s]
		if !ok {
			return "", fmt.Errorf("cannot translate state/symbol: state %d has no name", s)
		}
		return name, nil
	}
	symbolName := func(s Symbol) (string, error) {
		if symbolNames == nil {
			return fmt.Sprintf("a%d", s), nil
		}
		name, ok := symbolNames[s]
		if !ok {
			return "", fmt.Errorf("cannot translate state/symbol: symbol %d has no name", s)
		}
		return name, nil
	}

	ps := &ParsedSection{Type: TypeNFA, Dict: map[string][]string{}}

	var initNames []string
	for _, s := range aut.Initial.Sorted() {
		name, err := stateName(s)
		if err != nil {
			return nil, err
		}
		initNames = append(initNames, name)
	}
	ps.Dict["Initial"] = initNames

	var finalNames []string
	for _, s := range aut.Final.Sorted() {
		name, err := stateName(s)
		if err != nil {
			return nil, err
		}
		finalNames = append(finalNames, name)
	}
	ps.Dict["Final"] = finalNames

	for _, t := range aut.Transitions() {
		srcName, err := stateName(t.Src)
		if err != nil {
			return nil, err
		}
		symName, err := symbolName(t.Symb)
		if err != nil {
			return nil, err
		}
		tgtName, err := stateName(t.Tgt)
		if err != nil {
			return nil, err
		}
		ps.Body = append(ps.Body, []string{srcName, symName, tgtName})
	}
	return ps, nil
}
