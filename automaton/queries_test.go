package automaton

import "testing"

func TestIntersectionOfDisjointLanguagesIsEmpty(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddFinal(2)
	a.AddTransition(0, 0, 1)
	a.AddTransition(1, 0, 2)

	b := New()
	b.AddInitial(0)
	b.AddFinal(1)
	b.AddTransition(0, 0, 1)
	b.AddTransition(1, 0, 0)

	inter := Intersection(a, b, nil)
	empty, _ := IsLanguageEmpty(inter)
	if !empty {
		t.Errorf("expected the intersection of {aa} and {a^odd} to be empty")
	}
}

func TestComplementOfUniversalLoopIsEmpty(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddFinal(0)
	a.AddTransition(0, 0, 0)

	alphabet, err := NewEnumeratedAlphabet([]string{"a"})
	if err != nil {
		t.Fatalf("NewEnumeratedAlphabet: %v", err)
	}
	comp, err := Complement(a, alphabet, nil, nil)
	if err != nil {
		t.Fatalf("Complement: %v", err)
	}
	empty, _ := IsLanguageEmpty(comp)
	if !empty {
		t.Errorf("expected the complement of a* to be empty over {a}")
	}
}

func TestIsDeterministicRejectsMultipleInitialStates(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddInitial(1)
	a.AddFinal(2)
	a.AddTransition(0, 0, 2)
	a.AddTransition(1, 1, 2)

	if IsDeterministic(a) {
		t.Errorf("expected an automaton with two initial states to be nondeterministic")
	}
}

func TestIsCompleteFlagsForeignSymbol(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddTransition(0, 5, 0)

	alphabet, err := NewEnumeratedAlphabet([]string{"a"})
	if err != nil {
		t.Fatalf("NewEnumeratedAlphabet: %v", err)
	}
	if _, err := IsComplete(a, alphabet); err == nil {
		t.Fatalf("expected an error for a transition using a symbol outside the alphabet")
	}
}

func TestAreStateDisjoint(t *testing.T) {
	a := New()
	a.AddInitial(0)
	b := New()
	b.AddInitial(1)
	if !AreStateDisjoint(a, b) {
		t.Errorf("expected disjoint automata")
	}
	b.AddInitial(0)
	if AreStateDisjoint(a, b) {
		t.Errorf("expected a shared state to break disjointness")
	}
}

func TestPrefixMembership(t *testing.T) {
	a, _ := newAB()
	if !IsPrefixInLanguage(a, []Symbol{0, 0}) {
		t.Errorf("expected [a] to be a prefix of an accepted word within [a,a]")
	}
	if IsPrefixInLanguage(a, nil) {
		t.Errorf("did not expect the empty word to be accepted as a prefix")
	}
}
