package automaton

import "testing"

func TestDeterminizeOfTwoInitialStates(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddInitial(1)
	a.AddFinal(2)
	a.AddTransition(0, 0, 2) // a
	a.AddTransition(1, 1, 2) // b

	if IsDeterministic(a) {
		t.Fatalf("fixture should be nondeterministic")
	}

	det, _ := Determinize(a, nil)
	if !IsDeterministic(det) {
		t.Errorf("expected the subset construction to be deterministic")
	}
	if !IsInLanguage(det, []Symbol{0}) {
		t.Errorf("expected the determinized automaton to still accept [a]")
	}
	if !IsInLanguage(det, []Symbol{1}) {
		t.Errorf("expected the determinized automaton to still accept [b]")
	}
}

func TestDeterminizeSubsetMapStartsAtZero(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddFinal(0)

	subsets := NewSubsetMap()
	_, _ = Determinize(a, subsets)

	id, ok := subsets.Lookup(NewStateSet(0))
	if !ok || id != 0 {
		t.Errorf("expected the initial subset to be assigned id 0, got %d (present=%v)", id, ok)
	}
}

func TestMinimizeAcceptsExactlyAOrB(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddInitial(1)
	a.AddFinal(2)
	a.AddTransition(0, 0, 2) // a
	a.AddTransition(1, 1, 2) // b

	min, _ := Minimize(a, nil)

	if !IsInLanguage(min, []Symbol{0}) {
		t.Errorf("expected minimized automaton to accept [a]")
	}
	if !IsInLanguage(min, []Symbol{1}) {
		t.Errorf("expected minimized automaton to accept [b]")
	}
	if IsInLanguage(min, nil) {
		t.Errorf("did not expect minimized automaton to accept []")
	}
	if IsInLanguage(min, []Symbol{0, 1}) {
		t.Errorf("did not expect minimized automaton to accept [a,b]")
	}
}

func TestMinimizeNotesUnsupportedAlgo(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddFinal(0)

	_, notes := Minimize(a, Params{"algo": "hopcroft"})
	if len(notes) != 1 {
		t.Fatalf("expected one note about the ignored algo, got %v", notes)
	}
}

func TestMakeCompleteAddsSink(t *testing.T) {
	a := New()
	a.AddInitial(0)
	a.AddFinal(0)

	alphabet, err := NewEnumeratedAlphabet([]string{"a", "b"})
	if err != nil {
		t.Fatalf("NewEnumeratedAlphabet: %v", err)
	}
	symA, _ := alphabet.Translate("a")
	a.AddTransition(0, symA, 0)

	sink := State(1)
	if err := MakeComplete(a, alphabet, sink); err != nil {
		t.Fatalf("MakeComplete: %v", err)
	}
	complete, err := IsComplete(a, alphabet)
	if err != nil {
		t.Fatalf("IsComplete: %v", err)
	}
	if !complete {
		t.Errorf("expected the automaton to be complete after MakeComplete")
	}
}
