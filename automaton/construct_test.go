package automaton

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newAB() (*Nfa, SymbolDict) {
	dict := SymbolDict{}
	aut := New()
	aut.AddInitial(0)
	aut.AddFinal(1)
	symA, _ := NewOnTheFlyAlphabet(dict).Translate("a")
	aut.AddTransition(0, symA, 1)
	return aut, dict
}

func TestConstructFromParsedSection(t *testing.T) {
	ps := &ParsedSection{
		Type: "NFA",
		Dict: map[string][]string{
			"Initial": {"q0"},
			"Final":   {"q1"},
		},
		Body: [][]string{{"q0", "a0", "q1"}},
	}
	aut, err := ConstructWithSymbolDict(ps, SymbolDict{}, StateDict{})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}

	symA := Symbol(0)
	if !IsInLanguage(aut, []Symbol{symA}) {
		t.Errorf("expected [a] to be accepted")
	}
	if IsInLanguage(aut, nil) {
		t.Errorf("expected [] to be rejected")
	}
	if IsInLanguage(aut, []Symbol{symA, symA}) {
		t.Errorf("expected [a,a] to be rejected")
	}
}

func TestConstructRejectsEpsilonRow(t *testing.T) {
	ps := &ParsedSection{
		Type: "NFA",
		Body: [][]string{{"q0", "q1"}},
	}
	if _, err := ConstructWithSymbolDict(ps, SymbolDict{}, StateDict{}); err == nil {
		t.Fatalf("expected an error for a 2-token body row")
	}
}

func TestConstructRejectsWrongType(t *testing.T) {
	ps := &ParsedSection{Type: "DFA"}
	if _, err := ConstructWithSymbolDict(ps, SymbolDict{}, StateDict{}); err == nil {
		t.Fatalf("expected an error for a non-NFA section")
	}
}

func TestSerializeDefaultNaming(t *testing.T) {
	aut, _ := newAB()

	ps, err := Serialize(aut, nil, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	want := &ParsedSection{
		Type: "NFA",
		Dict: map[string][]string{
			"Initial": {"q0"},
			"Final":   {"q1"},
		},
		Body: [][]string{{"q0", "a0", "q1"}},
	}
	if diff := cmp.Diff(want, ps); diff != "" {
		t.Errorf("Serialize mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeMissingNameFails(t *testing.T) {
	aut, _ := newAB()
	if _, err := Serialize(aut, nil, map[State]string{0: "start"}); err == nil {
		t.Fatalf("expected an error when state 1 has no name")
	}
}
