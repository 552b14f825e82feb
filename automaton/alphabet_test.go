package automaton

import (
	"errors"
	"testing"
)

func TestOnTheFlyAlphabetAllocatesInOrder(t *testing.T) {
	a := NewOnTheFlyAlphabet(nil)
	first, _ := a.Translate("x")
	second, _ := a.Translate("y")
	again, _ := a.Translate("x")
	if first != 0 || second != 1 || again != 0 {
		t.Errorf("got first=%d second=%d again=%d", first, second, again)
	}
}

func TestEnumeratedAlphabetRejectsDuplicates(t *testing.T) {
	if _, err := NewEnumeratedAlphabet([]string{"a", "a"}); err == nil {
		t.Fatalf("expected an error for a duplicate symbol name")
	}
}

func TestEnumeratedAlphabetUnknownSymbol(t *testing.T) {
	a, err := NewEnumeratedAlphabet([]string{"a"})
	if err != nil {
		t.Fatalf("NewEnumeratedAlphabet: %v", err)
	}
	if _, err := a.Translate("b"); err == nil {
		t.Fatalf("expected an error translating an unknown symbol")
	}
}

func TestCharacterAlphabetLiteralAndDecimal(t *testing.T) {
	var c CharacterAlphabet
	sym, err := c.Translate("'x'")
	if err != nil || sym != Symbol('x') {
		t.Fatalf("got sym=%d err=%v", sym, err)
	}
	sym, err = c.Translate("120")
	if err != nil || sym != 120 {
		t.Fatalf("got sym=%d err=%v", sym, err)
	}
}

func TestDirectAlphabetHasNoEnumeration(t *testing.T) {
	var d DirectAlphabet
	if _, err := d.Enumerate(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := d.Complement(nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestComplementIsEnumerateMinusUsed(t *testing.T) {
	a, err := NewEnumeratedAlphabet([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewEnumeratedAlphabet: %v", err)
	}
	symA, _ := a.Translate("a")
	rest, err := a.Complement([]Symbol{symA})
	if err != nil {
		t.Fatalf("Complement: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 remaining symbols, got %v", rest)
	}
}
