package automaton

import "fmt"

// Params is the flat string-to-string configuration surface shared by
// Minimize, IsUniversal and IsIncl.
type Params map[string]string

func algoOf(params Params, def string) string {
	if params == nil {
		return def
	}
	if v, ok := params["algo"]; ok && v != "" {
		return v
	}
	return def
}

// Minimize computes a minimal deterministic automaton for aut's language
// using Brzozowski's algorithm: reverse, determinize, reverse, determinize.
// Any params["algo"] value is tolerated, since only one algorithm is
// implemented; the returned notes report when a requested algorithm was
// ignored.
func Minimize(aut *Nfa, params Params) (*Nfa, []string) {
	var notes []string
	if algo, ok := params["algo"]; ok && algo != "" && algo != "brzozowski" {
		notes = append(notes, fmt.Sprintf("ignoring unsupported minimize algo %q; using brzozowski", algo))
	}
	step1, _ := Determinize(Revert(aut), nil)
	step2 := Revert(step1)
	step3, _ := Determinize(step2, nil)
	return step3, notes
}
