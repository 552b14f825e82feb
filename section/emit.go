package section

import (
	"fmt"
	"strings"

	"nfakit/automaton"
)

// dictKeyOrder fixes the order in which recognized dictionary keys are
// emitted, for reproducible output.
var dictKeyOrder = []string{"Initial", "Final"}

// Write renders a ParsedSection back to section-format text. Only the
// recognized dictionary keys are emitted; anything else the caller put in
// ps.Dict is silently dropped, mirroring how Construct ignores it on input.
func Write(ps *automaton.ParsedSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s;\n", ps.Type)
	for _, key := range dictKeyOrder {
		if vals, ok := ps.Dict[key]; ok {
			fmt.Fprintf(&b, "%%%s %s;\n", key, strings.Join(vals, " "))
		}
	}
	for _, row := range ps.Body {
		fmt.Fprintf(&b, "%s;\n", strings.Join(row, " "))
	}
	return b.String()
}
