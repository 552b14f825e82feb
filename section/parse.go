package section

import "nfakit/automaton"

// Parse reads a section-format document and returns its generic contract
// form. Recognized dictionary keys are not validated here - that is the
// automaton kernel's job (automaton.Construct only looks at "Initial" and
// "Final").
func Parse(text string) (*automaton.ParsedSection, error) {
	doc, err := sectionParser.ParseString("section", text)
	if err != nil {
		return nil, err
	}

	ps := &automaton.ParsedSection{
		Type: doc.Type,
		Dict: map[string][]string{},
	}
	for _, l := range doc.Lines {
		switch {
		case l.Dict != nil:
			ps.Dict[l.Dict.Key] = l.Dict.Values
		case l.Row != nil:
			ps.Body = append(ps.Body, l.Row.Tokens)
		}
	}
	return ps, nil
}
