// Package section implements the textual "section" exchange format for
// automata:
//
//	@NFA;
//	%Initial q0;
//	%Final q1;
//	q0 a0 q1;
//
// A leading "@<Type>;" names the section type. "%<Key> <values...>;" lines
// populate a dictionary; any other ";"-terminated line is a body row of
// whitespace-separated tokens. Parsing and rendering only ever produce and
// consume automaton.ParsedSection values - this package has no knowledge of
// what a ParsedSection means to the automaton kernel.
package section

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var sectionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Punct", Pattern: `[@%;]`},
	{Name: "Word", Pattern: `[^\s;@%]+`},
})

var sectionParser = participle.MustBuild[document](
	participle.Lexer(sectionLexer),
	participle.Elide("Whitespace"),
)

// document is the raw grammar target; Parse converts it into an
// automaton.ParsedSection.
type document struct {
	Type  string  `parser:"'@' @Word ';'"`
	Lines []*line `parser:"@@*"`
}

type line struct {
	Dict *dictEntry `parser:"@@"`
	Row  *rowEntry  `parser:"| @@"`
}

type dictEntry struct {
	Key    string   `parser:"'%' @Word"`
	Values []string `parser:"@Word* ';'"`
}

type rowEntry struct {
	Tokens []string `parser:"@Word+ ';'"`
}
