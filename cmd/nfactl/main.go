// Command nfactl loads an automaton from a section-format file and drops
// into an interactive shell over it.
package main

import (
	"flag"
	"log"
	"os"

	"nfakit/automaton"
	"nfakit/internal/shell"
	"nfakit/section"
)

func main() {
	path := flag.String("f", "", "path to a section-format .nfa file")
	kind := flag.String("alphabet", "on-the-fly", "alphabet kind: on-the-fly, character, direct")
	flag.Parse()

	if *path == "" {
		log.Fatal("nfactl: -f is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("nfactl: %v", err)
	}

	ps, err := section.Parse(string(data))
	if err != nil {
		log.Fatalf("nfactl: parsing %s: %v", *path, err)
	}

	symbolDict := automaton.SymbolDict{}
	var alphabet automaton.Alphabet
	switch *kind {
	case "on-the-fly":
		alphabet = automaton.NewOnTheFlyAlphabet(symbolDict)
	case "character":
		alphabet = automaton.CharacterAlphabet{}
	case "direct":
		alphabet = automaton.DirectAlphabet{}
	default:
		log.Fatalf("nfactl: unknown alphabet kind %q", *kind)
	}

	aut, err := automaton.Construct(ps, alphabet, automaton.StateDict{})
	if err != nil {
		log.Fatalf("nfactl: constructing automaton: %v", err)
	}

	sh := shell.New(aut, alphabet, os.Stdout)
	if err := sh.Run(os.Stdin); err != nil {
		log.Fatalf("nfactl: %v", err)
	}
}
