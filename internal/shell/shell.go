// Package shell implements a small interactive command loop over a single
// loaded automaton. It dispatches on a fixed, closed set of NFA operations
// - it is not a general type-tagged value dispatcher, and it performs all
// of its own I/O so the automaton kernel never has to.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"nfakit/automaton"
)

// Shell holds the automaton currently under inspection and the alphabet
// used to translate words typed at the prompt.
type Shell struct {
	Aut      *automaton.Nfa
	Alphabet automaton.Alphabet

	out io.Writer

	ok   func(a ...interface{}) string
	bad  func(a ...interface{}) string
	note func(a ...interface{}) string
}

// New builds a shell over aut, printing to out.
func New(aut *automaton.Nfa, alphabet automaton.Alphabet, out io.Writer) *Shell {
	return &Shell{
		Aut:      aut,
		Alphabet: alphabet,
		out:      out,
		ok:       color.New(color.FgGreen, color.Bold).SprintFunc(),
		bad:      color.New(color.FgRed, color.Bold).SprintFunc(),
		note:     color.New(color.FgYellow).SprintFunc(),
	}
}

// Run reads one command per line from in until EOF, "quit" or "exit".
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(s.out, "type 'help' for a list of commands")
	for {
		fmt.Fprint(s.out, "nfa> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		s.dispatch(cmd, args)
	}
}

func (s *Shell) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		s.printHelp()
	case "table":
		s.printTable()
	case "empty":
		s.cmdEmpty()
	case "accept":
		s.cmdAccept(args)
	case "prefix":
		s.cmdPrefix(args)
	case "deterministic":
		fmt.Fprintln(s.out, automaton.IsDeterministic(s.Aut))
	case "complete":
		s.cmdComplete()
	case "determinize":
		s.cmdDeterminize()
	case "minimize":
		s.cmdMinimize()
	case "reverse":
		s.Aut = automaton.Revert(s.Aut)
		fmt.Fprintln(s.out, s.note("reversed in place"))
	case "complement":
		s.cmdComplement()
	case "universal":
		s.cmdUniversal()
	default:
		fmt.Fprintf(s.out, "unknown command %q; type 'help'\n", cmd)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `commands:
  table                    print the transition table
  empty                    report language emptiness, with a witness
  accept <sym...>          test membership of a word
  prefix <sym...>          test prefix-membership of a word
  deterministic            report whether the automaton is deterministic
  complete                 report whether the automaton is complete
  determinize              replace the automaton with its subset construction
  minimize                 replace the automaton with its Brzozowski minimization
  reverse                  replace the automaton with its language reversal
  complement               replace the automaton with its complement
  universal                report whether the automaton accepts every word
  quit, exit               leave the shell`)
}

func (s *Shell) printTable() {
	table := tablewriter.NewWriter(s.out)
	table.Header([]string{"src", "symbol", "tgt"})
	for _, t := range s.Aut.Transitions() {
		table.Append([]string{fmt.Sprint(t.Src), fmt.Sprint(t.Symb), fmt.Sprint(t.Tgt)})
	}
	table.Render()
}

func (s *Shell) cmdEmpty() {
	empty, word := automaton.IsLanguageEmptyCex(s.Aut)
	if empty {
		fmt.Fprintln(s.out, s.ok("empty"))
		return
	}
	fmt.Fprintf(s.out, "%s witness: %v\n", s.bad("nonempty"), word)
}

func (s *Shell) parseWord(args []string) ([]automaton.Symbol, error) {
	word := make([]automaton.Symbol, 0, len(args))
	for _, a := range args {
		sym, err := s.Alphabet.Translate(a)
		if err != nil {
			return nil, err
		}
		word = append(word, sym)
	}
	return word, nil
}

func (s *Shell) cmdAccept(args []string) {
	word, err := s.parseWord(args)
	if err != nil {
		fmt.Fprintln(s.out, s.bad(err.Error()))
		return
	}
	if automaton.IsInLanguage(s.Aut, word) {
		fmt.Fprintln(s.out, s.ok("accept"))
	} else {
		fmt.Fprintln(s.out, s.bad("reject"))
	}
}

func (s *Shell) cmdPrefix(args []string) {
	word, err := s.parseWord(args)
	if err != nil {
		fmt.Fprintln(s.out, s.bad(err.Error()))
		return
	}
	if automaton.IsPrefixInLanguage(s.Aut, word) {
		fmt.Fprintln(s.out, s.ok("accept"))
	} else {
		fmt.Fprintln(s.out, s.bad("reject"))
	}
}

func (s *Shell) cmdComplete() {
	complete, err := automaton.IsComplete(s.Aut, s.Alphabet)
	if err != nil {
		fmt.Fprintln(s.out, s.bad(err.Error()))
		return
	}
	fmt.Fprintln(s.out, complete)
}

func (s *Shell) cmdDeterminize() {
	subsets := automaton.NewSubsetMap()
	det, _ := automaton.Determinize(s.Aut, subsets)
	s.Aut = det
	subsets.Each(func(set automaton.StateSet, id automaton.State) {
		fmt.Fprintf(s.out, "  %d <- %v\n", id, set.Sorted())
	})
}

func (s *Shell) cmdMinimize() {
	min, notes := automaton.Minimize(s.Aut, nil)
	for _, n := range notes {
		fmt.Fprintln(s.out, s.note(n))
	}
	s.Aut = min
}

func (s *Shell) cmdComplement() {
	comp, err := automaton.Complement(s.Aut, s.Alphabet, nil, nil)
	if err != nil {
		fmt.Fprintln(s.out, s.bad(err.Error()))
		return
	}
	s.Aut = comp
}

func (s *Shell) cmdUniversal() {
	universal, word, err := automaton.IsUniversal(s.Aut, s.Alphabet, nil)
	if err != nil {
		fmt.Fprintln(s.out, s.bad(err.Error()))
		return
	}
	if universal {
		fmt.Fprintln(s.out, s.ok("universal"))
		return
	}
	fmt.Fprintf(s.out, "%s witness: %v\n", s.bad("not universal"), word)
}
