// Package automaton implements nondeterministic finite automata over finite
// words: a transition-indexed store, the classical traversal and boolean
// query primitives, and the structural transforms (union, product,
// reversal, epsilon-removal, determinization, completion, complementation,
// Brzozowski minimization) and language-comparison algorithms built on top
// of them.
//
// States and symbols are opaque nonnegative integer identifiers. The
// package performs no I/O; callers are responsible for naming, parsing and
// persistence.
package automaton
