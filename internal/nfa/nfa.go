// Package nfa implements Thompson's construction: turning a parsed
// regular-expression AST (or a combined list of them) into a
// nondeterministic finite automaton with epsilon-transitions.
package nfa

import "github.com/blynn/lexgen/internal/bitset"

// NoState is the sentinel for "no transition / unmapped". It lies
// outside the valid state-index range [0, NumStates).
const NoState = -1

// MaxStates is the hard capacity on NFA state count (spec.md §4.3).
const MaxStates = 64

// Alphabet is the size of the input alphabet: 8-bit bytes.
const Alphabet = 256

// State is one NFA state: a dense transition table over the byte
// alphabet, a set of epsilon-transition targets, and (if accepting) the
// output value of the expression it accepts.
type State struct {
	Transitions [Alphabet]int
	Epsilon     bitset.Set
	Accepting   bool
	OutputValue int
}

func newState() State {
	s := State{}
	for i := range s.Transitions {
		s.Transitions[i] = NoState
	}
	return s
}

// NFA is an arena of States addressed by index. Start is always 0.
type NFA struct {
	States []State
	Start  int
}

// NumStates returns the number of allocated states.
func (n *NFA) NumStates() int { return len(n.States) }

// BuildError reports a failure during NFA or DFA construction: capacity
// exceeded. Reported, recoverable by the caller of Generate.
type BuildError string

func (e BuildError) Error() string { return string(e) }
