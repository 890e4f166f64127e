// Package dfa converts an NFA into a deterministic finite automaton via
// full power-set-keyed subset construction, then merges observably
// equivalent states.
package dfa

import "github.com/blynn/lexgen/internal/nfa"

// NoState is the sentinel for "no transition". Shared with the NFA
// stage's sentinel value.
const NoState = nfa.NoState

// MaxStates is the hard capacity on DFA state count (spec.md §4.4),
// identical to the NFA's.
const MaxStates = 64

// Alphabet is the size of the input alphabet: 8-bit bytes.
const Alphabet = nfa.Alphabet

// BuildError is the same reported error class used during NFA
// construction: capacity exceeded, or (under the legacy seed-keyed
// construction this package does not use) a conflicting merge.
type BuildError = nfa.BuildError

// State is one DFA state: a total transition table over the byte
// alphabet, an accepting flag, and (if accepting) the output value of
// the expression it accepts.
type State struct {
	Transitions [Alphabet]int
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

// DFA is an array of States, index-addressed, with a fixed start state.
type DFA struct {
	States []State
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.States) }

// StartState returns the index of the start state: always 0.
func (d *DFA) StartState() int { return 0 }

// Accepting reports whether state k accepts.
func (d *DFA) Accepting(k int) bool { return d.States[k].Accepting }

// OutputValue returns the output value recorded at accepting state k.
// The result is meaningless if !Accepting(k).
func (d *DFA) OutputValue(k int) int { return d.States[k].OutputValue }

// Transition returns the successor of state k on input byte c, or
// NoState if there is none.
func (d *DFA) Transition(k int, c byte) int { return d.States[k].Transitions[c] }

// Build converts n into a DFA: subset construction followed by
// equivalence-based merging (spec.md §4.4).
func Build(n *nfa.NFA) (*DFA, error) {
	states, err := subsetConstruct(n)
	if err != nil {
		return nil, err
	}
	states = mergeEquivalentStates(states)
	return &DFA{States: states}, nil
}
