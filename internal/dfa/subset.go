package dfa

import (
	"github.com/blynn/lexgen/internal/bitset"
	"github.com/blynn/lexgen/internal/nfa"
)

// epsilonClosure returns the smallest set of NFA states containing seed
// that is closed under epsilon-transitions, via worklist iteration.
func epsilonClosure(n *nfa.NFA, seed bitset.Set) bitset.Set {
	closure := seed
	worklist := seed.Members()
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		n.States[s].Epsilon.Iterate(func(t int) {
			if !closure.Contains(t) {
				closure = closure.Insert(t)
				worklist = append(worklist, t)
			}
		})
	}
	return closure
}

// acceptValue returns the lowest OutputValue among accepting NFA states
// in set, and whether any such state exists. Recording the lowest index
// enforces priority ordering consistently (spec.md §9).
func acceptValue(n *nfa.NFA, set bitset.Set) (value int, ok bool) {
	value = -1
	set.Iterate(func(i int) {
		s := n.States[i]
		if s.Accepting && (!ok || s.OutputValue < value) {
			value = s.OutputValue
			ok = true
		}
	})
	return value, ok
}

// subsetConstruct performs full power-set-keyed subset construction
// (the "optional upgrade" of spec.md §4.4, adopted here as recommended
// by spec.md §9 rather than the legacy seed-keyed variant): DFA states
// are keyed by their power-set identity, not by a single seed NFA
// index, so no power-set-mismatch conflict can arise.
func subsetConstruct(n *nfa.NFA) ([]State, error) {
	index := make(map[bitset.Set]int)
	var states []State
	var powerSets []bitset.Set
	var todo []int

	get := func(raw bitset.Set) int {
		closed := epsilonClosure(n, raw)
		if k, ok := index[closed]; ok {
			return k
		}
		if len(states) >= MaxStates {
			panic(BuildError("dfa: exceeded maximum of 64 states"))
		}
		k := len(states)
		st := newState()
		if v, ok := acceptValue(n, closed); ok {
			st.Accepting = true
			st.OutputValue = v
		}
		states = append(states, st)
		powerSets = append(powerSets, closed)
		index[closed] = k
		todo = append(todo, k)
		return k
	}

	var buildErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if be, ok := r.(BuildError); ok {
					buildErr = be
					return
				}
				panic(r)
			}
		}()
		get(bitset.Of(n.Start))
		for len(todo) > 0 {
			k := todo[len(todo)-1]
			todo = todo[:len(todo)-1]
			set := powerSets[k]
			for c := 0; c < Alphabet; c++ {
				var targets bitset.Set
				set.Iterate(func(q int) {
					if t := n.States[q].Transitions[byte(c)]; t != nfa.NoState {
						targets = targets.Insert(t)
					}
				})
				if targets.Empty() {
					continue
				}
				target := get(targets)
				states[k].Transitions[c] = target
			}
		}
	}()
	if buildErr != nil {
		return nil, buildErr
	}
	return states, nil
}
