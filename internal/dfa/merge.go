package dfa

// statesEqual reports whether a and b share Accepting, OutputValue (when
// accepting), and all Alphabet transition targets.
func statesEqual(a, b State) bool {
	if a.Accepting != b.Accepting {
		return false
	}
	if a.Accepting && a.OutputValue != b.OutputValue {
		return false
	}
	return a.Transitions == b.Transitions
}

// rewriteTarget replaces every transition pointing at from with to,
// across the first n states of states.
func rewriteTarget(states []State, n, from, to int) {
	for i := 0; i < n; i++ {
		for c := 0; c < Alphabet; c++ {
			if states[i].Transitions[c] == from {
				states[i].Transitions[c] = to
			}
		}
	}
}

// mergeEquivalentStates repeatedly scans pairs (i, j), i < j, merging
// observably-equal states until a full pass makes no merges (spec.md
// §4.4, "Equivalence merge"). This is not Myhre-Nerode minimization —
// only exact per-state equality is exploited.
func mergeEquivalentStates(states []State) []State {
	n := len(states)
	for {
		mergedThisPass := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !statesEqual(states[i], states[j]) {
					continue
				}
				rewriteTarget(states, n, j, i)
				last := n - 1
				if j != last {
					states[j] = states[last]
					rewriteTarget(states, n, last, j)
				}
				n--
				mergedThisPass = true
				j--
			}
		}
		if !mergedThisPass {
			break
		}
	}
	return states[:n]
}
