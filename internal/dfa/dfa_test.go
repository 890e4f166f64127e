package dfa

import (
	"testing"

	"github.com/blynn/lexgen/internal/astparser"
	"github.com/blynn/lexgen/internal/nfa"
)

func buildCombined(t *testing.T, exprs []string) *DFA {
	t.Helper()
	asts := make([]astparser.Node, len(exprs))
	for i, e := range exprs {
		n, err := astparser.Parse(e)
		if err != nil {
			t.Fatalf("Parse(%q): %v", e, err)
		}
		asts[i] = n
	}
	n, err := nfa.BuildCombined(asts)
	if err != nil {
		t.Fatalf("BuildCombined: %v", err)
	}
	d, err := Build(n)
	if err != nil {
		t.Fatalf("dfa.Build: %v", err)
	}
	return d
}

func run(d *DFA, input string) (matched bool, lastAccept int, lastLen int) {
	state := d.StartState()
	lastAccept = -1
	for i := 0; i < len(input); i++ {
		next := d.Transition(state, input[i])
		if next == NoState {
			break
		}
		state = next
		if d.Accepting(state) {
			lastAccept = d.OutputValue(state)
			lastLen = i + 1
		}
	}
	return lastAccept >= 0, lastAccept, lastLen
}

func TestDeterminismOfTransitions(t *testing.T) {
	d := buildCombined(t, []string{"a(b|c)*d"})
	for k := 0; k < d.NumStates(); k++ {
		for c := 0; c < 256; c++ {
			next := d.Transition(k, byte(c))
			if next != NoState && (next < 0 || next >= d.NumStates()) {
				t.Errorf("state %d char %d: transition %d out of range", k, c, next)
			}
		}
	}
}

func TestNoTwoStatesEqualAfterMerge(t *testing.T) {
	d := buildCombined(t, []string{"int", "[a-z]+"})
	for i := 0; i < d.NumStates(); i++ {
		for j := i + 1; j < d.NumStates(); j++ {
			if statesEqual(d.States[i], d.States[j]) {
				t.Errorf("states %d and %d are equal after merge", i, j)
			}
		}
	}
}

func TestIntVsLowerLongestMatch(t *testing.T) {
	d := buildCombined(t, []string{"int", "[a-z]+"})
	matched, out, length := run(d, "integer")
	if !matched || out != 1 || length != 7 {
		t.Errorf("got matched=%v out=%d length=%d, want true 1 7", matched, out, length)
	}
}

func TestPriorityTieBreak(t *testing.T) {
	d := buildCombined(t, []string{"a+", "a"})
	matched, out, length := run(d, "aaa")
	if !matched || out != 0 || length != 3 {
		t.Errorf("got matched=%v out=%d length=%d, want true 0 3", matched, out, length)
	}
}

func TestDigitsPlus(t *testing.T) {
	d := buildCombined(t, []string{"[0-9]+"})
	matched, out, length := run(d, "00042")
	if !matched || out != 0 || length != 5 {
		t.Errorf("got matched=%v out=%d length=%d, want true 0 5", matched, out, length)
	}
}
