package debugprint

import (
	"fmt"
	"io"

	"github.com/blynn/lexgen/internal/dfa"
)

// DFA writes a line per state: "N*[V]: c->M ...", '*' marks accepting
// states and [V] their output value.
func DFA(w io.Writer, d *dfa.DFA) {
	for k := 0; k < d.NumStates(); k++ {
		fmt.Fprintf(w, "%d", k)
		if d.Accepting(k) {
			fmt.Fprintf(w, "*[%d]", d.OutputValue(k))
		}
		fmt.Fprint(w, ":")
		for c := 0; c < dfa.Alphabet; c++ {
			if t := d.Transition(k, byte(c)); t != dfa.NoState {
				fmt.Fprintf(w, " %s->%d", charLabel(byte(c)), t)
			}
		}
		fmt.Fprintln(w)
	}
}

// DFADot writes a Graphviz DOT rendering, grounded on
// CyberCzar01-LABS_4/LAB_2/regexlib/dot.go's ExportDOT (*DFA case).
func DFADot(w io.Writer, d *dfa.DFA) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "\trankdir=LR;")
	for k := 0; k < d.NumStates(); k++ {
		shape := "circle"
		if d.Accepting(k) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\tq%d [shape=%s];\n", k, shape)
		for c := 0; c < dfa.Alphabet; c++ {
			if t := d.Transition(k, byte(c)); t != dfa.NoState {
				fmt.Fprintf(w, "\tq%d -> q%d [label=%q];\n", k, t, charLabel(byte(c)))
			}
		}
	}
	fmt.Fprintf(w, "\t_start [shape=point]; _start -> q%d;\n", d.StartState())
	fmt.Fprintln(w, "}")
}
