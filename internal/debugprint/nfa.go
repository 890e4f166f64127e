package debugprint

import (
	"fmt"
	"io"

	"github.com/blynn/lexgen/internal/nfa"
)

// NFA writes a line per state: "N: accept=V eps={...} c->M ...",
// the un-commented-out descendant of the teacher's show() in nex.go.
func NFA(w io.Writer, n *nfa.NFA) {
	for i, s := range n.States {
		fmt.Fprintf(w, "%d:", i)
		if s.Accepting {
			fmt.Fprintf(w, " accept=%d", s.OutputValue)
		}
		if !s.Epsilon.Empty() {
			fmt.Fprintf(w, " eps=%s", s.Epsilon)
		}
		for c := 0; c < nfa.Alphabet; c++ {
			if t := s.Transitions[c]; t != nfa.NoState {
				fmt.Fprintf(w, " %s->%d", charLabel(byte(c)), t)
			}
		}
		fmt.Fprintln(w)
	}
}

// NFADot writes a Graphviz DOT rendering, grounded on
// CyberCzar01-LABS_4/LAB_2/regexlib/dot.go's ExportDOT.
func NFADot(w io.Writer, n *nfa.NFA) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "\trankdir=LR;")
	for i, s := range n.States {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\tn%d [shape=%s];\n", i, shape)
		s.Epsilon.Iterate(func(t int) {
			fmt.Fprintf(w, "\tn%d -> n%d [label=\"eps\"];\n", i, t)
		})
		for c := 0; c < nfa.Alphabet; c++ {
			if t := s.Transitions[c]; t != nfa.NoState {
				fmt.Fprintf(w, "\tn%d -> n%d [label=%q];\n", i, t, charLabel(byte(c)))
			}
		}
	}
	fmt.Fprintf(w, "\t_start [shape=point]; _start -> n%d;\n", n.Start)
	fmt.Fprintln(w, "}")
}

func charLabel(c byte) string {
	if c >= '!' && c <= '~' {
		return string(c)
	}
	return fmt.Sprintf("\\x%02x", c)
}
