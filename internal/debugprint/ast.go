// Package debugprint provides read-only pretty-printers for the AST,
// NFA, and DFA artifacts (spec.md §6, "Debug observers (optional)").
// Their format is informative only; no part of the core pipeline reads
// its own debug output back.
package debugprint

import (
	"fmt"
	"io"

	"github.com/blynn/lexgen/internal/astparser"
)

// AST writes a parenthesized textual rendering of n to w, one line.
func AST(w io.Writer, n astparser.Node) {
	printAST(w, n)
	fmt.Fprintln(w)
}

func printAST(w io.Writer, n astparser.Node) {
	switch t := n.(type) {
	case *astparser.StringNode:
		fmt.Fprintf(w, "%q", t.Text)
	case *astparser.SequenceNode:
		fmt.Fprint(w, "(seq")
		for _, c := range t.Children {
			fmt.Fprint(w, " ")
			printAST(w, c)
		}
		fmt.Fprint(w, ")")
	case *astparser.OrNode:
		fmt.Fprint(w, "(or ")
		printAST(w, t.Left)
		fmt.Fprint(w, " ")
		printAST(w, t.Right)
		fmt.Fprint(w, ")")
	case *astparser.OptionalNode:
		fmt.Fprint(w, "(? ")
		printAST(w, t.Child)
		fmt.Fprint(w, ")")
	case *astparser.ZeroOrMoreNode:
		fmt.Fprint(w, "(* ")
		printAST(w, t.Child)
		fmt.Fprint(w, ")")
	case *astparser.OneOrMoreNode:
		fmt.Fprint(w, "(+ ")
		printAST(w, t.Child)
		fmt.Fprint(w, ")")
	case *astparser.OneOfNode:
		fmt.Fprint(w, "(oneof")
		for _, a := range t.Alternatives {
			fmt.Fprint(w, " ")
			printAST(w, a)
		}
		fmt.Fprint(w, ")")
	case *astparser.RangeNode:
		fmt.Fprintf(w, "(range %q %q)", t.Left.Text, t.Right.Text)
	default:
		fmt.Fprint(w, "?")
	}
}
