// Package lexgen ties together the three-stage compilation pipeline —
// regex parser, Thompson NFA builder, subset-construction DFA
// converter — into a single Generate entry point.
package lexgen

import (
	"fmt"

	"github.com/blynn/lexgen/internal/astparser"
	"github.com/blynn/lexgen/internal/dfa"
	"github.com/blynn/lexgen/internal/nfa"
)

// MaxExpressionLen is the maximum length, in bytes, of an expression
// after escape processing (spec.md §6, "Input to the core").
const MaxExpressionLen = 100

// DFA is the output automaton. The i-th input expression's output value
// is i.
type DFA = dfa.DFA

// Generate compiles an ordered list of regular expressions into a DFA
// that recognizes their union while preserving priority order: the
// i-th expression's output value is i. No partial DFA is ever returned
// on failure (spec.md §7).
func Generate(exprs []string) (*DFA, error) {
	_, d, err := GenerateStages(exprs)
	return d, err
}

// GenerateStages runs the same pipeline as Generate but also returns the
// intermediate combined NFA, for callers (the CLI's -nfadot/-dfadot debug
// dumps) that need to inspect a stage Generate discards.
func GenerateStages(exprs []string) (*nfa.NFA, *DFA, error) {
	asts := make([]astparser.Node, len(exprs))
	for i, e := range exprs {
		length := 0
		for j := 0; j < len(e); j++ {
			if e[j] == '\\' {
				j++
			}
			length++
		}
		if length > MaxExpressionLen {
			return nil, nil, fmt.Errorf("expression %d exceeds maximum length of %d characters", i, MaxExpressionLen)
		}
		ast, err := astparser.Parse(e)
		if err != nil {
			return nil, nil, err
		}
		asts[i] = ast
	}
	n, err := nfa.BuildCombined(asts)
	if err != nil {
		return nil, nil, err
	}
	d, err := dfa.Build(n)
	if err != nil {
		return nil, nil, err
	}
	return n, d, nil
}
