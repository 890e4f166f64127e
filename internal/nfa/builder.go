package nfa

import "github.com/blynn/lexgen/internal/astparser"

// builder allocates States monotonically from a shared counter and
// accumulates epsilon/character edges on the NFA being constructed.
// A fresh builder backs exactly one Build or BuildCombined call, so the
// resulting automaton's state indices are deterministic for a given
// input regardless of how many builds have run previously in the process
// (spec.md §5: "Builds are pure functions of their inputs").
type builder struct {
	nfa *NFA
}

func newBuilder() *builder {
	return &builder{nfa: &NFA{}}
}

func (b *builder) alloc() int {
	if len(b.nfa.States) >= MaxStates {
		panic(BuildError("nfa: exceeded maximum of 64 states"))
	}
	b.nfa.States = append(b.nfa.States, newState())
	return len(b.nfa.States) - 1
}

func (b *builder) addEpsilon(from, to int) {
	b.nfa.States[from].Epsilon = b.nfa.States[from].Epsilon.Insert(to)
}

func (b *builder) addChar(from, to int, c byte) {
	b.nfa.States[from].Transitions[c] = to
}

// fragment is a sub-automaton with exactly one entry and one exit state,
// per Thompson's construction.
type fragment struct {
	entry, exit int
}

// build maps a single AST node to a fragment, per the shapes in
// spec.md §4.3.
func (b *builder) build(n astparser.Node) fragment {
	switch t := n.(type) {
	case *astparser.StringNode:
		return b.buildString(t.Text)
	case *astparser.SequenceNode:
		return b.buildSequence(t.Children)
	case *astparser.OrNode:
		return b.buildOr(t.Left, t.Right)
	case *astparser.OptionalNode:
		return b.buildOptional(t.Child)
	case *astparser.ZeroOrMoreNode:
		return b.buildZeroOrMore(t.Child)
	case *astparser.OneOrMoreNode:
		return b.buildOneOrMore(t.Child)
	case *astparser.OneOfNode:
		return b.buildOneOf(t.Alternatives)
	case *astparser.RangeNode:
		return b.buildRange(t.Left.Text[0], t.Right.Text[0])
	}
	panic(BuildError("nfa: unhandled AST node type"))
}

func (b *builder) buildString(s string) fragment {
	entry := b.alloc()
	cur := entry
	for i := 0; i < len(s); i++ {
		next := b.alloc()
		b.addChar(cur, next, s[i])
		cur = next
	}
	return fragment{entry: entry, exit: cur}
}

func (b *builder) buildSequence(children []astparser.Node) fragment {
	first := b.build(children[0])
	entry, exit := first.entry, first.exit
	for _, c := range children[1:] {
		frag := b.build(c)
		b.addEpsilon(exit, frag.entry)
		exit = frag.exit
	}
	return fragment{entry: entry, exit: exit}
}

func (b *builder) buildOr(left, right astparser.Node) fragment {
	l := b.build(left)
	r := b.build(right)
	entry, exit := b.alloc(), b.alloc()
	b.addEpsilon(entry, l.entry)
	b.addEpsilon(entry, r.entry)
	b.addEpsilon(l.exit, exit)
	b.addEpsilon(r.exit, exit)
	return fragment{entry: entry, exit: exit}
}

func (b *builder) buildOptional(child astparser.Node) fragment {
	c := b.build(child)
	entry, exit := b.alloc(), b.alloc()
	b.addEpsilon(entry, exit)
	b.addEpsilon(entry, c.entry)
	b.addEpsilon(c.exit, exit)
	return fragment{entry: entry, exit: exit}
}

func (b *builder) buildZeroOrMore(child astparser.Node) fragment {
	c := b.build(child)
	entry, exit := b.alloc(), b.alloc()
	b.addEpsilon(entry, exit)
	b.addEpsilon(entry, c.entry)
	b.addEpsilon(c.exit, exit)
	b.addEpsilon(c.exit, c.entry)
	return fragment{entry: entry, exit: exit}
}

func (b *builder) buildOneOrMore(child astparser.Node) fragment {
	c := b.build(child)
	entry, exit := b.alloc(), b.alloc()
	b.addEpsilon(entry, c.entry)
	b.addEpsilon(c.exit, exit)
	b.addEpsilon(c.exit, c.entry)
	return fragment{entry: entry, exit: exit}
}

func (b *builder) buildOneOf(alts []astparser.Node) fragment {
	entry, exit := b.alloc(), b.alloc()
	for _, a := range alts {
		f := b.build(a)
		b.addEpsilon(entry, f.entry)
		b.addEpsilon(f.exit, exit)
	}
	return fragment{entry: entry, exit: exit}
}

func (b *builder) buildRange(lo, hi byte) fragment {
	entry, exit := b.alloc(), b.alloc()
	for c := int(lo); c <= int(hi); c++ {
		b.addChar(entry, exit, byte(c))
	}
	return fragment{entry: entry, exit: exit}
}

// Build wraps a single AST into an NFA with output value V: a fresh
// start S epsilon-transitions into the body, whose exit
// epsilon-transitions into an accepting state A with A.OutputValue = V.
func Build(ast astparser.Node, outputValue int) (*NFA, error) {
	var nfa *NFA
	err := catchBuildError(func() {
		b := newBuilder()
		start := b.alloc()
		body := b.build(ast)
		accept := b.alloc()
		b.nfa.States[accept].Accepting = true
		b.nfa.States[accept].OutputValue = outputValue
		b.addEpsilon(start, body.entry)
		b.addEpsilon(body.exit, accept)
		b.nfa.Start = start
		nfa = b.nfa
	})
	if err != nil {
		return nil, err
	}
	return nfa, nil
}

// BuildCombined merges N expressions' ASTs into a single NFA whose
// accepting states remember their originating expression index. A
// shared start S reaches each expression's sub-automaton through exactly
// one epsilon-hop to a per-branch dispatch state D_i, which preserves
// priority tie-breaking by index (spec.md §4.3, "Combined NFA").
func BuildCombined(asts []astparser.Node) (*NFA, error) {
	var nfa *NFA
	err := catchBuildError(func() {
		b := newBuilder()
		start := b.alloc()
		for i, ast := range asts {
			dispatch := b.alloc()
			b.addEpsilon(start, dispatch)
			body := b.build(ast)
			accept := b.alloc()
			b.nfa.States[accept].Accepting = true
			b.nfa.States[accept].OutputValue = i
			b.addEpsilon(dispatch, body.entry)
			b.addEpsilon(body.exit, accept)
		}
		b.nfa.Start = start
		nfa = b.nfa
	})
	if err != nil {
		return nil, err
	}
	return nfa, nil
}

// catchBuildError runs fn, converting a panic carrying a BuildError into
// a returned error. Any other panic (a programmer-error assertion)
// propagates.
func catchBuildError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if be, ok := r.(BuildError); ok {
				err = be
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
