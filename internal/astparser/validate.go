package astparser

// validate walks the tree after parsing, checking that every Range node
// has single-character endpoints with Left <= Right (spec.md §4.2,
// "Validation pass").
func validate(n Node, expr string) error {
	switch t := n.(type) {
	case *SequenceNode:
		for _, c := range t.Children {
			if err := validate(c, expr); err != nil {
				return err
			}
		}
	case *OrNode:
		if err := validate(t.Left, expr); err != nil {
			return err
		}
		return validate(t.Right, expr)
	case *OptionalNode:
		return validate(t.Child, expr)
	case *ZeroOrMoreNode:
		return validate(t.Child, expr)
	case *OneOrMoreNode:
		return validate(t.Child, expr)
	case *OneOfNode:
		for _, a := range t.Alternatives {
			if err := validate(a, expr); err != nil {
				return err
			}
		}
	case *RangeNode:
		if len(t.Left.Text) != 1 || len(t.Right.Text) != 1 {
			return &ParseError{Expr: expr, Msg: "range endpoints must be single characters"}
		}
		if t.Left.Text[0] > t.Right.Text[0] {
			return &ParseError{Expr: expr, Msg: "range left endpoint exceeds right endpoint"}
		}
	case *StringNode:
		if len(t.Text) == 0 {
			panic(ErrInternal("StringNode with empty text"))
		}
		if len(t.Text) > maxStringLen {
			return &ParseError{Expr: expr, Msg: "string literal exceeds maximum length"}
		}
	}
	return nil
}
