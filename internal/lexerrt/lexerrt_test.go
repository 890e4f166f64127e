package lexerrt

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/blynn/lexgen/internal/astparser"
	"github.com/blynn/lexgen/internal/dfa"
	"github.com/blynn/lexgen/internal/nfa"
)

func build(t *testing.T, exprs ...string) *dfa.DFA {
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
	d, err := dfa.Build(n)
	if err != nil {
		t.Fatalf("dfa.Build: %v", err)
	}
	return d
}

func TestScanIntChar(t *testing.T) {
	d := build(t, "int", "char")
	toks, err := Scan(d, []byte("intchar"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []Token{{0, "int"}, {1, "char"}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestScanNoMatch(t *testing.T) {
	d := build(t, "a(b|c)*d")
	_, err := Scan(d, []byte("ae"))
	if err == nil {
		t.Fatalf("Scan succeeded, want NoMatchError")
	}
	if _, ok := err.(*NoMatchError); !ok {
		t.Errorf("got error type %T, want *NoMatchError", err)
	}
}

func TestStreamingLexerMatchesScan(t *testing.T) {
	d := build(t, "int", "[a-z]+")
	l := New(d, bufio.NewReader(strings.NewReader("integer")))
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.OutputValue != 1 || tok.Text != "integer" {
		t.Errorf("got %+v, want {1 integer}", tok)
	}
	if _, err := l.Next(); err != io.EOF {
		t.Errorf("second Next err = %v, want io.EOF", err)
	}
}
