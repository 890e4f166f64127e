// Package lexerrt is the external lexer runtime consumer spec.md §1
// treats as a collaborator specified only at its interface to the core:
// given a built *dfa.DFA, it drives an input stream through the
// automaton with longest-match, priority-tie-break semantics (spec.md
// §9). It is deliberately thin and outside the core's own guarantees.
//
// Grounded on the teacher's nn.go: a buffered context tracks the
// longest accepting match seen so far and, on a dead transition (or
// EOF), emits that match and resumes scanning after it.
package lexerrt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/blynn/lexgen/internal/dfa"
)

// Token is one recognized lexeme: the output value of the expression
// that matched, and the matched text.
type Token struct {
	OutputValue int
	Text        string
}

// NoMatchError reports that no expression in the DFA accepted any
// non-empty prefix of the input starting at Pos.
type NoMatchError struct {
	Pos int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("lexerrt: no match at position %d", e.Pos)
}

// Scan tokenizes all of input greedily: at each position it takes the
// longest prefix accepted by d, breaking ties toward the lowest output
// value (which the DFA itself already encodes at each accepting state),
// and fails with *NoMatchError if some position accepts nothing.
func Scan(d *dfa.DFA, input []byte) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(input) {
		length, output, ok := longestMatch(d, input[pos:])
		if !ok {
			return toks, &NoMatchError{Pos: pos}
		}
		toks = append(toks, Token{OutputValue: output, Text: string(input[pos : pos+length])})
		pos += length
	}
	return toks, nil
}

func longestMatch(d *dfa.DFA, input []byte) (length, output int, ok bool) {
	state := d.StartState()
	for i := 0; i < len(input); i++ {
		next := d.Transition(state, input[i])
		if next == dfa.NoState {
			break
		}
		state = next
		if d.Accepting(state) {
			length = i + 1
			output = d.OutputValue(state)
			ok = true
		}
	}
	return length, output, ok
}

// Lexer drives a *dfa.DFA against a bufio.Reader, one token at a time,
// without requiring the whole input in memory up front. It buffers only
// the bytes read past the last committed token.
type Lexer struct {
	d   *dfa.DFA
	r   *bufio.Reader
	buf []byte
	pos int
}

// New returns a Lexer reading from r and matching against d.
func New(d *dfa.DFA, r *bufio.Reader) *Lexer {
	return &Lexer{d: d, r: r}
}

// Next returns the next token, io.EOF when the input is exhausted with
// no pending partial match, or *NoMatchError if the remaining input's
// prefix matches nothing.
func (l *Lexer) Next() (Token, error) {
	state := l.d.StartState()
	lastLen := 0
	lastOutput := -1
	i := 0
	for {
		if i == len(l.buf) {
			b, err := l.r.ReadByte()
			if err != nil {
				break
			}
			l.buf = append(l.buf, b)
		}
		next := l.d.Transition(state, l.buf[i])
		if next == dfa.NoState {
			break
		}
		state = next
		i++
		if l.d.Accepting(state) {
			lastLen = i
			lastOutput = l.d.OutputValue(state)
		}
	}
	if len(l.buf) == 0 {
		return Token{}, io.EOF
	}
	if lastOutput < 0 {
		return Token{}, &NoMatchError{Pos: l.pos}
	}
	text := string(l.buf[:lastLen])
	l.buf = l.buf[lastLen:]
	l.pos += lastLen
	return Token{OutputValue: lastOutput, Text: text}, nil
}
