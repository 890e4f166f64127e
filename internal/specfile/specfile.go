// Package specfile parses the lexer generator's rule-list input file: an
// ordered list of quoted regular expressions, each followed by its
// integer output value. This is the CLI's external surface syntax, not
// the regex language itself — the quoted text is handed unparsed to
// internal/astparser, which alone implements spec.md §4.2's grammar.
//
// Grounded on CyberCzar01-LABS_4/internal/interpreter/parser.go's use of
// github.com/alecthomas/participle/v2: a struct-tag grammar compiled once
// with participle.MustBuild, parsed with ParseString/ParseBytes.
package specfile

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Rule is one line of the rule-list file: a quoted regular expression
// paired with the output value the generated DFA reports when it
// matches.
type Rule struct {
	Pattern string `parser:"@String"`
	Value   int    `parser:"@Int"`
}

// File is the parsed rule-list file: an ordered sequence of Rules. Order
// is significant — the i-th Rule's Value is expected to equal i, mirroring
// spec.md §6 ("the i-th expression's output value is i"), but this
// package does not enforce that itself; Validate does.
type File struct {
	Rules []*Rule `parser:"@@*"`
}

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var fileParser = participle.MustBuild[File](
	participle.Lexer(ruleLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse parses rule-list text into a File.
func Parse(name, text string) (*File, error) {
	return fileParser.ParseString(name, text)
}

// Validate checks that Rules are numbered 0..len(Rules)-1 in order, the
// external contract spec.md §6 assumes of its expression list.
func Validate(f *File) error {
	for i, r := range f.Rules {
		if r.Value != i {
			return &ValidationError{Index: i, Value: r.Value}
		}
	}
	return nil
}

// Patterns returns the rule-list's expressions in order, suitable for
// passing directly to lexgen.Generate.
func (f *File) Patterns() []string {
	out := make([]string, len(f.Rules))
	for i, r := range f.Rules {
		out[i] = r.Pattern
	}
	return out
}

// ValidationError reports a rule-list whose output values are not a
// contiguous 0-based sequence in file order.
type ValidationError struct {
	Index int
	Value int
}

func (e *ValidationError) Error() string {
	return "specfile: rule at position " + strconv.Itoa(e.Index) + " declares output value " +
		strconv.Itoa(e.Value) + ", want " + strconv.Itoa(e.Index)
}
