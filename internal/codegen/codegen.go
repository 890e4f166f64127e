// Package codegen emits a small, self-contained Go source file that
// embeds a built DFA as data plus a longest-match scan function. The
// generated file has no dependency on this module at runtime — it is
// the direct descendant of the teacher's own code-generation mission in
// nex.go ("var accept[%d]bool", "fun[%d] = func(int r) int {...}"),
// updated to embed a table instead of a chain of closures.
package codegen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/blynn/lexgen/internal/dfa"
)

// Config controls the emitted package and identifier names, mirroring
// the teacher's -p (name prefix) and output-file flags.
type Config struct {
	PackageName string
	Prefix      string
	// Main, when set, emits a main function that reads all of stdin,
	// scans it, and prints one "outputValue text" line per token —
	// the complete runnable program the teacher's -r autorun expects,
	// grounded on sample.go's stdin-reading consumer of nn.go.
	Main bool
}

const tmplSource = `// Code generated by lexgen. DO NOT EDIT.

package {{.Config.PackageName}}

import (
	"fmt"
{{- if .Main}}
	"io"
	"os"
{{- end}}
)

var {{.Prefix}}Accept = [{{.NumStates}}]bool{
{{- range .States}}
	{{.Accepting}},
{{- end}}
}

var {{.Prefix}}OutputValue = [{{.NumStates}}]int{
{{- range .States}}
	{{.OutputValue}},
{{- end}}
}

var {{.Prefix}}Transitions = [{{.NumStates}}][256]int{
{{- range .States}}
	{ {{.TransitionList}} },
{{- end}}
}

// {{.Prefix}}NoState is the sentinel for "no transition".
const {{.Prefix}}NoState = -1

// {{.Prefix}}Token is one recognized lexeme.
type {{.Prefix}}Token struct {
	OutputValue int
	Text        string
}

// {{.Prefix}}Scan tokenizes all of input with longest-match, priority
// tie-break semantics, returning an error naming the offending position
// if some prefix matches nothing.
func {{.Prefix}}Scan(input []byte) ([]{{.Prefix}}Token, error) {
	var toks []{{.Prefix}}Token
	pos := 0
	for pos < len(input) {
		state := 0
		lastLen, lastOutput, ok := 0, 0, false
		for i := pos; i < len(input); i++ {
			next := {{.Prefix}}Transitions[state][input[i]]
			if next == {{.Prefix}}NoState {
				break
			}
			state = next
			if {{.Prefix}}Accept[state] {
				lastLen = i - pos + 1
				lastOutput = {{.Prefix}}OutputValue[state]
				ok = true
			}
		}
		if !ok {
			return toks, fmt.Errorf("%s: no match at position %d", "{{.Prefix}}Scan", pos)
		}
		toks = append(toks, {{.Prefix}}Token{OutputValue: lastOutput, Text: string(input[pos : pos+lastLen])})
		pos += lastLen
	}
	return toks, nil
}
{{if .Main}}
func main() {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	toks, err := {{.Prefix}}Scan(input)
	for _, tok := range toks {
		fmt.Printf("%d %q\n", tok.OutputValue, tok.Text)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
{{end}}`

var tmpl = template.Must(template.New("lexgen").Parse(tmplSource))

type stateView struct {
	Accepting   bool
	OutputValue int
	transitions [dfa.Alphabet]int
}

func (s stateView) TransitionList() string {
	buf := make([]byte, 0, dfa.Alphabet*4)
	for i, t := range s.transitions {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = fmt.Appendf(buf, "%d", t)
	}
	return string(buf)
}

// Generate writes a Go source file for d to w.
func Generate(w io.Writer, cfg Config, d *dfa.DFA) error {
	states := make([]stateView, d.NumStates())
	for k := range states {
		sv := stateView{Accepting: d.Accepting(k)}
		if sv.Accepting {
			sv.OutputValue = d.OutputValue(k)
		}
		for c := 0; c < dfa.Alphabet; c++ {
			sv.transitions[c] = d.Transition(k, byte(c))
		}
		states[k] = sv
	}
	data := struct {
		Config    Config
		Prefix    string
		NumStates int
		States    []stateView
		Main      bool
	}{
		Config:    cfg,
		Prefix:    cfg.Prefix,
		NumStates: d.NumStates(),
		States:    states,
		Main:      cfg.Main,
	}
	return tmpl.Execute(w, data)
}
