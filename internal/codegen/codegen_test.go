package codegen

import (
	"bytes"
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

func TestGenerateImportsFmtWithoutMain(t *testing.T) {
	d := build(t, "int", "char")
	var buf bytes.Buffer
	if err := Generate(&buf, Config{PackageName: "tok", Prefix: "Lex"}, d); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"fmt"`) {
		t.Errorf("generated source does not import fmt, but LexScan calls fmt.Errorf:\n%s", out)
	}
	if strings.Contains(out, "func main()") {
		t.Errorf("generated source declares main() without Config.Main set:\n%s", out)
	}
	if strings.Contains(out, `"os"`) || strings.Contains(out, `"io"`) {
		t.Errorf("generated source imports os/io without Config.Main set:\n%s", out)
	}
}

func TestGenerateMainIsRunnable(t *testing.T) {
	d := build(t, "int", "char")
	var buf bytes.Buffer
	if err := Generate(&buf, Config{PackageName: "main", Prefix: "Lex", Main: true}, d); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"fmt"`, `"io"`, `"os"`, "func main()", "LexScan(input)"} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
}
