// Package lexgen_test end-to-ends the lexgen binary itself: build it,
// feed it a rule-list spec file, compile the emitted Go source alongside
// a small driver, and check the driver's output.
//
// Adapted from the teacher's test/nex_test.go, which built the nex
// binary once and ran it against a battery of .nex programs via
// os/exec, then compiled and ran the generated .nn.go files. The rule
// list format and generated API are ours; the build-and-run-a-process
// shape is the teacher's.
package lexgen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func buildLexgen(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	bin := filepath.Join(t.TempDir(), "lexgen")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/lexgen")
	cmd.Dir = repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build ./cmd/lexgen: %v\n%s", err, out)
	}
	return bin
}

const sampleSpec = `
# A tiny word/number/whitespace lexer.
"[0-9]+"     0
"[a-z,A-Z]+"  1
"[ ,\t,\n]+"   2
`

const driverTemplate = `package main

import "fmt"

func main() {
	toks, err := LexScan([]byte("12 cats and 7 dogs"))
	if err != nil {
		panic(err)
	}
	for _, tok := range toks {
		fmt.Printf("%d:%q\n", tok.OutputValue, tok.Text)
	}
}
`

const wantOutput = `0:"12"
2:" "
1:"cats"
2:" "
1:"and"
2:" "
0:"7"
2:" "
1:"dogs"
`

func TestGeneratedLexerEndToEnd(t *testing.T) {
	bin := buildLexgen(t)
	dir := t.TempDir()

	specPath := filepath.Join(dir, "words.spec")
	if err := os.WriteFile(specPath, []byte(sampleSpec), 0644); err != nil {
		t.Fatalf("WriteFile spec: %v", err)
	}

	genPath := filepath.Join(dir, "words_lex.go")
	cmd := exec.Command(bin, "-pkg", "main", "-p", "Lex", "-o", genPath, specPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("lexgen: %v\n%s", err, out)
	}

	driverPath := filepath.Join(dir, "driver.go")
	if err := os.WriteFile(driverPath, []byte(driverTemplate), 0644); err != nil {
		t.Fatalf("WriteFile driver: %v", err)
	}

	run := exec.Command("go", "run", driverPath, genPath)
	out, err := run.CombinedOutput()
	if err != nil {
		t.Fatalf("go run: %v\n%s", err, out)
	}
	if string(out) != wantOutput {
		t.Errorf("output = %q, want %q", out, wantOutput)
	}
}
