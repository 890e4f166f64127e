// Command lexgen reads a rule-list spec file (one quoted regular
// expression and an integer output value per rule) and emits a
// self-contained Go source file implementing the combined lexer.
//
// Grounded on the teacher's main.go: flag-based, dieIf/dieErr fatal
// helpers, an -r autorun path that builds and runs the generated
// package with go run via os/exec.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/blynn/lexgen"
	"github.com/blynn/lexgen/internal/codegen"
	"github.com/blynn/lexgen/internal/debugprint"
	"github.com/blynn/lexgen/internal/specfile"
)

var (
	outFilename            string
	packageName, prefix    string
	nfadotFile, dfadotFile string
	autorun                bool
)

func dieIf(cond bool, args ...interface{}) {
	if cond {
		log.Fatal(args...)
	}
}

func dieErr(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %v", msg, err)
	}
}

func main() {
	flag.StringVar(&packageName, "pkg", "main", "package name of the generated file")
	flag.StringVar(&prefix, "p", "Lex", "identifier prefix to use in generated code")
	flag.StringVar(&outFilename, "o", "", "output file (default: stdout, or <input>.lex.go with a named input file)")
	flag.BoolVar(&autorun, "r", false, "build and run the generated program with go run")
	flag.StringVar(&nfadotFile, "nfadot", "", "write the combined NFA graph in DOT format")
	flag.StringVar(&dfadotFile, "dfadot", "", "write the DFA graph in DOT format")
	flag.Parse()

	dieIf(flag.NArg() > 1, "lexgen: extraneous arguments after", flag.Arg(0))

	infile := os.Stdin
	basename := "lex"
	if flag.NArg() == 1 {
		var err error
		infile, err = os.Open(flag.Arg(0))
		dieErr(err, "lexgen")
		defer infile.Close()
		basename = flag.Arg(0)
		if ext := filepath.Ext(basename); ext != "" {
			basename = basename[:len(basename)-len(ext)]
		}
	}

	if err := run(infile, basename); err != nil {
		log.Fatal(err)
	}
}

func run(infile *os.File, basename string) error {
	raw, err := io.ReadAll(infile)
	if err != nil {
		return fmt.Errorf("lexgen: %w", err)
	}

	spec, err := specfile.Parse(infile.Name(), string(raw))
	if err != nil {
		return fmt.Errorf("lexgen: %w", err)
	}
	if err := specfile.Validate(spec); err != nil {
		return fmt.Errorf("lexgen: %w", err)
	}

	n, d, err := lexgen.GenerateStages(spec.Patterns())
	if err != nil {
		return fmt.Errorf("lexgen: %w", err)
	}

	if nfadotFile != "" {
		if err := writeFile(nfadotFile, func(f *os.File) { debugprint.NFADot(f, n) }); err != nil {
			return err
		}
	}
	if dfadotFile != "" {
		if err := writeFile(dfadotFile, func(f *os.File) { debugprint.DFADot(f, d) }); err != nil {
			return err
		}
	}

	outName := outFilename
	tmpdir := ""
	if autorun {
		tmpdir, err = os.MkdirTemp("", "lexgen")
		if err != nil {
			return fmt.Errorf("lexgen: tempdir: %w", err)
		}
		defer os.RemoveAll(tmpdir)
		outName = filepath.Join(tmpdir, "lexgen_main.go")
	} else if outName == "" && infile != os.Stdin {
		outName = basename + ".lex.go"
	}

	outfile := os.Stdout
	if outName != "" {
		outfile, err = os.Create(outName)
		if err != nil {
			return fmt.Errorf("lexgen: %w", err)
		}
		defer outfile.Close()
	}

	cfg := codegen.Config{PackageName: packageName, Prefix: prefix}
	if autorun {
		// go run needs a complete program: emit a main that scans
		// stdin, exactly what the teacher's -r ran.
		cfg.PackageName = "main"
		cfg.Main = true
	}
	if err := codegen.Generate(outfile, cfg, d); err != nil {
		return fmt.Errorf("lexgen: %w", err)
	}

	if autorun {
		c := exec.Command("go", "run", outfile.Name())
		c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("go run: %w", err)
		}
	}
	return nil
}

func writeFile(name string, fn func(f *os.File)) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("lexgen: %w", err)
	}
	defer f.Close()
	fn(f)
	return nil
}
