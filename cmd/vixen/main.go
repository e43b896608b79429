// Command vixen is the CLI entry point spec.md section 6 names as an
// external collaborator: a positional source file, a -c flag for inline
// source, and a REPL fallback when neither is given. Flag handling
// follows massung/CHIP-8/main.go's flag.BoolVar/flag.Parse/flag.Arg
// style, the one repo in this pack that parses real CLI flags for a
// byte-oriented language tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/WilkinsonK/vixen/internal/ast"
	"github.com/WilkinsonK/vixen/internal/lexer"
	"github.com/WilkinsonK/vixen/internal/parser"
	"github.com/WilkinsonK/vixen/internal/repl"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the exit-code discipline SPEC_FULL.md's supplemented
// features section names: 1 on argument misuse, 0 on a clean parse, and
// 1 on a hard parse/lex error.
func run(args []string) int {
	fs := flag.NewFlagSet("vixen", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	inline := fs.String("c", "", "inline source to parse")
	verbose := fs.Bool("v", false, "start the REPL's verbose :dump inspector on")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	path := fs.Arg(0)
	if path != "" && *inline != "" {
		fmt.Fprintln(os.Stderr, "vixen: provide a source file or -c, not both")
		return 1
	}
	if path == "" && *inline == "" {
		return repl.Run(*verbose)
	}

	src, file, err := loadSource(path, *inline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vixen: %v\n", err)
		return 1
	}

	prog, err := parseSource(src, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	out, err := json.Marshal(prog.Reduce())
	if err != nil {
		fmt.Fprintf(os.Stderr, "vixen: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// loadSource reads the full input up front: a file is read to completion
// and closed before the scanner ever sees it, per spec.md section 5's
// resource-acquisition rule.
func loadSource(path, inline string) (src []byte, file string, err error) {
	if inline != "" {
		return []byte(inline), "-c", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return b, path, nil
}

func parseSource(src []byte, file string) (*ast.Program, error) {
	p := parser.New(lexer.NewFromBytes(src, file), file)
	return p.Parse()
}
