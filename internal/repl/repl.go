// Package repl implements the interactive fallback spec.md section 6
// names as the external collaborator the core front end serves: read a
// line, parse it, print the reduced AST. It is the one place in this
// module that reaches past the scanner/lexer/parser/ast core for
// line-editing, colorized diagnostics and a verbose tree dump, using the
// libraries go-probeum pulls in for exactly those concerns.
package repl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/WilkinsonK/vixen/internal/lexer"
	"github.com/WilkinsonK/vixen/internal/parser"
)

const historyFileName = ".vixen_history"

const replFile = "<repl>"

var (
	errStyle    = color.New(color.FgRed, color.Bold)
	promptStyle = color.New(color.FgCyan)
	noteStyle   = color.New(color.FgYellow)
)

// Run starts the read-parse-print loop. verbose starts the :dump
// inspector mode on or off; ":dump" toggles it for the rest of the
// session. Run returns the process exit code: 0 on a normal Ctrl-D/Ctrl-C
// exit.
func Run(verbose bool) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	loadHistory(line)
	defer saveHistory(line)

	for {
		text, err := line.Prompt(promptStyle.Sprint("vixen> "))
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				fmt.Fprintln(os.Stderr, errStyle.Sprint(err))
				return 1
			}
			return 0
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(text)

		if trimmed == ":dump" {
			verbose = !verbose
			fmt.Println(noteStyle.Sprintf("verbose dump: %v", verbose))
			continue
		}

		evaluate(trimmed, verbose)
	}
}

func loadHistory(line *liner.State) {
	f, err := os.Open(historyFileName)
	if err != nil {
		return
	}
	defer f.Close()
	line.ReadHistory(f)
}

func saveHistory(line *liner.State) {
	f, err := os.Create(historyFileName)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}

// evaluate parses one line of input and prints its reduced JSON. In
// verbose mode it prints the full token stream and a go-spew dump of the
// tree ahead of the JSON, the :dump feature SPEC_FULL.md's supplemented
// features section adds on top of spec.md's plain REPL.
func evaluate(src string, verbose bool) {
	if verbose {
		dumpTokens(src)
	}

	p := parser.New(lexer.NewFromBytes([]byte(src), replFile), replFile)
	prog, err := p.Parse()
	if err != nil {
		fmt.Println(errStyle.Sprint(err))
		return
	}

	if verbose {
		fmt.Println(spew.Sdump(prog))
	}

	b, err := json.Marshal(prog.Reduce())
	if err != nil {
		fmt.Println(errStyle.Sprint(err))
		return
	}
	fmt.Println(string(b))
}

func dumpTokens(src string) {
	fmt.Println(noteStyle.Sprint("-- tokens --"))
	lex := lexer.NewFromBytes([]byte(src), replFile)
	for {
		t := lex.Next()
		fmt.Println(t)
		if t.Type.IsControl() {
			break
		}
	}
}
