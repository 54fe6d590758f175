package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"sol/interpreter-go/pkg/driver"
	"sol/interpreter-go/pkg/runtime"
	"sol/interpreter-go/pkg/scanner"
)

var (
	errorColor    = color.New(color.FgRed, color.Bold)
	positionColor = color.New(color.Bold)
	caretColor    = color.New(color.FgYellow)
)

// exitWithDiagnostic prints a scan/parse/runtime error with its snippet to
// stderr and turns it into a nonzero exit.
func exitWithDiagnostic(err error, program *driver.Program) error {
	var src *scanner.Source
	if program != nil {
		src = program.Source
	}
	printDiagnostic(err, src)
	return cli.Exit("", 1)
}

func printDiagnostic(err error, src *scanner.Source) {
	d := driver.Describe(err)
	if d.Class == "" {
		fmt.Fprintln(os.Stderr, d.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s", errorColor.Sprint(d.Class+":"), d.Message)
	if d.Pos.IsKnown() {
		fmt.Fprintf(os.Stderr, " (%s)", positionColor.Sprint(d.Pos.String()))
		if src != nil {
			fmt.Fprintf(os.Stderr, "\n%s", caretColor.Sprint(src.Annotate(d.Pos)))
		}
	}
	fmt.Fprintln(os.Stderr)
}

// formatToken renders one token for the scan surface.
func formatToken(tok scanner.Token) string {
	head := fmt.Sprintf("[%d, %d] %s", tok.Pos.Line, tok.Pos.Column, tok.Kind)
	switch {
	case tok.HasLexeme():
		return fmt.Sprintf("%s: %q", head, tok.Lexeme)
	case tok.Kind == scanner.KindNumber:
		return fmt.Sprintf("%s: %q", head, runtime.FormatNumber(tok.Number))
	default:
		return head
	}
}
