package driver

import (
	"errors"
	"strings"

	"sol/interpreter-go/pkg/interpreter"
	"sol/interpreter-go/pkg/parser"
	"sol/interpreter-go/pkg/scanner"
)

// Diagnostic is a rendered failure: the error class, its message, and the
// source position when one is known.
type Diagnostic struct {
	Class   string
	Message string
	Pos     scanner.Position
}

// Describe classifies a scan, parse, or runtime error. Unknown errors come
// back with an empty class and their plain message.
func Describe(err error) Diagnostic {
	var scanErr *scanner.ScanError
	if errors.As(err, &scanErr) {
		return Diagnostic{Class: "scan error", Message: scanErr.Message, Pos: scanErr.Pos}
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		msg := parseErr.Message
		if parseErr.Previous != nil {
			msg += " (previous token: " + parseErr.Previous.Describe() + ")"
		}
		return Diagnostic{Class: "parse error", Message: msg, Pos: parseErr.Pos}
	}
	var runtimeErr *interpreter.RuntimeError
	if errors.As(err, &runtimeErr) {
		return Diagnostic{Class: "runtime error", Message: runtimeErr.Message, Pos: runtimeErr.Pos}
	}
	return Diagnostic{Message: err.Error()}
}

// Render formats a diagnostic with the two-line source snippet when the
// position is known and a source buffer is available.
func Render(err error, src *scanner.Source) string {
	d := Describe(err)
	var b strings.Builder
	if d.Class != "" {
		b.WriteString(d.Class)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Pos.IsKnown() {
		b.WriteString(" (")
		b.WriteString(d.Pos.String())
		b.WriteString(")")
		if src != nil {
			b.WriteString("\n")
			b.WriteString(src.Annotate(d.Pos))
		}
	}
	return b.String()
}
