// Package driver loads Sol programs from disk and renders front-end and
// runtime errors with their source snippets.
package driver

import (
	"fmt"
	"os"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/parser"
	"sol/interpreter-go/pkg/scanner"
)

// Program is a fully front-ended source file: text, token sequence, and
// parse tree.
type Program struct {
	Path   string
	Source *scanner.Source
	Tokens []scanner.Token
	Tree   *ast.ParseTree
}

// Load reads, scans, and parses a source file.
func Load(path string) (*Program, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadSource(path, string(text))
}

// LoadSource front-ends an in-memory program. The name is used only for
// reporting.
func LoadSource(name, text string) (*Program, error) {
	src := scanner.NewSource(text)
	program := &Program{Path: name, Source: src}

	tokens, err := scanner.Scan(src)
	if err != nil {
		return program, err
	}
	program.Tokens = tokens

	tree, err := parser.Parse(tokens)
	if err != nil {
		return program, err
	}
	program.Tree = tree
	return program, nil
}

// ScanOnly reads and tokenizes a source file without parsing, for the token
// dump surface.
func ScanOnly(path string) (*Program, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src := scanner.NewSource(string(text))
	program := &Program{Path: path, Source: src}
	tokens, err := scanner.Scan(src)
	if err != nil {
		return program, err
	}
	program.Tokens = tokens
	return program, nil
}
