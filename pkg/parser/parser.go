// Package parser turns a token sequence into a parse tree by single-pass
// recursive descent with bounded lookahead.
package parser

import (
	"fmt"
	"strings"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/scanner"
)

// ParseError reports an unexpected token, keeping the prior token for
// context.
type ParseError struct {
	Pos      scanner.Position
	Message  string
	Previous *scanner.Token
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %s: %s", e.Pos, e.Message)
	if e.Previous != nil {
		fmt.Fprintf(&b, " (previous token: %s)", e.Previous.Describe())
	}
	return b.String()
}

// Parser consumes a token sequence with a single mutable index.
type Parser struct {
	tokens []scanner.Token
	pos    int
}

// New returns a parser over the token sequence.
func New(tokens []scanner.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the parse tree for a whole program: a list of declarations.
func Parse(tokens []scanner.Token) (*ast.ParseTree, error) {
	return New(tokens).Parse()
}

// Parse consumes every token, producing the root declaration list.
func (p *Parser) Parse() (*ast.ParseTree, error) {
	var decls []ast.Declaration
	for !p.atEnd() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return ast.NewParseTree(decls), nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

// peek returns the current token without consuming it. At the end of input it
// returns a zero token; callers check atEnd first when it matters.
func (p *Parser) peek() scanner.Token {
	if p.atEnd() {
		return scanner.Token{}
	}
	return p.tokens[p.pos]
}

func (p *Parser) previous() *scanner.Token {
	if p.pos == 0 || p.pos > len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos-1]
}

func (p *Parser) advance() scanner.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// check reports whether the current token has the given kind.
func (p *Parser) check(kind scanner.Kind) bool {
	return !p.atEnd() && p.tokens[p.pos].Kind == kind
}

// tokensMatch compares the next tokens against the given kind sequence
// without consuming anything.
func (p *Parser) tokensMatch(kinds ...scanner.Kind) bool {
	if p.pos+len(kinds) > len(p.tokens) {
		return false
	}
	for i, kind := range kinds {
		if p.tokens[p.pos+i].Kind != kind {
			return false
		}
	}
	return true
}

// match consumes the current token if it has one of the given kinds.
func (p *Parser) match(kinds ...scanner.Kind) (scanner.Token, bool) {
	for _, kind := range kinds {
		if p.check(kind) {
			return p.advance(), true
		}
	}
	return scanner.Token{}, false
}

// consume advances past a token of the expected kind or fails with a
// positional message.
func (p *Parser) consume(kind scanner.Kind, what string) (scanner.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	if p.atEnd() {
		return scanner.Token{}, p.errorAtEnd("expected %s for %s, got end of input", describeKind(kind), what)
	}
	tok := p.peek()
	return scanner.Token{}, p.errorAt(tok.Pos, "expected %s for %s, got %s", describeKind(kind), what, tok.Describe())
}

func (p *Parser) errorAt(pos scanner.Position, format string, args ...any) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...), Previous: p.previous()}
}

func (p *Parser) errorAtCurrent(format string, args ...any) error {
	if p.atEnd() {
		return p.errorAtEnd(format, args...)
	}
	return p.errorAt(p.peek().Pos, format, args...)
}

func (p *Parser) errorAtEnd(format string, args ...any) error {
	pos := scanner.Position{Line: 1, Column: 1}
	if prev := p.previous(); prev != nil {
		pos = prev.Pos
	}
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...), Previous: p.previous()}
}

func describeKind(kind scanner.Kind) string {
	switch kind {
	case scanner.KindIdentifier, scanner.KindType, scanner.KindString, scanner.KindNumber, scanner.KindBoolean:
		return kind.String()
	default:
		return fmt.Sprintf("%q", kind.String())
	}
}
