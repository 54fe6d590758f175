package parser

import (
	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/scanner"
)

func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	switch p.peek().Kind {
	case scanner.KindConstant:
		return p.parseConstDecl()
	case scanner.KindFunction:
		return p.parseFuncDecl()
	case scanner.KindStructure:
		return p.parseStructureDecl()
	default:
		if p.atEnd() {
			return nil, p.errorAtEnd("expected a declaration")
		}
		return nil, p.errorAtCurrent("expected a declaration, got %s", p.peek().Describe())
	}
}

// const_decl ::= "constant" IDENT "=" expr ";"
func (p *Parser) parseConstDecl() (*ast.ConstDecl, error) {
	keyword := p.advance()
	name, err := p.consume(scanner.KindIdentifier, "constant name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindAssign, "constant declaration"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindSemicolon, "constant declaration"); err != nil {
		return nil, err
	}
	return ast.NewConstDecl(name.Lexeme, value, keyword.Pos), nil
}

// func_decl ::= "function" IDENT "(" params? ")" ("->" type_ref)? block
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	keyword := p.advance()
	name, err := p.consume(scanner.KindIdentifier, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindLeftParen, "function parameter list"); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindRightParen, "function parameter list"); err != nil {
		return nil, err
	}
	var returnType ast.TypeExpression
	if _, ok := p.match(scanner.KindArrow); ok {
		returnType, err = p.parseTypeRef()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncDecl(name.Lexeme, params, returnType, body, keyword.Pos), nil
}

// params ::= (IDENT type_ref) ("," IDENT type_ref)* ","?
func (p *Parser) parseParams() ([]ast.Param, error) {
	var params []ast.Param
	for p.check(scanner.KindIdentifier) {
		name := p.advance()
		typ, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: name.Lexeme, Type: typ, Pos: name.Pos})
		if _, ok := p.match(scanner.KindComma); !ok {
			break
		}
	}
	return params, nil
}

// struct_decl ::= "structure" TYPE "{" (IDENT type_ref ";")* "}"
func (p *Parser) parseStructureDecl() (*ast.StructureDecl, error) {
	keyword := p.advance()
	name, err := p.consume(scanner.KindType, "structure name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindLeftCurly, "structure body"); err != nil {
		return nil, err
	}
	var fields []ast.StructField
	for p.check(scanner.KindIdentifier) {
		fieldName := p.advance()
		typ, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.KindSemicolon, "structure field"); err != nil {
			return nil, err
		}
		fields = append(fields, ast.StructField{Name: fieldName.Lexeme, Type: typ, Pos: fieldName.Pos})
	}
	if _, err := p.consume(scanner.KindRightCurly, "structure body"); err != nil {
		return nil, err
	}
	return ast.NewStructureDecl(name.Lexeme, fields, keyword.Pos), nil
}

// parseTypeRef reads a type written in a type position: a type name followed
// by any number of `[]` suffixes.
func (p *Parser) parseTypeRef() (ast.TypeExpression, error) {
	name, err := p.consume(scanner.KindType, "type")
	if err != nil {
		return nil, err
	}
	var typ ast.TypeExpression = ast.NewTypeRef(name.Lexeme, name.Pos)
	for p.tokensMatch(scanner.KindLeftSquare, scanner.KindRightSquare) {
		open := p.advance()
		p.advance()
		typ = ast.NewListTypeRef(typ, open.Pos)
	}
	return typ, nil
}

// block ::= "{" stmt* "}"
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.consume(scanner.KindLeftCurly, "block"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check(scanner.KindRightCurly) {
		if p.atEnd() {
			return nil, p.errorAtEnd("unterminated block, expected %q", "}")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance()
	return stmts, nil
}
