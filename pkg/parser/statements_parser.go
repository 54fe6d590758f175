package parser

import (
	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/scanner"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case scanner.KindIf:
		return p.parseConditionalChain()
	case scanner.KindWhile:
		return p.parseWhile()
	case scanner.KindFor:
		return p.parseFor()
	case scanner.KindBreak:
		keyword := p.advance()
		if _, err := p.consume(scanner.KindSemicolon, "break statement"); err != nil {
			return nil, err
		}
		return ast.NewBreakStmt(keyword.Pos), nil
	case scanner.KindContinue:
		keyword := p.advance()
		if _, err := p.consume(scanner.KindSemicolon, "continue statement"); err != nil {
			return nil, err
		}
		return ast.NewContinueStmt(keyword.Pos), nil
	case scanner.KindReturn:
		return p.parseReturn()
	case scanner.KindVariable:
		return p.parseVarDecl()
	case scanner.KindIdentifier:
		// Two-token lookahead picks reassignment over an expression
		// statement that merely starts with an identifier.
		if p.tokensMatch(scanner.KindIdentifier, scanner.KindAssign) {
			return p.parseAssign()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// if_chain ::= "if" expr block ("else" "if" expr block)* ("else" block)?
func (p *Parser) parseConditionalChain() (ast.Statement, error) {
	ifClause, err := p.parseIfClause()
	if err != nil {
		return nil, err
	}
	var elseIfs []*ast.IfClause
	var elseClause *ast.ElseClause
	for p.check(scanner.KindElse) {
		if p.tokensMatch(scanner.KindElse, scanner.KindIf) {
			p.advance()
			clause, err := p.parseIfClause()
			if err != nil {
				return nil, err
			}
			elseIfs = append(elseIfs, clause)
			continue
		}
		keyword := p.advance()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseClause = ast.NewElseClause(body, keyword.Pos)
		break
	}
	return ast.NewConditionalChainStmt(ifClause, elseIfs, elseClause, ifClause.Pos()), nil
}

func (p *Parser) parseIfClause() (*ast.IfClause, error) {
	keyword := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewIfClause(cond, body, keyword.Pos), nil
}

// while ::= "while" expr block
func (p *Parser) parseWhile() (ast.Statement, error) {
	keyword := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(cond, body, keyword.Pos), nil
}

// for ::= "for" IDENT "," IDENT "in" expr block
func (p *Parser) parseFor() (ast.Statement, error) {
	keyword := p.advance()
	indexName, err := p.consume(scanner.KindIdentifier, "loop index name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindComma, "for loop header"); err != nil {
		return nil, err
	}
	elementName, err := p.consume(scanner.KindIdentifier, "loop element name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindIn, "for loop header"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewForStmt(indexName.Lexeme, elementName.Lexeme, iterable, body, keyword.Pos), nil
}

// return ::= "return" expr? ";"
func (p *Parser) parseReturn() (ast.Statement, error) {
	keyword := p.advance()
	var value ast.Expression
	if !p.check(scanner.KindSemicolon) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(scanner.KindSemicolon, "return statement"); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(value, keyword.Pos), nil
}

// var_decl ::= "variable" IDENT "=" expr ";"
func (p *Parser) parseVarDecl() (ast.Statement, error) {
	keyword := p.advance()
	name, err := p.consume(scanner.KindIdentifier, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindAssign, "variable declaration"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindSemicolon, "variable declaration"); err != nil {
		return nil, err
	}
	return ast.NewVarDeclStmt(name.Lexeme, value, keyword.Pos), nil
}

// assign ::= IDENT "=" expr ";"
func (p *Parser) parseAssign() (ast.Statement, error) {
	name := p.advance()
	p.advance() // "="
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindSemicolon, "assignment"); err != nil {
		return nil, err
	}
	return ast.NewAssignStmt(name.Lexeme, value, name.Pos), nil
}

// expr_stmt ::= expr ";"
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	if p.atEnd() {
		return nil, p.errorAtEnd("expected a statement")
	}
	start := p.peek().Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.KindSemicolon, "expression statement"); err != nil {
		return nil, err
	}
	return ast.NewBareStmt(expr, start), nil
}
