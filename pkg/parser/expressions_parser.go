package parser

import (
	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/scanner"
)

// expr ::= equality
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseEquality()
}

// equality ::= comparison ( ("=="|"!=") comparison )*
func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(scanner.KindEqual, scanner.KindNotEqual)
		if !ok {
			return left, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left, op, right)
	}
}

// comparison ::= term ( ("<"|"<="|">"|">=") term )*
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(scanner.KindLess, scanner.KindLessEqual, scanner.KindGreater, scanner.KindGreaterEqual)
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left, op, right)
	}
}

// term ::= factor ( ("+"|"-") factor )*
func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(scanner.KindPlus, scanner.KindMinus)
		if !ok {
			return left, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left, op, right)
	}
}

// factor ::= unary ( ("*"|"/"|"%") unary )*
//
// Chained multiplicative operators build a left-leaning tree, so 6/3/2
// means (6/3)/2.
func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(scanner.KindStar, scanner.KindSlash, scanner.KindPercent)
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left, op, right)
	}
}

// unary ::= ("!"|"-") unary | call
func (p *Parser) parseUnary() (ast.Expression, error) {
	if op, ok := p.match(scanner.KindBang, scanner.KindMinus); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(op, operand), nil
	}
	return p.parseCall()
}

// call ::= primary ( "(" args? ")" | "." IDENT | "[" expr "]" )*
func (p *Parser) parseCall() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(scanner.KindLeftParen):
			open := p.advance()
			ident, ok := expr.(*ast.IdentifierRef)
			if !ok {
				return nil, p.errorAt(open.Pos, "only a named function can be called")
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(scanner.KindRightParen, "call arguments"); err != nil {
				return nil, err
			}
			expr = ast.NewCallExpr(ident.Name, args, ident.Pos())
		case p.check(scanner.KindDot):
			dot := p.advance()
			field, err := p.consume(scanner.KindIdentifier, "field access")
			if err != nil {
				return nil, err
			}
			expr = ast.NewFieldAccessExpr(expr, field.Lexeme, dot.Pos)
		case p.check(scanner.KindLeftSquare):
			open := p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(scanner.KindRightSquare, "subscript"); err != nil {
				return nil, err
			}
			expr = ast.NewSubscriptExpr(expr, index, open.Pos)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	var args []ast.Expression
	if p.check(scanner.KindRightParen) {
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if _, ok := p.match(scanner.KindComma); !ok {
			return args, nil
		}
		// Trailing comma.
		if p.check(scanner.KindRightParen) {
			return args, nil
		}
	}
}

// primary ::= STRING | NUMBER | BOOL | "(" expr ")"
//
//	| TYPE ("[" list_body "]" | "(" expr ")" | "{" struct_body "}" | ε)
//	| IDENT
func (p *Parser) parsePrimary() (ast.Expression, error) {
	if p.atEnd() {
		return nil, p.errorAtEnd("expected an expression")
	}
	tok := p.peek()
	switch tok.Kind {
	case scanner.KindString:
		p.advance()
		return ast.NewStringLiteral(tok.Lexeme, tok.Pos), nil
	case scanner.KindNumber:
		p.advance()
		return ast.NewNumberLiteral(tok.Number, tok.Pos), nil
	case scanner.KindBoolean:
		p.advance()
		return ast.NewBooleanLiteral(tok.Lexeme == "true", tok.Pos), nil
	case scanner.KindLeftParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.KindRightParen, "grouping"); err != nil {
			return nil, err
		}
		return expr, nil
	case scanner.KindType:
		return p.parseTypeHeaded()
	case scanner.KindIdentifier:
		p.advance()
		return ast.NewIdentifierRef(tok.Lexeme, tok.Pos), nil
	default:
		return nil, p.errorAtCurrent("expected an expression, got %s", tok.Describe())
	}
}

// parseTypeHeaded disambiguates the constructs that start with a bare type
// name: a list literal, a type cast, a structure literal, or a plain type
// reference.
func (p *Parser) parseTypeHeaded() (ast.Expression, error) {
	name := p.advance()
	typeRef := ast.NewTypeRef(name.Lexeme, name.Pos)
	switch p.peek().Kind {
	case scanner.KindLeftSquare:
		open := p.advance()
		elements, err := p.parseListBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.KindRightSquare, "list literal"); err != nil {
			return nil, err
		}
		return ast.NewListLiteral(typeRef, elements, open.Pos), nil
	case scanner.KindLeftParen:
		open := p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.KindRightParen, "type cast"); err != nil {
			return nil, err
		}
		return ast.NewTypeCast(typeRef, value, open.Pos), nil
	case scanner.KindLeftCurly:
		open := p.advance()
		fields, err := p.parseStructBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.KindRightCurly, "structure literal"); err != nil {
			return nil, err
		}
		return ast.NewStructureLiteral(name.Lexeme, fields, open.Pos), nil
	default:
		return typeRef, nil
	}
}

// list_body ::= (expr ("," expr)* ","?)?
func (p *Parser) parseListBody() ([]ast.Expression, error) {
	var elements []ast.Expression
	if p.check(scanner.KindRightSquare) {
		return elements, nil
	}
	for {
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		if _, ok := p.match(scanner.KindComma); !ok {
			return elements, nil
		}
		if p.check(scanner.KindRightSquare) {
			return elements, nil
		}
	}
}

// struct_body ::= (IDENT ":" expr) ("," IDENT ":" expr)* ","?
func (p *Parser) parseStructBody() ([]ast.StructureLiteralField, error) {
	var fields []ast.StructureLiteralField
	if p.check(scanner.KindRightCurly) {
		return fields, nil
	}
	for {
		name, err := p.consume(scanner.KindIdentifier, "structure literal field")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.KindColon, "structure literal field"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.StructureLiteralField{Name: name.Lexeme, Value: value, Pos: name.Pos})
		if _, ok := p.match(scanner.KindComma); !ok {
			return fields, nil
		}
		if p.check(scanner.KindRightCurly) {
			return fields, nil
		}
	}
}
