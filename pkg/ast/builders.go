package ast

import "sol/interpreter-go/pkg/scanner"

// Shorthand constructors used heavily by tests; positions are zeroed.

func Num(v float64) *NumberLiteral { return NewNumberLiteral(v, scanner.Position{}) }

func Str(v string) *StringLiteral { return NewStringLiteral(v, scanner.Position{}) }

func Bool(v bool) *BooleanLiteral { return NewBooleanLiteral(v, scanner.Position{}) }

func ID(name string) *IdentifierRef { return NewIdentifierRef(name, scanner.Position{}) }

func Type(name string) *TypeRef { return NewTypeRef(name, scanner.Position{}) }

func ListType(elem TypeExpression) *ListTypeRef { return NewListTypeRef(elem, scanner.Position{}) }

func Call(callee string, args ...Expression) *CallExpr {
	return NewCallExpr(callee, args, scanner.Position{})
}

func Bin(op scanner.Kind, left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, scanner.Token{Kind: op}, right)
}

func Unary(op scanner.Kind, operand Expression) *UnaryExpr {
	return NewUnaryExpr(scanner.Token{Kind: op}, operand)
}

func Cast(target TypeExpression, value Expression) *TypeCast {
	return NewTypeCast(target, value, scanner.Position{})
}

func Sub(target, index Expression) *SubscriptExpr {
	return NewSubscriptExpr(target, index, scanner.Position{})
}

func Field(parent Expression, field string) *FieldAccessExpr {
	return NewFieldAccessExpr(parent, field, scanner.Position{})
}

func List(elem TypeExpression, elements ...Expression) *ListLiteral {
	return NewListLiteral(elem, elements, scanner.Position{})
}

func StructLit(typeName string, fields ...StructureLiteralField) *StructureLiteral {
	return NewStructureLiteral(typeName, fields, scanner.Position{})
}

func FieldInit(name string, value Expression) StructureLiteralField {
	return StructureLiteralField{Name: name, Value: value}
}

func Var(name string, value Expression) *VarDeclStmt {
	return NewVarDeclStmt(name, value, scanner.Position{})
}

func Assign(name string, value Expression) *AssignStmt {
	return NewAssignStmt(name, value, scanner.Position{})
}

func Bare(expr Expression) *BareStmt { return NewBareStmt(expr, scanner.Position{}) }

func Return(value Expression) *ReturnStmt { return NewReturnStmt(value, scanner.Position{}) }

func Break() *BreakStmt { return NewBreakStmt(scanner.Position{}) }

func Continue() *ContinueStmt { return NewContinueStmt(scanner.Position{}) }

func If(cond Expression, body ...Statement) *IfClause {
	return NewIfClause(cond, body, scanner.Position{})
}

func Else(body ...Statement) *ElseClause { return NewElseClause(body, scanner.Position{}) }

func Cond(ifClause *IfClause, elseIfs []*IfClause, elseClause *ElseClause) *ConditionalChainStmt {
	return NewConditionalChainStmt(ifClause, elseIfs, elseClause, scanner.Position{})
}

func While(cond Expression, body ...Statement) *WhileStmt {
	return NewWhileStmt(cond, body, scanner.Position{})
}

func For(indexName, elementName string, iterable Expression, body ...Statement) *ForStmt {
	return NewForStmt(indexName, elementName, iterable, body, scanner.Position{})
}

func Const(name string, value Expression) *ConstDecl {
	return NewConstDecl(name, value, scanner.Position{})
}

func Func(name string, params []Param, returnType TypeExpression, body ...Statement) *FuncDecl {
	return NewFuncDecl(name, params, returnType, body, scanner.Position{})
}

func P(name string, typ TypeExpression) Param { return Param{Name: name, Type: typ} }

func Structure(name string, fields ...StructField) *StructureDecl {
	return NewStructureDecl(name, fields, scanner.Position{})
}

func F(name string, typ TypeExpression) StructField { return StructField{Name: name, Type: typ} }

func Tree(decls ...Declaration) *ParseTree { return NewParseTree(decls) }
