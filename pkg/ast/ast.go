package ast

import "sol/interpreter-go/pkg/scanner"

// NodeType identifies the concrete kind of an AST node.
type NodeType string

const (
	NodeParseTree NodeType = "ParseTree"

	NodeConstDecl     NodeType = "ConstDecl"
	NodeFuncDecl      NodeType = "FuncDecl"
	NodeStructureDecl NodeType = "StructureDecl"

	NodeVarDeclStmt          NodeType = "VarDeclStmt"
	NodeAssignStmt           NodeType = "AssignStmt"
	NodeBareStmt             NodeType = "BareStmt"
	NodeReturnStmt           NodeType = "ReturnStmt"
	NodeBreakStmt            NodeType = "BreakStmt"
	NodeContinueStmt         NodeType = "ContinueStmt"
	NodeConditionalChainStmt NodeType = "ConditionalChainStmt"
	NodeIfClause             NodeType = "IfClause"
	NodeElseClause           NodeType = "ElseClause"
	NodeWhileStmt            NodeType = "WhileStmt"
	NodeForStmt              NodeType = "ForStmt"

	NodeNumberLiteral    NodeType = "NumberLiteral"
	NodeStringLiteral    NodeType = "StringLiteral"
	NodeBooleanLiteral   NodeType = "BooleanLiteral"
	NodeListLiteral      NodeType = "ListLiteral"
	NodeStructureLiteral NodeType = "StructureLiteral"
	NodeIdentifierRef    NodeType = "IdentifierRef"
	NodeTypeRef          NodeType = "TypeRef"
	NodeListTypeRef      NodeType = "ListTypeRef"
	NodeCallExpr         NodeType = "CallExpr"
	NodeBinaryExpr       NodeType = "BinaryExpr"
	NodeUnaryExpr        NodeType = "UnaryExpr"
	NodeTypeCast         NodeType = "TypeCast"
	NodeSubscriptExpr    NodeType = "SubscriptExpr"
	NodeFieldAccessExpr  NodeType = "FieldAccessExpr"
	NodeNothingExpr      NodeType = "NothingExpr"
)

// Node is the shared behaviour of every AST node.
type Node interface {
	NodeType() NodeType
	Pos() scanner.Position
	isNode()
}

type node struct {
	kind NodeType
	pos  scanner.Position
}

func (n node) NodeType() NodeType    { return n.kind }
func (n node) Pos() scanner.Position { return n.pos }
func (node) isNode()                 {}

// Marker interfaces.

// Declaration is a top-level, globally named construct.
type Declaration interface {
	Node
	declarationNode()
	Named() string
}

type declarationMarker struct{}

func (declarationMarker) declarationNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// TypeExpression is a type written in source: a bare type name or `T[]`.
type TypeExpression interface {
	Expression
	typeExpressionNode()
}

type typeExpressionMarker struct{}

func (typeExpressionMarker) typeExpressionNode() {}

// ParseTree is the root of a parsed program: the ordered declaration list.
type ParseTree struct {
	node
	Decls []Declaration
}

func NewParseTree(decls []Declaration) *ParseTree {
	return &ParseTree{node: node{kind: NodeParseTree}, Decls: decls}
}

//-----------------------------------------------------------------------------
// Declarations
//-----------------------------------------------------------------------------

// ConstDecl is a top-level `constant NAME = expr;`.
type ConstDecl struct {
	node
	declarationMarker
	Name  string
	Value Expression
}

func NewConstDecl(name string, value Expression, pos scanner.Position) *ConstDecl {
	return &ConstDecl{node: node{kind: NodeConstDecl, pos: pos}, Name: name, Value: value}
}

func (d *ConstDecl) Named() string { return d.Name }

// Param is one function parameter.
type Param struct {
	Name string
	Type TypeExpression
	Pos  scanner.Position
}

// FuncDecl is a `function NAME(params) -> Type { ... }` declaration. A nil
// ReturnType means the function returns Nothing.
type FuncDecl struct {
	node
	declarationMarker
	Name       string
	Params     []Param
	ReturnType TypeExpression
	Body       []Statement
}

func NewFuncDecl(name string, params []Param, returnType TypeExpression, body []Statement, pos scanner.Position) *FuncDecl {
	return &FuncDecl{
		node:       node{kind: NodeFuncDecl, pos: pos},
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

func (d *FuncDecl) Named() string { return d.Name }

// StructField is one declared field of a structure.
type StructField struct {
	Name string
	Type TypeExpression
	Pos  scanner.Position
}

// StructureDecl is a `structure Name { field Type; ... }` declaration. Field
// order is declaration order and field names are unique.
type StructureDecl struct {
	node
	declarationMarker
	Name   string
	Fields []StructField
}

func NewStructureDecl(name string, fields []StructField, pos scanner.Position) *StructureDecl {
	return &StructureDecl{node: node{kind: NodeStructureDecl, pos: pos}, Name: name, Fields: fields}
}

func (d *StructureDecl) Named() string { return d.Name }

// Field returns the declared field with the given name.
func (d *StructureDecl) Field(name string) (StructField, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

// VarDeclStmt introduces a binding into the current block scope.
type VarDeclStmt struct {
	node
	statementMarker
	Name  string
	Value Expression
}

func NewVarDeclStmt(name string, value Expression, pos scanner.Position) *VarDeclStmt {
	return &VarDeclStmt{node: node{kind: NodeVarDeclStmt, pos: pos}, Name: name, Value: value}
}

// AssignStmt reassigns an existing variable in an enclosing scope.
type AssignStmt struct {
	node
	statementMarker
	Name  string
	Value Expression
}

func NewAssignStmt(name string, value Expression, pos scanner.Position) *AssignStmt {
	return &AssignStmt{node: node{kind: NodeAssignStmt, pos: pos}, Name: name, Value: value}
}

// BareStmt evaluates an expression for effect.
type BareStmt struct {
	node
	statementMarker
	Expr Expression
}

func NewBareStmt(expr Expression, pos scanner.Position) *BareStmt {
	return &BareStmt{node: node{kind: NodeBareStmt, pos: pos}, Expr: expr}
}

// ReturnStmt exits the enclosing function. A nil Value returns Nothing.
type ReturnStmt struct {
	node
	statementMarker
	Value Expression
}

func NewReturnStmt(value Expression, pos scanner.Position) *ReturnStmt {
	return &ReturnStmt{node: node{kind: NodeReturnStmt, pos: pos}, Value: value}
}

type BreakStmt struct {
	node
	statementMarker
}

func NewBreakStmt(pos scanner.Position) *BreakStmt {
	return &BreakStmt{node: node{kind: NodeBreakStmt, pos: pos}}
}

type ContinueStmt struct {
	node
	statementMarker
}

func NewContinueStmt(pos scanner.Position) *ContinueStmt {
	return &ContinueStmt{node: node{kind: NodeContinueStmt, pos: pos}}
}

// IfClause binds a condition to a block; used for `if` and each `else if`.
type IfClause struct {
	node
	Cond Expression
	Body []Statement
}

func NewIfClause(cond Expression, body []Statement, pos scanner.Position) *IfClause {
	return &IfClause{node: node{kind: NodeIfClause, pos: pos}, Cond: cond, Body: body}
}

// ElseClause binds the trailing `else` block.
type ElseClause struct {
	node
	Body []Statement
}

func NewElseClause(body []Statement, pos scanner.Position) *ElseClause {
	return &ElseClause{node: node{kind: NodeElseClause, pos: pos}, Body: body}
}

// ConditionalChainStmt is a full `if / else if* / else?` chain. At most one
// branch executes; without an else clause none runs when every condition is
// false.
type ConditionalChainStmt struct {
	node
	statementMarker
	If      *IfClause
	ElseIfs []*IfClause
	Else    *ElseClause
}

func NewConditionalChainStmt(ifClause *IfClause, elseIfs []*IfClause, elseClause *ElseClause, pos scanner.Position) *ConditionalChainStmt {
	return &ConditionalChainStmt{
		node:    node{kind: NodeConditionalChainStmt, pos: pos},
		If:      ifClause,
		ElseIfs: elseIfs,
		Else:    elseClause,
	}
}

type WhileStmt struct {
	node
	statementMarker
	Cond Expression
	Body []Statement
}

func NewWhileStmt(cond Expression, body []Statement, pos scanner.Position) *WhileStmt {
	return &WhileStmt{node: node{kind: NodeWhileStmt, pos: pos}, Cond: cond, Body: body}
}

// ForStmt is `for idx, elem in iterable { ... }`.
type ForStmt struct {
	node
	statementMarker
	IndexName   string
	ElementName string
	Iterable    Expression
	Body        []Statement
}

func NewForStmt(indexName, elementName string, iterable Expression, body []Statement, pos scanner.Position) *ForStmt {
	return &ForStmt{
		node:        node{kind: NodeForStmt, pos: pos},
		IndexName:   indexName,
		ElementName: elementName,
		Iterable:    iterable,
		Body:        body,
	}
}

//-----------------------------------------------------------------------------
// Expressions
//-----------------------------------------------------------------------------

type NumberLiteral struct {
	node
	expressionMarker
	Value float64
}

func NewNumberLiteral(value float64, pos scanner.Position) *NumberLiteral {
	return &NumberLiteral{node: node{kind: NodeNumberLiteral, pos: pos}, Value: value}
}

type StringLiteral struct {
	node
	expressionMarker
	Value string
}

func NewStringLiteral(value string, pos scanner.Position) *StringLiteral {
	return &StringLiteral{node: node{kind: NodeStringLiteral, pos: pos}, Value: value}
}

type BooleanLiteral struct {
	node
	expressionMarker
	Value bool
}

func NewBooleanLiteral(value bool, pos scanner.Position) *BooleanLiteral {
	return &BooleanLiteral{node: node{kind: NodeBooleanLiteral, pos: pos}, Value: value}
}

// ListLiteral is `Elem[expr, ...]`.
type ListLiteral struct {
	node
	expressionMarker
	Elem     TypeExpression
	Elements []Expression
}

func NewListLiteral(elem TypeExpression, elements []Expression, pos scanner.Position) *ListLiteral {
	return &ListLiteral{node: node{kind: NodeListLiteral, pos: pos}, Elem: elem, Elements: elements}
}

// StructureLiteralField is one `name: expr` entry of a structure literal.
type StructureLiteralField struct {
	Name  string
	Value Expression
	Pos   scanner.Position
}

// StructureLiteral is `TypeName{field: expr, ...}`.
type StructureLiteral struct {
	node
	expressionMarker
	TypeName string
	Fields   []StructureLiteralField
}

func NewStructureLiteral(typeName string, fields []StructureLiteralField, pos scanner.Position) *StructureLiteral {
	return &StructureLiteral{node: node{kind: NodeStructureLiteral, pos: pos}, TypeName: typeName, Fields: fields}
}

// IdentifierRef names a variable, constant, or parameter.
type IdentifierRef struct {
	node
	expressionMarker
	Name string
}

func NewIdentifierRef(name string, pos scanner.Position) *IdentifierRef {
	return &IdentifierRef{node: node{kind: NodeIdentifierRef, pos: pos}, Name: name}
}

// TypeRef is a bare type name used as a type expression.
type TypeRef struct {
	node
	expressionMarker
	typeExpressionMarker
	Name string
}

func NewTypeRef(name string, pos scanner.Position) *TypeRef {
	return &TypeRef{node: node{kind: NodeTypeRef, pos: pos}, Name: name}
}

// ListTypeRef denotes `T[]`.
type ListTypeRef struct {
	node
	expressionMarker
	typeExpressionMarker
	Elem TypeExpression
}

func NewListTypeRef(elem TypeExpression, pos scanner.Position) *ListTypeRef {
	return &ListTypeRef{node: node{kind: NodeListTypeRef, pos: pos}, Elem: elem}
}

// CallExpr invokes a named function or built-in.
type CallExpr struct {
	node
	expressionMarker
	Callee string
	Args   []Expression
}

func NewCallExpr(callee string, args []Expression, pos scanner.Position) *CallExpr {
	return &CallExpr{node: node{kind: NodeCallExpr, pos: pos}, Callee: callee, Args: args}
}

// BinaryExpr applies Op to Left and Right. Op is the operator token, which
// keeps the source position for runtime diagnostics.
type BinaryExpr struct {
	node
	expressionMarker
	Left  Expression
	Op    scanner.Token
	Right Expression
}

func NewBinaryExpr(left Expression, op scanner.Token, right Expression) *BinaryExpr {
	return &BinaryExpr{node: node{kind: NodeBinaryExpr, pos: op.Pos}, Left: left, Op: op, Right: right}
}

type UnaryExpr struct {
	node
	expressionMarker
	Op      scanner.Token
	Operand Expression
}

func NewUnaryExpr(op scanner.Token, operand Expression) *UnaryExpr {
	return &UnaryExpr{node: node{kind: NodeUnaryExpr, pos: op.Pos}, Op: op, Operand: operand}
}

// TypeCast is `Type(expr)`.
type TypeCast struct {
	node
	expressionMarker
	Target TypeExpression
	Value  Expression
}

func NewTypeCast(target TypeExpression, value Expression, pos scanner.Position) *TypeCast {
	return &TypeCast{node: node{kind: NodeTypeCast, pos: pos}, Target: target, Value: value}
}

// SubscriptExpr is `target[index]`.
type SubscriptExpr struct {
	node
	expressionMarker
	Target Expression
	Index  Expression
}

func NewSubscriptExpr(target, index Expression, pos scanner.Position) *SubscriptExpr {
	return &SubscriptExpr{node: node{kind: NodeSubscriptExpr, pos: pos}, Target: target, Index: index}
}

// FieldAccessExpr is `parent.field`.
type FieldAccessExpr struct {
	node
	expressionMarker
	Parent Expression
	Field  string
}

func NewFieldAccessExpr(parent Expression, field string, pos scanner.Position) *FieldAccessExpr {
	return &FieldAccessExpr{node: node{kind: NodeFieldAccessExpr, pos: pos}, Parent: parent, Field: field}
}

// NothingExpr is the synthetic placeholder for "no value".
type NothingExpr struct {
	node
	expressionMarker
}

func NewNothingExpr(pos scanner.Position) *NothingExpr {
	return &NothingExpr{node: node{kind: NodeNothingExpr, pos: pos}}
}
