package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders the parse tree as an indented, parenthesized dump. The format
// is diagnostic only; it is not meant to re-parse.
func Print(tree *ParseTree) string {
	var b strings.Builder
	for i, decl := range tree.Decls {
		if i > 0 {
			b.WriteByte('\n')
		}
		printNode(&b, decl, 0)
		b.WriteByte('\n')
	}
	return b.String()
}

func printNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *ConstDecl:
		fmt.Fprintf(b, "%s(constant %s %s)", indent, node.Name, exprString(node.Value))
	case *FuncDecl:
		fmt.Fprintf(b, "%s(function %s (", indent, node.Name)
		for i, p := range node.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "(%s %s)", p.Name, typeString(p.Type))
		}
		b.WriteString(") ")
		if node.ReturnType != nil {
			b.WriteString(typeString(node.ReturnType))
		} else {
			b.WriteString("Nothing")
		}
		printBlock(b, node.Body, depth+1)
		b.WriteByte(')')
	case *StructureDecl:
		fmt.Fprintf(b, "%s(structure %s", indent, node.Name)
		for _, f := range node.Fields {
			fmt.Fprintf(b, "\n%s  (field %s %s)", indent, f.Name, typeString(f.Type))
		}
		b.WriteByte(')')
	case *VarDeclStmt:
		fmt.Fprintf(b, "%s(variable %s %s)", indent, node.Name, exprString(node.Value))
	case *AssignStmt:
		fmt.Fprintf(b, "%s(assign %s %s)", indent, node.Name, exprString(node.Value))
	case *BareStmt:
		fmt.Fprintf(b, "%s(bare %s)", indent, exprString(node.Expr))
	case *ReturnStmt:
		if node.Value == nil {
			fmt.Fprintf(b, "%s(return)", indent)
		} else {
			fmt.Fprintf(b, "%s(return %s)", indent, exprString(node.Value))
		}
	case *BreakStmt:
		fmt.Fprintf(b, "%s(break)", indent)
	case *ContinueStmt:
		fmt.Fprintf(b, "%s(continue)", indent)
	case *ConditionalChainStmt:
		fmt.Fprintf(b, "%s(cond", indent)
		b.WriteByte('\n')
		printClause(b, "if", node.If.Cond, node.If.Body, depth+1)
		for _, clause := range node.ElseIfs {
			b.WriteByte('\n')
			printClause(b, "else-if", clause.Cond, clause.Body, depth+1)
		}
		if node.Else != nil {
			b.WriteByte('\n')
			printClause(b, "else", nil, node.Else.Body, depth+1)
		}
		b.WriteByte(')')
	case *WhileStmt:
		fmt.Fprintf(b, "%s(while %s", indent, exprString(node.Cond))
		printBlock(b, node.Body, depth+1)
		b.WriteByte(')')
	case *ForStmt:
		fmt.Fprintf(b, "%s(for %s %s %s", indent, node.IndexName, node.ElementName, exprString(node.Iterable))
		printBlock(b, node.Body, depth+1)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "%s%s", indent, exprString(n.(Expression)))
	}
}

func printClause(b *strings.Builder, label string, cond Expression, body []Statement, depth int) {
	indent := strings.Repeat("  ", depth)
	if cond != nil {
		fmt.Fprintf(b, "%s(%s %s", indent, label, exprString(cond))
	} else {
		fmt.Fprintf(b, "%s(%s", indent, label)
	}
	printBlock(b, body, depth+1)
	b.WriteByte(')')
}

func printBlock(b *strings.Builder, stmts []Statement, depth int) {
	for _, stmt := range stmts {
		b.WriteByte('\n')
		printNode(b, stmt, depth)
	}
}

func exprString(e Expression) string {
	switch node := e.(type) {
	case *NumberLiteral:
		return "(number " + strconv.FormatFloat(node.Value, 'f', -1, 64) + ")"
	case *StringLiteral:
		return "(string " + strconv.Quote(node.Value) + ")"
	case *BooleanLiteral:
		return "(boolean " + strconv.FormatBool(node.Value) + ")"
	case *IdentifierRef:
		return "(id " + node.Name + ")"
	case *TypeRef, *ListTypeRef:
		return "(type " + typeString(node.(TypeExpression)) + ")"
	case *ListLiteral:
		parts := make([]string, 0, len(node.Elements)+2)
		parts = append(parts, "list", typeString(node.Elem))
		for _, el := range node.Elements {
			parts = append(parts, exprString(el))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *StructureLiteral:
		parts := make([]string, 0, len(node.Fields)+2)
		parts = append(parts, "structure-literal", node.TypeName)
		for _, f := range node.Fields {
			parts = append(parts, "("+f.Name+" "+exprString(f.Value)+")")
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *CallExpr:
		parts := make([]string, 0, len(node.Args)+2)
		parts = append(parts, "call", node.Callee)
		for _, a := range node.Args {
			parts = append(parts, exprString(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *BinaryExpr:
		return "(binary " + node.Op.Kind.String() + " " + exprString(node.Left) + " " + exprString(node.Right) + ")"
	case *UnaryExpr:
		return "(unary " + node.Op.Kind.String() + " " + exprString(node.Operand) + ")"
	case *TypeCast:
		return "(cast " + typeString(node.Target) + " " + exprString(node.Value) + ")"
	case *SubscriptExpr:
		return "(subscript " + exprString(node.Target) + " " + exprString(node.Index) + ")"
	case *FieldAccessExpr:
		return "(field " + exprString(node.Parent) + " " + node.Field + ")"
	case *NothingExpr:
		return "(nothing)"
	default:
		return fmt.Sprintf("(unknown %s)", e.NodeType())
	}
}

// typeString renders a type expression the way it is written in source.
func typeString(t TypeExpression) string {
	switch node := t.(type) {
	case *TypeRef:
		return node.Name
	case *ListTypeRef:
		return typeString(node.Elem) + "[]"
	default:
		return string(t.NodeType())
	}
}

// TypeString exposes the source-like rendering of a type expression for
// diagnostics elsewhere in the interpreter.
func TypeString(t TypeExpression) string { return typeString(t) }
