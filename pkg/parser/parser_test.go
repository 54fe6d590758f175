package parser

import (
	"errors"
	"strings"
	"testing"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/scanner"
)

func parseSource(t *testing.T, src string) *ast.ParseTree {
	t.Helper()
	tokens, err := scanner.Scan(scanner.NewSource(src))
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	tree, err := Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return tree
}

func parseErr(t *testing.T, src string) *ParseError {
	t.Helper()
	tokens, err := scanner.Scan(scanner.NewSource(src))
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	_, err = Parse(tokens)
	var parseError *ParseError
	if !errors.As(err, &parseError) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	return parseError
}

func mainBody(t *testing.T, tree *ast.ParseTree) []ast.Statement {
	t.Helper()
	for _, decl := range tree.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name == "main" {
			return fn.Body
		}
	}
	t.Fatalf("no main function in tree")
	return nil
}

func TestParseEmptyProgram(t *testing.T) {
	tree := parseSource(t, "")
	if len(tree.Decls) != 0 {
		t.Fatalf("expected empty parse tree, got %d declarations", len(tree.Decls))
	}
}

func TestParseHelloWorld(t *testing.T) {
	tree := parseSource(t, `function main() { print("Hello, world!"); }`)
	body := mainBody(t, tree)
	if len(body) != 1 {
		t.Fatalf("expected one statement, got %d", len(body))
	}
	bare, ok := body[0].(*ast.BareStmt)
	if !ok {
		t.Fatalf("expected BareStmt, got %#v", body[0])
	}
	call, ok := bare.Expr.(*ast.CallExpr)
	if !ok || call.Callee != "print" || len(call.Args) != 1 {
		t.Fatalf("unexpected call %#v", bare.Expr)
	}
	str, ok := call.Args[0].(*ast.StringLiteral)
	if !ok || str.Value != "Hello, world!" {
		t.Fatalf("unexpected argument %#v", call.Args[0])
	}
}

func TestParseConstDecl(t *testing.T) {
	tree := parseSource(t, "constant limit = 3 + 4;")
	decl, ok := tree.Decls[0].(*ast.ConstDecl)
	if !ok || decl.Name != "limit" {
		t.Fatalf("unexpected declaration %#v", tree.Decls[0])
	}
	bin, ok := decl.Value.(*ast.BinaryExpr)
	if !ok || bin.Op.Kind != scanner.KindPlus {
		t.Fatalf("unexpected initializer %#v", decl.Value)
	}
}

func TestParseFunctionSignature(t *testing.T) {
	tree := parseSource(t, "function max(values Number[], fallback Number) -> Number { return fallback; }")
	fn := tree.Decls[0].(*ast.FuncDecl)
	if fn.Name != "max" || len(fn.Params) != 2 {
		t.Fatalf("unexpected signature %#v", fn)
	}
	if _, ok := fn.Params[0].Type.(*ast.ListTypeRef); !ok {
		t.Fatalf("expected list type for first parameter, got %#v", fn.Params[0].Type)
	}
	ret, ok := fn.ReturnType.(*ast.TypeRef)
	if !ok || ret.Name != "Number" {
		t.Fatalf("unexpected return type %#v", fn.ReturnType)
	}
}

func TestParseFunctionWithoutReturnType(t *testing.T) {
	tree := parseSource(t, "function main() { }")
	fn := tree.Decls[0].(*ast.FuncDecl)
	if fn.ReturnType != nil {
		t.Fatalf("expected nil return type, got %#v", fn.ReturnType)
	}
}

func TestParseTrailingCommaInParams(t *testing.T) {
	tree := parseSource(t, "function f(a Number, b String,) { }")
	fn := tree.Decls[0].(*ast.FuncDecl)
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
}

func TestParseStructureDecl(t *testing.T) {
	tree := parseSource(t, "structure Student { name String; grades Number[]; }")
	decl := tree.Decls[0].(*ast.StructureDecl)
	if decl.Name != "Student" || len(decl.Fields) != 2 {
		t.Fatalf("unexpected structure %#v", decl)
	}
	if decl.Fields[0].Name != "name" || decl.Fields[1].Name != "grades" {
		t.Fatalf("unexpected field order %#v", decl.Fields)
	}
	if _, ok := decl.Fields[1].Type.(*ast.ListTypeRef); !ok {
		t.Fatalf("expected list type for grades, got %#v", decl.Fields[1].Type)
	}
}

func TestParseVarDeclVersusAssignVersusExpr(t *testing.T) {
	tree := parseSource(t, `function main() {
  variable x = 1;
  x = 2;
  print("done");
}`)
	body := mainBody(t, tree)
	if _, ok := body[0].(*ast.VarDeclStmt); !ok {
		t.Fatalf("expected VarDeclStmt, got %#v", body[0])
	}
	if _, ok := body[1].(*ast.AssignStmt); !ok {
		t.Fatalf("expected AssignStmt, got %#v", body[1])
	}
	if _, ok := body[2].(*ast.BareStmt); !ok {
		t.Fatalf("expected BareStmt, got %#v", body[2])
	}
}

func TestParseLeftAssociativeArithmetic(t *testing.T) {
	tree := parseSource(t, "constant x = 6 / 3 / 2;")
	decl := tree.Decls[0].(*ast.ConstDecl)
	outer, ok := decl.Value.(*ast.BinaryExpr)
	if !ok || outer.Op.Kind != scanner.KindSlash {
		t.Fatalf("unexpected expression %#v", decl.Value)
	}
	// Left-leaning: (6 / 3) / 2.
	inner, ok := outer.Left.(*ast.BinaryExpr)
	if !ok || inner.Op.Kind != scanner.KindSlash {
		t.Fatalf("expected left-leaning tree, got left %#v", outer.Left)
	}
	if right, ok := outer.Right.(*ast.NumberLiteral); !ok || right.Value != 2 {
		t.Fatalf("unexpected right operand %#v", outer.Right)
	}
}

func TestParsePrecedence(t *testing.T) {
	tree := parseSource(t, "constant x = 1 + 2 * 3 == 7;")
	decl := tree.Decls[0].(*ast.ConstDecl)
	eq, ok := decl.Value.(*ast.BinaryExpr)
	if !ok || eq.Op.Kind != scanner.KindEqual {
		t.Fatalf("expected equality at root, got %#v", decl.Value)
	}
	sum, ok := eq.Left.(*ast.BinaryExpr)
	if !ok || sum.Op.Kind != scanner.KindPlus {
		t.Fatalf("expected sum under equality, got %#v", eq.Left)
	}
	prod, ok := sum.Right.(*ast.BinaryExpr)
	if !ok || prod.Op.Kind != scanner.KindStar {
		t.Fatalf("expected product under sum, got %#v", sum.Right)
	}
}

func TestParseUnaryChainsRightToLeft(t *testing.T) {
	tree := parseSource(t, "constant x = !!true;")
	decl := tree.Decls[0].(*ast.ConstDecl)
	outer, ok := decl.Value.(*ast.UnaryExpr)
	if !ok || outer.Op.Kind != scanner.KindBang {
		t.Fatalf("unexpected expression %#v", decl.Value)
	}
	if _, ok := outer.Operand.(*ast.UnaryExpr); !ok {
		t.Fatalf("expected nested unary, got %#v", outer.Operand)
	}
}

func TestParseTypeHeadedForms(t *testing.T) {
	tree := parseSource(t, `function main() {
  variable xs = Number[1, 2, 3];
  variable s = String(42);
  variable bob = Student{name: "Bob", age: 20};
  variable t = Number;
}`)
	body := mainBody(t, tree)

	list, ok := body[0].(*ast.VarDeclStmt).Value.(*ast.ListLiteral)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("unexpected list literal %#v", body[0].(*ast.VarDeclStmt).Value)
	}
	if elem, ok := list.Elem.(*ast.TypeRef); !ok || elem.Name != "Number" {
		t.Fatalf("unexpected element type %#v", list.Elem)
	}

	cast, ok := body[1].(*ast.VarDeclStmt).Value.(*ast.TypeCast)
	if !ok {
		t.Fatalf("expected TypeCast, got %#v", body[1].(*ast.VarDeclStmt).Value)
	}
	if target, ok := cast.Target.(*ast.TypeRef); !ok || target.Name != "String" {
		t.Fatalf("unexpected cast target %#v", cast.Target)
	}

	lit, ok := body[2].(*ast.VarDeclStmt).Value.(*ast.StructureLiteral)
	if !ok || lit.TypeName != "Student" || len(lit.Fields) != 2 {
		t.Fatalf("unexpected structure literal %#v", body[2].(*ast.VarDeclStmt).Value)
	}
	if lit.Fields[0].Name != "name" || lit.Fields[1].Name != "age" {
		t.Fatalf("unexpected field order %#v", lit.Fields)
	}

	ref, ok := body[3].(*ast.VarDeclStmt).Value.(*ast.TypeRef)
	if !ok || ref.Name != "Number" {
		t.Fatalf("expected bare type reference, got %#v", body[3].(*ast.VarDeclStmt).Value)
	}
}

func TestParseListLiteralTrailingComma(t *testing.T) {
	with := parseSource(t, "constant a = Number[1, 2, 3,];")
	without := parseSource(t, "constant a = Number[1, 2, 3];")
	lw := with.Decls[0].(*ast.ConstDecl).Value.(*ast.ListLiteral)
	lo := without.Decls[0].(*ast.ConstDecl).Value.(*ast.ListLiteral)
	if len(lw.Elements) != len(lo.Elements) {
		t.Fatalf("trailing comma changed element count: %d vs %d", len(lw.Elements), len(lo.Elements))
	}
}

func TestParseEmptyListLiteral(t *testing.T) {
	tree := parseSource(t, "constant a = Number[];")
	list := tree.Decls[0].(*ast.ConstDecl).Value.(*ast.ListLiteral)
	if len(list.Elements) != 0 {
		t.Fatalf("expected empty list, got %d elements", len(list.Elements))
	}
}

func TestParsePostfixChain(t *testing.T) {
	tree := parseSource(t, "function main() { variable x = class.students[0].name; }")
	value := mainBody(t, tree)[0].(*ast.VarDeclStmt).Value
	outer, ok := value.(*ast.FieldAccessExpr)
	if !ok || outer.Field != "name" {
		t.Fatalf("unexpected outer node %#v", value)
	}
	sub, ok := outer.Parent.(*ast.SubscriptExpr)
	if !ok {
		t.Fatalf("expected subscript under field access, got %#v", outer.Parent)
	}
	inner, ok := sub.Target.(*ast.FieldAccessExpr)
	if !ok || inner.Field != "students" {
		t.Fatalf("unexpected subscript target %#v", sub.Target)
	}
	if id, ok := inner.Parent.(*ast.IdentifierRef); !ok || id.Name != "class" {
		t.Fatalf("unexpected chain head %#v", inner.Parent)
	}
}

func TestParseCallRequiresNamedCallee(t *testing.T) {
	perr := parseErr(t, "function main() { a.b(1); }")
	if !strings.Contains(perr.Message, "named function") {
		t.Fatalf("unexpected message %q", perr.Message)
	}
}

func TestParseDeepConditionalChain(t *testing.T) {
	var b strings.Builder
	b.WriteString("function main() {\n")
	b.WriteString("  if x == 0 { print(\"0\"); }\n")
	for i := 1; i < 64; i++ {
		b.WriteString("  else if x == ")
		b.WriteString(strings.Repeat("1", 1))
		b.WriteString(" { print(\"n\"); }\n")
	}
	b.WriteString("  else { print(\"other\"); }\n}\n")
	tree := parseSource(t, b.String())
	chain := mainBody(t, tree)[0].(*ast.ConditionalChainStmt)
	if len(chain.ElseIfs) != 63 {
		t.Fatalf("expected 63 else-if clauses, got %d", len(chain.ElseIfs))
	}
	if chain.Else == nil {
		t.Fatalf("expected trailing else clause")
	}
}

func TestParseErrorKeepsPreviousToken(t *testing.T) {
	perr := parseErr(t, "function main() { variable x 1; }")
	if perr.Previous == nil {
		t.Fatalf("expected previous token for context")
	}
	if perr.Previous.Kind != scanner.KindIdentifier || perr.Previous.Lexeme != "x" {
		t.Fatalf("unexpected previous token %#v", perr.Previous)
	}
	if perr.Pos.Line != 1 {
		t.Fatalf("unexpected position %v", perr.Pos)
	}
}

func TestParseErrorAtTopLevel(t *testing.T) {
	perr := parseErr(t, "print(1);")
	if !strings.Contains(perr.Message, "declaration") {
		t.Fatalf("unexpected message %q", perr.Message)
	}
}

func TestParseDeterministic(t *testing.T) {
	src := `function main() { variable x = 1 + 2 * 3; print(String(x)); }`
	first := ast.Print(parseSource(t, src))
	second := ast.Print(parseSource(t, src))
	if first != second {
		t.Fatalf("parsing is not deterministic:\n%s\nvs\n%s", first, second)
	}
}
