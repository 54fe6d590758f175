package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/parser"
	"sol/interpreter-go/pkg/runtime"
	"sol/interpreter-go/pkg/scanner"
)

// runSource scans, parses, and interprets a program, returning the stdout
// transcript.
func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, err := scanner.Scan(scanner.NewSource(src))
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	err = Interpret(tree, WithStdout(&out))
	return out.String(), err
}

func expectOutput(t *testing.T, src string, lines ...string) {
	t.Helper()
	got, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := strings.Join(lines, "\n")
	if len(lines) > 0 {
		want += "\n"
	}
	if got != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", got, want)
	}
}

func expectRuntimeError(t *testing.T, src, fragment string) *RuntimeError {
	t.Helper()
	_, err := runSource(t, src)
	var rte *RuntimeError
	if !errors.As(err, &rte) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	if !strings.Contains(rte.Message, fragment) {
		t.Fatalf("expected message containing %q, got %q", fragment, rte.Message)
	}
	return rte
}

func TestLoadProgramRejectsDuplicateNames(t *testing.T) {
	i := New()
	tree := ast.Tree(
		ast.Func("twice", nil, nil),
		ast.Func("twice", nil, nil),
	)
	err := i.LoadProgram(tree)
	var rte *RuntimeError
	if !errors.As(err, &rte) || !strings.Contains(rte.Message, "duplicate") {
		t.Fatalf("expected duplicate declaration error, got %v", err)
	}
}

func TestLoadProgramRejectsCrossKindCollision(t *testing.T) {
	i := New()
	tree := ast.Tree(
		ast.Const("thing", ast.Num(1)),
		ast.Structure("Widget"),
		ast.Func("thing", nil, nil),
	)
	if err := i.LoadProgram(tree); err == nil {
		t.Fatalf("expected collision between constant and function")
	}
}

func TestLoadProgramReservesBuiltins(t *testing.T) {
	i := New()
	tree := ast.Tree(ast.Func("print", nil, nil))
	err := i.LoadProgram(tree)
	var rte *RuntimeError
	if !errors.As(err, &rte) || !strings.Contains(rte.Message, "built-in") {
		t.Fatalf("expected built-in reservation error, got %v", err)
	}
}

func TestRunWithoutMain(t *testing.T) {
	i := New()
	if err := i.LoadProgram(ast.Tree()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	err := i.Run()
	var rte *RuntimeError
	if !errors.As(err, &rte) || !strings.Contains(rte.Message, "main") {
		t.Fatalf("expected missing main error, got %v", err)
	}
}

func TestConstantsEvaluateOnFirstUse(t *testing.T) {
	expectOutput(t, `
constant greeting = "Hello" + ", " + "Sol!";
function main() {
  print(greeting);
  print(greeting);
}`, "Hello, Sol!", "Hello, Sol!")
}

func TestUndefinedIdentifier(t *testing.T) {
	rte := expectRuntimeError(t, `function main() { print(ghost); }`, "undefined identifier")
	if !rte.Pos.IsKnown() {
		t.Fatalf("expected a source position, got %v", rte.Pos)
	}
}

func TestVariableShadowingRulesInsideFrame(t *testing.T) {
	expectRuntimeError(t, `
function main() {
  variable x = 1;
  variable x = 2;
}`, "already declared")
}

func TestBranchScopeAllowsRedeclaration(t *testing.T) {
	expectOutput(t, `
function main() {
  variable x = 1;
  if true {
    variable y = 10;
    print(String(y));
  }
  if true {
    variable y = 20;
    print(String(y));
  }
  print(String(x));
}`, "10", "20", "1")
}

func TestReassignmentTypeMismatch(t *testing.T) {
	expectRuntimeError(t, `
function main() {
  variable x = 1;
  x = "one";
}`, "cannot assign String")
}

func TestParameterTypeChecking(t *testing.T) {
	expectRuntimeError(t, `
function shout(msg String) { print(msg); }
function main() { shout(42); }`, "expects String, got Number")
}

func TestArgumentCountChecking(t *testing.T) {
	expectRuntimeError(t, `
function pair(a Number, b Number) { }
function main() { pair(1); }`, "expects 2 argument(s)")
}

func TestReturnTypeMismatchNamesFunctionAndTypes(t *testing.T) {
	rte := expectRuntimeError(t, `
function silent() -> Nothing { return 42; }
function main() { silent(); }`, "silent")
	if !strings.Contains(rte.Message, "Nothing") || !strings.Contains(rte.Message, "Number") {
		t.Fatalf("expected both type descriptors in %q", rte.Message)
	}
}

func TestFunctionWithoutReturnTypeYieldsNothing(t *testing.T) {
	expectOutput(t, `
function greet() { print("hi"); }
function main() { greet(); }`, "hi")
}

func TestReturningValueFromUntypedFunctionFails(t *testing.T) {
	expectRuntimeError(t, `
function oops() { return 1; }
function main() { oops(); }`, "expected return type Nothing")
}

func TestCallStackBalancedAfterError(t *testing.T) {
	src := `
function inner() -> Number {
  if true {
    variable boom = Number[1][5];
  }
  return 0;
}
function main() { inner(); }`
	tokens, err := scanner.Scan(scanner.NewSource(src))
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	i := New(WithStdout(&out))
	if err := i.LoadProgram(tree); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := i.Run(); err == nil {
		t.Fatalf("expected out-of-range error")
	}
	if depth := i.stack.Depth(); depth != 0 {
		t.Fatalf("call stack not balanced after error: depth %d", depth)
	}
}

func TestTypeDescriptorResolution(t *testing.T) {
	i := New()
	tree := ast.Tree(ast.Structure("Student", ast.F("name", ast.Type("String"))))
	if err := i.LoadProgram(tree); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	typ, err := i.resolveType(ast.ListType(ast.Type("Student")))
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if !typ.Equal(runtime.ListOf(runtime.StructureOf("Student"))) {
		t.Fatalf("unexpected descriptor %s", typ)
	}

	if _, err := i.resolveType(ast.Type("Ghost")); err == nil {
		t.Fatalf("expected unknown type error")
	}
}

func TestEvaluateLiteralExpressions(t *testing.T) {
	i := New()
	i.stack.Push()
	defer i.stack.Pop()

	v, err := i.evaluateExpression(ast.Num(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(runtime.NumberValue).Val != 42 {
		t.Fatalf("unexpected value %#v", v)
	}

	v, err = i.evaluateExpression(ast.Unary(scanner.KindMinus, ast.Num(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(runtime.NumberValue).Val != -3 {
		t.Fatalf("unexpected value %#v", v)
	}

	if _, err := i.evaluateExpression(ast.Type("Number")); err == nil {
		t.Fatalf("expected error evaluating a bare type reference")
	}
}

func TestBindingNothingIsError(t *testing.T) {
	expectRuntimeError(t, `
function nothing() { }
function main() {
  variable x = nothing();
}`, "cannot bind Nothing")
}

func TestComparingNothingIsError(t *testing.T) {
	expectRuntimeError(t, `
function nothing() { }
function main() {
  if nothing() == nothing() { print("?"); }
}`, "not comparable")
}
