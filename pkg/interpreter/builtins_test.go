package interpreter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"sol/interpreter-go/pkg/parser"
	"sol/interpreter-go/pkg/scanner"
)

func TestPrintRequiresString(t *testing.T) {
	expectRuntimeError(t, `function main() { print(42); }`, "print expects a String")
}

func TestPrintRequiresOneArgument(t *testing.T) {
	expectRuntimeError(t, `function main() { print("a", "b"); }`, "1 argument")
}

func TestRunUnavailableWithoutCapability(t *testing.T) {
	expectRuntimeError(t, `
function main() { run(String["true"]); }`, "not available")
}

func runWithCapability(t *testing.T, src string, runner CommandRunner) (string, error) {
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
	err = Interpret(tree, WithStdout(&out), WithStderr(&out), WithCommandRunner(runner))
	return out.String(), err
}

func TestRunStreamsSubprocessOutput(t *testing.T) {
	var captured []string
	runner := func(argv []string, stdout, stderr io.Writer) error {
		captured = argv
		fmt.Fprintln(stdout, "line one")
		fmt.Fprintln(stderr, "warn one")
		return nil
	}
	got, err := runWithCapability(t, `
function main() {
  print("before");
  run(String["echo", "hello"]);
  print("after");
}`, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(captured) != 2 || captured[0] != "echo" || captured[1] != "hello" {
		t.Fatalf("unexpected argv %v", captured)
	}
	want := "before\nline one\nwarn one\nafter\n"
	if got != want {
		t.Fatalf("unexpected transcript %q", got)
	}
}

func TestRunFailureIsRuntimeError(t *testing.T) {
	runner := func(argv []string, stdout, stderr io.Writer) error {
		return fmt.Errorf("exit status 3")
	}
	_, err := runWithCapability(t, `function main() { run(String["false"]); }`, runner)
	if err == nil || !strings.Contains(err.Error(), "exit status 3") {
		t.Fatalf("expected subprocess failure, got %v", err)
	}
}

func TestRunRequiresStringList(t *testing.T) {
	runner := func(argv []string, stdout, stderr io.Writer) error { return nil }
	_, err := runWithCapability(t, `function main() { run(Number[1]); }`, runner)
	if err == nil || !strings.Contains(err.Error(), "String[]") {
		t.Fatalf("expected type error, got %v", err)
	}
	_, err = runWithCapability(t, `function main() { run(String[]); }`, runner)
	if err == nil || !strings.Contains(err.Error(), "non-empty") {
		t.Fatalf("expected non-empty command error, got %v", err)
	}
}

func TestBuiltinsShadowUserLookup(t *testing.T) {
	// Built-ins are dispatched before declared functions, so the reserved
	// names always refer to the interpreter's implementations.
	if !isBuiltin("print") || !isBuiltin("run") {
		t.Fatalf("expected print and run to be reserved")
	}
	if isBuiltin("main") {
		t.Fatalf("main must not be reserved")
	}
}
