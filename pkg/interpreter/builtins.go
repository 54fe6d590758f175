package interpreter

import (
	"fmt"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/runtime"
)

// Built-in names reserve their identifiers in the global namespace even in
// embeddings where the capability behind them is absent.
func isBuiltin(name string) bool {
	switch name {
	case "print", "run":
		return true
	}
	return false
}

func (i *Interpreter) callBuiltin(call *ast.CallExpr, args []runtime.Value) (runtime.Value, error) {
	switch call.Callee {
	case "print":
		return i.builtinPrint(call, args)
	case "run":
		return i.builtinRun(call, args)
	default:
		return nil, errAt(call.Pos(), "unknown built-in %q", call.Callee)
	}
}

// builtinPrint writes its String argument to the stdout sink with a trailing
// newline, without quoting.
func (i *Interpreter) builtinPrint(call *ast.CallExpr, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errAt(call.Pos(), "print expects 1 argument, got %d", len(args))
	}
	msg, ok := args[0].(runtime.StringValue)
	if !ok {
		return nil, errAt(call.Pos(), "print expects a String, got %s", args[0].Type())
	}
	if _, err := fmt.Fprintln(i.stdout, msg.Val); err != nil {
		return nil, errAt(call.Pos(), "print: %v", err)
	}
	return runtime.Nothing, nil
}

// builtinRun starts a subprocess through the injected capability, streaming
// its output to the interpreter's sinks, and fails on a nonzero exit.
func (i *Interpreter) builtinRun(call *ast.CallExpr, args []runtime.Value) (runtime.Value, error) {
	if i.runCommand == nil {
		return nil, errAt(call.Pos(), "run is not available in this embedding")
	}
	if len(args) != 1 {
		return nil, errAt(call.Pos(), "run expects 1 argument, got %d", len(args))
	}
	list, ok := args[0].(*runtime.ListValue)
	if !ok || !list.Elem.Equal(runtime.StringType) {
		return nil, errAt(call.Pos(), "run expects a String[], got %s", args[0].Type())
	}
	if list.Len() == 0 {
		return nil, errAt(call.Pos(), "run expects a non-empty command list")
	}
	argv := make([]string, list.Len())
	for idx, item := range list.Items {
		argv[idx] = item.(runtime.StringValue).Val
	}
	if err := i.runCommand(argv, i.stdout, i.stderr); err != nil {
		return nil, errAt(call.Pos(), "run %q: %v", argv[0], err)
	}
	return runtime.Nothing, nil
}
