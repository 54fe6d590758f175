// Package interpreter walks a parse tree and executes it: declaration
// registration, block-structured environments, expression evaluation, and
// the built-in functions.
package interpreter

import (
	"io"
	"os"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/runtime"
	"sol/interpreter-go/pkg/scanner"
)

// CommandRunner is the host capability behind the `run` built-in: start the
// argv, stream its stdout/stderr line-by-line to the writers, wait, and
// return an error for a nonzero exit.
type CommandRunner func(argv []string, stdout, stderr io.Writer) error

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStdout redirects the `print` sink.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// WithStderr redirects the stderr sink used by subprocess streaming.
func WithStderr(w io.Writer) Option {
	return func(i *Interpreter) { i.stderr = w }
}

// WithCommandRunner injects the subprocess capability. Without it the `run`
// built-in reports that the embedding provides no subprocess support.
func WithCommandRunner(run CommandRunner) Option {
	return func(i *Interpreter) { i.runCommand = run }
}

// Interpreter owns a program's declaration tables and one call stack. No
// state is shared between instances.
type Interpreter struct {
	functions  map[string]*ast.FuncDecl
	structures map[string]*ast.StructureDecl
	constants  map[string]*ast.ConstDecl

	// constantValues memoizes constants evaluated on first use.
	constantValues map[string]runtime.Value

	stack *runtime.CallStack

	stdout     io.Writer
	stderr     io.Writer
	runCommand CommandRunner
}

// New returns an interpreter with empty declaration tables. By default the
// print sink is the process stdout and no subprocess capability is present.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		functions:      make(map[string]*ast.FuncDecl),
		structures:     make(map[string]*ast.StructureDecl),
		constants:      make(map[string]*ast.ConstDecl),
		constantValues: make(map[string]runtime.Value),
		stack:          runtime.NewCallStack(),
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret loads the parse tree and runs its main function.
func Interpret(tree *ast.ParseTree, opts ...Option) error {
	i := New(opts...)
	if err := i.LoadProgram(tree); err != nil {
		return err
	}
	return i.Run()
}

// LoadProgram registers the top-level declarations. Functions, structures,
// constants, and built-ins share a single flat namespace; a collision is an
// error at load time.
func (i *Interpreter) LoadProgram(tree *ast.ParseTree) error {
	for _, decl := range tree.Decls {
		name := decl.Named()
		if err := i.checkNameFree(name, decl.Pos()); err != nil {
			return err
		}
		switch d := decl.(type) {
		case *ast.FuncDecl:
			i.functions[name] = d
		case *ast.StructureDecl:
			seen := make(map[string]bool, len(d.Fields))
			for _, f := range d.Fields {
				if seen[f.Name] {
					return errAt(f.Pos, "structure %q declares field %q twice", name, f.Name)
				}
				seen[f.Name] = true
			}
			i.structures[name] = d
		case *ast.ConstDecl:
			i.constants[name] = d
		default:
			return errAt(decl.Pos(), "unsupported declaration %s", decl.NodeType())
		}
	}
	return nil
}

func (i *Interpreter) checkNameFree(name string, pos scanner.Position) error {
	if isBuiltin(name) {
		return errAt(pos, "%q is a built-in and cannot be redeclared", name)
	}
	if _, ok := i.functions[name]; ok {
		return errAt(pos, "duplicate declaration of %q", name)
	}
	if _, ok := i.structures[name]; ok {
		return errAt(pos, "duplicate declaration of %q", name)
	}
	if _, ok := i.constants[name]; ok {
		return errAt(pos, "duplicate declaration of %q", name)
	}
	return nil
}

// Run invokes main with an empty argument list.
func (i *Interpreter) Run() error {
	main, ok := i.functions["main"]
	if !ok {
		return errAt(scanner.Position{}, "no main function declared")
	}
	_, err := i.callFunction(main, nil, main.Pos())
	return err
}

// resolveType maps a type expression onto its runtime descriptor. Structure
// names must refer to a declared structure.
func (i *Interpreter) resolveType(t ast.TypeExpression) (*runtime.Type, error) {
	switch typ := t.(type) {
	case *ast.TypeRef:
		switch typ.Name {
		case "Nothing":
			return runtime.NothingType, nil
		case "Boolean":
			return runtime.BooleanType, nil
		case "Number":
			return runtime.NumberType, nil
		case "String":
			return runtime.StringType, nil
		default:
			if _, ok := i.structures[typ.Name]; ok {
				return runtime.StructureOf(typ.Name), nil
			}
			return nil, errAt(typ.Pos(), "unknown type %q", typ.Name)
		}
	case *ast.ListTypeRef:
		elem, err := i.resolveType(typ.Elem)
		if err != nil {
			return nil, err
		}
		return runtime.ListOf(elem), nil
	default:
		return nil, errAt(t.Pos(), "unsupported type expression %s", t.NodeType())
	}
}

// callFunction pushes a call frame, binds arguments, runs the body, and
// validates the produced value against the declared return type. The frame is
// released on every exit path.
func (i *Interpreter) callFunction(fn *ast.FuncDecl, args []runtime.Value, callPos scanner.Position) (runtime.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, errAt(callPos, "function %q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	declared := runtime.NothingType
	if fn.ReturnType != nil {
		var err error
		declared, err = i.resolveType(fn.ReturnType)
		if err != nil {
			return nil, err
		}
	}

	paramTypes := make([]*runtime.Type, len(fn.Params))
	for idx, param := range fn.Params {
		typ, err := i.resolveType(param.Type)
		if err != nil {
			return nil, err
		}
		if !args[idx].Type().Equal(typ) {
			return nil, errAt(callPos, "function %q parameter %q expects %s, got %s",
				fn.Name, param.Name, typ, args[idx].Type())
		}
		paramTypes[idx] = typ
	}

	i.stack.Push()
	defer i.stack.Pop()
	for idx, param := range fn.Params {
		if err := i.stack.SetArg(param.Name, args[idx]); err != nil {
			return nil, wrapAt(param.Pos, err)
		}
	}

	sig, err := i.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}

	var result runtime.Value
	switch sig.kind {
	case signalNone:
		result = runtime.Nothing
	case signalReturn:
		result = sig.value
	case signalBreak:
		return nil, errAt(fn.Pos(), "break outside of a loop in function %q", fn.Name)
	case signalContinue:
		return nil, errAt(fn.Pos(), "continue outside of a loop in function %q", fn.Name)
	}

	if !result.Type().Equal(declared) {
		return nil, errAt(fn.Pos(), "function %q: expected return type %s, got %s", fn.Name, declared, result.Type())
	}
	return result, nil
}

// constantValue evaluates a top-level constant on first use and memoizes it.
func (i *Interpreter) constantValue(decl *ast.ConstDecl) (runtime.Value, error) {
	if v, ok := i.constantValues[decl.Name]; ok {
		return v, nil
	}
	v, err := i.evaluateExpression(decl.Value)
	if err != nil {
		return nil, err
	}
	i.constantValues[decl.Name] = v
	return v, nil
}
