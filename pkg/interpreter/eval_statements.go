package interpreter

import (
	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/runtime"
)

// execBlock runs statements in order until one produces a block-exit signal.
// The caller owns the enclosing scope.
func (i *Interpreter) execBlock(stmts []ast.Statement) (blockSignal, error) {
	for _, stmt := range stmts {
		sig, err := i.execStatement(stmt)
		if err != nil {
			return noSignal(), err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return noSignal(), nil
}

func (i *Interpreter) execStatement(stmt ast.Statement) (blockSignal, error) {
	switch s := stmt.(type) {
	case *ast.BareStmt:
		_, err := i.evaluateExpression(s.Expr)
		return noSignal(), err
	case *ast.VarDeclStmt:
		value, err := i.evaluateExpression(s.Value)
		if err != nil {
			return noSignal(), err
		}
		if value.Kind() == runtime.KindNothing {
			return noSignal(), errAt(s.Pos(), "cannot bind Nothing to variable %q", s.Name)
		}
		return noSignal(), wrapAt(s.Pos(), i.stack.SetVar(s.Name, value))
	case *ast.AssignStmt:
		value, err := i.evaluateExpression(s.Value)
		if err != nil {
			return noSignal(), err
		}
		return noSignal(), wrapAt(s.Pos(), i.stack.ReassignVar(s.Name, value))
	case *ast.ReturnStmt:
		if s.Value == nil {
			return returnSignal(runtime.Nothing), nil
		}
		value, err := i.evaluateExpression(s.Value)
		if err != nil {
			return noSignal(), err
		}
		return returnSignal(value), nil
	case *ast.BreakStmt:
		return breakSignal(), nil
	case *ast.ContinueStmt:
		return continueSignal(), nil
	case *ast.ConditionalChainStmt:
		return i.execConditionalChain(s)
	case *ast.WhileStmt:
		return i.execWhile(s)
	case *ast.ForStmt:
		return i.execFor(s)
	default:
		return noSignal(), errAt(stmt.Pos(), "unsupported statement %s", stmt.NodeType())
	}
}

// condition evaluates a branch or loop condition, which must be a Boolean.
func (i *Interpreter) condition(expr ast.Expression) (bool, error) {
	value, err := i.evaluateExpression(expr)
	if err != nil {
		return false, err
	}
	b, ok := value.(runtime.BooleanValue)
	if !ok {
		return false, errAt(expr.Pos(), "condition must be Boolean, got %s", value.Type())
	}
	return b.Val, nil
}

// runScoped executes a block inside a fresh block scope, releasing it on
// every exit path.
func (i *Interpreter) runScoped(body []ast.Statement, bind func() error) (blockSignal, error) {
	i.stack.Push()
	defer i.stack.Pop()
	if bind != nil {
		if err := bind(); err != nil {
			return noSignal(), err
		}
	}
	return i.execBlock(body)
}

// execConditionalChain evaluates conditions in order and executes the first
// branch whose condition is true, or the else branch if none is. Conditions
// after the first true one are not evaluated.
func (i *Interpreter) execConditionalChain(chain *ast.ConditionalChainStmt) (blockSignal, error) {
	clauses := append([]*ast.IfClause{chain.If}, chain.ElseIfs...)
	for _, clause := range clauses {
		ok, err := i.condition(clause.Cond)
		if err != nil {
			return noSignal(), err
		}
		if ok {
			return i.runScoped(clause.Body, nil)
		}
	}
	if chain.Else != nil {
		return i.runScoped(chain.Else.Body, nil)
	}
	return noSignal(), nil
}

// execWhile absorbs Break and Continue; Return keeps travelling outward.
func (i *Interpreter) execWhile(loop *ast.WhileStmt) (blockSignal, error) {
	for {
		ok, err := i.condition(loop.Cond)
		if err != nil {
			return noSignal(), err
		}
		if !ok {
			return noSignal(), nil
		}
		sig, err := i.runScoped(loop.Body, nil)
		if err != nil {
			return noSignal(), err
		}
		switch sig.kind {
		case signalBreak:
			return noSignal(), nil
		case signalReturn:
			return sig, nil
		}
	}
}

// execFor iterates a list, binding the index and element names in a fresh
// scope per iteration.
func (i *Interpreter) execFor(loop *ast.ForStmt) (blockSignal, error) {
	iterable, err := i.evaluateExpression(loop.Iterable)
	if err != nil {
		return noSignal(), err
	}
	list, ok := iterable.(*runtime.ListValue)
	if !ok {
		return noSignal(), errAt(loop.Iterable.Pos(), "for loop expects a list, got %s", iterable.Type())
	}
	for idx, item := range list.Items {
		sig, err := i.runScoped(loop.Body, func() error {
			if err := i.stack.SetVar(loop.IndexName, runtime.NumberValue{Val: float64(idx)}); err != nil {
				return wrapAt(loop.Pos(), err)
			}
			return wrapAt(loop.Pos(), i.stack.SetVar(loop.ElementName, item))
		})
		if err != nil {
			return noSignal(), err
		}
		switch sig.kind {
		case signalBreak:
			return noSignal(), nil
		case signalReturn:
			return sig, nil
		}
	}
	return noSignal(), nil
}
