package interpreter

import (
	"math"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/runtime"
	"sol/interpreter-go/pkg/scanner"
)

// evaluateBinary evaluates left then right and applies the operator. Both
// operands must carry equal type descriptors.
func (i *Interpreter) evaluateBinary(bin *ast.BinaryExpr) (runtime.Value, error) {
	left, err := i.evaluateExpression(bin.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(bin.Right)
	if err != nil {
		return nil, err
	}

	op := bin.Op.Kind
	pos := bin.Op.Pos

	switch op {
	case scanner.KindEqual, scanner.KindNotEqual:
		eq, err := runtime.Equal(left, right)
		if err != nil {
			return nil, wrapAt(pos, err)
		}
		if op == scanner.KindNotEqual {
			eq = !eq
		}
		return runtime.BooleanValue{Val: eq}, nil
	}

	if !left.Type().Equal(right.Type()) {
		return nil, errAt(pos, "operator %q expects matching types, got %s and %s",
			op, left.Type(), right.Type())
	}

	if op == scanner.KindPlus {
		switch l := left.(type) {
		case runtime.NumberValue:
			return runtime.NumberValue{Val: l.Val + right.(runtime.NumberValue).Val}, nil
		case runtime.StringValue:
			return runtime.StringValue{Val: l.Val + right.(runtime.StringValue).Val}, nil
		default:
			return nil, errAt(pos, "operator %q is not defined for %s", op, left.Type())
		}
	}

	l, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, errAt(pos, "operator %q is not defined for %s", op, left.Type())
	}
	r := right.(runtime.NumberValue)

	switch op {
	case scanner.KindMinus:
		return runtime.NumberValue{Val: l.Val - r.Val}, nil
	case scanner.KindStar:
		return runtime.NumberValue{Val: l.Val * r.Val}, nil
	case scanner.KindSlash:
		// Division by zero follows IEEE float semantics.
		return runtime.NumberValue{Val: l.Val / r.Val}, nil
	case scanner.KindPercent:
		return runtime.NumberValue{Val: math.Mod(l.Val, r.Val)}, nil
	case scanner.KindLess:
		return runtime.BooleanValue{Val: l.Val < r.Val}, nil
	case scanner.KindLessEqual:
		return runtime.BooleanValue{Val: l.Val <= r.Val}, nil
	case scanner.KindGreater:
		return runtime.BooleanValue{Val: l.Val > r.Val}, nil
	case scanner.KindGreaterEqual:
		return runtime.BooleanValue{Val: l.Val >= r.Val}, nil
	default:
		return nil, errAt(pos, "unsupported binary operator %q", op)
	}
}

// evaluateUnary negates a Number or inverts a Boolean.
func (i *Interpreter) evaluateUnary(unary *ast.UnaryExpr) (runtime.Value, error) {
	operand, err := i.evaluateExpression(unary.Operand)
	if err != nil {
		return nil, err
	}
	switch unary.Op.Kind {
	case scanner.KindMinus:
		number, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, errAt(unary.Op.Pos, "unary %q expects Number, got %s", unary.Op.Kind, operand.Type())
		}
		return runtime.NumberValue{Val: -number.Val}, nil
	case scanner.KindBang:
		boolean, ok := operand.(runtime.BooleanValue)
		if !ok {
			return nil, errAt(unary.Op.Pos, "unary %q expects Boolean, got %s", unary.Op.Kind, operand.Type())
		}
		return runtime.BooleanValue{Val: !boolean.Val}, nil
	default:
		return nil, errAt(unary.Op.Pos, "unsupported unary operator %q", unary.Op.Kind)
	}
}
