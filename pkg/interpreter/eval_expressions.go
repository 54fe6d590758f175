package interpreter

import (
	"math"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(expr ast.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: e.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: e.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BooleanValue{Val: e.Value}, nil
	case *ast.NothingExpr:
		return runtime.Nothing, nil
	case *ast.IdentifierRef:
		return i.evaluateIdentifier(e)
	case *ast.ListLiteral:
		return i.evaluateListLiteral(e)
	case *ast.StructureLiteral:
		return i.evaluateStructureLiteral(e)
	case *ast.CallExpr:
		return i.evaluateCall(e)
	case *ast.BinaryExpr:
		return i.evaluateBinary(e)
	case *ast.UnaryExpr:
		return i.evaluateUnary(e)
	case *ast.TypeCast:
		return i.evaluateTypeCast(e)
	case *ast.SubscriptExpr:
		return i.evaluateSubscript(e)
	case *ast.FieldAccessExpr:
		return i.evaluateFieldAccess(e)
	case *ast.TypeRef, *ast.ListTypeRef:
		return nil, errAt(expr.Pos(), "a type is not a value")
	default:
		return nil, errAt(expr.Pos(), "unsupported expression %s", expr.NodeType())
	}
}

// evaluateIdentifier resolves through the call stack first, then the
// top-level constant table.
func (i *Interpreter) evaluateIdentifier(ref *ast.IdentifierRef) (runtime.Value, error) {
	if v, err := i.stack.GetVal(ref.Name); err == nil {
		return v, nil
	}
	if decl, ok := i.constants[ref.Name]; ok {
		return i.constantValue(decl)
	}
	return nil, errAt(ref.Pos(), "undefined identifier %q", ref.Name)
}

// evaluateListLiteral evaluates elements left-to-right and checks each
// against the declared element type at construction time.
func (i *Interpreter) evaluateListLiteral(lit *ast.ListLiteral) (runtime.Value, error) {
	elemType, err := i.resolveType(lit.Elem)
	if err != nil {
		return nil, err
	}
	items := make([]runtime.Value, 0, len(lit.Elements))
	for _, element := range lit.Elements {
		value, err := i.evaluateExpression(element)
		if err != nil {
			return nil, err
		}
		if !value.Type().Equal(elemType) {
			return nil, errAt(element.Pos(), "list of %s cannot hold %s", elemType, value.Type())
		}
		items = append(items, value)
	}
	return &runtime.ListValue{Elem: elemType, Items: items}, nil
}

// evaluateStructureLiteral cross-checks the written fields against the
// declaration: every declared field exactly once, with its declared type.
// Stored order is declaration order.
func (i *Interpreter) evaluateStructureLiteral(lit *ast.StructureLiteral) (runtime.Value, error) {
	decl, ok := i.structures[lit.TypeName]
	if !ok {
		return nil, errAt(lit.Pos(), "unknown structure %q", lit.TypeName)
	}

	values := make(map[string]runtime.Value, len(lit.Fields))
	for _, field := range lit.Fields {
		if _, dup := values[field.Name]; dup {
			return nil, errAt(field.Pos, "duplicate field %q in %s literal", field.Name, lit.TypeName)
		}
		declared, ok := decl.Field(field.Name)
		if !ok {
			return nil, errAt(field.Pos, "structure %q has no field %q", lit.TypeName, field.Name)
		}
		declaredType, err := i.resolveType(declared.Type)
		if err != nil {
			return nil, err
		}
		value, err := i.evaluateExpression(field.Value)
		if err != nil {
			return nil, err
		}
		if !value.Type().Equal(declaredType) {
			return nil, errAt(field.Pos, "field %q of %s expects %s, got %s",
				field.Name, lit.TypeName, declaredType, value.Type())
		}
		values[field.Name] = value
	}
	if len(values) != len(decl.Fields) {
		for _, declared := range decl.Fields {
			if _, ok := values[declared.Name]; !ok {
				return nil, errAt(lit.Pos(), "%s literal is missing field %q", lit.TypeName, declared.Name)
			}
		}
	}

	names := make([]string, len(decl.Fields))
	for idx, declared := range decl.Fields {
		names[idx] = declared.Name
	}
	return &runtime.StructureValue{TypeName: lit.TypeName, FieldNames: names, Fields: values}, nil
}

// evaluateCall resolves the callee among built-ins first, then declared
// functions, and evaluates arguments left-to-right.
func (i *Interpreter) evaluateCall(call *ast.CallExpr) (runtime.Value, error) {
	builtin := isBuiltin(call.Callee)
	fn, declared := i.functions[call.Callee]
	if !builtin && !declared {
		return nil, errAt(call.Pos(), "undefined function %q", call.Callee)
	}

	args := make([]runtime.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		value, err := i.evaluateExpression(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	if builtin {
		return i.callBuiltin(call, args)
	}
	return i.callFunction(fn, args, call.Pos())
}

// evaluateTypeCast implements `Type(expr)`. Only String is a defined cast
// target; String(String) is a no-op and String(Number) and String(Boolean)
// use the print formatting rules.
func (i *Interpreter) evaluateTypeCast(cast *ast.TypeCast) (runtime.Value, error) {
	target, ok := cast.Target.(*ast.TypeRef)
	if !ok || target.Name != "String" {
		return nil, errAt(cast.Pos(), "cast to %s is not implemented", ast.TypeString(cast.Target))
	}
	value, err := i.evaluateExpression(cast.Value)
	if err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case runtime.StringValue:
		return v, nil
	case runtime.NumberValue:
		return runtime.StringValue{Val: runtime.FormatNumber(v.Val)}, nil
	case runtime.BooleanValue:
		return runtime.StringValue{Val: runtime.Inspect(v)}, nil
	default:
		return nil, errAt(cast.Pos(), "cast from %s to String is not implemented", value.Type())
	}
}

// evaluateSubscript indexes a list; the index is the floor of a Number.
func (i *Interpreter) evaluateSubscript(sub *ast.SubscriptExpr) (runtime.Value, error) {
	target, err := i.evaluateExpression(sub.Target)
	if err != nil {
		return nil, err
	}
	list, ok := target.(*runtime.ListValue)
	if !ok {
		return nil, errAt(sub.Target.Pos(), "subscript expects a list, got %s", target.Type())
	}
	indexValue, err := i.evaluateExpression(sub.Index)
	if err != nil {
		return nil, err
	}
	number, ok := indexValue.(runtime.NumberValue)
	if !ok {
		return nil, errAt(sub.Index.Pos(), "subscript index must be Number, got %s", indexValue.Type())
	}
	idx := int(math.Floor(number.Val))
	if idx < 0 || idx >= list.Len() {
		return nil, errAt(sub.Index.Pos(), "index %d out of range for list of length %d", idx, list.Len())
	}
	return list.At(idx), nil
}

func (i *Interpreter) evaluateFieldAccess(access *ast.FieldAccessExpr) (runtime.Value, error) {
	parent, err := i.evaluateExpression(access.Parent)
	if err != nil {
		return nil, err
	}
	structure, ok := parent.(*runtime.StructureValue)
	if !ok {
		return nil, errAt(access.Parent.Pos(), "field access expects a structure, got %s", parent.Type())
	}
	value, ok := structure.Field(access.Field)
	if !ok {
		return nil, errAt(access.Pos(), "structure %q has no field %q", structure.TypeName, access.Field)
	}
	return value, nil
}
