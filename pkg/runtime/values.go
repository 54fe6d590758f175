package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNothing Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindList
	KindStructure
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "Nothing"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindStructure:
		return "Structure"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. A value's type
// descriptor never changes for its lifetime.
type Value interface {
	Kind() Kind
	Type() *Type
}

// NothingValue is the return placeholder of a function with no declared
// return type. It is an error to read it as a user value.
type NothingValue struct{}

func (NothingValue) Kind() Kind  { return KindNothing }
func (NothingValue) Type() *Type { return NothingType }

// Nothing is the shared placeholder instance.
var Nothing = NothingValue{}

type BooleanValue struct {
	Val bool
}

func (BooleanValue) Kind() Kind  { return KindBoolean }
func (BooleanValue) Type() *Type { return BooleanType }

type NumberValue struct {
	Val float64
}

func (NumberValue) Kind() Kind  { return KindNumber }
func (NumberValue) Type() *Type { return NumberType }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind  { return KindString }
func (StringValue) Type() *Type { return StringType }

// ListValue carries its element type so empty lists stay typed.
type ListValue struct {
	Elem  *Type
	Items []Value
}

func (*ListValue) Kind() Kind       { return KindList }
func (l *ListValue) Type() *Type    { return ListOf(l.Elem) }
func (l *ListValue) Len() int       { return len(l.Items) }
func (l *ListValue) At(i int) Value { return l.Items[i] }

// StructureValue is an instance of a user-declared structure. FieldNames
// preserves declaration order for formatting and equality.
type StructureValue struct {
	TypeName   string
	FieldNames []string
	Fields     map[string]Value
}

func (*StructureValue) Kind() Kind    { return KindStructure }
func (s *StructureValue) Type() *Type { return StructureOf(s.TypeName) }

// Field returns the stored value for a field name.
func (s *StructureValue) Field(name string) (Value, bool) {
	v, ok := s.Fields[name]
	return v, ok
}

// Equal compares two values of equal type descriptors. Values of different
// types are not comparable, and Nothing never compares.
func Equal(a, b Value) (bool, error) {
	if a.Kind() == KindNothing || b.Kind() == KindNothing {
		return false, fmt.Errorf("Nothing is not comparable")
	}
	if !a.Type().Equal(b.Type()) {
		return false, fmt.Errorf("cannot compare %s with %s", a.Type(), b.Type())
	}
	switch av := a.(type) {
	case BooleanValue:
		return av.Val == b.(BooleanValue).Val, nil
	case NumberValue:
		return av.Val == b.(NumberValue).Val, nil
	case StringValue:
		return av.Val == b.(StringValue).Val, nil
	case *ListValue:
		bv := b.(*ListValue)
		if len(av.Items) != len(bv.Items) {
			return false, nil
		}
		for i := range av.Items {
			eq, err := Equal(av.Items[i], bv.Items[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *StructureValue:
		bv := b.(*StructureValue)
		for _, name := range av.FieldNames {
			eq, err := Equal(av.Fields[name], bv.Fields[name])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, fmt.Errorf("cannot compare values of type %s", a.Type())
	}
}

// Format renders a value the way `print` emits it: strings without quotes,
// whole numbers without a decimal point.
func Format(v Value) string {
	if s, ok := v.(StringValue); ok {
		return s.Val
	}
	return Inspect(v)
}

// Inspect renders a value for diagnostics: like Format, but strings keep
// surrounding quotes.
func Inspect(v Value) string {
	switch val := v.(type) {
	case NothingValue:
		return "Nothing"
	case BooleanValue:
		return strconv.FormatBool(val.Val)
	case NumberValue:
		return FormatNumber(val.Val)
	case StringValue:
		return strconv.Quote(val.Val)
	case *ListValue:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range val.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Inspect(item))
		}
		b.WriteByte(']')
		return b.String()
	case *StructureValue:
		var b strings.Builder
		b.WriteString(val.TypeName)
		b.WriteByte('{')
		for i, name := range val.FieldNames {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(Inspect(val.Fields[name]))
		}
		b.WriteByte('}')
		return b.String()
	default:
		return fmt.Sprintf("unknown value %#v", v)
	}
}

// FormatNumber prints a Number: no decimal point for integral values, the
// shortest decimal form otherwise.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
