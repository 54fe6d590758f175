package interpreter

import "sol/interpreter-go/pkg/runtime"

// signalKind enumerates the block-exit signals a block hands to its
// enclosing construct.
type signalKind int

const (
	signalNone signalKind = iota
	signalBreak
	signalContinue
	signalReturn
)

// blockSignal is the result of executing a block: ran to completion, or a
// break/continue/return travelling outward. The value is the return payload,
// Nothing when the return carried no expression.
type blockSignal struct {
	kind  signalKind
	value runtime.Value
}

func noSignal() blockSignal { return blockSignal{kind: signalNone} }

func breakSignal() blockSignal { return blockSignal{kind: signalBreak} }

func continueSignal() blockSignal { return blockSignal{kind: signalContinue} }

func returnSignal(value runtime.Value) blockSignal {
	if value == nil {
		value = runtime.Nothing
	}
	return blockSignal{kind: signalReturn, value: value}
}
