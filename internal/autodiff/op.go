package autodiff

import "strconv"

// Op identifies the operation that produced a node and therefore which
// local-gradient rule applies to it during the backward pass.
//
// Subtraction, negation and division have no tag of their own: they are
// built from the primitives below and differentiate through them.
type Op uint8

// Supported operations.
const (
	OpLeaf    Op = iota // input or parameter, no predecessors
	OpAdd               // a + b
	OpMul               // a * b
	OpPow               // a ** k, k a constant exponent
	OpReLU              // max(0, a)
	OpSigmoid           // 1 / (1 + exp(-a))
	OpExp               // e ** a
	OpLog               // ln(a)
)

var opNames = [...]string{
	OpLeaf:    "",
	OpAdd:     "+",
	OpMul:     "*",
	OpPow:     "**",
	OpReLU:    "relu",
	OpSigmoid: "sigmoid",
	OpExp:     "exp",
	OpLog:     "log",
}

// String returns the operator symbol. Leaves render as the empty string.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Arity returns the number of predecessors a node with this op has.
func (op Op) Arity() int {
	switch op {
	case OpLeaf:
		return 0
	case OpAdd, OpMul:
		return 2
	default:
		return 1
	}
}
