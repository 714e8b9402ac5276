package autodiff

import "math"

// Each operator appends exactly one primitive node, or composes primitives.
// Operands are never modified. Mixing values from different graphs panics.
//
// Forward and backward rules of the primitives:
//
//	op       forward              ∂out/∂operand
//	add      a + b                1, 1
//	mul      a * b                b, a
//	pow      a ** k               k * a**(k-1)
//	relu     max(0, a)            1 if a > 0 else 0
//	sigmoid  s = 1/(1+exp(-a))    s * (1 - s)
//	exp      e ** a               e ** a
//	log      ln(a)                1 / a

func (v Value) binary(op Op, o Value, data float64) Value {
	v.node()
	o.node()
	if v.g != o.g {
		panic("autodiff: operands belong to different graphs")
	}
	return v.g.push(node{
		data:  data,
		op:    op,
		prev:  [2]int32{v.id, o.id},
		arity: 2,
	})
}

func (v Value) unary(op Op, data float64) Value {
	v.node()
	return v.g.push(node{
		data:  data,
		op:    op,
		prev:  [2]int32{v.id},
		arity: 1,
	})
}

// constant wraps a literal operand as a leaf of v's graph.
func (v Value) constant(c float64) Value {
	v.node()
	return v.g.Leaf(c)
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	return v.binary(OpAdd, o, v.Data()+o.Data())
}

// AddScalar returns v + c, wrapping c as a leaf.
func (v Value) AddScalar(c float64) Value {
	return v.Add(v.constant(c))
}

// Mul returns v * o.
func (v Value) Mul(o Value) Value {
	return v.binary(OpMul, o, v.Data()*o.Data())
}

// MulScalar returns v * c, wrapping c as a leaf.
func (v Value) MulScalar(c float64) Value {
	return v.Mul(v.constant(c))
}

// Neg returns -v, computed as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v - o, computed as v + (-o).
func (v Value) Sub(o Value) Value {
	return v.Add(o.Neg())
}

// SubScalar returns v - c, computed as v + (-c).
func (v Value) SubScalar(c float64) Value {
	return v.AddScalar(-c)
}

// RSub returns c - v, computed as (-v) + c.
func (v Value) RSub(c float64) Value {
	return v.Neg().AddScalar(c)
}

// Pow returns v ** k for a constant exponent k.
//
// Returns a DomainError when the result or its derivative is not a real
// number: a negative base with a non-integer exponent, a zero base with a
// negative exponent, or a zero base with an exponent strictly between 0 and 1.
func (v Value) Pow(k float64) (Value, error) {
	a := v.Data()
	switch {
	case a < 0 && k != math.Trunc(k):
		return Value{}, &DomainError{Op: "pow", Operand: a, Reason: "negative base with non-integer exponent"}
	case a == 0 && k < 0:
		return Value{}, &DomainError{Op: "pow", Operand: a, Reason: "zero base with negative exponent"}
	case a == 0 && k > 0 && k < 1:
		return Value{}, &DomainError{Op: "pow", Operand: a, Reason: "zero base with exponent in (0, 1) has no finite derivative"}
	}
	return v.pow(k), nil
}

func (v Value) pow(k float64) Value {
	a := v.Data()
	return v.g.push(node{
		data:  math.Pow(a, k),
		op:    OpPow,
		exp:   k,
		prev:  [2]int32{v.id},
		arity: 1,
	})
}

// Div returns v / o, computed as v * o**-1.
//
// Returns a DomainError if o is zero.
func (v Value) Div(o Value) (Value, error) {
	if b := o.Data(); b == 0 {
		return Value{}, &DomainError{Op: "div", Operand: b, Reason: "division by zero"}
	}
	return v.Mul(o.pow(-1)), nil
}

// DivScalar returns v / c, computed as v * (1/c).
//
// Returns a DomainError if c is zero.
func (v Value) DivScalar(c float64) (Value, error) {
	if c == 0 {
		return Value{}, &DomainError{Op: "div", Operand: c, Reason: "division by zero"}
	}
	return v.MulScalar(1 / c), nil
}

// RDiv returns c / v, computed as v**-1 * c.
//
// Returns a DomainError if v is zero.
func (v Value) RDiv(c float64) (Value, error) {
	if a := v.Data(); a == 0 {
		return Value{}, &DomainError{Op: "div", Operand: a, Reason: "division by zero"}
	}
	return v.pow(-1).MulScalar(c), nil
}

// ReLU returns max(0, v).
func (v Value) ReLU() Value {
	return v.unary(OpReLU, math.Max(0, v.Data()))
}

// Sigmoid returns 1 / (1 + exp(-v)).
func (v Value) Sigmoid() Value {
	return v.unary(OpSigmoid, 1/(1+math.Exp(-v.Data())))
}

// Exp returns e ** v.
func (v Value) Exp() Value {
	return v.unary(OpExp, math.Exp(v.Data()))
}

// Log returns the natural logarithm of v.
//
// Returns a DomainError if v is not positive.
func (v Value) Log() (Value, error) {
	if a := v.Data(); a <= 0 || math.IsNaN(a) {
		return Value{}, &DomainError{Op: "log", Operand: a, Reason: "must be positive"}
	}
	return v.unary(OpLog, math.Log(v.Data())), nil
}
