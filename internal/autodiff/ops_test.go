package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// nonZero draws a float in [-hi, -lo] ∪ [lo, hi].
func nonZero(lo, hi float64) *rapid.Generator[float64] {
	return rapid.Custom(func(t *rapid.T) float64 {
		x := rapid.Float64Range(lo, hi).Draw(t, "magnitude")
		if rapid.Bool().Draw(t, "negative") {
			return -x
		}
		return x
	})
}

// TestForward_Binary tests forward values of the two-operand operators.
func TestForward_Binary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-100, 100).Draw(t, "a")
		b := nonZero(1e-3, 100).Draw(t, "b")

		g := autodiff.NewGraph()
		va, vb := g.Leaf(a), g.Leaf(b)

		assert.Equal(t, a+b, va.Add(vb).Data())
		assert.Equal(t, a*b, va.Mul(vb).Data())
		assert.Equal(t, a-b, va.Sub(vb).Data())
		assert.Equal(t, -a, va.Neg().Data())

		q, err := va.Div(vb)
		require.NoError(t, err)
		assert.InDelta(t, a/b, q.Data(), 1e-12*(1+math.Abs(a/b)))
	})
}

// TestForward_Unary tests forward values of the single-operand operators.
func TestForward_Unary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-20, 20).Draw(t, "a")

		g := autodiff.NewGraph()
		va := g.Leaf(a)

		assert.Equal(t, math.Max(0, a), va.ReLU().Data())
		assert.Equal(t, 1/(1+math.Exp(-a)), va.Sigmoid().Data())
		assert.Equal(t, math.Exp(a), va.Exp().Data())

		if a > 0 {
			l, err := va.Log()
			require.NoError(t, err)
			assert.Equal(t, math.Log(a), l.Data())
		}
	})
}

// TestForward_Pow tests a**k for positive bases and arbitrary exponents.
func TestForward_Pow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(1e-3, 10).Draw(t, "a")
		k := rapid.Float64Range(-3, 3).Draw(t, "k")

		g := autodiff.NewGraph()
		p, err := g.Leaf(a).Pow(k)
		require.NoError(t, err)

		assert.Equal(t, math.Pow(a, k), p.Data())
	})
}

// TestForward_PowNegativeBase tests integer exponents of negative bases.
func TestForward_PowNegativeBase(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(-2)

	for _, k := range []float64{-3, -1, 0, 1, 2, 3} {
		p, err := x.Pow(k)
		require.NoError(t, err, "k=%v", k)
		assert.Equal(t, math.Pow(-2, k), p.Data(), "k=%v", k)
	}
}

// TestPow_ZeroBase tests the exponents a zero base accepts and their
// gradients.
func TestPow_ZeroBase(t *testing.T) {
	tests := []struct {
		k, grad float64
	}{
		{0, 0},
		{1, 1},
		{1.5, 0},
		{2, 0},
		{3, 0},
	}

	for _, tt := range tests {
		g := autodiff.NewGraph()
		x := g.Leaf(0)
		p, err := x.Pow(tt.k)
		require.NoError(t, err, "k=%v", tt.k)
		p.Backward()
		assert.Equal(t, tt.grad, x.Grad(), "k=%v", tt.k)
		assert.False(t, math.IsNaN(x.Grad()) || math.IsInf(x.Grad(), 0), "k=%v", tt.k)
	}
}

// TestScalarForms tests that literal operands behave like leaf operands in
// both positions.
func TestScalarForms(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-10, 10).Draw(t, "a")
		c := nonZero(1e-2, 10).Draw(t, "c")

		g := autodiff.NewGraph()
		va := g.Leaf(a)
		vc := g.Leaf(c)

		assert.Equal(t, va.Add(vc).Data(), va.AddScalar(c).Data())
		assert.Equal(t, va.Mul(vc).Data(), va.MulScalar(c).Data())
		assert.Equal(t, va.Sub(vc).Data(), va.SubScalar(c).Data())
		assert.Equal(t, vc.Sub(va).Data(), va.RSub(c).Data())

		ds, err := va.DivScalar(c)
		require.NoError(t, err)
		assert.InDelta(t, a/c, ds.Data(), 1e-12*(1+math.Abs(a/c)))

		if math.Abs(a) > 1e-3 {
			rd, err := va.RDiv(c)
			require.NoError(t, err)
			assert.InDelta(t, c/a, rd.Data(), 1e-9*(1+math.Abs(c/a)))
		}
	})
}

// TestScalarForms_Gradients tests gradients through literal operands.
func TestScalarForms_Gradients(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(4.0)

	// f(x) = (x + 1) * 2 - 3 = 2x - 1
	f := x.AddScalar(1).MulScalar(2).SubScalar(3)
	f.Backward()
	assert.Equal(t, 7.0, f.Data())
	assert.Equal(t, 2.0, x.Grad())

	// f(x) = 10 - x
	x.ZeroGrad()
	f = x.RSub(10)
	f.Backward()
	assert.Equal(t, 6.0, f.Data())
	assert.Equal(t, -1.0, x.Grad())

	// f(x) = x / 2
	x.ZeroGrad()
	f, err := x.DivScalar(2)
	require.NoError(t, err)
	f.Backward()
	assert.Equal(t, 2.0, f.Data())
	assert.Equal(t, 0.5, x.Grad())

	// f(x) = 8 / x, df/dx = -8/x²
	x.ZeroGrad()
	f, err = x.RDiv(8)
	require.NoError(t, err)
	f.Backward()
	assert.Equal(t, 2.0, f.Data())
	assert.Equal(t, -0.5, x.Grad())
}

// TestDomainErrors tests that invalid operands are reported, not absorbed.
func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		fn   func(g *autodiff.Graph) (autodiff.Value, error)
	}{
		{"log zero", "log", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(0).Log() }},
		{"log negative", "log", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(-1).Log() }},
		{"log NaN", "log", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(math.NaN()).Log() }},
		{"pow fractional negative", "pow", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(-2).Pow(0.5) }},
		{"pow zero negative", "pow", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(0).Pow(-1) }},
		{"pow zero fractional", "pow", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(0).Pow(0.5) }},
		{"div zero", "div", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(1).Div(g.Leaf(0)) }},
		{"div scalar zero", "div", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(1).DivScalar(0) }},
		{"rdiv zero", "div", func(g *autodiff.Graph) (autodiff.Value, error) { return g.Leaf(0).RDiv(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := autodiff.NewGraph()
			_, err := tt.fn(g)
			require.Error(t, err)
			assert.ErrorIs(t, err, autodiff.ErrDomain)

			var de *autodiff.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.op, de.Op)
			assert.Contains(t, err.Error(), tt.op+":")
		})
	}
}

// TestDomainErrors_NoNodeAllocated tests that a failed operator leaves the
// graph unchanged.
func TestDomainErrors_NoNodeAllocated(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(-1)
	before := g.Len()

	_, err := x.Log()
	require.Error(t, err)
	assert.Equal(t, before, g.Len())
}

// TestOperators_DoNotMutateOperands tests that building nodes leaves operand
// values and gradients untouched.
func TestOperators_DoNotMutateOperands(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(1.5)
	b := g.Leaf(-0.5)

	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Sigmoid()
	_ = b.ReLU()
	_, _ = a.Log()

	assert.Equal(t, 1.5, a.Data())
	assert.Equal(t, -0.5, b.Data())
	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
}
