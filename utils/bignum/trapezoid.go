package bignum

import (
	"fmt"
	"math/big"
)

// Trapezoid computes the composite trapezoidal rule approximation of the
// definite integral of f over [a, b] using n equal-width panels, carried out
// in big.Float arithmetic. The reference precision is taken from a.
// f.(type) can be either:
//   - func(float64) float64
//   - func(*big.Float) *big.Float
//
// A float64 integrand is evaluated through float64 and therefore bounds the
// attainable precision; it is accepted for convenience when the integrand is
// not available in arbitrary precision.
//
// Unlike its float64 counterpart, Trapezoid panics when n < 1: big.Float
// arithmetic has no NaN for a degenerate step width to propagate through
// (0/0 panics in math/big).
func Trapezoid(f interface{}, a, b *big.Float, n int) (integral *big.Float) {

	if n < 1 {
		panic(fmt.Errorf("cannot Trapezoid: n = %d < 1 panels", n))
	}

	var fBig func(*big.Float) *big.Float
	switch f := f.(type) {
	case func(x float64) (y float64):
		fBig = func(x *big.Float) (y *big.Float) {
			xf64, _ := x.Float64()
			return new(big.Float).SetPrec(x.Prec()).SetFloat64(f(xf64))
		}
	case func(x *big.Float) (y *big.Float):
		fBig = f
	default:
		panic(fmt.Errorf("invalid f.(type): valid types are func(float64) float64 or func(*big.Float) *big.Float but is %T", f))
	}

	prec := a.Prec()

	h := new(big.Float).SetPrec(prec).Sub(b, a)
	h.Quo(h, NewFloat(n, prec))

	x := new(big.Float).SetPrec(prec)
	sum := new(big.Float).SetPrec(prec)
	for i := 1; i <= n-1; i++ {
		x.Mul(h, NewFloat(i, prec))
		x.Add(x, a)
		sum.Add(sum, fBig(x))
	}

	integral = new(big.Float).SetPrec(prec).Add(sum, sum)
	integral.Add(integral, fBig(new(big.Float).Set(a)))
	integral.Add(integral, fBig(new(big.Float).Set(b)))
	integral.Mul(integral, h)
	integral.Quo(integral, NewFloat(2, prec))

	return
}
