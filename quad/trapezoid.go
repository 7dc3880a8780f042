// Package quad implements composite trapezoidal quadrature over a bounded
// interval, for caller-supplied functions and for tabulated samples. The
// routines are pure and keep no state between calls, so independent
// invocations from multiple goroutines need no synchronization.
package quad

// Trapezoid approximates the definite integral of f over [a, b] using the
// composite trapezoidal rule with n equal-width panels: the curve is taken
// piecewise-linear between consecutive samples, so that
//
//	h = (b-a)/n    and    integral ≈ (f(a) + 2*S + f(b)) * h/2
//
// where S is the sum of f over the n-1 interior nodes a + i*h. f is invoked
// at exactly n+1 points. All arithmetic is plain IEEE float64 with no
// compensated summation; accumulated rounding error grows with n and with
// the magnitude of the integrand.
//
// Trapezoid does not validate its inputs:
//   - n = 0 produces a non-finite step width and a NaN or Inf result;
//     callers must ensure n >= 1 (or go through NewRule, which checks).
//   - a = b yields exactly 0 for any integrand finite at a.
//   - a > b yields the signed result, consistent with reversing the
//     direction of integration.
//   - NaN or Inf returned by f at any node propagates to the result.
func Trapezoid(f func(float64) float64, a, b float64, n int) float64 {

	h := (b - a) / float64(n)

	var sum float64
	for i := 1; i <= n-1; i++ {
		sum += f(a + float64(i)*h)
	}

	return (f(a) + 2*sum + f(b)) * h / 2
}
