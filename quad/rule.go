package quad

import (
	"encoding/json"
	"fmt"
)

// Rule is a validated trapezoidal quadrature plan: the interval [A, B] and
// the number N of equal-width panels it is divided into. The zero value is
// not a valid rule; use NewRule.
type Rule struct {
	A, B float64
	N    int
}

// NewRule creates a new Rule over [a, b] with n panels. Unlike the plain
// Trapezoid primitive, NewRule rejects a non-positive panel count instead of
// letting the degenerate step width propagate as NaN or Inf. The bounds are
// unconstrained: a = b and a > b are both valid and yield the zero-width,
// respectively sign-reversed, integral.
func NewRule(a, b float64, n int) (r Rule, err error) {
	if n < 1 {
		return r, fmt.Errorf("cannot NewRule: n = %d < 1 panels", n)
	}
	return Rule{A: a, B: b, N: n}, nil
}

// H returns the step width (B-A)/N.
func (r Rule) H() float64 {
	return (r.B - r.A) / float64(r.N)
}

// Nodes returns the N+1 sample abscissae of the rule. The first and last
// nodes are exactly A and B; the interior nodes are A + i*H().
func (r Rule) Nodes() (nodes []float64) {
	nodes = make([]float64, r.N+1)
	h := r.H()
	nodes[0] = r.A
	for i := 1; i < r.N; i++ {
		nodes[i] = r.A + float64(i)*h
	}
	nodes[r.N] = r.B
	return
}

// Integrate returns the trapezoidal approximation of the integral of f over
// the rule's interval. It is exactly Trapezoid(f, r.A, r.B, r.N).
func (r Rule) Integrate(f func(float64) float64) float64 {
	return Trapezoid(f, r.A, r.B, r.N)
}

// Equal returns true if the receiver and other describe the same plan.
func (r Rule) Equal(other Rule) (res bool) {
	res = r.A == other.A
	res = res && r.B == other.B
	res = res && r.N == other.N
	return
}

// MarshalJSON encodes the receiver into a JSON object.
func (r Rule) MarshalJSON() (p []byte, err error) {
	aux := &struct {
		A, B float64
		N    int
	}{
		A: r.A,
		B: r.B,
		N: r.N,
	}
	return json.Marshal(aux)
}

// UnmarshalJSON decodes a JSON object into the receiver, rejecting objects
// that do not describe a valid rule.
func (r *Rule) UnmarshalJSON(p []byte) (err error) {
	aux := &struct {
		A, B float64
		N    int
	}{}

	if err = json.Unmarshal(p, aux); err != nil {
		return
	}

	*r, err = NewRule(aux.A, aux.B, aux.N)
	return
}
