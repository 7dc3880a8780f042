/*
Package quadrigo is a lightweight numerical quadrature library. It provides a
pure Go implementation of the composite trapezoidal rule over a bounded
interval, for both caller-supplied functions and tabulated samples, together
with the reference-precision and statistics tooling used to verify it. The
core routine is a minimal, dependency-free numeric primitive intended as a
building block rather than a general quadrature framework.
*/
package quadrigo
