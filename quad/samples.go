package quad

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// TrapezoidSamples integrates a function tabulated at the abscissae x with
// values y, summing the trapezoid areas of the successive panels:
//
//	integral ≈ sum_i (x[i+1]-x[i]) * (y[i]+y[i+1]) / 2
//
// The abscissae must be sorted in ascending order but need not be uniformly
// spaced; repeated abscissae contribute zero-width panels. Panics when the
// slice lengths differ, fewer than two samples are given, or x is not
// sorted.
func TrapezoidSamples(x, y []float64) float64 {

	switch {
	case len(x) != len(y):
		panic(fmt.Errorf("cannot TrapezoidSamples: len(x) = %d != %d = len(y)", len(x), len(y)))
	case len(x) < 2:
		panic(fmt.Errorf("cannot TrapezoidSamples: at least two samples are required but got %d", len(x)))
	case !slices.IsSorted(x):
		panic(fmt.Errorf("cannot TrapezoidSamples: x is not sorted in ascending order"))
	}

	var sum float64
	for i := 0; i < len(x)-1; i++ {
		sum += (x[i+1] - x[i]) * (y[i] + y[i+1]) / 2
	}

	return sum
}
