package quad

import (
	"sort"
	"testing"

	"github.com/numform/quadrigo/utils/sampling"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

func TestTrapezoidSamples(t *testing.T) {

	t.Run("MatchesGonum", func(t *testing.T) {
		x := floats.Span(make([]float64, 101), 0, 2)
		y := make([]float64, len(x))
		for i := range x {
			y[i] = lorentzian(x[i])
		}
		require.Equal(t, integrate.Trapezoidal(x, y), TrapezoidSamples(x, y))

		// Same agreement on non-uniform abscissae.
		prng, err := sampling.NewKeyedPRNG([]byte{0x0F})
		require.NoError(t, err)
		ts := sampling.NewUniformSampler(prng, 0, 2)
		x = ts.ReadNew(64)
		sort.Float64s(x)
		y = ts.ReadNew(64)
		require.Equal(t, integrate.Trapezoidal(x, y), TrapezoidSamples(x, y))
	})

	t.Run("MatchesRule", func(t *testing.T) {
		r, err := NewRule(-1, 2, 24)
		require.NoError(t, err)
		x := r.Nodes()
		y := make([]float64, len(x))
		for i := range x {
			y[i] = expNeg(x[i])
		}
		require.InDelta(t, r.Integrate(expNeg), TrapezoidSamples(x, y), 1e-12)
	})

	t.Run("ZeroWidthPanels", func(t *testing.T) {
		x := []float64{0, 1, 1, 2}
		y := []float64{5, 5, 5, 5}
		require.Equal(t, 10.0, TrapezoidSamples(x, y))
	})

	t.Run("Invalid", func(t *testing.T) {
		require.Panics(t, func() { TrapezoidSamples([]float64{0, 1}, []float64{1}) })
		require.Panics(t, func() { TrapezoidSamples([]float64{0}, []float64{1}) })
		require.Panics(t, func() { TrapezoidSamples([]float64{0, 2, 1}, []float64{1, 1, 1}) })
	})
}

func BenchmarkTrapezoidSamples(b *testing.B) {
	x := floats.Span(make([]float64, 1025), 0, 1)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = lorentzian(x[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TrapezoidSamples(x, y)
	}
}
