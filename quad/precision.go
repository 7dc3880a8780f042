package quad

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
)

// ErrorSample records the absolute error of one trapezoidal approximation
// against the reference value, together with its log2 precision.
type ErrorSample struct {
	N    int
	Err  float64
	Prec float64
}

// PrecisionStats is a struct storing statistics about the accuracy of the
// trapezoidal rule for a given integrand over a sweep of panel counts.
type PrecisionStats struct {
	MinErr, MaxErr       float64
	MeanErr, MedianErr   float64
	StdErr               float64
	MinPrec, MaxPrec     float64
	MeanPrec, MedianPrec float64

	Samples []ErrorSample
}

// GetPrecisionStats evaluates Trapezoid(f, a, b, n) for every panel count in
// ns, measures each result against the reference value want (the difference
// is carried out at the precision of want) and aggregates the absolute
// errors. Panics if ns is empty, or if an approximation comes out NaN or Inf:
// a non-finite value has no measurable precision.
func GetPrecisionStats(f func(float64) float64, a, b float64, want *big.Float, ns []int) (prec PrecisionStats) {

	if len(ns) == 0 {
		panic(fmt.Errorf("cannot GetPrecisionStats: empty panel count sweep"))
	}

	mustStat := func(v float64, err error) float64 {
		if err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		return v
	}

	prec.Samples = make([]ErrorSample, len(ns))

	errs := make([]float64, len(ns))

	delta := new(big.Float).SetPrec(want.Prec())

	for i, n := range ns {
		y := Trapezoid(f, a, b, n)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			panic(fmt.Errorf("cannot GetPrecisionStats: non-finite approximation %v for n = %d panels", y, n))
		}
		delta.SetFloat64(y)
		delta.Sub(want, delta)
		delta.Abs(delta)
		e, _ := delta.Float64()
		errs[i] = e
		prec.Samples[i] = ErrorSample{N: n, Err: e, Prec: deltaToPrecision(e)}
	}

	data := stats.Float64Data(errs)

	prec.MinErr = mustStat(data.Min())
	prec.MaxErr = mustStat(data.Max())
	prec.MeanErr = mustStat(data.Mean())
	prec.MedianErr = mustStat(data.Median())
	prec.StdErr = mustStat(data.StandardDeviation())

	prec.MinPrec = deltaToPrecision(prec.MaxErr)
	prec.MaxPrec = deltaToPrecision(prec.MinErr)
	prec.MeanPrec = deltaToPrecision(prec.MeanErr)
	prec.MedianPrec = deltaToPrecision(prec.MedianErr)

	return
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────────┬────────┐
│         │   ABS ERROR  │  LOG2  │
├─────────┼──────────────┼────────┤
│MIN      │ %12.5e │ %6.2f │
│MAX      │ %12.5e │ %6.2f │
│AVG      │ %12.5e │ %6.2f │
│MED      │ %12.5e │ %6.2f │
└─────────┴──────────────┴────────┘
Err STD : %12.5e
`,
		prec.MinErr, prec.MaxPrec,
		prec.MaxErr, prec.MinPrec,
		prec.MeanErr, prec.MeanPrec,
		prec.MedianErr, prec.MedianPrec,
		prec.StdErr)
}

func deltaToPrecision(delta float64) float64 {
	return math.Log2(1 / delta)
}
