package sampling

import (
	"encoding/binary"
	"fmt"
)

// UniformSampler wraps a PRNG and represents the state of a sampler of
// uniform float64 values on the interval [a, b].
type UniformSampler struct {
	prng PRNG
	a, b float64
	buff [8]byte
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and
// the bounds of the sampling interval. Panics if b < a.
func NewUniformSampler(prng PRNG, a, b float64) (u *UniformSampler) {
	if b < a {
		panic(fmt.Errorf("cannot NewUniformSampler: invalid interval [%v, %v]", a, b))
	}
	return &UniformSampler{prng: prng, a: a, b: b}
}

// Float64 samples a single uniform float64 in [a, b].
func (u *UniformSampler) Float64() float64 {
	if _, err := u.prng.Read(u.buff[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(u.buff[:])) / 1.8446744073709552e+19
	return u.a + f*(u.b-u.a)
}

// Read fills dst with uniform samples in [a, b].
func (u *UniformSampler) Read(dst []float64) {
	for i := range dst {
		dst[i] = u.Float64()
	}
}

// ReadNew samples and returns a new slice of n uniform values in [a, b].
func (u *UniformSampler) ReadNew(n int) (dst []float64) {
	dst = make([]float64, n)
	u.Read(dst)
	return
}
