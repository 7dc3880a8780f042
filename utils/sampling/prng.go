// Package sampling provides pseudo-random number generation for the
// randomized quadrature tests: a deterministic keyed PRNG so that failing
// property tests can be replayed from their seed, and a uniform float64
// sampler on an interval.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe and seeded from the
// operating system entropy source.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads random bytes into sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a sequence of random bytes from a key using the hash function
// blake2b. Two KeyedPRNG instantiated with the same key produce the same
// stream, which is what allows a randomized test run to be reproduced.
// WARNING: KeyedPRNG should NOT be shared by multiple goroutines: the
// resulting sequence would not be deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with [NewKeyedPRNG] to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
