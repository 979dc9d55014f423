package sampler

import (
	"fmt"
	"math/rand"
	"time"
)

// Primes are the Halton bases handed out to the x, y, size and hue axes.
var Primes = [4]int{2, 3, 5, 7}

// Sampler is a seeded source of uniform integers and floats.
// It is not safe for concurrent use.
type Sampler struct {
	seed int64
	rng  *rand.Rand
}

func New(seed int64) *Sampler {
	return &Sampler{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// NewFromTime seeds a Sampler from the wall clock, once per process.
func NewFromTime() *Sampler { return New(time.Now().UnixNano()) }

func (s *Sampler) Seed() int64 { return s.seed }

// Intn returns a uniform integer in [0, bound). It panics if bound <= 0.
func (s *Sampler) Intn(bound int) int {
	if bound <= 0 {
		panic(fmt.Sprintf("sampler: Intn bound must be positive, got %d", bound))
	}
	return s.rng.Intn(bound)
}

// Float64 returns a uniform float in [0, 1).
func (s *Sampler) Float64() float64 { return s.rng.Float64() }

// Shuffle permutes n elements in place with Fisher-Yates, drawing from Intn.
func (s *Sampler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// Halton returns the radical inverse of index in the given base: the digits of
// index written in base, mirrored around the radix point. Consecutive indices
// with a fixed prime base give an evenly spread sequence in [0, 1).
func Halton(index, base int) float64 {
	if base < 2 {
		panic(fmt.Sprintf("sampler: Halton base must be >= 2, got %d", base))
	}
	if index < 0 {
		panic(fmt.Sprintf("sampler: Halton index must be >= 0, got %d", index))
	}
	inverse := 1.0 / float64(base)
	position := inverse
	out := 0.0
	for n := index; n > 0; n /= base {
		out += position * float64(n%base)
		position *= inverse
	}
	return out
}
