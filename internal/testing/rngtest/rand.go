// Package rngtest provides scripted random sources for engine tests
package rngtest

import "math/rand"

// Fixed returns the same roll every time
type Fixed struct {
	F float64
	I int
}

func (f Fixed) Float64() float64 { return f.F }

// Intn returns I bounded to [0, n)
func (f Fixed) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if f.I >= n {
		return n - 1
	}
	if f.I < 0 {
		return 0
	}
	return f.I
}

// Sequence replays the queued floats in order, then keeps returning Fallback.
// Intn always delegates to Fixed semantics with I.
type Sequence struct {
	Floats   []float64
	Fallback float64
	I        int
	pos      int
}

func (s *Sequence) Float64() float64 {
	if s.pos < len(s.Floats) {
		v := s.Floats[s.pos]
		s.pos++
		return v
	}
	return s.Fallback
}

func (s *Sequence) Intn(n int) int {
	return Fixed{I: s.I}.Intn(n)
}

// Seeded returns a deterministic pseudo-random source
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
