package domain

// ActionResult is what every host-facing action returns. Expected rejections
// (insufficient funds, cooldowns, locked targets) come back as Success=false
// with a readable Reason instead of an error.
type ActionResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Ok builds a successful result carrying an optional payload
func Ok(data any) ActionResult {
	return ActionResult{Success: true, Data: data}
}

// Reject builds a failed result from an error
func Reject(err error) ActionResult {
	if err == nil {
		return ActionResult{Success: false, Reason: ErrMsgInvalidInput}
	}
	return ActionResult{Success: false, Reason: err.Error()}
}

// Rand is the random source threaded through every engine. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Chance reports whether a roll against probability p succeeds
func Chance(rng Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// Uniform returns a float in [lo, hi)
func Uniform(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// IntBetween returns an integer between lo and hi (inclusive)
func IntBetween(rng Rand, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
