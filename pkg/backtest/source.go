package backtest

import (
	"math/rand"
	"time"
)

// Source supplies the randomness behind a generated report. Injecting it
// keeps the derived-field formulas testable with fixed sequences; the default
// is an unseeded-equivalent math/rand generator, so run-to-run
// reproducibility is deliberately not a property.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSource returns the default time-seeded source.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
