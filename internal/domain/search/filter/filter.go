package filter

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
)

// Bounds holds the four salary constraints of a request.
// All four are applied to every posting, hourly or not: a fixed-price posting
// has hourly rates of 0 and is dropped by any MinHourly above 0.
type Bounds struct {
	minHourly float64
	maxHourly float64
	minBudget float64
	maxBudget float64
}

// NewBounds validates and creates Bounds. Values must be finite and non-negative.
// Inverted ranges are allowed and simply match nothing.
func NewBounds(minHourly, maxHourly, minBudget, maxBudget float64) (Bounds, error) {
	named := []struct {
		name string
		v    float64
	}{
		{"min_hourly_rate", minHourly},
		{"max_hourly_rate", maxHourly},
		{"min_budget", minBudget},
		{"max_budget", maxBudget},
	}
	for _, n := range named {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return Bounds{}, fmt.Errorf("%s must be a finite number", n.name)
		}
		if n.v < 0 {
			return Bounds{}, fmt.Errorf("%s must be >= 0, got %v", n.name, n.v)
		}
	}
	return Bounds{minHourly: minHourly, maxHourly: maxHourly, minBudget: minBudget, maxBudget: maxBudget}, nil
}

// Permissive returns bounds that every non-negative posting satisfies.
func Permissive() Bounds {
	return Bounds{maxHourly: math.MaxFloat64, maxBudget: math.MaxFloat64}
}

// MinHourly returns the lower bound on hourly_low.
func (b Bounds) MinHourly() float64 { return b.minHourly }

// MaxHourly returns the upper bound on hourly_high.
func (b Bounds) MaxHourly() float64 { return b.maxHourly }

// MinBudget returns the lower bound on budget.
func (b Bounds) MinBudget() float64 { return b.minBudget }

// MaxBudget returns the upper bound on budget.
func (b Bounds) MaxBudget() float64 { return b.maxBudget }

// Match reports whether r satisfies all four bounds.
func (b Bounds) Match(r job.Record) bool {
	return r.HourlyLow() >= b.minHourly &&
		r.HourlyHigh() <= b.maxHourly &&
		r.Budget() >= b.minBudget &&
		r.Budget() <= b.maxBudget
}
