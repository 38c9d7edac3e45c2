package job

import (
	"math"
	"sort"
)

// Summary is a descriptive summary of one numeric column.
type Summary struct {
	Count int
	Mean  float64
	Std   float64 // sample standard deviation, NaN when Count < 2
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// SalaryStats summarizes the salary columns of a corpus.
type SalaryStats struct {
	HourlyLow  Summary
	HourlyHigh Summary
	Budget     Summary
}

// Stats describes the salary distribution of c.
func (c Corpus) Stats() SalaryStats {
	low := make([]float64, len(c.records))
	high := make([]float64, len(c.records))
	budget := make([]float64, len(c.records))
	for i, r := range c.records {
		low[i] = r.hourlyLow
		high[i] = r.hourlyHigh
		budget[i] = r.budget
	}
	return SalaryStats{
		HourlyLow:  Describe(low),
		HourlyHigh: Describe(high),
		Budget:     Describe(budget),
	}
}

// Describe computes count, mean, sample std, min, quartiles and max.
// Quartiles use linear interpolation between closest ranks.
// An empty input yields Count 0 and NaN everywhere else.
func Describe(values []float64) Summary {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	std := math.NaN()
	if n > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(n-1))
	}

	return Summary{
		Count: n,
		Mean:  mean,
		Std:   std,
		Min:   sorted[0],
		P25:   quantile(sorted, 0.25),
		P50:   quantile(sorted, 0.50),
		P75:   quantile(sorted, 0.75),
		Max:   sorted[n-1],
	}
}

func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
