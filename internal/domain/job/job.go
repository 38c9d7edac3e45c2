package job

import (
	"math"
	"strconv"
)

// Unknown replaces a missing title or country.
const Unknown = "Unknown"

// Raw is a posting as read from the source, before defaults are applied.
// A nil field means the column was absent or the cell was empty.
type Raw struct {
	Title      *string
	Country    *string
	IsHourly   *bool
	HourlyLow  *float64
	HourlyHigh *float64
	Budget     *float64
}

// Record is a normalized job posting (immutable value object).
type Record struct {
	title        string
	country      string
	isHourly     bool
	hourlyLow    float64
	hourlyHigh   float64
	budget       float64
	combinedText string
}

// Prepare applies the missing-value defaults to raw and derives the combined text.
// Title/country default to "Unknown", is_hourly to false, numerics to 0.
func Prepare(raw Raw) Record {
	title, country := Unknown, Unknown
	if raw.Title != nil {
		title = *raw.Title
	}
	if raw.Country != nil {
		country = *raw.Country
	}
	var hourly bool
	if raw.IsHourly != nil {
		hourly = *raw.IsHourly
	}
	return New(title, country, hourly, deref(raw.HourlyLow), deref(raw.HourlyHigh), deref(raw.Budget))
}

// New creates a Record from already-present values. Negative amounts are clamped to 0.
func New(title, country string, isHourly bool, hourlyLow, hourlyHigh, budget float64) Record {
	return Record{
		title:        title,
		country:      country,
		isHourly:     isHourly,
		hourlyLow:    nonNegative(hourlyLow),
		hourlyHigh:   nonNegative(hourlyHigh),
		budget:       nonNegative(budget),
		combinedText: CombinedText(title, country, isHourly),
	}
}

// CombinedText joins the fields the vectorizer sees: title, country and the hourly flag.
func CombinedText(title, country string, isHourly bool) string {
	return title + " " + country + " " + strconv.FormatBool(isHourly)
}

// Title returns the posting title.
func (r Record) Title() string { return r.title }

// Country returns the posting country.
func (r Record) Country() string { return r.country }

// IsHourly reports whether the posting pays by the hour.
func (r Record) IsHourly() bool { return r.isHourly }

// HourlyLow returns the lower hourly rate.
func (r Record) HourlyLow() float64 { return r.hourlyLow }

// HourlyHigh returns the upper hourly rate.
func (r Record) HourlyHigh() float64 { return r.hourlyHigh }

// Budget returns the fixed-price budget.
func (r Record) Budget() float64 { return r.budget }

// CombinedText returns the text the vectorizer is fitted on.
func (r Record) CombinedText() string { return r.combinedText }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
