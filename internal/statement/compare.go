package statement

import (
	"github.com/statline-dev/statline/internal/period"
)

// ComparisonMode selects the baseline used for variance columns.
type ComparisonMode string

const (
	CompareNone        ComparisonMode = "none"
	ComparePriorPeriod ComparisonMode = "prior-period"
	ComparePriorYear   ComparisonMode = "prior-year"
)

// Valid reports whether m is a known comparison mode.
func (m ComparisonMode) Valid() bool {
	switch m {
	case CompareNone, ComparePriorPeriod, ComparePriorYear:
		return true
	}
	return false
}

// BaselineSpec derives the comparison period spec for a primary column.
// ok is false when the mode needs no baseline.
func BaselineSpec(s period.Spec, mode ComparisonMode) (period.Spec, bool) {
	switch mode {
	case ComparePriorPeriod:
		return s.PriorPeriod(), true
	case ComparePriorYear:
		return s.PriorYear(), true
	}
	return period.Spec{}, false
}

// Variance is the signed difference between a primary value and its
// baseline. Pct is undefined when the baseline is zero or either side is
// undefined; Delta is undefined when either side is undefined.
type Variance struct {
	Delta Value
	Pct   Value
}

// VarianceOf computes delta = primary - baseline and pct = delta / baseline.
func VarianceOf(primary, baseline Value) Variance {
	delta := primary.Sub(baseline)
	return Variance{Delta: delta, Pct: delta.Div(baseline)}
}
