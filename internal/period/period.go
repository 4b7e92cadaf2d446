package period

import (
	"fmt"
	"time"

	"github.com/statline-dev/statline/internal/model"
)

// Type is the granularity of a requested reporting period.
type Type string

const (
	Month   Type = "month"
	Quarter Type = "quarter"
	Year    Type = "year"
	YTD     Type = "ytd"
	TTM     Type = "ttm"
)

// Valid reports whether t is a known period type.
func (t Type) Valid() bool {
	switch t {
	case Month, Quarter, Year, YTD, TTM:
		return true
	}
	return false
}

// Spec describes one requested period: a granularity anchored at a
// calendar month. Specs are ephemeral, one per user interaction.
type Spec struct {
	Type   Type
	Anchor model.Month
}

// Bounds describes the extent of loaded GL data, plus the caller's
// partial-month policy: PartialThrough names a month whose data is known
// to be incomplete (typically the current calendar month). Zero means no
// month is considered partial.
type Bounds struct {
	First          model.Month
	Last           model.Month
	PartialThrough model.Month
}

// Window is one resolved reporting column: an ordered set of months plus
// flags for downstream presentation. Months are strictly increasing with
// no duplicates and never extend outside the data bounds — a window never
// fabricates zero-valued months, so callers can tell "no data" from zero.
type Window struct {
	Spec    Spec
	Months  []model.Month
	Partial bool
}

// ID returns a stable column identifier for the window, derived from its
// spec rather than its resolved months.
func (w Window) ID() string {
	a := w.Spec.Anchor
	switch w.Spec.Type {
	case Month:
		return a.String()
	case Quarter:
		return fmt.Sprintf("%04d-Q%d", a.Year, a.Quarter())
	case Year:
		return fmt.Sprintf("%04d", a.Year)
	case YTD:
		return "YTD " + a.String()
	case TTM:
		return "TTM " + a.String()
	}
	return a.String()
}

// Empty reports whether no months resolved inside the data bounds.
func (w Window) Empty() bool {
	return len(w.Months) == 0
}

// Resolve maps a period spec to the concrete months it covers, clipped to
// the data bounds. Anchors before the earliest data or windows reaching
// past the data produce only the months that exist.
func Resolve(spec Spec, b Bounds) Window {
	var first, last model.Month
	a := spec.Anchor

	switch spec.Type {
	case Month:
		first, last = a, a
	case Quarter:
		first = a.QuarterStart()
		last = first.AddMonths(2)
	case Year:
		first = model.NewMonth(a.Year, time.January)
		last = model.NewMonth(a.Year, time.December)
	case YTD:
		first = model.NewMonth(a.Year, time.January)
		last = a
	case TTM:
		first = a.AddMonths(-11)
		last = a
	default:
		return Window{Spec: spec}
	}

	if !b.First.IsZero() && first.Before(b.First) {
		first = b.First
	}
	if !b.Last.IsZero() && last.After(b.Last) {
		last = b.Last
	}

	w := Window{Spec: spec, Months: model.MonthsBetween(first, last)}
	if !b.PartialThrough.IsZero() {
		for _, m := range w.Months {
			if m == b.PartialThrough {
				w.Partial = true
				break
			}
		}
	}
	return w
}

// Windows resolves n consecutive windows of the spec's type ending at the
// anchor, newest last. Each window is resolved independently by the same
// rule; windows with no months inside the bounds are dropped.
func Windows(spec Spec, n int, b Bounds) []Window {
	if n < 1 {
		n = 1
	}
	step := stride(spec.Type)

	var windows []Window
	for i := n - 1; i >= 0; i-- {
		shifted := Spec{Type: spec.Type, Anchor: spec.Anchor.AddMonths(-i * step)}
		w := Resolve(shifted, b)
		if w.Empty() {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}

// PriorPeriod returns the spec shifted back by one period of the same
// type: month to the prior month, quarter to the prior quarter, and the
// year-length types (year, YTD, TTM) back a full year.
func (s Spec) PriorPeriod() Spec {
	length := 12
	switch s.Type {
	case Month:
		length = 1
	case Quarter:
		length = 3
	}
	return Spec{Type: s.Type, Anchor: s.Anchor.AddMonths(-length)}
}

// PriorYear returns the spec shifted back exactly twelve months, keeping
// the same type and length.
func (s Spec) PriorYear() Spec {
	return Spec{Type: s.Type, Anchor: s.Anchor.AddMonths(-12)}
}

// stride is the anchor distance between consecutive windows of a type.
// TTM windows advance monthly, which is how trailing matrices are read.
func stride(t Type) int {
	switch t {
	case Month, TTM:
		return 1
	case Quarter:
		return 3
	default:
		return 12
	}
}
