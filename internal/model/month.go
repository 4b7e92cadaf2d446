package model

import (
	"fmt"
	"time"
)

// MonthFormat is the canonical "YYYY-MM" layout for GL month keys.
const MonthFormat = "2006-01"

// Month identifies a single calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth creates a Month, normalizing out-of-range month values
// (e.g. month 13 becomes January of the next year).
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("parsing month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String returns the canonical "YYYY-MM" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	return NewMonth(m.Year, m.Month+time.Month(n))
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// After reports whether m is strictly later than other.
func (m Month) After(other Month) bool {
	return other.Before(m)
}

// Quarter returns the calendar quarter (1-4) containing m.
func (m Month) Quarter() int {
	return (int(m.Month)-1)/3 + 1
}

// QuarterStart returns the first month of m's calendar quarter.
func (m Month) QuarterStart() Month {
	return NewMonth(m.Year, time.Month((m.Quarter()-1)*3+1))
}

// MonthsBetween returns the inclusive sequence from first to last in
// chronological order. Returns nil if last is before first.
func MonthsBetween(first, last Month) []Month {
	if last.Before(first) {
		return nil
	}
	var months []Month
	for m := first; !m.After(last); m = m.AddMonths(1) {
		months = append(months, m)
	}
	return months
}
