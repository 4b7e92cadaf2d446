package statement

import "github.com/shopspring/decimal"

// Value is a computed statement amount: either a decimal or an explicit
// "undefined" marker (a ratio over a zero denominator). Undefined is a
// first-class result, never coerced to zero, NaN, or infinity, so
// presentation can render it distinctly.
type Value struct {
	dec       decimal.Decimal
	undefined bool
}

// Number wraps a decimal in a defined Value.
func Number(d decimal.Decimal) Value {
	return Value{dec: d}
}

// Undefined returns the non-numeric marker value.
func Undefined() Value {
	return Value{undefined: true}
}

// Zero is the defined zero amount.
func Zero() Value {
	return Value{}
}

// Defined reports whether the value carries a number.
func (v Value) Defined() bool {
	return !v.undefined
}

// Decimal returns the numeric amount; ok is false for undefined values.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	if v.undefined {
		return decimal.Zero, false
	}
	return v.dec, true
}

// String returns the raw decimal text, or "undefined". No currency or
// locale formatting happens here; that belongs to consumers.
func (v Value) String() string {
	if v.undefined {
		return "undefined"
	}
	return v.dec.String()
}

// Equal reports whether two values are both undefined or numerically equal.
func (v Value) Equal(other Value) bool {
	if v.undefined || other.undefined {
		return v.undefined == other.undefined
	}
	return v.dec.Equal(other.dec)
}

// Add returns v + other; undefined if either side is undefined.
func (v Value) Add(other Value) Value {
	if v.undefined || other.undefined {
		return Undefined()
	}
	return Number(v.dec.Add(other.dec))
}

// Sub returns v - other; undefined if either side is undefined.
func (v Value) Sub(other Value) Value {
	if v.undefined || other.undefined {
		return Undefined()
	}
	return Number(v.dec.Sub(other.dec))
}

// Mul returns v * other; undefined if either side is undefined.
func (v Value) Mul(other Value) Value {
	if v.undefined || other.undefined {
		return Undefined()
	}
	return Number(v.dec.Mul(other.dec))
}

// Div returns v / other. Division by zero yields the undefined marker,
// not an error and not a numeric zero.
func (v Value) Div(other Value) Value {
	if v.undefined || other.undefined || other.dec.IsZero() {
		return Undefined()
	}
	return Number(v.dec.Div(other.dec))
}
