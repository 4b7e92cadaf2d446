package model

import "github.com/shopspring/decimal"

// NormalBalance is the natural positive direction of a GL account.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "debit"
	NormalCredit NormalBalance = "credit"
)

// GLRecord holds the monthly history for one GL account. Records are
// immutable once loaded; a missing month means "no data", not zero.
type GLRecord struct {
	AccountNo string
	Values    map[Month]decimal.Decimal
}

// Value returns the amount for a month, or zero if the month is absent.
func (r GLRecord) Value(m Month) decimal.Decimal {
	if v, ok := r.Values[m]; ok {
		return v
	}
	return decimal.Zero
}

// AccountMeta describes a GL account for presentation purposes.
type AccountMeta struct {
	AccountNo     string
	Description   string
	NormalBalance NormalBalance
}

// SignConvention maps normal balances to a presentation sign. It is
// supplied by the caller so the aggregator stays policy-free.
type SignConvention map[NormalBalance]int

// PresentationDefault returns the usual statement convention: credit
// accounts (revenue, liabilities, equity) are flipped to display positive.
func PresentationDefault() SignConvention {
	return SignConvention{NormalDebit: 1, NormalCredit: -1}
}

// Apply adjusts an aggregated amount by the sign for the given normal
// balance. Unmapped balances pass through unchanged.
func (c SignConvention) Apply(nb NormalBalance, v decimal.Decimal) decimal.Decimal {
	if c[nb] == -1 {
		return v.Neg()
	}
	return v
}
