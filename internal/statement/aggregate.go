package statement

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/statline-dev/statline/internal/hierarchy"
	"github.com/statline-dev/statline/internal/model"
)

// MetaLookup resolves account metadata for sign correction. Accounts
// without metadata are treated as debit-normal (no flip).
type MetaLookup interface {
	Meta(accountNo string) (model.AccountMeta, bool)
}

// AccountFilter selects GL accounts by explicit list, inclusive numeric
// range, or both. Matching is a predicate over the union, so an account
// named in the list and covered by the range still counts once.
type AccountFilter struct {
	Accounts []string
	Range    *hierarchy.AccountRange
}

// FilterFor builds the filter for a hierarchy row.
func FilterFor(n *hierarchy.Node) AccountFilter {
	return AccountFilter{Accounts: n.Accounts, Range: n.Range}
}

// Matches reports whether an account number is selected. Non-numeric
// account numbers can only match the explicit list.
func (f AccountFilter) Matches(accountNo string) bool {
	for _, a := range f.Accounts {
		if a == accountNo {
			return true
		}
	}
	if f.Range == nil {
		return false
	}
	no, err := strconv.Atoi(accountNo)
	if err != nil {
		return false
	}
	low, errLow := strconv.Atoi(f.Range.Low)
	high, errHigh := strconv.Atoi(f.Range.High)
	if errLow != nil || errHigh != nil {
		return false
	}
	return no >= low && no <= high
}

// Aggregate sums the monthly values of every matching account across the
// given months, then applies the sign convention per account. Missing
// account-month entries contribute zero. Pure function of its inputs.
func Aggregate(months []model.Month, records []model.GLRecord, filter AccountFilter, metas MetaLookup, signs model.SignConvention) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if !filter.Matches(r.AccountNo) {
			continue
		}

		sum := decimal.Zero
		for _, m := range months {
			sum = sum.Add(r.Value(m))
		}

		nb := model.NormalDebit
		if meta, ok := metas.Meta(r.AccountNo); ok {
			nb = meta.NormalBalance
		}
		total = total.Add(signs.Apply(nb, sum))
	}
	return total
}
