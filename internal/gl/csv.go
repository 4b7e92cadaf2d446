package gl

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/statline-dev/statline/internal/model"
)

// Accounts CSV columns (accounts.csv).
const (
	acctNumFields = 3
	acctColNo     = 0
	acctColDesc   = 1
	acctColNormal = 2
)

// History CSV columns (gl-history.csv, long format: one row per
// account-month that has activity).
const (
	histNumFields = 3
	histColNo     = 0
	histColMonth  = 1
	histColAmount = 2
)

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]model.AccountMeta, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = acctNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var metas []model.AccountMeta
	for i, rec := range records[1:] {
		meta, err := unmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, metas []model.AccountMeta) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_no", "description", "normal_balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, meta := range metas {
		row := []string{meta.AccountNo, meta.Description, string(meta.NormalBalance)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func unmarshalAccount(record []string) (model.AccountMeta, error) {
	if len(record) != acctNumFields {
		return model.AccountMeta{}, fmt.Errorf("expected %d fields, got %d", acctNumFields, len(record))
	}
	if record[acctColNo] == "" {
		return model.AccountMeta{}, fmt.Errorf("empty account_no")
	}

	nb := model.NormalBalance(record[acctColNormal])
	if nb != model.NormalDebit && nb != model.NormalCredit {
		return model.AccountMeta{}, fmt.Errorf("invalid normal_balance %q", record[acctColNormal])
	}

	return model.AccountMeta{
		AccountNo:     record[acctColNo],
		Description:   record[acctColDesc],
		NormalBalance: nb,
	}, nil
}

// ReadHistory reads gl-history.csv and groups rows into one GLRecord per
// account. Duplicate account-month rows are summed.
func ReadHistory(r io.Reader) ([]model.GLRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = histNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading GL history CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	byAccount := make(map[string]*model.GLRecord)
	var order []string
	for i, rec := range records[1:] {
		accountNo, month, amount, err := unmarshalHistoryRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		gr, ok := byAccount[accountNo]
		if !ok {
			gr = &model.GLRecord{AccountNo: accountNo, Values: make(map[model.Month]decimal.Decimal)}
			byAccount[accountNo] = gr
			order = append(order, accountNo)
		}
		gr.Values[month] = gr.Values[month].Add(amount)
	}

	result := make([]model.GLRecord, 0, len(order))
	for _, no := range order {
		result = append(result, *byAccount[no])
	}
	return result, nil
}

// WriteHistory writes gl-history.csv in long format, months in
// chronological order within each account.
func WriteHistory(w io.Writer, records []model.GLRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_no", "month", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, gr := range records {
		for _, m := range sortedMonths(gr.Values) {
			row := []string{gr.AccountNo, m.String(), gr.Values[m].String()}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing account %s: %w", gr.AccountNo, err)
			}
		}
	}
	return cw.Error()
}

func unmarshalHistoryRow(record []string) (string, model.Month, decimal.Decimal, error) {
	if len(record) != histNumFields {
		return "", model.Month{}, decimal.Zero, fmt.Errorf("expected %d fields, got %d", histNumFields, len(record))
	}
	if record[histColNo] == "" {
		return "", model.Month{}, decimal.Zero, fmt.Errorf("empty account_no")
	}

	month, err := model.ParseMonth(record[histColMonth])
	if err != nil {
		return "", model.Month{}, decimal.Zero, err
	}

	amount, err := decimal.NewFromString(record[histColAmount])
	if err != nil {
		return "", model.Month{}, decimal.Zero, fmt.Errorf("parsing amount %q: %w", record[histColAmount], err)
	}

	return record[histColNo], month, amount, nil
}

func sortedMonths(values map[model.Month]decimal.Decimal) []model.Month {
	months := make([]model.Month, 0, len(values))
	for m := range values {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}
