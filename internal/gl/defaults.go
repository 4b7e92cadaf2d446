package gl

import "github.com/statline-dev/statline/internal/model"

// DefaultAccounts returns the starter chart of accounts written by
// `statline init`. Numbering: 1xxx assets, 2xxx liabilities, 3xxx equity,
// 4xxx revenue, 5xxx cost of goods, 6xxx operating expenses.
func DefaultAccounts() []model.AccountMeta {
	return []model.AccountMeta{
		{AccountNo: "1010", Description: "Business Checking", NormalBalance: model.NormalDebit},
		{AccountNo: "1020", Description: "Accounts Receivable", NormalBalance: model.NormalDebit},
		{AccountNo: "2010", Description: "Accounts Payable", NormalBalance: model.NormalCredit},
		{AccountNo: "3010", Description: "Owner's Equity", NormalBalance: model.NormalCredit},
		{AccountNo: "4010", Description: "Service Revenue", NormalBalance: model.NormalCredit},
		{AccountNo: "4020", Description: "Product Revenue", NormalBalance: model.NormalCredit},
		{AccountNo: "5010", Description: "Direct Labor", NormalBalance: model.NormalDebit},
		{AccountNo: "5110", Description: "Materials", NormalBalance: model.NormalDebit},
		{AccountNo: "6010", Description: "Advertising & Marketing", NormalBalance: model.NormalDebit},
		{AccountNo: "6110", Description: "Office Supplies", NormalBalance: model.NormalDebit},
		{AccountNo: "6210", Description: "Professional Services", NormalBalance: model.NormalDebit},
	}
}
