package hierarchy

// DefaultIncomeStatement returns the built-in income statement hierarchy
// used when scaffolding a new project. It pairs with the account numbering
// of gl.DefaultAccounts: 4xxx revenue, 5xxx cost of goods, 6xxx operating
// expenses.
func DefaultIncomeStatement() (*Chart, []ConfigError) {
	mustFormula := func(src string) *Expr {
		expr, err := ParseFormula(src)
		if err != nil {
			panic("default chart formula: " + err.Error())
		}
		return expr
	}

	rows := []*Node{
		{
			ID: "revenue", Label: "Revenue", Type: RowSubtotal,
			Children: []*Node{
				{ID: "service_revenue", Label: "Service Revenue", Type: RowDetail, Accounts: []string{"4010"}},
				{ID: "product_revenue", Label: "Product Revenue", Type: RowDetail, Accounts: []string{"4020"}},
				{ID: "other_revenue", Label: "Other Revenue", Type: RowDetail, Range: &AccountRange{Low: "4030", High: "4099"}},
			},
		},
		{
			ID: "cost_of_goods", Label: "Cost of Goods Sold", Type: RowSubtotal,
			Children: []*Node{
				{ID: "direct_labor", Label: "Direct Labor", Type: RowDetail, Range: &AccountRange{Low: "5000", High: "5099"}},
				{ID: "materials", Label: "Materials", Type: RowDetail, Range: &AccountRange{Low: "5100", High: "5199"}},
			},
		},
		{
			ID: "gross_profit", Label: "Gross Profit", Type: RowSubtotal,
			Formula: mustFormula("revenue - cost_of_goods"),
		},
		{
			ID: "operating_expenses", Label: "Operating Expenses", Type: RowSubtotal,
			Children: []*Node{
				{ID: "marketing", Label: "Advertising & Marketing", Type: RowDetail, Range: &AccountRange{Low: "6000", High: "6099"}},
				{ID: "office", Label: "Office & Admin", Type: RowDetail, Range: &AccountRange{Low: "6100", High: "6199"}},
				{ID: "professional", Label: "Professional Services", Type: RowDetail, Range: &AccountRange{Low: "6200", High: "6299"}},
			},
		},
		{
			ID: "net_income", Label: "Net Income", Type: RowSubtotal,
			Formula: mustFormula("gross_profit - operating_expenses"),
		},
		{
			ID: "gross_margin_pct", Label: "Gross Margin %", Type: RowRatio,
			Formula: mustFormula("gross_profit / revenue"),
		},
		{
			ID: "net_margin_pct", Label: "Net Margin %", Type: RowRatio,
			Formula: mustFormula("net_income / revenue"),
		},
	}

	return NewChart("Income Statement", rows)
}
