package hierarchy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Expr {
	t.Helper()
	expr, err := ParseFormula(src)
	require.NoError(t, err)
	return expr
}

func reasons(errs []ConfigError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func TestNewChartAssignsLevelsAndOrder(t *testing.T) {
	rows := []*Node{
		{
			ID: "cogs", Label: "Cost of Goods", Type: RowSubtotal,
			Children: []*Node{
				{ID: "labor", Label: "Labor", Type: RowDetail, Accounts: []string{"5010"}},
			},
		},
	}

	chart, errs := NewChart("test", rows)
	require.Empty(t, errs)

	labor, ok := chart.Node("labor")
	require.True(t, ok)
	assert.Equal(t, 2, labor.Level)

	cogs, _ := chart.Node("cogs")
	assert.Equal(t, 1, cogs.Level)

	// Children evaluate strictly before parents.
	order := chart.PostOrder()
	require.Len(t, order, 2)
	assert.Equal(t, "labor", order[0].ID)
	assert.Equal(t, "cogs", order[1].ID)
}

func TestValidateDetailWithoutAccounts(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "empty_detail", Label: "Empty", Type: RowDetail},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "account list, a range, or a formula")
}

func TestValidateUndefinedReference(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "ratio", Label: "Ratio", Type: RowRatio, Formula: mustParse(t, "nope / revenue")},
		{ID: "revenue", Label: "Revenue", Type: RowDetail, Accounts: []string{"4010"}},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], `undefined row "nope"`)
}

func TestValidateForwardReference(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "ratio", Label: "Ratio", Type: RowRatio, Formula: mustParse(t, "revenue / 2")},
		{ID: "revenue", Label: "Revenue", Type: RowDetail, Accounts: []string{"4010"}},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "not evaluated before")
}

func TestValidateCycle(t *testing.T) {
	// a -> b -> a, expressed through formulas.
	_, errs := NewChart("test", []*Node{
		{ID: "a", Label: "A", Type: RowSubtotal, Formula: mustParse(t, "b + 1")},
		{ID: "b", Label: "B", Type: RowSubtotal, Formula: mustParse(t, "a + 1")},
	})
	require.NotEmpty(t, errs)

	found := false
	for _, r := range reasons(errs) {
		if strings.Contains(r, "cyclic formula reference") {
			found = true
		}
	}
	assert.True(t, found, "expected a cyclic reference error, got %v", reasons(errs))
}

func TestValidateSelfReference(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "self", Label: "Self", Type: RowSubtotal, Formula: mustParse(t, "self * 2")},
	})
	require.NotEmpty(t, errs)

	found := false
	for _, r := range reasons(errs) {
		if strings.Contains(r, "cyclic formula reference") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateHeaderWithAccounts(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "hdr", Label: "Header", Type: RowHeader, Accounts: []string{"4010"}},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "structural")
}

func TestValidateRatioWithoutFormula(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "pct", Label: "Pct", Type: RowRatio},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "requires a formula")
}

func TestValidateUnknownRowType(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "odd", Label: "Odd", Type: RowType("widget")},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], `unknown row type "widget"`)
}

func TestValidateDuplicateID(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "rev", Label: "Revenue", Type: RowDetail, Accounts: []string{"4010"}},
		{ID: "rev", Label: "Revenue Again", Type: RowDetail, Accounts: []string{"4020"}},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "duplicate row id")
}

func TestValidateBadRange(t *testing.T) {
	_, errs := NewChart("test", []*Node{
		{ID: "d", Label: "D", Type: RowDetail, Range: &AccountRange{Low: "5099", High: "5000"}},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "exceeds high")

	_, errs = NewChart("test", []*Node{
		{ID: "d", Label: "D", Type: RowDetail, Range: &AccountRange{Low: "50xx", High: "5099"}},
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, reasons(errs)[0], "not numeric")
}
