package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormulaRef(t *testing.T) {
	expr, err := ParseFormula("gross_profit")
	require.NoError(t, err)
	assert.Equal(t, ExprRef, expr.Kind)
	assert.Equal(t, "gross_profit", expr.Ref)
	assert.Equal(t, []string{"gross_profit"}, expr.Refs())
}

func TestParseFormulaDivision(t *testing.T) {
	expr, err := ParseFormula("gross_profit / total_revenue")
	require.NoError(t, err)
	require.Equal(t, ExprBinary, expr.Kind)
	assert.Equal(t, OpDiv, expr.Op)
	assert.Equal(t, []string{"gross_profit", "total_revenue"}, expr.Refs())
}

func TestParseFormulaPrecedence(t *testing.T) {
	expr, err := ParseFormula("a + b * c")
	require.NoError(t, err)
	assert.Equal(t, "(a + (b * c))", expr.String())

	expr, err = ParseFormula("(a + b) * c")
	require.NoError(t, err)
	assert.Equal(t, "((a + b) * c)", expr.String())
}

func TestParseFormulaLiteralsAndUnaryMinus(t *testing.T) {
	expr, err := ParseFormula("revenue * 0.5")
	require.NoError(t, err)
	assert.Equal(t, "(revenue * 0.5)", expr.String())

	expr, err = ParseFormula("-cost")
	require.NoError(t, err)
	assert.Equal(t, "(0 - cost)", expr.String())
}

func TestParseFormulaErrors(t *testing.T) {
	for _, src := range []string{"", "a +", "(a + b", "a ? b", "1.2.3"} {
		_, err := ParseFormula(src)
		assert.Error(t, err, "formula %q should not parse", src)
	}
}

func TestParseFormulaTrailingGarbage(t *testing.T) {
	_, err := ParseFormula("a b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
}
