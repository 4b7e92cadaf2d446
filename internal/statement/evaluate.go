package statement

import (
	"fmt"

	"github.com/statline-dev/statline/internal/hierarchy"
	"github.com/statline-dev/statline/internal/model"
)

// Evaluate computes one value per row for a single resolved month window,
// in one bottom-up post-order pass. Detail rows aggregate GL accounts,
// subtotals sum their children unless an explicit formula overrides them,
// ratios evaluate their formula, headers carry no value.
//
// The chart is re-checked before any value is computed: a broken
// hierarchy aborts the whole evaluation with nothing partial returned.
func Evaluate(chart *hierarchy.Chart, months []model.Month, records []model.GLRecord, metas MetaLookup, signs model.SignConvention) (map[string]Value, error) {
	if cfgErrs := hierarchy.Validate(chart); len(cfgErrs) > 0 {
		return nil, fmt.Errorf("%w: %s", hierarchy.ErrInvalidChart, cfgErrs[0].Error())
	}

	values := make(map[string]Value, len(chart.PostOrder()))
	for _, n := range chart.PostOrder() {
		switch n.Type {
		case hierarchy.RowHeader:
			// Structural only.
		case hierarchy.RowDetail:
			values[n.ID] = evalDetail(n, months, records, metas, signs, values)
		case hierarchy.RowSubtotal:
			values[n.ID] = evalSubtotal(n, values)
		case hierarchy.RowRatio:
			values[n.ID] = evalExpr(n.Formula, values)
		}
	}
	return values, nil
}

func evalDetail(n *hierarchy.Node, months []model.Month, records []model.GLRecord, metas MetaLookup, signs model.SignConvention, values map[string]Value) Value {
	// A pure-formula detail row has no accounts of its own.
	if n.Formula != nil {
		return evalExpr(n.Formula, values)
	}
	return Number(Aggregate(months, records, FilterFor(n), metas, signs))
}

// evalSubtotal prefers an explicit formula over the structural sum of
// children. The structural sum covers detail and subtotal children only:
// headers have no value and ratios are not additive.
func evalSubtotal(n *hierarchy.Node, values map[string]Value) Value {
	if n.Formula != nil {
		return evalExpr(n.Formula, values)
	}

	sum := Zero()
	for _, child := range n.Children {
		switch child.Type {
		case hierarchy.RowDetail, hierarchy.RowSubtotal:
			sum = sum.Add(values[child.ID])
		}
	}
	return sum
}

// evalExpr walks a parsed formula over already-computed row values.
// References are guaranteed present by validation.
func evalExpr(e *hierarchy.Expr, values map[string]Value) Value {
	switch e.Kind {
	case hierarchy.ExprRef:
		return values[e.Ref]
	case hierarchy.ExprLiteral:
		return Number(e.Literal)
	case hierarchy.ExprBinary:
		left := evalExpr(e.Left, values)
		right := evalExpr(e.Right, values)
		switch e.Op {
		case hierarchy.OpAdd:
			return left.Add(right)
		case hierarchy.OpSub:
			return left.Sub(right)
		case hierarchy.OpMul:
			return left.Mul(right)
		case hierarchy.OpDiv:
			return left.Div(right)
		}
	}
	return Undefined()
}
