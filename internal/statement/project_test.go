package statement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline-dev/statline/internal/period"
)

func TestParseDetailLevel(t *testing.T) {
	lvl, err := ParseDetailLevel("summary")
	require.NoError(t, err)
	assert.Equal(t, DetailSummary, lvl)

	lvl, err = ParseDetailLevel("account")
	require.NoError(t, err)
	assert.Equal(t, DetailAccount, lvl)

	_, err = ParseDetailLevel("forensic")
	require.Error(t, err)
}

func TestProjectSummaryHidesDetailRows(t *testing.T) {
	svc := newTestService(t)
	st, err := svc.Build(context.Background(), Request{
		Spec:   period.Spec{Type: period.Month, Anchor: month(2024, time.March)},
		Detail: DetailAccount,
	})
	require.NoError(t, err)

	summary := Project(st, DetailSummary, ViewSingle)

	ids := make([]string, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		ids = append(ids, r.GroupID)
	}
	assert.Contains(t, ids, "revenue")
	assert.NotContains(t, ids, "service_revenue", "level-2 rows are hidden at summary detail")
}

func TestProjectFilteringKeepsSubtotalValues(t *testing.T) {
	svc := newTestService(t)
	st, err := svc.Build(context.Background(), Request{
		Spec: period.Spec{Type: period.Quarter, Anchor: month(2024, time.February)},
	})
	require.NoError(t, err)

	full := findRow(t, st, "revenue").Values["2024-Q1"]
	summary := Project(st, DetailSummary, ViewSingle)
	filtered := findRow(t, summary, "revenue").Values["2024-Q1"]

	assert.True(t, full.Equal(filtered), "hiding descendants must not change subtotal values")
}

func TestProjectSingleKeepsNewestColumn(t *testing.T) {
	svc := newTestService(t)
	st, err := svc.Build(context.Background(), Request{
		Spec:    period.Spec{Type: period.Month, Anchor: month(2024, time.March)},
		Windows: 6,
		View:    ViewMatrix,
	})
	require.NoError(t, err)
	require.Len(t, st.Columns, 6)

	single := Project(st, DetailAccount, ViewSingle)
	require.Len(t, single.Columns, 1)
	assert.Equal(t, "2024-03", single.Columns[0].ID)

	rev := findRow(t, single, "revenue")
	require.Len(t, rev.Values, 1)
	assert.Equal(t, "500000", rev.Values["2024-03"].String())
}

func TestProjectMatrixKeepsAllColumns(t *testing.T) {
	svc := newTestService(t)
	st, err := svc.Build(context.Background(), Request{
		Spec:    period.Spec{Type: period.Quarter, Anchor: month(2024, time.February)},
		Windows: 4,
	})
	require.NoError(t, err)

	matrix := Project(st, DetailAccount, ViewMatrix)
	assert.Len(t, matrix.Columns, 4)
}
