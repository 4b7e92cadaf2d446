package statement

import (
	"fmt"
	"math"
)

// DetailLevel is the hierarchy-depth threshold controlling how many
// levels of the account-group tree are shown.
type DetailLevel int

const (
	// DetailSummary shows only top-level rows.
	DetailSummary DetailLevel = 1
	// DetailMedium shows two levels.
	DetailMedium DetailLevel = 2
	// DetailAccount shows the full tree.
	DetailAccount DetailLevel = 3
)

// ParseDetailLevel parses a CLI detail-level name.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch s {
	case "summary":
		return DetailSummary, nil
	case "medium":
		return DetailMedium, nil
	case "account":
		return DetailAccount, nil
	}
	return 0, fmt.Errorf("unknown detail level %q (want summary, medium, or account)", s)
}

// ViewMode selects the column layout of the projected grid.
type ViewMode string

const (
	// ViewSingle shows only the anchor period column.
	ViewSingle ViewMode = "single"
	// ViewMatrix shows every resolved period window as a column.
	ViewMatrix ViewMode = "matrix"
)

// Project applies detail-level filtering and the view-mode column layout
// to an evaluated statement. Hidden rows were already folded into their
// ancestor subtotals during evaluation, so visible totals are unchanged
// regardless of which levels are hidden. Both view modes reuse the same
// evaluated row set; only column selection differs.
func Project(st *Statement, level DetailLevel, mode ViewMode) *Statement {
	maxLevel := math.MaxInt
	switch level {
	case DetailSummary, DetailMedium:
		maxLevel = int(level)
	}

	columns := st.Columns
	if mode == ViewSingle && len(columns) > 1 {
		columns = columns[len(columns)-1:]
	}
	keep := make(map[string]bool, len(columns))
	for _, c := range columns {
		keep[c.ID] = true
	}

	out := &Statement{Name: st.Name, Columns: columns}
	for _, row := range st.Rows {
		if row.Level > maxLevel {
			continue
		}
		projected := Row{
			GroupID: row.GroupID,
			Label:   row.Label,
			Level:   row.Level,
			Type:    row.Type,
		}
		if row.Values != nil {
			projected.Values = make(map[string]Value, len(keep))
			for id, v := range row.Values {
				if keep[id] {
					projected.Values[id] = v
				}
			}
		}
		if row.Variance != nil {
			projected.Variance = make(map[string]Variance, len(keep))
			for id, v := range row.Variance {
				if keep[id] {
					projected.Variance[id] = v
				}
			}
		}
		out.Rows = append(out.Rows, projected)
	}
	return out
}
