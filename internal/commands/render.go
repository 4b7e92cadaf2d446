package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/statline-dev/statline/internal/config"
	"github.com/statline-dev/statline/internal/loader"
	"github.com/statline-dev/statline/internal/model"
	"github.com/statline-dev/statline/internal/period"
	"github.com/statline-dev/statline/internal/statement"
)

type renderOptions struct {
	period     string
	periodType string
	compare    string
	detail     string
	windows    int
}

func newRenderCommand() *cobra.Command {
	var repoDir string
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a financial statement as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runRender(cmd.OutOrStdout(), absDir, opts)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&opts.period, "period", "", "anchor month in YYYY-MM form (required)")
	_ = cmd.MarkFlagRequired("period")
	cmd.Flags().StringVar(&opts.periodType, "type", "month", "period type: month, quarter, year, ytd, ttm")
	cmd.Flags().StringVar(&opts.compare, "compare", "", "comparison baseline: none, prior-period, prior-year")
	cmd.Flags().StringVar(&opts.detail, "detail", "", "detail level: summary, medium, account")
	cmd.Flags().IntVar(&opts.windows, "windows", 1, "number of trailing windows")

	return cmd
}

func runRender(out io.Writer, repoRoot string, opts renderOptions) error {
	cfg, err := config.Load(filepath.Join(repoRoot, "statline.yaml"))
	if err != nil {
		return err
	}
	if opts.compare == "" {
		opts.compare = cfg.Report.Comparison
	}
	if opts.compare == "" {
		opts.compare = string(statement.CompareNone)
	}
	if opts.detail == "" {
		opts.detail = cfg.Report.DetailLevel
	}
	if opts.detail == "" {
		opts.detail = "account"
	}

	l := loader.New(time.Duration(cfg.Data.CacheTTLSeconds) * time.Second)
	ds, err := l.Load(filepath.Join(repoRoot, cfg.Data.Dir))
	if err != nil {
		return err
	}

	anchor, err := model.ParseMonth(opts.period)
	if err != nil {
		return fmt.Errorf("parsing period: %w", err)
	}
	detail, err := statement.ParseDetailLevel(opts.detail)
	if err != nil {
		return err
	}

	req := statement.Request{
		Spec:       period.Spec{Type: period.Type(opts.periodType), Anchor: anchor},
		Windows:    opts.windows,
		Comparison: statement.ComparisonMode(opts.compare),
		Detail:     detail,
	}
	if cfg.Report.MarkCurrentMonthPartial {
		now := time.Now()
		req.PartialThrough = model.NewMonth(now.Year(), now.Month())
	}

	svc := statement.NewService(ds.GL, ds.Chart, model.PresentationDefault())
	st, err := svc.Build(context.Background(), req)
	if err != nil {
		return err
	}

	return writeStatementCSV(out, st, statement.ComparisonMode(opts.compare))
}

// writeStatementCSV writes the statement grid as CSV. Header rows and
// undefined values render as empty cells; partial columns are marked in
// the header so readers know the window is incomplete.
func writeStatementCSV(out io.Writer, st *statement.Statement, mode statement.ComparisonMode) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	withVariance := mode == statement.ComparePriorPeriod || mode == statement.ComparePriorYear

	header := []string{"row", "label", "level", "type"}
	for _, col := range st.Columns {
		id := col.ID
		if col.Window.Partial || len(col.Gaps) > 0 {
			id += " (partial)"
		}
		header = append(header, id)
		if withVariance {
			header = append(header, id+" delta", id+" pct")
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range st.Rows {
		rec := []string{row.GroupID, row.Label, strconv.Itoa(row.Level), string(row.Type)}
		for _, col := range st.Columns {
			rec = append(rec, cellValue(row.Values, col.ID))
			if withVariance {
				rec = append(rec, varianceCells(row.Variance, col.ID)...)
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %s: %w", row.GroupID, err)
		}
	}
	return cw.Error()
}

func cellValue(values map[string]statement.Value, colID string) string {
	v, ok := values[colID]
	if !ok || !v.Defined() {
		return ""
	}
	return v.String()
}

func varianceCells(variances map[string]statement.Variance, colID string) []string {
	v, ok := variances[colID]
	if !ok {
		return []string{"", ""}
	}
	delta := ""
	if v.Delta.Defined() {
		delta = v.Delta.String()
	}
	pct := ""
	if v.Pct.Defined() {
		pct = v.Pct.String()
	}
	return []string{delta, pct}
}
