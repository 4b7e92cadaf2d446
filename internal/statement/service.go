package statement

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/statline-dev/statline/internal/gl"
	"github.com/statline-dev/statline/internal/hierarchy"
	"github.com/statline-dev/statline/internal/model"
	"github.com/statline-dev/statline/internal/period"
)

// Request describes one statement build: the anchor period, how many
// trailing windows to resolve (0 or 1 means a single period), the
// comparison baseline, and the projection settings.
type Request struct {
	Spec           period.Spec
	Windows        int
	Comparison     ComparisonMode
	Detail         DetailLevel
	View           ViewMode
	PartialThrough model.Month
}

// Column is one resolved reporting column of the output grid. Gaps lists
// window months with no GL activity at all, so presentation can mark the
// column incomplete; those months contributed zero, not an error.
type Column struct {
	ID       string
	Window   period.Window
	Baseline *period.Window
	Gaps     []model.Month
}

// Row is one computed output row. Header rows have nil Values.
type Row struct {
	GroupID  string
	Label    string
	Level    int
	Type     hierarchy.RowType
	Values   map[string]Value
	Variance map[string]Variance
}

// Statement is the final row/column grid handed to rendering. It carries
// raw decimals and structural metadata only; formatting belongs to the
// consumer.
type Statement struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// Service runs the full pipeline: resolve periods, aggregate accounts,
// evaluate the hierarchy, compute baselines and variance, project the
// grid. It is a pure, synchronous computation over its read-only inputs;
// building the same request twice yields identical results.
type Service struct {
	gl    *gl.Service
	chart *hierarchy.Chart
	signs model.SignConvention
}

// NewService creates a statement Service over loaded GL data and a
// validated hierarchy.
func NewService(glSvc *gl.Service, chart *hierarchy.Chart, signs model.SignConvention) *Service {
	return &Service{gl: glSvc, chart: chart, signs: signs}
}

// columnResult holds one column's evaluated values, computed in parallel.
type columnResult struct {
	column   Column
	values   map[string]Value
	baseline map[string]Value
}

// Build evaluates the statement for a request. Configuration errors in
// the hierarchy abort the build with nothing computed.
func (s *Service) Build(ctx context.Context, req Request) (*Statement, error) {
	if cfgErrs := hierarchy.Validate(s.chart); len(cfgErrs) > 0 {
		return nil, fmt.Errorf("%w: %s", hierarchy.ErrInvalidChart, cfgErrs[0].Error())
	}
	if !req.Spec.Type.Valid() {
		return nil, fmt.Errorf("invalid period type %q", req.Spec.Type)
	}
	if req.Comparison != "" && !req.Comparison.Valid() {
		return nil, fmt.Errorf("invalid comparison mode %q", req.Comparison)
	}

	bounds := period.Bounds{
		First:          s.gl.First(),
		Last:           s.gl.Last(),
		PartialThrough: req.PartialThrough,
	}

	var windows []period.Window
	if req.Windows > 1 {
		windows = period.Windows(req.Spec, req.Windows, bounds)
	} else {
		windows = []period.Window{period.Resolve(req.Spec, bounds)}
	}

	// Each window only reads shared immutable inputs and allocates its
	// own output, so columns evaluate in parallel.
	results := make([]columnResult, len(windows))
	g, _ := errgroup.WithContext(ctx)
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			res, err := s.buildColumn(w, req.Comparison, bounds)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := &Statement{Name: s.chart.Name}
	for _, res := range results {
		st.Columns = append(st.Columns, res.column)
	}
	s.assembleRows(st, results)

	view := req.View
	if view == "" {
		view = ViewSingle
		if req.Windows > 1 {
			view = ViewMatrix
		}
	}
	level := req.Detail
	if level == 0 {
		level = DetailAccount
	}
	return Project(st, level, view), nil
}

func (s *Service) buildColumn(w period.Window, mode ComparisonMode, bounds period.Bounds) (columnResult, error) {
	values, err := Evaluate(s.chart, w.Months, s.gl.Records(), s.gl, s.signs)
	if err != nil {
		return columnResult{}, err
	}

	res := columnResult{
		column: Column{ID: w.ID(), Window: w, Gaps: s.gaps(w)},
		values: values,
	}

	// Baselines re-run the resolve/aggregate/evaluate pipeline on the
	// shifted spec; the resolved month set differs, so primary values
	// are never reused under a different label.
	if baseSpec, ok := BaselineSpec(w.Spec, mode); ok {
		baseWindow := period.Resolve(baseSpec, bounds)
		baseValues, err := Evaluate(s.chart, baseWindow.Months, s.gl.Records(), s.gl, s.signs)
		if err != nil {
			return columnResult{}, err
		}
		res.column.Baseline = &baseWindow
		res.baseline = baseValues
	}
	return res, nil
}

// gaps returns window months with no GL record activity at all.
func (s *Service) gaps(w period.Window) []model.Month {
	var gaps []model.Month
	for _, m := range w.Months {
		if !s.gl.HasMonth(m) {
			gaps = append(gaps, m)
		}
	}
	return gaps
}

// assembleRows walks the tree in display order and attaches each
// column's values and variances.
func (s *Service) assembleRows(st *Statement, results []columnResult) {
	var walk func(nodes []*hierarchy.Node)
	walk = func(nodes []*hierarchy.Node) {
		for _, n := range nodes {
			row := Row{GroupID: n.ID, Label: n.Label, Level: n.Level, Type: n.Type}
			if n.Type != hierarchy.RowHeader {
				row.Values = make(map[string]Value, len(results))
				for _, res := range results {
					row.Values[res.column.ID] = res.values[n.ID]
					if res.baseline != nil {
						if row.Variance == nil {
							row.Variance = make(map[string]Variance, len(results))
						}
						row.Variance[res.column.ID] = VarianceOf(res.values[n.ID], res.baseline[n.ID])
					}
				}
			}
			st.Rows = append(st.Rows, row)
			walk(n.Children)
		}
	}
	walk(s.chart.Rows)
}
