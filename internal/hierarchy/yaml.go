package hierarchy

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlChart is the on-disk shape of statement.yaml.
type yamlChart struct {
	Name string     `yaml:"name"`
	Rows []yamlNode `yaml:"rows"`
}

type yamlNode struct {
	ID       string     `yaml:"id"`
	Label    string     `yaml:"label"`
	Type     string     `yaml:"type"`
	Accounts []string   `yaml:"accounts,omitempty"`
	Range    *yamlRange `yaml:"range,omitempty"`
	Formula  string     `yaml:"formula,omitempty"`
	Rows     []yamlNode `yaml:"rows,omitempty"`
}

type yamlRange struct {
	Low  string `yaml:"low"`
	High string `yaml:"high"`
}

// ErrInvalidChart wraps configuration errors found while loading a chart.
var ErrInvalidChart = errors.New("invalid statement hierarchy")

// Load reads and validates a statement.yaml file. Formulas are parsed
// here, once; evaluation never sees formula strings.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hierarchy: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Chart from YAML bytes.
func Parse(data []byte) (*Chart, error) {
	var raw yamlChart
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing hierarchy YAML: %w", err)
	}

	rows := make([]*Node, 0, len(raw.Rows))
	for _, yn := range raw.Rows {
		n, err := buildNode(yn)
		if err != nil {
			return nil, err
		}
		rows = append(rows, n)
	}

	chart, cfgErrs := NewChart(raw.Name, rows)
	if len(cfgErrs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidChart, joinErrors(cfgErrs))
	}
	return chart, nil
}

// Save writes a Chart back to a statement.yaml file.
func Save(path string, c *Chart) error {
	raw := yamlChart{Name: c.Name, Rows: make([]yamlNode, 0, len(c.Rows))}
	for _, n := range c.Rows {
		raw.Rows = append(raw.Rows, dumpNode(n))
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshaling hierarchy: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing hierarchy: %w", err)
	}
	return nil
}

func buildNode(yn yamlNode) (*Node, error) {
	n := &Node{
		ID:       yn.ID,
		Label:    yn.Label,
		Type:     RowType(yn.Type),
		Accounts: yn.Accounts,
	}
	if yn.Range != nil {
		n.Range = &AccountRange{Low: yn.Range.Low, High: yn.Range.High}
	}
	if yn.Formula != "" {
		expr, err := ParseFormula(yn.Formula)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", yn.ID, err)
		}
		n.Formula = expr
	}
	for _, child := range yn.Rows {
		cn, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, cn)
	}
	return n, nil
}

func dumpNode(n *Node) yamlNode {
	yn := yamlNode{
		ID:       n.ID,
		Label:    n.Label,
		Type:     string(n.Type),
		Accounts: n.Accounts,
	}
	if n.Range != nil {
		yn.Range = &yamlRange{Low: n.Range.Low, High: n.Range.High}
	}
	if n.Formula != nil {
		yn.Formula = n.Formula.String()
	}
	for _, child := range n.Children {
		yn.Rows = append(yn.Rows, dumpNode(child))
	}
	return yn
}

func joinErrors(errs []ConfigError) string {
	s := ""
	for i, e := range errs {
		if i > 0 {
			s += "; "
		}
		s += e.Error()
	}
	return s
}
