package hierarchy

import "fmt"

// RowType classifies a statement row. The evaluator handles every value
// exhaustively; unknown types are rejected at load time.
type RowType string

const (
	RowHeader   RowType = "header"
	RowDetail   RowType = "detail"
	RowSubtotal RowType = "subtotal"
	RowRatio    RowType = "ratio"
)

// AccountRange is an inclusive numeric range of account numbers.
type AccountRange struct {
	Low  string
	High string
}

// Node is one row of an account-group tree. Trees are loaded once from
// configuration and never mutated by the engine.
type Node struct {
	ID       string
	Label    string
	Level    int // depth in the tree, root rows are level 1
	Type     RowType
	Accounts []string
	Range    *AccountRange
	Formula  *Expr
	Children []*Node
}

// Chart is a validated account-group tree with lookup and traversal
// indexes built at load time.
type Chart struct {
	Name string
	Rows []*Node

	byID      map[string]*Node
	postOrder []*Node
}

// NewChart builds a Chart from root rows, assigning levels and traversal
// order, then validating. The chart is always returned so callers can
// inspect it, but any ConfigError means it must not be evaluated — a
// broken hierarchy cannot be trusted for any row.
func NewChart(name string, rows []*Node) (*Chart, []ConfigError) {
	c := &Chart{
		Name: name,
		Rows: rows,
		byID: make(map[string]*Node),
	}
	for _, row := range rows {
		c.index(row, 1)
	}
	return c, Validate(c)
}

func (c *Chart) index(n *Node, level int) {
	n.Level = level
	if _, dup := c.byID[n.ID]; !dup {
		c.byID[n.ID] = n
	}
	for _, child := range n.Children {
		c.index(child, level+1)
	}
	c.postOrder = append(c.postOrder, n)
}

// Node returns the row with the given id.
func (c *Chart) Node(id string) (*Node, bool) {
	n, ok := c.byID[id]
	return n, ok
}

// PostOrder returns all rows in bottom-up evaluation order: children
// strictly before their parents.
func (c *Chart) PostOrder() []*Node {
	return c.postOrder
}

// ConfigError describes one configuration problem in an account-group
// tree. Any ConfigError makes the whole tree unusable.
type ConfigError struct {
	NodeID string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("hierarchy row %q: %s", e.NodeID, e.Reason)
}
