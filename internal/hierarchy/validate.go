package hierarchy

import (
	"fmt"
	"strconv"
)

// Validate checks an account-group tree for configuration errors:
// duplicate or empty row ids, unknown row types, Detail rows with no
// account source, malformed ranges, references to undefined or
// not-yet-evaluated rows, and cyclic formula references. An empty result
// means the tree is safe to evaluate.
func Validate(c *Chart) []ConfigError {
	var errs []ConfigError

	// Duplicate ids first: reference checks below assume ids are unique.
	seen := make(map[string]bool)
	for _, n := range c.postOrder {
		if n.ID == "" {
			errs = append(errs, ConfigError{NodeID: n.ID, Reason: "empty row id"})
			continue
		}
		if seen[n.ID] {
			errs = append(errs, ConfigError{NodeID: n.ID, Reason: "duplicate row id"})
		}
		seen[n.ID] = true
	}

	evalPos := make(map[string]int, len(c.postOrder))
	for i, n := range c.postOrder {
		evalPos[n.ID] = i
	}

	for i, n := range c.postOrder {
		switch n.Type {
		case RowHeader:
			if len(n.Accounts) > 0 || n.Range != nil || n.Formula != nil {
				errs = append(errs, ConfigError{NodeID: n.ID, Reason: "header rows are structural and cannot carry accounts or a formula"})
			}
		case RowDetail:
			if len(n.Accounts) == 0 && n.Range == nil && n.Formula == nil {
				errs = append(errs, ConfigError{NodeID: n.ID, Reason: "detail row needs an account list, a range, or a formula"})
			}
		case RowSubtotal:
			// Children or an explicit formula; an empty subtotal sums to zero.
		case RowRatio:
			if n.Formula == nil {
				errs = append(errs, ConfigError{NodeID: n.ID, Reason: "ratio row requires a formula"})
			}
		default:
			errs = append(errs, ConfigError{NodeID: n.ID, Reason: fmt.Sprintf("unknown row type %q", n.Type)})
		}

		if n.Range != nil {
			errs = append(errs, validateRange(n)...)
		}

		if n.Formula == nil {
			continue
		}
		for _, ref := range n.Formula.Refs() {
			pos, ok := evalPos[ref]
			switch {
			case !ok:
				errs = append(errs, ConfigError{NodeID: n.ID, Reason: fmt.Sprintf("formula references undefined row %q", ref)})
			case pos >= i:
				errs = append(errs, ConfigError{NodeID: n.ID, Reason: fmt.Sprintf("formula references %q, which is not evaluated before this row", ref)})
			}
		}
	}

	errs = append(errs, detectCycles(c)...)
	return errs
}

func validateRange(n *Node) []ConfigError {
	low, err := strconv.Atoi(n.Range.Low)
	if err != nil {
		return []ConfigError{{NodeID: n.ID, Reason: fmt.Sprintf("range low %q is not numeric", n.Range.Low)}}
	}
	high, err := strconv.Atoi(n.Range.High)
	if err != nil {
		return []ConfigError{{NodeID: n.ID, Reason: fmt.Sprintf("range high %q is not numeric", n.Range.High)}}
	}
	if low > high {
		return []ConfigError{{NodeID: n.ID, Reason: fmt.Sprintf("range low %s exceeds high %s", n.Range.Low, n.Range.High)}}
	}
	return nil
}

// detectCycles walks the formula reference graph with a visiting set so a
// row that reaches itself transitively is reported before any evaluation.
func detectCycles(c *Chart) []ConfigError {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(c.byID))

	var errs []ConfigError
	var visit func(id string)
	visit = func(id string) {
		switch state[id] {
		case visiting:
			errs = append(errs, ConfigError{NodeID: id, Reason: "cyclic formula reference"})
			return
		case done:
			return
		}
		state[id] = visiting
		if n, ok := c.byID[id]; ok && n.Formula != nil {
			for _, ref := range n.Formula.Refs() {
				if _, known := c.byID[ref]; known {
					visit(ref)
				}
			}
		}
		state[id] = done
	}

	for _, n := range c.postOrder {
		visit(n.ID)
	}
	return errs
}
