package hierarchy

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Op is a binary arithmetic operator in a row formula.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// ExprKind discriminates formula AST nodes.
type ExprKind int

const (
	ExprRef ExprKind = iota
	ExprLiteral
	ExprBinary
)

// Expr is a parsed row formula: a reference to another row's computed
// value, a decimal literal, or a binary operation over two sub-expressions.
// Formulas are parsed once at tree-load time, never interpreted from
// strings at evaluation time.
type Expr struct {
	Kind    ExprKind
	Ref     string
	Literal decimal.Decimal
	Op      Op
	Left    *Expr
	Right   *Expr
}

// Refs returns every row id referenced by the expression, in source order.
func (e *Expr) Refs() []string {
	var refs []string
	e.collectRefs(&refs)
	return refs
}

func (e *Expr) collectRefs(out *[]string) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ExprRef:
		*out = append(*out, e.Ref)
	case ExprBinary:
		e.Left.collectRefs(out)
		e.Right.collectRefs(out)
	}
}

// String renders the expression in canonical parenthesized form.
func (e *Expr) String() string {
	switch e.Kind {
	case ExprRef:
		return e.Ref
	case ExprLiteral:
		return e.Literal.String()
	case ExprBinary:
		return fmt.Sprintf("(%s %c %s)", e.Left, e.Op, e.Right)
	}
	return ""
}

// ParseFormula parses a formula like "gross_profit / total_revenue" into
// an Expr. Supported: row id references, decimal literals, + - * /,
// unary minus, and parentheses.
func ParseFormula(src string) (*Expr, error) {
	p := &parser{src: src}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("parsing formula %q: %w", src, err)
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("parsing formula %q: unexpected %q at offset %d", src, p.src[p.pos], p.pos)
	}
	return expr, nil
}

type parser struct {
	src string
	pos int
}

// expr = term (("+" | "-") term)*
func (p *parser) parseExpr() (*Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return left, nil
		}
		op := p.src[p.pos]
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprBinary, Op: Op(op), Left: left, Right: right}
	}
}

// term = factor (("*" | "/") factor)*
func (p *parser) parseTerm() (*Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return left, nil
		}
		op := p.src[p.pos]
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprBinary, Op: Op(op), Left: left, Right: right}
	}
}

// factor = number | ident | "(" expr ")" | "-" factor
func (p *parser) parseFactor() (*Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of formula")
	}

	switch ch := p.src[p.pos]; {
	case ch == '(':
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil

	case ch == '-':
		p.pos++
		inner, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		zero := &Expr{Kind: ExprLiteral, Literal: decimal.Zero}
		return &Expr{Kind: ExprBinary, Op: OpSub, Left: zero, Right: inner}, nil

	case ch >= '0' && ch <= '9':
		return p.parseNumber()

	case isIdentStart(rune(ch)):
		return p.parseRef()

	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", ch, p.pos)
	}
}

func (p *parser) parseNumber() (*Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
		p.pos++
	}
	lit, err := decimal.NewFromString(p.src[start:p.pos])
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", p.src[start:p.pos], err)
	}
	return &Expr{Kind: ExprLiteral, Literal: lit}, nil
}

func (p *parser) parseRef() (*Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(rune(p.src[p.pos])) {
		p.pos++
	}
	return &Expr{Kind: ExprRef, Ref: p.src[start:p.pos]}, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && strings.ContainsRune(" \t", rune(p.src[p.pos])) {
		p.pos++
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
