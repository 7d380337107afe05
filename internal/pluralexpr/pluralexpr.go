// Package pluralexpr implements the plural selector expressions used by
// the gettext Plural-Forms catalogue header, such as:
//
//	n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2
//
// The grammar is a C-like integer expression over the single variable n.
// Precedence, lowest binding first: conditional (right-associative),
// logical or ("||", alias "or"), logical and, equality, relational,
// additive, multiplicative, unary, primary. Comparisons and logical
// operators yield 0 or 1, any non-zero value is truthy. Arithmetic wraps
// on overflow; division by zero saturates to the extreme of the
// dividend's sign and remainder by zero returns the dividend, so that
// evaluation is total over all int64 inputs.
package pluralexpr

import (
	"fmt"
	"strings"
)

// ParseError describes a rejected expression. Offset is the byte offset
// of the offending token within the trimmed source, Got its text (empty
// at end of input) and Expected the accepted alternatives.
type ParseError struct {
	Offset   int
	Got      string
	Expected []string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Got == "" {
		fmt.Fprintf(&b, "unexpected end of expression at offset %d", e.Offset)
	} else {
		fmt.Fprintf(&b, "unexpected %q at offset %d", e.Got, e.Offset)
	}
	if len(e.Expected) > 0 {
		b.WriteString(", expected ")
		for i, x := range e.Expected {
			if i > 0 {
				if i == len(e.Expected)-1 {
					b.WriteString(" or ")
				} else {
					b.WriteString(", ")
				}
			}
			fmt.Fprintf(&b, "%q", x)
		}
	}
	return b.String()
}

// Formula is a compiled plural selector expression.
// The zero value is the identity formula.
type Formula struct {
	root node
}

// Parse compiles src. Surrounding whitespace is ignored and an empty
// source yields the identity formula returning n unchanged.
func Parse(src string) (Formula, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Formula{root: varNode{}}, nil
	}
	tokens, err := lex(src)
	if err != nil {
		return Formula{}, err
	}
	p := parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return Formula{}, err
	}
	if t := p.peek(); t.kind != tokenEOF {
		return Formula{}, unexpected(t, "operator", "end of expression")
	}
	return Formula{root: root}, nil
}

// Eval evaluates the formula for quantity n.
func (f Formula) Eval(n int64) int64 {
	if f.root == nil {
		return n
	}
	return f.root.eval(n)
}

// Index evaluates the formula and reports the result as a plural form
// index. Negative results select no form.
func (f Formula) Index(n int64) (int, bool) {
	v := f.Eval(n)
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

type parser struct {
	tokens []token
	index  int
}

func (p *parser) peek() token { return p.tokens[p.index] }

func (p *parser) next() token {
	t := p.tokens[p.index]
	if t.kind != tokenEOF {
		p.index++
	}
	return t
}

func unexpected(t token, expected ...string) *ParseError {
	return &ParseError{Offset: t.offset, Got: t.text, Expected: expected}
}

func (p *parser) parseExpr() (node, error) { return p.parseConditional() }

// conditional is right-associative: a ? b : c ? d : e
// parses as a ? b : (c ? d : e).
func (p *parser) parseConditional() (node, error) {
	test, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenQuestion {
		return test, nil
	}
	p.next()
	ifTrue, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if t := p.next(); t.kind != tokenColon {
		return nil, unexpected(t, ":")
	}
	ifFalse, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return condNode{test: test, ifTrue: ifTrue, ifFalse: ifFalse}, nil
}

func (p *parser) parseOr() (node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenOr {
		p.next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: opOr, lhs: lhs, rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (node, error) {
	lhs, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenAnd {
		p.next()
		rhs, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: opAnd, lhs: lhs, rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseEquality() (node, error) {
	lhs, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.peek().kind {
		case tokenEq:
			op = opEq
		case tokenNe:
			op = opNe
		default:
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseRelational() (node, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.peek().kind {
		case tokenLt:
			op = opLt
		case tokenLte:
			op = opLte
		case tokenGt:
			op = opGt
		case tokenGte:
			op = opGte
		default:
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseAdditive() (node, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.peek().kind {
		case tokenPlus:
			op = opAdd
		case tokenMinus:
			op = opSub
		default:
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseMultiplicative() (node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.peek().kind {
		case tokenStar:
			op = opMul
		case tokenSlash:
			op = opDiv
		case tokenPercent:
			op = opRem
		default:
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseUnary() (node, error) {
	var op unaryOp
	switch p.peek().kind {
	case tokenNot:
		op = opNot
	case tokenMinus:
		op = opNeg
	default:
		return p.parsePrimary()
	}
	p.next()
	rhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return unaryNode{op: op, rhs: rhs}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch t := p.next(); t.kind {
	case tokenVar:
		return varNode{}, nil
	case tokenNumber:
		return numNode{value: t.value}, nil
	case tokenLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if t := p.next(); t.kind != tokenRParen {
			return nil, unexpected(t, ")")
		}
		return inner, nil
	default:
		return nil, unexpected(t, "n", "integer", "(", "!", "-")
	}
}
