package pluralexpr

import "math"

type node interface {
	eval(n int64) int64
}

type varNode struct{}

func (varNode) eval(n int64) int64 { return n }

type numNode struct{ value int64 }

func (x numNode) eval(int64) int64 { return x.value }

type unaryOp uint8

const (
	opNot unaryOp = iota + 1
	opNeg
)

type unaryNode struct {
	op  unaryOp
	rhs node
}

func (x unaryNode) eval(n int64) int64 {
	v := x.rhs.eval(n)
	switch x.op {
	case opNot:
		return boolToInt(v == 0)
	case opNeg:
		return -v
	}
	return 0
}

type binaryOp uint8

const (
	opOr binaryOp = iota + 1
	opAnd
	opEq
	opNe
	opLt
	opLte
	opGt
	opGte
	opAdd
	opSub
	opMul
	opDiv
	opRem
)

type binaryNode struct {
	op       binaryOp
	lhs, rhs node
}

func (x binaryNode) eval(n int64) int64 {
	// Logical operators short-circuit, everything else is strict.
	switch x.op {
	case opOr:
		return boolToInt(x.lhs.eval(n) != 0 || x.rhs.eval(n) != 0)
	case opAnd:
		return boolToInt(x.lhs.eval(n) != 0 && x.rhs.eval(n) != 0)
	}
	l, r := x.lhs.eval(n), x.rhs.eval(n)
	switch x.op {
	case opEq:
		return boolToInt(l == r)
	case opNe:
		return boolToInt(l != r)
	case opLt:
		return boolToInt(l < r)
	case opLte:
		return boolToInt(l <= r)
	case opGt:
		return boolToInt(l > r)
	case opGte:
		return boolToInt(l >= r)
	case opAdd:
		return l + r
	case opSub:
		return l - r
	case opMul:
		return l * r
	case opDiv:
		switch {
		case r == 0:
			// Saturate towards the sign of the dividend.
			if l < 0 {
				return math.MinInt64
			}
			return math.MaxInt64
		case l == math.MinInt64 && r == -1:
			// Go traps on this overflow, wrapping yields the dividend.
			return math.MinInt64
		}
		return l / r
	case opRem:
		switch {
		case r == 0:
			return l
		case l == math.MinInt64 && r == -1:
			return 0
		}
		return l % r
	}
	return 0
}

type condNode struct {
	test, ifTrue, ifFalse node
}

func (x condNode) eval(n int64) int64 {
	if x.test.eval(n) != 0 {
		return x.ifTrue.eval(n)
	}
	return x.ifFalse.eval(n)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
