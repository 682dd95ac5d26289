package parser

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Bindings maps single-letter variable names to values.
type Bindings map[rune]float64

// Expr is a parsed equation. A tree is immutable after parsing, so it can be
// evaluated any number of times with different bindings.
type Expr interface {
	// Eval computes the expression's value. Variables resolve against local
	// first, falling back to static; splitting the two lets callers reuse a
	// static map across many evaluations and rebuild only the small local
	// one. An unbound variable is a configuration error and panics; recover
	// it with RecoverError at the outermost boundary.
	Eval(local, static Bindings) float64

	fmt.Stringer
}

// evalError wraps panics raised during evaluation so RecoverError can tell
// them apart from genuine crashes.
type evalError struct {
	err error
}

func evalFailf(format string, args ...interface{}) {
	panic(evalError{err: errors.Errorf(format, args...)})
}

// RecoverError converts a panic raised by Eval into an error. Call it on the
// result of recover() in a deferred function at the public API; panics that
// did not originate in evaluation are re-raised.
func RecoverError(r interface{}) error {
	if r == nil {
		return nil
	}
	if e, ok := r.(evalError); ok {
		return e.err
	}
	panic(r)
}

type number float64

func (n number) Eval(_, _ Bindings) float64 { return float64(n) }
func (n number) String() string             { return fmt.Sprintf("%g", float64(n)) }

type variable rune

func (v variable) Eval(local, static Bindings) float64 {
	if x, ok := local[rune(v)]; ok {
		return x
	}
	if x, ok := static[rune(v)]; ok {
		return x
	}
	evalFailf("no binding for %c", rune(v))
	return 0
}

func (v variable) String() string { return string(rune(v)) }

type negate struct {
	operand Expr
}

func (n negate) Eval(local, static Bindings) float64 {
	return -n.operand.Eval(local, static)
}

func (n negate) String() string { return fmt.Sprintf("(-%s)", n.operand) }

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opExp
)

func (op binOp) String() string {
	return [...]string{"+", "-", "*", "/", "^"}[op]
}

type binary struct {
	op  binOp
	lhs Expr
	rhs Expr
}

func (b binary) Eval(local, static Bindings) float64 {
	lhs := b.lhs.Eval(local, static)
	rhs := b.rhs.Eval(local, static)
	switch b.op {
	case opAdd:
		return lhs + rhs
	case opSub:
		return lhs - rhs
	case opMul:
		return lhs * rhs
	case opDiv:
		return lhs / rhs
	case opExp:
		return math.Pow(lhs, rhs)
	}
	panic("unreachable")
}

func (b binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.lhs, b.op, b.rhs)
}

// functions are the named unary functions an equation may call.
var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"asinh": math.Asinh,
	"acosh": math.Acosh,
	"atanh": math.Atanh,
}

type call struct {
	name string
	fn   func(float64) float64
	arg  Expr
}

func (c call) Eval(local, static Bindings) float64 {
	return c.fn(c.arg.Eval(local, static))
}

func (c call) String() string { return fmt.Sprintf("%s(%s)", c.name, c.arg) }
