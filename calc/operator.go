package calc

import (
	"errors"

	"github.com/dhamidi/calc/parse"
)

// ErrDivisionByZero is returned when the right operand of "/" is zero.
var ErrDivisionByZero = errors.New("division by zero")

// BinaryOp combines two operands.
type BinaryOp func(a, b float64) (float64, error)

// binary parses sym and yields op.
func binary(sym string, op BinaryOp) parse.Parser[BinaryOp] {
	return parse.Then(parse.Symbol(sym), parse.Pure(op))
}

// Operator symbols. Each consumes its symbol and trailing whitespace.
var (
	Plus   = binary("+", func(a, b float64) (float64, error) { return a + b, nil })
	Minus  = binary("-", func(a, b float64) (float64, error) { return a - b, nil })
	Times  = binary("*", func(a, b float64) (float64, error) { return a * b, nil })
	Divide = binary("/", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	})
)

// Operator parses left, then op, then right, and applies the operator to the
// two operands. An evaluation error aborts the whole parse.
func Operator(op parse.Parser[BinaryOp], left, right parse.Parser[float64]) parse.Parser[float64] {
	return parse.Do(func(s *parse.Seq) parse.Parser[float64] {
		a := parse.Step(s, left)
		f := parse.Step(s, op)
		b := parse.Step(s, right)

		v, err := f(a, b)
		if err != nil {
			return parse.Fail[float64](parse.Abort(err))
		}
		return parse.Pure(v)
	})
}

// Addop is an addition or subtraction of left and right.
func Addop(left, right parse.Parser[float64]) parse.Parser[float64] {
	return Operator(parse.OrElse(Plus, Minus), left, right)
}

// Mulop is a multiplication or division of left and right.
func Mulop(left, right parse.Parser[float64]) parse.Parser[float64] {
	return Operator(parse.OrElse(Times, Divide), left, right)
}
