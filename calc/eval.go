package calc

import (
	"errors"
	"fmt"

	"github.com/dhamidi/calc/parse"
)

// TrailingInputError is returned by Eval when an expression was parsed but
// input remains after it.
type TrailingInputError struct {
	Value float64
	Rest  string
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("extra input at: %q", e.Rest)
}

// Eval parses all of input as an expression and returns its value.
// Evaluation errors such as *NumberError and ErrDivisionByZero are returned
// unwrapped.
func (g *Grammar) Eval(input string) (float64, error) {
	v, rest, err := parse.Run(g.Expression, input)
	if err != nil {
		var abort *parse.AbortError
		if errors.As(err, &abort) {
			return 0, abort.Err
		}
		return 0, err
	}
	if rest != "" {
		return 0, &TrailingInputError{Value: v, Rest: rest}
	}
	return v, nil
}

var std = New()

// Eval evaluates input with the default grammar.
func Eval(input string) (float64, error) {
	return std.Eval(input)
}
