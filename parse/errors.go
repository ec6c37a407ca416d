package parse

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned by the primitive parsers when the input is exhausted.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// UnexpectedElementError reports a rune that did not satisfy a predicate.
type UnexpectedElementError struct {
	Element rune
}

func (e *UnexpectedElementError) Error() string {
	return fmt.Sprintf("unexpected %q", e.Element)
}

// AbortError marks a failure that ordered choice and repetition must not
// recover from.
type AbortError struct {
	Err error
}

func (e *AbortError) Error() string {
	return e.Err.Error()
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// Abort wraps err so that it propagates through OrElse and Many.
// Abort(nil) returns nil, and an already aborting error is returned as is.
func Abort(err error) error {
	if err == nil {
		return nil
	}
	if IsAbort(err) {
		return err
	}
	return &AbortError{Err: err}
}

// IsAbort reports whether err, or any error it wraps, is an AbortError.
func IsAbort(err error) bool {
	var abort *AbortError
	return errors.As(err, &abort)
}
