package parse

// Parser consumes a prefix of input. On success err is nil and rest is the
// unconsumed suffix of input. On failure value is the zero value and rest is
// input itself.
type Parser[T any] func(input string) (value T, rest string, err error)

// Run applies p to input.
func Run[T any](p Parser[T], input string) (T, string, error) {
	return p(input)
}

// Pure returns a parser that always succeeds with v without consuming input.
func Pure[T any](v T) Parser[T] {
	return func(input string) (T, string, error) {
		return v, input, nil
	}
}

// Fail returns a parser that always fails with err without consuming input.
func Fail[T any](err error) Parser[T] {
	return func(input string) (T, string, error) {
		var zero T
		return zero, input, err
	}
}

// Bind runs p and, if it succeeds, runs the parser f builds from p's value on
// the remaining input. f is not called when p fails.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) (B, string, error) {
		a, rest, err := p(input)
		if err != nil {
			var zero B
			return zero, input, err
		}
		b, rest, err := f(a)(rest)
		if err != nil {
			var zero B
			return zero, input, err
		}
		return b, rest, nil
	}
}

// OrElse runs first and, if it fails, runs second on the same input.
// Whatever first consumed before failing is discarded. When both fail the
// failure of second is returned. Aborting failures from first are returned
// without trying second.
func OrElse[T any](first, second Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		v, rest, err := first(input)
		if err == nil || IsAbort(err) {
			return v, rest, err
		}
		return second(input)
	}
}

// Choice tries each parser in order and returns the first success.
// With no parsers it fails with ErrUnexpectedEOF on empty input and an
// UnexpectedElementError otherwise.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Bind(Peek, func(r rune) Parser[T] {
			return Fail[T](&UnexpectedElementError{Element: r})
		})
	}
	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = OrElse(ps[i], p)
	}
	return p
}

// Then runs p, discards its value and continues with q.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// Map transforms the value of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Bind(p, func(a A) Parser[B] { return Pure(f(a)) })
}

// Lazy defers building a parser until it runs. Recursive grammars use it to
// refer to productions that are not assigned yet.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		return f()(input)
	}
}
