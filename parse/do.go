package parse

// Seq threads the remaining input through the steps of a Do block.
// A Seq is only valid inside the body it was passed to.
type Seq struct {
	input string
}

// stepFailure carries a failed step's error to the enclosing Do.
type stepFailure struct {
	seq *Seq
	err error
}

// Step runs p on the remaining input of s and returns its value. If p fails
// the rest of the body is skipped and the enclosing Do fails with p's error.
func Step[T any](s *Seq, p Parser[T]) T {
	v, rest, err := p(s.input)
	if err != nil {
		panic(stepFailure{seq: s, err: err})
	}
	s.input = rest
	return v
}

// Do builds a parser from a body written as a list of steps. The body calls
// Step for each sub-parser in order and returns the final parser, usually
// Pure of a value computed from the steps, which is run on the input left
// after the last step.
func Do[T any](body func(s *Seq) Parser[T]) Parser[T] {
	return func(input string) (value T, rest string, err error) {
		s := &Seq{input: input}
		defer func() {
			if x := recover(); x != nil {
				f, ok := x.(stepFailure)
				if !ok || f.seq != s {
					panic(x)
				}
				var zero T
				value, rest, err = zero, input, f.err
			}
		}()

		final := body(s)
		value, rest, err = final(s.input)
		if err != nil {
			var zero T
			return zero, input, err
		}
		return value, rest, nil
	}
}
