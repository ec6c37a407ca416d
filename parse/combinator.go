package parse

// Satisfy consumes one rune and succeeds if pred holds for it.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return Bind(Consume, func(r rune) Parser[rune] {
		if pred(r) {
			return Pure(r)
		}
		return Fail[rune](&UnexpectedElementError{Element: r})
	})
}

// Char matches exactly r.
func Char(r rune) Parser[rune] {
	return Satisfy(func(x rune) bool { return x == r })
}

// String matches the runes of s in order and yields s. It fails at the first
// rune that does not match.
func String(s string) Parser[string] {
	p := Pure(s)
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		p = Then(Char(runes[i]), p)
	}
	return p
}

// Many applies p until it fails and collects the values. It never fails on
// its own account, only by propagating an aborting failure from p. A success
// of p that consumes nothing ends the repetition and is not collected, so
// Many terminates for every p.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		var values []T
		rest := input
		for {
			v, next, err := p(rest)
			if err != nil {
				if IsAbort(err) {
					return nil, input, err
				}
				return values, rest, nil
			}
			if len(next) >= len(rest) {
				return values, rest, nil
			}
			values = append(values, v)
			rest = next
		}
	}
}

// Many1 is like Many but requires at least one success of p.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(first T) Parser[[]T] {
		return Map(Many(p), func(more []T) []T {
			return append([]T{first}, more...)
		})
	})
}

// IsSpace reports whether r is one of ' ', '\t', '\n' or '\r'.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Whitespace skips any run of IsSpace runes, possibly empty.
var Whitespace = Many(Satisfy(IsSpace))

// Token runs p and then skips trailing whitespace, keeping p's value.
// Leading whitespace is not skipped.
func Token[T any](p Parser[T]) Parser[T] {
	return Bind(p, func(v T) Parser[T] {
		return Then(Whitespace, Pure(v))
	})
}

// Symbol matches s followed by optional whitespace.
func Symbol(s string) Parser[string] {
	return Token(String(s))
}
