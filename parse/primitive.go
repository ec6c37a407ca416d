package parse

import "unicode/utf8"

var (
	// Peek returns the next rune without consuming it.
	Peek Parser[rune] = func(input string) (rune, string, error) {
		if len(input) == 0 {
			return 0, input, ErrUnexpectedEOF
		}
		r, _ := utf8.DecodeRuneInString(input)
		return r, input, nil
	}

	// Consume returns the next rune and advances past it.
	// Invalid UTF-8 is consumed one byte at a time as utf8.RuneError.
	Consume Parser[rune] = func(input string) (rune, string, error) {
		if len(input) == 0 {
			return 0, input, ErrUnexpectedEOF
		}
		r, size := utf8.DecodeRuneInString(input)
		return r, input[size:], nil
	}
)
