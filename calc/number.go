package calc

import (
	"fmt"
	"strconv"
)

// NumberFunc converts the text of a numeric literal to its value.
type NumberFunc func(text string) (float64, error)

// NumberError reports literal text that is not a valid decimal number.
type NumberError struct {
	Text string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Text)
}

// ParseDecimal accepts digits with at most one decimal point and at least one
// digit: "12", "1.5", "3." and ".5".
func ParseDecimal(text string) (float64, error) {
	digits, dots := 0, 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return 0, &NumberError{Text: text}
		}
	}
	if digits == 0 || dots > 1 {
		return 0, &NumberError{Text: text}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &NumberError{Text: text}
	}
	return v, nil
}

// Format renders v in the shortest form that parses back to the same value.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
