// Package parse provides monadic parser combinators over UTF-8 text.
//
// # Overview
//
// A [Parser] is a function that consumes a prefix of its input and either
// produces a value together with the remaining input, or fails:
//
//	type Parser[T any] func(input string) (value T, rest string, err error)
//
// The input is never mutated. Position is the remaining suffix, so going back
// to an earlier position is just reusing an earlier string. This is what makes
// ordered choice cheap: [OrElse] runs its second alternative on the same input
// it gave the first.
//
// # Building blocks
//
//	Pure(v)          succeed with v, consume nothing
//	Bind(p, f)       run p, feed its value to f, run the resulting parser
//	OrElse(p, q)     run p; if it fails, run q on the original input
//	Peek, Consume    look at / take one rune
//	Satisfy(pred)    take one rune matching pred
//	Many, Many1      zero-or-more, one-or-more
//	Token(p)         p followed by any whitespace
//
// # Sequencing
//
// A parser made of several dependent steps can be written as nested [Bind]
// calls:
//
//	Bind(left, func(a float64) Parser[float64] {
//	    return Bind(op, func(f func(a, b float64) float64) Parser[float64] {
//	        return Bind(right, func(b float64) Parser[float64] {
//	            return Pure(f(a, b))
//	        })
//	    })
//	})
//
// or linearly with [Do] and [Step]:
//
//	Do(func(s *Seq) Parser[float64] {
//	    a := Step(s, left)
//	    f := Step(s, op)
//	    b := Step(s, right)
//	    return Pure(f(a, b))
//	})
//
// Both forms behave identically: a failing step ends the sequence and later
// steps are never evaluated.
//
// # Failure
//
// Failures are ordinary errors. [ErrUnexpectedEOF] and [UnexpectedElementError]
// are recoverable: [OrElse] tries the next alternative and [Many] stops
// collecting. An error wrapped with [Abort] is not recovered by either and
// travels to the caller of [Run] unchanged.
package parse
