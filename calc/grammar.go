// Package calc evaluates arithmetic expressions with a grammar built from
// package parse.
//
// The grammar is evaluated eagerly: every operator application computes its
// result as soon as both operands are parsed. Both "+"/"-" and "*"/"/" are
// right-associative, so "10/2/5" is 10/(2/5).
package calc

import (
	"github.com/dhamidi/calc/parse"
	"github.com/tliron/commonlog"
)

// Production names, shared with grammar.ebnf. They are capitalized because
// ebnf treats lowercase names as lexical productions.
const (
	ProductionExpression = "Expression"
	ProductionExpr       = "Expr"
	ProductionTerm       = "Term"
	ProductionFactor     = "Factor"
	ProductionDigits     = "Digits"
)

// Grammar holds the productions of the expression language.
type Grammar struct {
	// Expression skips leading whitespace and parses an Expr.
	Expression parse.Parser[float64]
	Expr       parse.Parser[float64]
	Term       parse.Parser[float64]
	Factor     parse.Parser[float64]
	Digits     parse.Parser[float64]

	number NumberFunc
	log    commonlog.Logger
}

type Option func(*Grammar)

// WithNumberFunc replaces ParseDecimal as the literal conversion.
func WithNumberFunc(f NumberFunc) Option {
	return func(g *Grammar) {
		g.number = f
	}
}

// WithTrace logs every production attempt to log at debug level.
func WithTrace(log commonlog.Logger) Option {
	return func(g *Grammar) {
		g.log = log
	}
}

// New builds a grammar.
//
//	expr   := addop(term, expr) | term
//	term   := mulop(factor, term) | factor
//	factor := digits | "(" expr ")"
//	digits := token(many1(digit | "."))
func New(opts ...Option) *Grammar {
	g := &Grammar{number: ParseDecimal}
	for _, opt := range opts {
		opt(g)
	}

	expr := parse.Lazy(func() parse.Parser[float64] { return g.Expr })
	term := parse.Lazy(func() parse.Parser[float64] { return g.Term })

	g.Digits = g.production(ProductionDigits, parse.Bind(
		parse.Token(parse.Many1(parse.Satisfy(isDigitOrDot))),
		func(text []rune) parse.Parser[float64] {
			v, err := g.number(string(text))
			if err != nil {
				return parse.Fail[float64](parse.Abort(err))
			}
			return parse.Pure(v)
		},
	))

	parenthesized := parse.Do(func(s *parse.Seq) parse.Parser[float64] {
		parse.Step(s, parse.Symbol("("))
		n := parse.Step(s, expr)
		parse.Step(s, parse.Symbol(")"))
		return parse.Pure(n)
	})

	g.Factor = g.production(ProductionFactor, parse.OrElse(g.Digits, parenthesized))
	g.Term = g.production(ProductionTerm, parse.OrElse(Mulop(g.Factor, term), g.Factor))
	g.Expr = g.production(ProductionExpr, parse.OrElse(Addop(term, expr), term))
	g.Expression = g.production(ProductionExpression, parse.Then(parse.Whitespace, g.Expr))

	return g
}

func (g *Grammar) production(name string, p parse.Parser[float64]) parse.Parser[float64] {
	if g.log == nil {
		return p
	}
	return traced(g.log, name, p)
}

func isDigitOrDot(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}
