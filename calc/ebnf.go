package calc

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSource string

// GrammarSource returns the EBNF description of the expression language.
func GrammarSource() string {
	return grammarSource
}

// LoadGrammar parses the EBNF description of the expression language.
func LoadGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// VerifyGrammar checks that every production is defined and reachable from start.
func VerifyGrammar(start string) error {
	g, err := LoadGrammar()
	if err != nil {
		return err
	}
	return ebnf.Verify(g, start)
}
