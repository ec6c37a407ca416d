package calc

import (
	"testing"
	"unicode"
)

func TestVerifyGrammar(t *testing.T) {
	if err := VerifyGrammar(ProductionExpression); err != nil {
		t.Fatalf("verify grammar: %v", err)
	}
}

func TestVerifyGrammarUnknownStart(t *testing.T) {
	if err := VerifyGrammar("statement"); err == nil {
		t.Fatal("expected error for unknown start production")
	}
}

func TestGrammarDescribesProductions(t *testing.T) {
	g, err := LoadGrammar()
	if err != nil {
		t.Fatalf("load grammar: %v", err)
	}

	for _, name := range []string{
		ProductionExpression,
		ProductionExpr,
		ProductionTerm,
		ProductionFactor,
		ProductionDigits,
	} {
		if g[name] == nil {
			t.Errorf("grammar.ebnf has no production %q", name)
		}
	}
}

func TestGrammarLexicalProductions(t *testing.T) {
	g, err := LoadGrammar()
	if err != nil {
		t.Fatalf("load grammar: %v", err)
	}

	for name := range g {
		lexical := !unicode.IsUpper([]rune(name)[0])
		switch name {
		case "digit", "space":
			if !lexical {
				t.Errorf("%s should be lexical", name)
			}
		default:
			if lexical {
				t.Errorf("%s should not be lexical", name)
			}
		}
	}
	for _, name := range []string{"digit", "space"} {
		if g[name] == nil {
			t.Errorf("grammar.ebnf has no production %q", name)
		}
	}
}
