package parse

import (
	"errors"
	"reflect"
	"testing"
	"unicode"
)

var lawInputs = []string{"", "a", "ab", "1", "12x", " 7", "xyz", "héllo"}

func digit() Parser[rune] {
	return Satisfy(unicode.IsDigit)
}

type outcome[T any] struct {
	value T
	rest  string
	err   string
}

func runOutcome[T any](p Parser[T], input string) outcome[T] {
	v, rest, err := Run(p, input)
	o := outcome[T]{value: v, rest: rest}
	if err != nil {
		o.err = err.Error()
	}
	return o
}

func assertEquivalent[T any](t *testing.T, name string, p, q Parser[T]) {
	t.Helper()
	for _, input := range lawInputs {
		got, want := runOutcome(p, input), runOutcome(q, input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s on %q: got %+v, want %+v", name, input, got, want)
		}
	}
}

func TestPure(t *testing.T) {
	v, rest, err := Run(Pure(42), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 || rest != "abc" {
		t.Errorf("got (%v, %q), want (42, %q)", v, rest, "abc")
	}
}

func TestFail(t *testing.T) {
	sentinel := errors.New("boom")
	_, rest, err := Run(Fail[int](sentinel), "abc")
	if !errors.Is(err, sentinel) {
		t.Fatalf("got error %v, want %v", err, sentinel)
	}
	if rest != "abc" {
		t.Errorf("got rest %q, want %q", rest, "abc")
	}
}

func TestBindLeftIdentity(t *testing.T) {
	f := func(r rune) Parser[string] {
		return Map(Consume, func(x rune) string { return string([]rune{r, x}) })
	}
	assertEquivalent(t, "bind(pure(v), f) = f(v)", Bind(Pure('z'), f), f('z'))
}

func TestBindRightIdentity(t *testing.T) {
	parsers := map[string]Parser[rune]{
		"consume": Consume,
		"peek":    Peek,
		"digit":   digit(),
	}
	for name, p := range parsers {
		t.Run(name, func(t *testing.T) {
			assertEquivalent(t, "bind(p, pure) = p", Bind(p, Pure[rune]), p)
		})
	}
}

func TestBindAssociativity(t *testing.T) {
	p := Consume
	f := func(r rune) Parser[[]rune] {
		return Map(digit(), func(d rune) []rune { return []rune{r, d} })
	}
	g := func(rs []rune) Parser[string] {
		return Map(Consume, func(x rune) string { return string(append(rs, x)) })
	}

	left := Bind(Bind(p, f), g)
	right := Bind(p, func(x rune) Parser[string] { return Bind(f(x), g) })
	assertEquivalent(t, "associativity", left, right)
}

func TestBindSkipsContinuationOnFailure(t *testing.T) {
	called := false
	p := Bind(digit(), func(r rune) Parser[rune] {
		called = true
		return Pure(r)
	})
	if _, _, err := Run(p, "x"); err == nil {
		t.Fatal("expected failure")
	}
	if called {
		t.Error("continuation called after failure")
	}
}

func TestOrElse(t *testing.T) {
	ab := String("ab")
	ac := String("ac")

	tests := []struct {
		name     string
		input    string
		want     string
		wantRest string
		wantErr  bool
	}{
		{"first matches", "abz", "ab", "z", false},
		{"second after partial first", "acz", "ac", "z", false},
		{"both fail", "ad", "", "ad", true},
		{"empty input", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := Run(OrElse(ab, ac), tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || rest != tt.wantRest {
				t.Errorf("got (%q, %q), want (%q, %q)", got, rest, tt.want, tt.wantRest)
			}
		})
	}
}

func TestOrElseFallbackEqualsSecond(t *testing.T) {
	never := Fail[rune](ErrUnexpectedEOF)
	assertEquivalent(t, "or_else(fail, p) = p", OrElse(never, digit()), digit())

	// fails on every law input after consuming a rune
	partial := Then(Consume, Fail[rune](errors.New("no")))
	assertEquivalent(t, "or_else(partial, p) = p", OrElse(partial, Consume), Consume)
}

func TestOrElseReturnsSecondFailure(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	_, _, err := Run(OrElse(Fail[int](first), Fail[int](second)), "x")
	if !errors.Is(err, second) {
		t.Errorf("got %v, want %v", err, second)
	}
}

func TestOrElseDoesNotRecoverAbort(t *testing.T) {
	fatal := errors.New("fatal")
	called := false
	second := Bind(Pure(0), func(int) Parser[int] {
		called = true
		return Pure(1)
	})
	_, _, err := Run(OrElse(Fail[int](Abort(fatal)), second), "x")
	if !errors.Is(err, fatal) || !IsAbort(err) {
		t.Fatalf("got %v, want aborting %v", err, fatal)
	}
	if called {
		t.Error("second alternative ran after abort")
	}
}

func TestChoice(t *testing.T) {
	p := Choice(String("if"), String("in"), String("int"))
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"if", "if", false},
		{"int", "in", false},
		{"is", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _, err := Run(p, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, _, err := Run(Choice[int](), ""); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("empty choice on empty input: got %v, want %v", err, ErrUnexpectedEOF)
	}
	var unexpected *UnexpectedElementError
	if _, _, err := Run(Choice[int](), "q"); !errors.As(err, &unexpected) || unexpected.Element != 'q' {
		t.Errorf("empty choice on %q: got %v", "q", err)
	}
}

func TestLazy(t *testing.T) {
	// nested = "(" nested ")" | "x"
	var nested Parser[int]
	nested = OrElse(
		Do(func(s *Seq) Parser[int] {
			Step(s, Char('('))
			n := Step(s, Lazy(func() Parser[int] { return nested }))
			Step(s, Char(')'))
			return Pure(n + 1)
		}),
		Map(Char('x'), func(rune) int { return 0 }),
	)

	got, rest, err := Run(nested, "((x))!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 || rest != "!" {
		t.Errorf("got (%d, %q), want (2, %q)", got, rest, "!")
	}
}

func TestAbort(t *testing.T) {
	if Abort(nil) != nil {
		t.Error("Abort(nil) should be nil")
	}
	base := errors.New("base")
	once := Abort(base)
	if twice := Abort(once); twice != once {
		t.Error("Abort should not wrap an aborting error twice")
	}
	if once.Error() != "base" {
		t.Errorf("got message %q, want %q", once.Error(), "base")
	}
	if IsAbort(base) {
		t.Error("plain error reported as abort")
	}
}
