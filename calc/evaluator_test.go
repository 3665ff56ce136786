package calc

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"1 + 2", "3"},
		{"7 - 2", "5"},
		{"6 * 7", "42"},
		{"8 / 2", "4"},
		{"7 / 2", "3"},
		{"10 - 2 - 3", "5"},
		{"100 / 10 / 5", "2"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"7 + 3 * (10 / (12 / (3 + 1) - 1))", "22"},
		{"3 * 2 + 5 + 7 / 3", "13"},
		{"3*2+5+7/3", "13"},
		{" 3 * 2  +5+ 7 /3 ", "13"},
		{"((((42))))", "42"},
		{"2 - 5", "-3"},
		{"(0 - 7) / 2", "-3"},
		{"7 / (0 - 2)", "-3"},
		{"99999999999999999999 * 10", "999999999999999999990"},
		{"9223372036854775807 + 1", "9223372036854775808"},
		{"0 / 5", "0"},
		{"007 + 1", "8"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			res, err := Evaluate(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if res.String() != test.expected {
				t.Fatalf("got %s", res)
			}
		})
	}
}

func TestEvaluateBinaryOperators(t *testing.T) {
	for range 200 {
		a := rand.Int64N(1 << 40)
		b := rand.Int64N(1<<20) + 1
		for _, c := range []struct {
			op       string
			expected int64
		}{
			{"+", a + b},
			{"-", a - b},
			{"*", a * b},
			{"/", a / b},
		} {
			input := fmt.Sprintf("%d %s %d", a, c.op, b)
			res, err := Evaluate(input)
			if err != nil {
				t.Fatalf("%s: %v", input, err)
			}
			if !res.IsInt64() || res.Int64() != c.expected {
				t.Fatalf("%s: got %s, expected %d", input, res, c.expected)
			}
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		input  string
		target error
	}{
		{"3 +", ErrUnexpectedToken},
		{"3 # 2", ErrInvalidCharacter},
		{"(1 + 2", ErrUnexpectedToken},
		{"3 / 0", ErrDivisionByZero},
		{"1 2", ErrTrailingInput},
		{"", ErrUnexpectedToken},
		{"   ", ErrUnexpectedToken},
		{")", ErrUnexpectedToken},
		{"1 )", ErrTrailingInput},
		{"()", ErrUnexpectedToken},
		{"-1", ErrUnexpectedToken},
		{"+", ErrUnexpectedToken},
		{"1 * * 2", ErrUnexpectedToken},
		{"# 1", ErrInvalidCharacter},
		{"1.5", ErrInvalidCharacter},
		{"1 / (2 - 2)", ErrDivisionByZero},
		{"(1 + 2)(3)", ErrTrailingInput},
		{"1 +& 2", ErrInvalidCharacter},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			res, err := Evaluate(test.input)
			if !errors.Is(err, test.target) {
				t.Fatalf("got %v, %v", res, err)
			}
			if res != nil {
				t.Fatalf("partial result %v", res)
			}
		})
	}
}

func TestUnexpectedTokenDetails(t *testing.T) {
	_, err := Evaluate("(1 + 2")
	var e *UnexpectedTokenError
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if len(e.Expected) != 1 || e.Expected[0] != TokenRightParen {
		t.Fatalf("got %v", e.Expected)
	}
	if e.Found.Kind != TokenEOF {
		t.Fatalf("got %v", e.Found.Kind)
	}
	if e.Position() != 6 {
		t.Fatalf("got %d", e.Position())
	}

	_, err = Evaluate("3 +")
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if len(e.Expected) != 2 || e.Expected[0] != TokenInteger || e.Expected[1] != TokenLeftParen {
		t.Fatalf("got %v", e.Expected)
	}
	if e.Error() != "unexpected token: expected INTEGER or (, found EOF at 3" {
		t.Fatalf("got %q", e.Error())
	}
}

func TestTrailingInputDetails(t *testing.T) {
	_, err := Evaluate("1 2")
	var e *TrailingInputError
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Found.Kind != TokenInteger || e.Found.Pos != 2 {
		t.Fatalf("got %v", e.Found)
	}
}

func TestDivisionByZeroDetails(t *testing.T) {
	_, err := Evaluate("4 + 3 / 0")
	var e *DivisionByZeroError
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Pos != 6 {
		t.Fatalf("got %d", e.Pos)
	}
}

func TestEvaluatorFromSliceTokenSource(t *testing.T) {
	// 2 * (3 + 4), EOF supplied by the source
	source := NewSliceTokenSource([]Token{
		{Kind: TokenInteger, Value: big.NewInt(2)},
		{Kind: TokenStar},
		{Kind: TokenLeftParen},
		{Kind: TokenInteger, Value: big.NewInt(3)},
		{Kind: TokenPlus},
		{Kind: TokenInteger, Value: big.NewInt(4)},
		{Kind: TokenRightParen},
	})
	evaluator, err := NewEvaluator(source)
	if err != nil {
		t.Fatal(err)
	}
	res, err := evaluator.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Int64() != 14 {
		t.Fatalf("got %v", res)
	}
}

func TestEvaluatorIntegerWithoutValue(t *testing.T) {
	evaluator, err := NewEvaluator(NewSliceTokenSource([]Token{
		{Kind: TokenInteger, Value: big.NewInt(1)},
		{Kind: TokenPlus, Pos: 1},
		{Kind: TokenInteger, Pos: 2},
	}))
	if err != nil {
		t.Fatal(err)
	}
	res, err := evaluator.Run()
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("got %v, %v", res, err)
	}
	if res != nil {
		t.Fatalf("got %v", res)
	}
}

func TestEvaluateTokenized(t *testing.T) {
	tokens, err := Tokenize("7 + 3 * (10 / (12 / (3 + 1) - 1))")
	if err != nil {
		t.Fatal(err)
	}
	evaluator, err := NewEvaluator(NewSliceTokenSource(tokens))
	if err != nil {
		t.Fatal(err)
	}
	res, err := evaluator.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Int64() != 22 {
		t.Fatalf("got %v", res)
	}
}

type failingSource struct {
	tokens []Token
	err    error
}

func (f *failingSource) NextToken() (Token, error) {
	if len(f.tokens) == 0 {
		return Token{}, f.err
	}
	token := f.tokens[0]
	f.tokens = f.tokens[1:]
	return token, nil
}

func TestEvaluatorSourceError(t *testing.T) {
	sourceErr := errors.New("boom")

	_, err := NewEvaluator(&failingSource{err: sourceErr})
	if !errors.Is(err, sourceErr) {
		t.Fatalf("got %v", err)
	}

	evaluator, err := NewEvaluator(&failingSource{
		tokens: []Token{
			{Kind: TokenInteger, Value: big.NewInt(1)},
		},
		err: sourceErr,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Run()
	if !errors.Is(err, sourceErr) {
		t.Fatalf("got %v", err)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	for b.Loop() {
		if _, err := Evaluate("7 + 3 * (10 / (12 / (3 + 1) - 1))"); err != nil {
			b.Fatal(err)
		}
	}
}
