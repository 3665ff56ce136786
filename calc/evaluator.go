package calc

import "math/big"

// Evaluator computes the value of an expression while parsing it, without building a tree.
type Evaluator struct {
	grammar grammar[*big.Int]
}

type valueBuilder struct{}

var _ builder[*big.Int] = valueBuilder{}

func (valueBuilder) number(token Token) *big.Int {
	return token.Value
}

func (valueBuilder) binary(op Token, left, right *big.Int) (*big.Int, error) {
	return apply(op, left, right)
}

// NewEvaluator reads the first token from source.
func NewEvaluator(source TokenSource) (*Evaluator, error) {
	g, err := newGrammar[*big.Int](source, valueBuilder{})
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		grammar: g,
	}, nil
}

// Run evaluates one expression. Tokens left after it are reported as TrailingInputError.
func (e *Evaluator) Run() (*big.Int, error) {
	return e.grammar.complete()
}

func Evaluate(text string) (*big.Int, error) {
	evaluator, err := NewEvaluator(NewScanner(text))
	if err != nil {
		return nil, err
	}
	return evaluator.Run()
}
