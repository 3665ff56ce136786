package calc

import "fmt"

// builder decides what the grammar produces for literals and binary operations.
type builder[T any] interface {
	number(token Token) T
	binary(op Token, left, right T) (T, error)
}

// grammar is an LL(1) recursive descent over
//
//	expression := term ( ('+' | '-') term )*
//	term       := factor ( ('*' | '/') factor )*
//	factor     := INTEGER | '(' expression ')'
//
// holding exactly one token of lookahead.
type grammar[T any] struct {
	source  TokenSource
	current Token
	build   builder[T]
}

func newGrammar[T any](source TokenSource, build builder[T]) (grammar[T], error) {
	current, err := source.NextToken()
	if err != nil {
		return grammar[T]{}, err
	}
	return grammar[T]{
		source:  source,
		current: current,
		build:   build,
	}, nil
}

// consume is the only place the token stream advances.
func (g *grammar[T]) consume(kind TokenKind) error {
	if g.current.Kind != kind {
		return &UnexpectedTokenError{
			Expected: []TokenKind{kind},
			Found:    g.current,
		}
	}
	next, err := g.source.NextToken()
	if err != nil {
		return err
	}
	g.current = next
	return nil
}

func (g *grammar[T]) expression() (ret T, err error) {
	ret, err = g.term()
	if err != nil {
		return
	}
	for g.current.Kind == TokenPlus || g.current.Kind == TokenMinus {
		op := g.current
		if err = g.consume(op.Kind); err != nil {
			return
		}
		var rhs T
		rhs, err = g.term()
		if err != nil {
			return
		}
		ret, err = g.build.binary(op, ret, rhs)
		if err != nil {
			return
		}
	}
	return
}

func (g *grammar[T]) term() (ret T, err error) {
	ret, err = g.factor()
	if err != nil {
		return
	}
	for g.current.Kind == TokenStar || g.current.Kind == TokenSlash {
		op := g.current
		if err = g.consume(op.Kind); err != nil {
			return
		}
		var rhs T
		rhs, err = g.factor()
		if err != nil {
			return
		}
		ret, err = g.build.binary(op, ret, rhs)
		if err != nil {
			return
		}
	}
	return
}

func (g *grammar[T]) factor() (ret T, err error) {
	token := g.current
	switch token.Kind {

	case TokenInteger:
		// only hand-built token sources can produce this
		if token.Value == nil {
			err = fmt.Errorf("%w at %d", ErrMissingValue, token.Pos)
			return
		}
		if err = g.consume(TokenInteger); err != nil {
			return
		}
		return g.build.number(token), nil

	case TokenLeftParen:
		if err = g.consume(TokenLeftParen); err != nil {
			return
		}
		ret, err = g.expression()
		if err != nil {
			return
		}
		if err = g.consume(TokenRightParen); err != nil {
			return
		}
		return

	}

	err = &UnexpectedTokenError{
		Expected: []TokenKind{TokenInteger, TokenLeftParen},
		Found:    token,
	}
	return
}

// complete parses one expression and requires the input to end there.
// No partial result is returned on error.
func (g *grammar[T]) complete() (ret T, err error) {
	var zero T
	ret, err = g.expression()
	if err != nil {
		return zero, err
	}
	if g.current.Kind != TokenEOF {
		return zero, &TrailingInputError{
			Found: g.current,
		}
	}
	return
}
