package calc

import (
	"fmt"
	"math/big"
)

// apply computes left op right. Division truncates toward zero.
func apply(op Token, left, right *big.Int) (*big.Int, error) {
	switch op.Kind {
	case TokenPlus:
		return new(big.Int).Add(left, right), nil
	case TokenMinus:
		return new(big.Int).Sub(left, right), nil
	case TokenStar:
		return new(big.Int).Mul(left, right), nil
	case TokenSlash:
		if right.Sign() == 0 {
			return nil, &DivisionByZeroError{
				Pos: op.Pos,
			}
		}
		return new(big.Int).Quo(left, right), nil
	}
	return nil, fmt.Errorf("not a binary operator: %s", op.Kind)
}
