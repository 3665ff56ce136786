package calc

import (
	"fmt"
	"math/big"
)

type Token struct {
	Kind TokenKind
	// Value is set only for TokenInteger
	Value *big.Int
	Pos   int
}

func (t Token) String() string {
	if t.Kind == TokenInteger {
		return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Value, t.Pos)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenInteger
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLeftParen
	TokenRightParen
)

var tokenKindNames = [...]string{
	TokenEOF:        "EOF",
	TokenInteger:    "INTEGER",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenStar:       "*",
	TokenSlash:      "/",
	TokenLeftParen:  "(",
	TokenRightParen: ")",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

var symbolKinds = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLeftParen,
	')': TokenRightParen,
}
