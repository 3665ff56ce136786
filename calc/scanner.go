package calc

import (
	"math/big"
	"unicode"
)

// Scanner turns source text into tokens, one per NextToken call.
type Scanner struct {
	text []rune
	pos  int
}

var _ TokenSource = new(Scanner)

func NewScanner(text string) *Scanner {
	return &Scanner{
		text: []rune(text),
	}
}

// current reports the rune under the cursor. ok is false iff the cursor is at the end.
func (s *Scanner) current() (r rune, ok bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	return s.text[s.pos], true
}

func (s *Scanner) advance() {
	if s.pos < len(s.text) {
		s.pos++
	}
}

func (s *Scanner) NextToken() (Token, error) {
	s.skipWhitespace()
	startPos := s.pos

	r, ok := s.current()
	if !ok {
		return Token{Kind: TokenEOF, Pos: startPos}, nil
	}

	if isDigit(r) {
		return s.parseInteger(), nil
	}

	if kind, ok := symbolKinds[r]; ok {
		s.advance()
		return Token{
			Kind: kind,
			Pos:  startPos,
		}, nil
	}

	return Token{}, &InvalidCharacterError{
		Char: r,
		Pos:  startPos,
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		r, ok := s.current()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		s.advance()
	}
}

func (s *Scanner) parseInteger() Token {
	startPos := s.pos
	for {
		r, ok := s.current()
		if !ok || !isDigit(r) {
			break
		}
		s.advance()
	}
	value, _ := new(big.Int).SetString(string(s.text[startPos:s.pos]), 10)
	return Token{
		Kind:  TokenInteger,
		Value: value,
		Pos:   startPos,
	}
}

// only ASCII digits; unicode.IsDigit would accept digits big.Int cannot parse
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize scans text to the end. The returned slice ends with the EOF token.
func Tokenize(text string) ([]Token, error) {
	scanner := NewScanner(text)
	var tokens []Token
	for {
		token, err := scanner.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
