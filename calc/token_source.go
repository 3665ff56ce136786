package calc

type TokenSource interface {
	NextToken() (Token, error)
}

// SliceTokenSource replays tokens, such as those returned by Tokenize.
// Integer tokens must carry a Value.
type SliceTokenSource struct {
	tokens []Token
	idx    int
}

var _ TokenSource = new(SliceTokenSource)

func NewSliceTokenSource(tokens []Token) *SliceTokenSource {
	return &SliceTokenSource{
		tokens: tokens,
	}
}

func (s *SliceTokenSource) NextToken() (Token, error) {
	if s.idx >= len(s.tokens) {
		pos := 0
		if n := len(s.tokens); n > 0 {
			pos = s.tokens[n-1].Pos
		}
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}
	token := s.tokens[s.idx]
	s.idx++
	return token, nil
}
