package chironlang

// tokenStream is the parser's read cursor. It only moves forward.
type tokenStream struct {
	tokens []Token
	idx    int
}

func (s *tokenStream) Current() (Token, bool) {
	return s.At(0)
}

func (s *tokenStream) At(n int) (Token, bool) {
	if s.idx+n >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.idx+n], true
}

func (s *tokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

func (s *tokenStream) Done() bool {
	return s.idx >= len(s.tokens)
}

// endPos is where an unexpected end of input is reported: right after the last token.
func (s *tokenStream) endPos() Pos {
	if len(s.tokens) == 0 {
		return Pos{Line: 1, Column: 1}
	}
	return s.tokens[len(s.tokens)-1].End()
}

// currentIs reports whether the current token has the kind and text.
func (s *tokenStream) currentIs(kind TokenKind, text string) bool {
	tok, ok := s.Current()
	return ok && tok.is(kind, text)
}
