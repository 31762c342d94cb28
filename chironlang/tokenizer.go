package chironlang

import (
	"strings"
	"unicode"
)

// parallelOr is the non-ASCII spelling of logical or.
const parallelOr = '∥'

type Tokenizer struct {
	source []rune
	offset int

	currPos Pos
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: []rune(source),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize scans the whole source. Characters that start no token become TokenUnknown tokens, so it never fails.
func Tokenize(source string) []Token {
	return NewTokenizer(source).All()
}

func (t *Tokenizer) All() (ret []Token) {
	for {
		token, ok := t.Next()
		if !ok {
			return
		}
		ret = append(ret, token)
	}
}

func (t *Tokenizer) peekRune(n int) (rune, bool) {
	if t.offset+n >= len(t.source) {
		return 0, false
	}
	return t.source[t.offset+n], true
}

func (t *Tokenizer) readRune() rune {
	r := t.source[t.offset]
	t.offset++
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}
	return r
}

// Next returns the next token, or false at end of input.
func (t *Tokenizer) Next() (Token, bool) {
	t.skipWhitespace()

	r, ok := t.peekRune(0)
	if !ok {
		return Token{}, false
	}
	startPos := t.currPos

	switch {
	case isDigit(r):
		return t.scanRun(TokenNumber, startPos, isDigit), true

	case r == ':':
		t.readRune()
		token := t.scanRun(TokenIdent, startPos, isIdentRune)
		token.Text = ":" + token.Text
		return token, true

	case unicode.IsLetter(r):
		token := t.scanRun(TokenIdent, startPos, isIdentRune)
		if IsKeyword(token.Text) {
			token.Kind = TokenKeyword
		}
		return token, true

	case r == '=' || r == '!' || r == '<' || r == '>':
		t.readRune()
		if next, ok := t.peekRune(0); ok && next == '=' {
			t.readRune()
			return Token{Kind: TokenSymbol, Text: string(r) + "=", Pos: startPos}, true
		}
		return Token{Kind: TokenSymbol, Text: string(r), Pos: startPos}, true

	case r == '&':
		t.readRune()
		if next, ok := t.peekRune(0); ok && next == '&' {
			t.readRune()
			return Token{Kind: TokenSymbol, Text: "&&", Pos: startPos}, true
		}
		// no single ampersand operator
		return Token{Kind: TokenUnknown, Text: "&", Pos: startPos}, true

	case r == parallelOr:
		t.readRune()
		return Token{Kind: TokenSymbol, Text: string(r), Pos: startPos}, true

	case r == '|':
		t.readRune()
		if next, ok := t.peekRune(0); ok && next == '|' {
			t.readRune()
			return Token{Kind: TokenSymbol, Text: "||", Pos: startPos}, true
		}
		return Token{Kind: TokenSymbol, Text: "|", Pos: startPos}, true

	case strings.ContainsRune("+-*/(),;[]{}", r):
		t.readRune()
		return Token{Kind: TokenSymbol, Text: string(r), Pos: startPos}, true
	}

	t.readRune()
	return Token{Kind: TokenUnknown, Text: string(r), Pos: startPos}, true
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok := t.peekRune(0)
		if !ok || !unicode.IsSpace(r) {
			return
		}
		t.readRune()
	}
}

func (t *Tokenizer) scanRun(kind TokenKind, startPos Pos, accept func(rune) bool) Token {
	start := t.offset
	for {
		r, ok := t.peekRune(0)
		if !ok || !accept(r) {
			break
		}
		t.readRune()
	}
	return Token{
		Kind: kind,
		Text: string(t.source[start:t.offset]),
		Pos:  startPos,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
