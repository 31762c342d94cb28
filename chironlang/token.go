package chironlang

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %s, line=%d, col=%d)", t.Kind, t.Text, t.Pos.Line, t.Pos.Column)
}

// End returns the position immediately after the last character of the token.
func (t Token) End() Pos {
	return Pos{
		Line:   t.Pos.Line,
		Column: t.Pos.Column + len([]rune(t.Text)),
	}
}

func (t Token) is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenIdent
	TokenKeyword
	TokenSymbol
	TokenUnknown
)

var tokenKindNames = [...]string{
	TokenInvalid: "INVALID",
	TokenNumber:  "NUMBER",
	TokenIdent:   "IDENT",
	TokenKeyword: "KEYWORD",
	TokenSymbol:  "SYMBOL",
	TokenUnknown: "UNKNOWN",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

type Pos struct {
	Line   int
	Column int
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
