package chironlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedEndOfInput   = errors.New("unexpected end of input")
	ErrUnexpectedTokenKind    = errors.New("unexpected token kind")
	ErrUnexpectedTokenText    = errors.New("unexpected token text")
	ErrUnrecognizedStatement  = errors.New("unrecognized statement")
	ErrUnrecognizedExpression = errors.New("unrecognized expression")
	ErrInvalidNumber          = errors.New("invalid number")
)

// SyntaxError reports the first grammar violation of a parse.
// Got is nil when the input ended.
type SyntaxError struct {
	Err          error
	Pos          Pos
	ExpectedKind TokenKind
	ExpectedText string
	Context      string
	Got          *Token
}

func (s *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString(s.Err.Error())
	if s.Context != "" {
		sb.WriteString(" ")
		sb.WriteString(s.Context)
	}
	if s.ExpectedKind != TokenInvalid {
		sb.WriteString("; expected ")
		sb.WriteString(s.ExpectedKind.String())
		if s.ExpectedText != "" {
			fmt.Fprintf(&sb, " '%s'", s.ExpectedText)
		}
	}
	if s.Got != nil {
		if s.ExpectedKind != TokenInvalid {
			sb.WriteString(" but got ")
		} else {
			sb.WriteString(": got ")
		}
		fmt.Fprintf(&sb, "%s '%s'", s.Got.Kind, s.Got.Text)
	}
	if s.Pos.IsValid() {
		fmt.Fprintf(&sb, " at line %d, col %d", s.Pos.Line, s.Pos.Column)
	}
	return sb.String()
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n", p.Source.Name, p.Err.Error()))

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := p.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos, source *Source) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
