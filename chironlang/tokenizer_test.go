package chironlang

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	type TokenInfo struct {
		Kind TokenKind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: ":x = 20",
			tokens: []TokenInfo{
				{TokenIdent, ":x"},
				{TokenSymbol, "="},
				{TokenNumber, "20"},
			},
		},
		{
			input: "forward :len_1; penup",
			tokens: []TokenInfo{
				{TokenKeyword, "forward"},
				{TokenIdent, ":len_1"},
				{TokenSymbol, ";"},
				{TokenKeyword, "penup"},
			},
		},
		{
			input: "iffy if else_ else",
			tokens: []TokenInfo{
				{TokenIdent, "iffy"},
				{TokenKeyword, "if"},
				{TokenIdent, "else_"},
				{TokenKeyword, "else"},
			},
		},
		{
			input: "== != <= >= = ! < >",
			tokens: []TokenInfo{
				{TokenSymbol, "=="},
				{TokenSymbol, "!="},
				{TokenSymbol, "<="},
				{TokenSymbol, ">="},
				{TokenSymbol, "="},
				{TokenSymbol, "!"},
				{TokenSymbol, "<"},
				{TokenSymbol, ">"},
			},
		},
		{
			input: "===",
			tokens: []TokenInfo{
				{TokenSymbol, "=="},
				{TokenSymbol, "="},
			},
		},
		{
			input: "&& & || | ∥",
			tokens: []TokenInfo{
				{TokenSymbol, "&&"},
				{TokenUnknown, "&"},
				{TokenSymbol, "||"},
				{TokenSymbol, "|"},
				{TokenSymbol, "∥"},
			},
		},
		{
			input: "|||",
			tokens: []TokenInfo{
				{TokenSymbol, "||"},
				{TokenSymbol, "|"},
			},
		},
		{
			input: "+-*/(),;[]{}",
			tokens: []TokenInfo{
				{TokenSymbol, "+"},
				{TokenSymbol, "-"},
				{TokenSymbol, "*"},
				{TokenSymbol, "/"},
				{TokenSymbol, "("},
				{TokenSymbol, ")"},
				{TokenSymbol, ","},
				{TokenSymbol, ";"},
				{TokenSymbol, "["},
				{TokenSymbol, "]"},
				{TokenSymbol, "{"},
				{TokenSymbol, "}"},
			},
		},
		{
			input: "12ab",
			tokens: []TokenInfo{
				{TokenNumber, "12"},
				{TokenIdent, "ab"},
			},
		},
		{
			input: ": :_",
			tokens: []TokenInfo{
				{TokenIdent, ":"},
				{TokenIdent, ":_"},
			},
		},
		{
			input: "_x",
			tokens: []TokenInfo{
				{TokenUnknown, "_"},
				{TokenIdent, "x"},
			},
		},
		{
			input: "@ # $ ^",
			tokens: []TokenInfo{
				{TokenUnknown, "@"},
				{TokenUnknown, "#"},
				{TokenUnknown, "$"},
				{TokenUnknown, "^"},
			},
		},
		{
			input:  " \t\r\n ",
			tokens: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := Tokenize(test.input)
			if len(tokens) != len(test.tokens) {
				t.Fatalf("expected %d tokens, got %v", len(test.tokens), tokens)
			}
			for i, expected := range test.tokens {
				token := tokens[i]
				if token.Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v (text: %q)", i, expected.Kind, token.Kind, token.Text)
				}
				if token.Text != expected.Text {
					t.Errorf("step %d: expected text %q, got %q", i, expected.Text, token.Text)
				}
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	source := "input (:sX, :sY)\n" +
		"  :x = 20; :y = 100\n" +
		"\trepeat 6 [ forward :x ]\n" +
		"a ∥ b"
	tokens := Tokenize(source)

	expected := []Token{
		{TokenKeyword, "input", Pos{1, 1}},
		{TokenSymbol, "(", Pos{1, 7}},
		{TokenIdent, ":sX", Pos{1, 8}},
		{TokenSymbol, ",", Pos{1, 11}},
		{TokenIdent, ":sY", Pos{1, 13}},
		{TokenSymbol, ")", Pos{1, 16}},
		{TokenIdent, ":x", Pos{2, 3}},
		{TokenSymbol, "=", Pos{2, 6}},
		{TokenNumber, "20", Pos{2, 8}},
		{TokenSymbol, ";", Pos{2, 10}},
		{TokenIdent, ":y", Pos{2, 12}},
		{TokenSymbol, "=", Pos{2, 15}},
		{TokenNumber, "100", Pos{2, 17}},
		{TokenKeyword, "repeat", Pos{3, 2}},
		{TokenNumber, "6", Pos{3, 9}},
		{TokenSymbol, "[", Pos{3, 11}},
		{TokenKeyword, "forward", Pos{3, 13}},
		{TokenIdent, ":x", Pos{3, 21}},
		{TokenSymbol, "]", Pos{3, 24}},
		{TokenIdent, "a", Pos{4, 1}},
		{TokenSymbol, "∥", Pos{4, 3}},
		{TokenIdent, "b", Pos{4, 5}},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, token := range tokens {
		if token != expected[i] {
			t.Fatalf("step %d: expected %v, got %v", i, expected[i], token)
		}
	}
}

func TestTokenizeNoWhitespaceTokens(t *testing.T) {
	source := "repeat 4 [\n  forward 10\n\n  right 90\n]\n"
	for _, token := range Tokenize(source) {
		if strings.TrimSpace(token.Text) != token.Text || token.Text == "" {
			t.Fatalf("got %v", token)
		}
	}
	tokens := Tokenize(source)
	last := tokens[len(tokens)-1]
	if last.Pos != (Pos{5, 1}) {
		t.Fatalf("got %v", last)
	}
}

func TestTokenizeStable(t *testing.T) {
	source := "if (:x <= :z) || (:y >= :z) [ :x = :z / :x ]"
	a := Tokenize(source)
	b := Tokenize(source)
	if len(a) != len(b) {
		t.Fatal()
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("got %v and %v", a[i], b[i])
		}
	}
}

func TestTokenString(t *testing.T) {
	tokens := Tokenize("\n  forward")
	if str := tokens[0].String(); str != "Token(KEYWORD, forward, line=2, col=3)" {
		t.Fatalf("got %s", str)
	}
	if end := tokens[0].End(); end != (Pos{2, 10}) {
		t.Fatalf("got %v", end)
	}
}

func TestIsKeyword(t *testing.T) {
	for _, word := range []string{
		"if", "else", "repeat", "penup", "pendown",
		"forward", "backward", "left", "right", "go",
		"true", "false", "input",
	} {
		if !IsKeyword(word) {
			t.Fatalf("%s should be keyword", word)
		}
	}
	for _, word := range []string{"If", "while", ":if", ""} {
		if IsKeyword(word) {
			t.Fatalf("%s should not be keyword", word)
		}
	}
}
