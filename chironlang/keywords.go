package chironlang

var keywords = map[string]struct{}{
	"if":       {},
	"else":     {},
	"repeat":   {},
	"penup":    {},
	"pendown":  {},
	"forward":  {},
	"backward": {},
	"left":     {},
	"right":    {},
	"go":       {},
	"true":     {},
	"false":    {},
	"input":    {},
}

func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}
