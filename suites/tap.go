package suites

import (
	"strings"

	"github.com/reusee/chiron/chironlang"
)

// tapGlobals binds the state of a failed file, plus helpers to try variations of it, for the REPL.
func tapGlobals(result Result) map[string]any {
	var source string
	if result.Source != nil {
		source = result.Source.Content
	}
	return map[string]any{
		"path":    result.Path,
		"source":  source,
		"tokens":  result.Tokens,
		"program": result.Program,
		"error":   result.Err,
		"tokenize": func(source string) string {
			var sb strings.Builder
			for _, token := range chironlang.Tokenize(source) {
				sb.WriteString(token.String())
				sb.WriteString("\n")
			}
			return sb.String()
		},
		"parse": func(source string) string {
			program, err := chironlang.ParseSource(chironlang.NewSource("<repl>", source))
			if err != nil {
				return err.Error()
			}
			var sb strings.Builder
			if err := chironlang.Fprint(&sb, program); err != nil {
				return err.Error()
			}
			return sb.String()
		},
	}
}
