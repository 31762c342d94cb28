package suites

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/chiron/chironconfigs"
	"github.com/reusee/chiron/chironlang"
	"github.com/reusee/chiron/logs"
)

// RunSource tokenizes and parses one source text and reports the outcome to w.
type RunSource func(ctx context.Context, w io.Writer, name string, content string) Result

func (Module) RunSource(
	logger logs.Logger,
	printTokens chironconfigs.PrintTokens,
	printAST chironconfigs.PrintAST,
) RunSource {
	return func(ctx context.Context, w io.Writer, name string, content string) (result Result) {
		result.Path = name
		result.Source = chironlang.NewSource(name, content)

		defer func() {
			if result.Err != nil {
				fmt.Fprintf(w, "%s %v\n\n", failStyle.Render("Test FAILED with error:"), result.Err)
				logger.WarnContext(ctx, "test failed",
					"file", name,
					"error", logs.WrapSpan(ctx, result.Err),
				)
				return
			}
			fmt.Fprintf(w, "%s\n\n", passStyle.Render("Test PASSED."))
		}()

		fmt.Fprintf(w, "\n%s\n", headerStyle.Render("=== Running test: "+name+" ==="))

		result.Tokens = chironlang.Tokenize(content)
		if printTokens {
			fmt.Fprintln(w, "Tokens:")
			for _, token := range result.Tokens {
				fmt.Fprintf(w, "   %s\n", mutedStyle.Render(token.String()))
			}
		}

		program, err := chironlang.Parse(result.Tokens)
		if err != nil {
			var syntaxErr *chironlang.SyntaxError
			if errors.As(err, &syntaxErr) {
				err = chironlang.WithPos(err, syntaxErr.Pos, result.Source)
			}
			result.Err = err
			return
		}
		result.Program = program

		nodes := 0
		chironlang.Inspect(program, func(chironlang.Node) bool {
			nodes++
			return true
		})
		logger.DebugContext(ctx, "parsed",
			"file", name,
			"tokens", len(result.Tokens),
			"statements", len(program.Statements),
			"nodes", nodes,
		)

		if printAST {
			fmt.Fprintln(w, "\nAST:")
			if err := chironlang.Fprint(w, program); err != nil {
				result.Err = err
				return
			}
		}

		return
	}
}
