package suites

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/chiron/logs"
)

type RunFile func(ctx context.Context, w io.Writer, path string) Result

func (Module) RunFile(
	runSource RunSource,
	newSpan logs.NewSpan,
) RunFile {
	return func(ctx context.Context, w io.Writer, path string) Result {
		ctx, _ = newSpan(ctx, path)
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "%s %v\n", failStyle.Render("Error reading file "+path+":"), err)
			return Result{
				Path: path,
				Err:  fmt.Errorf("read %s: %w", path, err),
			}
		}
		return runSource(ctx, w, path, string(content))
	}
}
