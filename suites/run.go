package suites

import (
	"context"

	"github.com/reusee/chiron/chironconfigs"
	"github.com/reusee/chiron/logs"
)

// Run runs the files named on the command line, or else the configured test directory.
type Run func(ctx context.Context) (Summary, error)

func (Module) Run(
	files chironconfigs.TestFiles,
	dir chironconfigs.TestsDir,
	runFiles RunFiles,
	runDir RunDir,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Run {
	return func(ctx context.Context) (summary Summary, err error) {
		ctx, _ = newSpan(ctx, "suite")
		defer func() {
			if err != nil {
				return
			}
			logger.InfoContext(ctx, "suite done",
				"total", summary.Total(),
				"passed", summary.Passed,
				"failed", summary.Failed,
			)
		}()
		if len(files) > 0 {
			return runFiles(ctx, files), nil
		}
		return runDir(ctx, string(dir))
	}
}
