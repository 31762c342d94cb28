package suites

import (
	"io"
	"os"
)

// Output receives the per-file report and the summary.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
