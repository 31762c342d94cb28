package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/chiron/cmds"
)

// Writer receives text log records. Test reports go to stdout, so logs stay on stderr unless -log-file is given.
type Writer io.Writer

var logFileFlag = cmds.Var[string]("-log-file", "append logs to the file instead of stderr")

func (Module) Writer() Writer {
	if *logFileFlag == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return os.Stderr
	}
	return f
}
