package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/chiron/cmds"
	"github.com/reusee/chiron/logs"
	"github.com/reusee/chiron/modes"
	"github.com/reusee/chiron/suites"
	"github.com/reusee/dscope"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	scope := dscope.New(
		new(suites.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		run suites.Run,
		logger logs.Logger,
	) {
		summary, err := run(context.Background())
		if err != nil {
			logger.Error("run suite", "error", err)
			os.Exit(1)
		}
		if summary.Failed > 0 {
			os.Exit(1)
		}
	})
}
