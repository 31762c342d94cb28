package suites

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/reusee/chiron/chironconfigs"
	"github.com/reusee/chiron/debugs"
	"github.com/reusee/chiron/syncs"
)

// RunDir runs every file in dir with the configured extension, in file name order.
type RunDir func(ctx context.Context, dir string) (Summary, error)

func (Module) RunDir(
	runFiles RunFiles,
	ext chironconfigs.TestExt,
	output Output,
) RunDir {
	return func(ctx context.Context, dir string) (Summary, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return Summary{}, fmt.Errorf("scan %s: %w", dir, err)
		}

		var paths []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), string(ext)) {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
		if len(paths) == 0 {
			fmt.Fprintf(output, "No %s test files found in %s.\n", ext, dir)
			return Summary{}, nil
		}

		return runFiles(ctx, paths), nil
	}
}

// RunFiles runs each file independently and prints the reports in the order of paths, then the summary.
type RunFiles func(ctx context.Context, paths []string) Summary

func (Module) RunFiles(
	runFile RunFile,
	output Output,
	jobs chironconfigs.Jobs,
	tapEnabled chironconfigs.Tap,
	tap debugs.Tap,
) RunFiles {
	return func(ctx context.Context, paths []string) (summary Summary) {
		results := make([]Result, len(paths))
		reports := make([]bytes.Buffer, len(paths))

		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup
		for i, path := range paths {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()
				results[i] = runFile(ctx, &reports[i], path)
			}()
		}
		wg.Wait()

		for i, result := range results {
			reports[i].WriteTo(output)
			summary.add(result)
			if !result.Passed() && bool(tapEnabled) {
				tap(ctx, result.Path, tapGlobals(result))
			}
		}

		printSummary(output, summary)
		return
	}
}

func printSummary(output Output, summary Summary) {
	fmt.Fprintf(output, "\n%s\n", headerStyle.Render("=== Test Summary ==="))
	fmt.Fprintf(output, "Total tests: %d\n", summary.Total())
	fmt.Fprintf(output, "Passed:      %s\n", passStyle.Render(fmt.Sprint(summary.Passed)))
	failed := fmt.Sprint(summary.Failed)
	if summary.Failed > 0 {
		failed = failStyle.Render(failed)
	}
	fmt.Fprintf(output, "Failed:      %s\n", failed)
}
