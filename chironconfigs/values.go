package chironconfigs

import (
	"path/filepath"
	"runtime"

	"github.com/reusee/chiron/cmds"
	"github.com/reusee/chiron/configs"
	"github.com/reusee/chiron/vars"
)

type TestsDir string

var testsDirFlag = cmds.Var[string]("dir", "directory to scan for test files")

func (Module) TestsDir(
	loader configs.Loader,
) TestsDir {
	return TestsDir(vars.FirstNonZero(
		*testsDirFlag,
		configs.First[string](loader, "tests_dir"),
		"./tests",
	))
}

type TestExt string

var testExtFlag = cmds.Var[string]("ext", "test file extension")

func (Module) TestExt(
	loader configs.Loader,
) TestExt {
	return TestExt(vars.FirstNonZero(
		*testExtFlag,
		configs.First[string](loader, "test_ext"),
		".t1",
	))
}

// TestFiles are files named on the command line. When set, they are run instead of scanning TestsDir.
type TestFiles []string

var testFilesFlag = cmds.Collect[string]("file", "run files matching the pattern instead of scanning the directory")

func (Module) TestFiles() TestFiles {
	return TestFiles(expandPatterns(*testFilesFlag))
}

// expandPatterns globs each pattern. A pattern that is malformed or matches nothing is kept as is, so that it reports as unreadable.
func expandPatterns(patterns []string) (ret []string) {
	for _, pattern := range patterns {
		paths, err := filepath.Glob(pattern)
		if err != nil || len(paths) == 0 {
			ret = append(ret, pattern)
			continue
		}
		ret = append(ret, paths...)
	}
	return
}

type PrintTokens bool

var printTokensFlag = cmds.Switch("tokens", "print the tokens of each file")

func (Module) PrintTokens(
	loader configs.Loader,
) PrintTokens {
	return PrintTokens(*printTokensFlag ||
		vars.DerefOrZero(configs.First[*bool](loader, "print_tokens")))
}

type PrintAST bool

var printASTFlag = cmds.Switch("ast", "print the syntax tree of each file")

func (Module) PrintAST(
	loader configs.Loader,
) PrintAST {
	return PrintAST(*printASTFlag ||
		vars.DerefOrZero(configs.First[*bool](loader, "print_ast")))
}

type Tap bool

var tapFlag = cmds.Switch("-tap", "open a starlark REPL on each failed file")

func (Module) Tap(
	loader configs.Loader,
) Tap {
	return Tap(*tapFlag ||
		vars.DerefOrZero(configs.First[*bool](loader, "tap")))
}

// Jobs bounds how many files are parsed at once.
type Jobs int

var jobsFlag = cmds.Var[int]("jobs", "number of files parsed at once")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(max(1, vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	)))
}
