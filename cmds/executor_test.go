package cmds

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var dir string
	var limit int
	executor.Define("dir", Func(func(s string) {
		dir = s
	}))
	executor.Define("limit", Func(func(i int) {
		limit = i
	}).Alias("-n"))

	if err := executor.Execute([]string{
		"dir", "tests",
		"-n", "3",
	}); err != nil {
		t.Fatal(err)
	}
	if dir != "tests" {
		t.Fatalf("got %q", dir)
	}
	if limit != 3 {
		t.Fatalf("got %d", limit)
	}

	err := executor.Execute([]string{"limit", "three"})
	if !errors.Is(err, ErrBadArgument) || !strings.Contains(err.Error(), `"three" as int`) {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"dir"})
	if !errors.Is(err, ErrMissingArgument) || !strings.HasPrefix(err.Error(), "dir: ") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"foo"})
	if !errors.Is(err, ErrUnknownCommand) || !strings.Contains(err.Error(), "foo") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var tokens bool
	var ext string
	executor.Define("suite", Sub(map[string]*Command{
		"tokens": Func(func() {
			tokens = true
		}),
		"ext": Func(func(s string) {
			ext = s
		}),
	}))

	if err := executor.Execute([]string{
		"suite",
		"tokens",
		"ext", ".t1",
	}); err != nil {
		t.Fatal(err)
	}
	if !tokens {
		t.Fatal()
	}
	if ext != ".t1" {
		t.Fatalf("got %q", ext)
	}

	// sub commands are only visible after their parent
	if err := executor.Execute([]string{"tokens"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !errors.Is(err, ErrDuplicatedCommand) || !strings.Contains(err.Error(), "bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("a", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("b", Func(func() {}).Alias("a"))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var dir string
	var ext string
	executor.Define("run", Func(func(arg *string, arg2 *string) {
		dir = *arg
		ext = *arg2
	}))

	if err := executor.Execute([]string{"run", "tests", ".t1"}); err != nil {
		t.Fatal(err)
	}
	if dir != "tests" || ext != ".t1" {
		t.Fatalf("got %q %q", dir, ext)
	}

	if err := executor.Execute([]string{"run"}); err != nil {
		t.Fatal(err)
	}
	if dir != "" || ext != "" {
		t.Fatalf("got %q %q", dir, ext)
	}
}

func TestFuncReturningError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errTest
	}))
	if err := executor.Execute([]string{"fail"}); err != errTest {
		t.Fatalf("got %v", err)
	}
}

func TestTextUnmarshalerArgument(t *testing.T) {
	executor := NewExecutor()
	var level slog.Level
	executor.Define("level", Func(func(l slog.Level) {
		level = l
	}))
	if err := executor.Execute([]string{"level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelDebug {
		t.Fatalf("got %v", level)
	}
	err := executor.Execute([]string{"level", "loud"})
	if !errors.Is(err, ErrBadArgument) {
		t.Fatalf("got %v", err)
	}
}

func TestBoolArgument(t *testing.T) {
	executor := NewExecutor()
	var on bool
	executor.Define("color", Func(func(b bool) {
		on = b
	}))
	if err := executor.Execute([]string{"color", "on"}); err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal()
	}
	if err := executor.Execute([]string{"color", "sometimes"}); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("got %v", err)
	}
}

func TestFuncValidation(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 1 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}
