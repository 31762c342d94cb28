package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
tests_dir?: string
extensions?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var dir string
	err := loader.AssignFirst("tests_dir", &dir)
	if err != nil {
		t.Fatal(err)
	}
	if dir != "tests" {
		t.Fatalf("got %q", dir)
	}

	var exts []string
	err = loader.AssignFirst("extensions", &exts)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", exts); str != "[.t1 .t2]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &exts)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var dirs []string
	for value, err := range loader.IterCueValues("tests_dir") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		dirs = append(dirs, s)
	}
	if str := fmt.Sprintf("%v", dirs); str != "[tests more_tests]" {
		t.Fatalf("got %q", str)
	}

	dirs = dirs[:0]
	for dir := range All[string](loader, "tests_dir") {
		dirs = append(dirs, dir)
	}
	if str := fmt.Sprintf("%v", dirs); str != "[tests more_tests]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"no_such_file.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("tests_dir", &str)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, "")
	if dir := First[string](loader, "tests_dir"); dir != "" {
		t.Fatalf("got %q", dir)
	}
}
