package configs

import (
	"errors"
	"fmt"
	"iter"

	"cuelang.org/go/cue"
)

func decodeAt(value *cue.Value, path string, target any) error {
	if err := value.Decode(target); err != nil {
		return fmt.Errorf("decode %s at %v: %w", path, value.Pos(), err)
	}
	return nil
}

// All decodes the value at path from every file that defines it, in precedence order.
// Load and decode failures panic; configs are validated against the schema on load.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := decodeAt(value, path, &v); err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// First returns the value from the file with the highest precedence, or the zero value if no file defines it.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return
	}
	if err != nil {
		panic(err)
	}
	return
}
