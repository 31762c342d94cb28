package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan annotates err with the span stored in ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanFrom(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
