// Package rm deletes diary entries.
package rm

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/store"
)

type Remove struct {
	IDs         []int64
	Out         io.Writer
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)
	for _, id := range r.IDs {
		if err := r.Persistence.Delete(ctx, id); err != nil {
			return err
		}
		_, _ = faint.Fprintf(out, "removed %d\n", id)
	}
	return nil
}
