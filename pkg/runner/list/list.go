// Package list prints every diary entry.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/printers"
	"tableflip.dev/oneframe/pkg/store"
)

// List prints all entries oldest first.
type List struct {
	JSON        bool
	Out         io.Writer
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	all, err := l.Persistence.ReadAll(ctx)
	if err != nil {
		return err
	}

	out := l.Out
	if out == nil {
		out = color.Output
	}

	if l.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.TitleWithCount("Diary", len(all))
	pp.Entries(all...)
	return nil
}
