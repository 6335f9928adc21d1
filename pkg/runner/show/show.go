// Package show prints a single diary entry. It is the CLI's destination for
// navigation.DiaryDetail.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/navigation"
	"tableflip.dev/oneframe/pkg/printers"
	"tableflip.dev/oneframe/pkg/store"
)

type Show struct {
	ID          int64
	JSON        bool
	Locale      calendar.Locale
	Out         io.Writer
	Persistence store.Persistence
}

// For returns a Show for target, or false when target is not a diary entry.
func For(target navigation.Target, base Show) (Show, bool) {
	d, ok := target.(navigation.DiaryDetail)
	if !ok {
		return Show{}, false
	}
	base.ID = d.ID
	return base, true
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	e, err := s.Persistence.Get(ctx, s.ID)
	if err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}

	if s.JSON {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out, Locale: s.Locale}
	pp.Entry(e)
	return nil
}
