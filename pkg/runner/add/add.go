// Package add records a new diary entry.
package add

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/printers"
	"tableflip.dev/oneframe/pkg/store"
)

type Add struct {
	ImageURI string
	Emotion  diary.Emotion
	Title    string
	Content  string
	// On backdates the entry to that day; nil means now.
	On *time.Time

	JSON        bool
	Locale      calendar.Locale
	Now         func() time.Time
	Out         io.Writer
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	created := now()
	if n.On != nil {
		// Keep the time of day so several backdated entries stay ordered.
		y, m, d := n.On.Date()
		created = created.UTC()
		created = time.Date(y, m, d, created.Hour(), created.Minute(), created.Second(), created.Nanosecond(), time.UTC)
	}

	e := diary.New(created, n.ImageURI, n.Emotion)
	e.Title = n.Title
	e.Content = n.Content

	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Persistence != nil {
		if err := n.Persistence.Store(ctx, e); err != nil {
			return err
		}
	} else if err := e.Validate(); err != nil {
		return err
	}

	if n.JSON {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out, Locale: n.Locale}
	pp.Entry(e)
	return nil
}
