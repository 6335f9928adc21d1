// Package emotions prints the distribution of recorded emotions.
package emotions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/emotion"
	"tableflip.dev/oneframe/pkg/home"
	"tableflip.dev/oneframe/pkg/printers"
	"tableflip.dev/oneframe/pkg/store"
)

const barWidth = 40

type Emotions struct {
	JSON        bool
	Out         io.Writer
	Log         zerolog.Logger
	Persistence store.Persistence
}

type report struct {
	Total    int               `json:"total"`
	Emotions []emotion.Summary `json:"emotions"`
}

func (e *Emotions) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not summarise, no persistence")
	}
	c := home.New(e.Persistence, home.WithLogger(e.Log))
	if err := c.Load(ctx); err != nil {
		return err
	}
	summaries := c.Snapshot().Emotions

	out := e.Out
	if out == nil {
		out = color.Output
	}

	if e.JSON {
		b, err := json.Marshal(report{Total: emotion.Total(summaries), Emotions: summaries})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.Title("Emotions")
	pp.Emotions(summaries, barWidth)
	return nil
}
