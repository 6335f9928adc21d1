// Package ui opens the home screen.
package ui

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/home"
	"tableflip.dev/oneframe/pkg/store"
	tuihome "tableflip.dev/oneframe/pkg/tui/home"
)

type UI struct {
	Locale      calendar.Locale
	Log         zerolog.Logger
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := home.New(d.Persistence, home.WithLogger(d.Log.With().Str("component", "home").Logger()))
	c.Activate(ctx)

	if events, err := d.Persistence.Watch(ctx); err != nil {
		d.Log.Warn().Err(err).Msg("live reload disabled")
	} else {
		go c.Watch(ctx, events)
	}

	return tuihome.Run(ctx, c,
		tuihome.WithLocale(d.Locale),
		tuihome.WithLogger(d.Log.With().Str("component", "tui").Logger()),
	)
}
