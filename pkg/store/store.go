// Package store persists diary entries.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/diary"
)

var (
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("store: entry not found")
	// ErrInvalidEntry wraps validation failures on Store.
	ErrInvalidEntry = errors.New("store: invalid entry")
)

// Persistence defines the persistence contract for diary entries.
type Persistence interface {
	// ReadAll returns every entry ordered by CreatedAt, ties broken by ID.
	ReadAll(ctx context.Context) ([]*diary.Entry, error)
	Get(ctx context.Context, id int64) (*diary.Entry, error)
	// Store saves e, assigning an ID when e.ID is zero.
	Store(ctx context.Context, e *diary.Entry) error
	Delete(ctx context.Context, id int64) error
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	log zerolog.Logger
}

// WithLogger attaches a logger for skipped records and watcher problems.
func WithLogger(log zerolog.Logger) Option {
	return func(o *loadOptions) { o.log = log }
}

// Load opens the persistence backend selected by cfg. A nil cfg loads the
// configuration from the environment.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	o := loadOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	switch cfg.Driver() {
	case DriverSQLite:
		s, err := openSQLite(cfg.BasePath(), o.log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverDiskv, "":
		p, err := openDiskv(cfg.BasePath(), o.log)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver())
	}
}

func validate(e *diary.Entry) error {
	if e == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidEntry)
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	return nil
}

func sortEntries(entries []*diary.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i], entries[j]
		if left.CreatedAt == right.CreatedAt {
			return left.ID < right.ID
		}
		return left.CreatedAt < right.CreatedAt
	})
}
