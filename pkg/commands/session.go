package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/logging"
	"tableflip.dev/oneframe/pkg/store"
)

const logFile = "oneframe.log"

// session bundles what every command needs: configuration, a logger and an
// open store.
type session struct {
	cfg     store.Config
	log     zerolog.Logger
	p       store.Persistence
	closers []io.Closer
}

// openSession loads configuration and opens the store. With logToFile the
// log goes to <path>/oneframe.log instead of stderr, for full screen UIs.
func openSession(component string, logToFile bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg}

	if logToFile {
		if err := os.MkdirAll(cfg.BasePath(), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(cfg.BasePath(), logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.closers = append(s.closers, f)
		s.log = logging.NewWithWriter(f, component, cfg.LogLevel())
	} else {
		s.log = logging.New(component, cfg.LogLevel())
	}

	p, err := store.Load(cfg, store.WithLogger(s.log))
	if err != nil {
		s.Close()
		return nil, err
	}
	s.p = p
	s.closers = append([]io.Closer{p}, s.closers...)
	s.log.Debug().
		Str("path", cfg.BasePath()).
		Str("driver", string(cfg.Driver())).
		Msg("store opened")
	return s, nil
}

func (s *session) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close")
		}
	}
	s.closers = nil
}
