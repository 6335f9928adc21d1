package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/diary"
)

const entriesDir = "entries"

func openDiskv(basePath string, log zerolog.Logger) (*persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	base := filepath.Join(basePath, entriesDir)
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          base,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: base,
		log:      log,
	}, nil
}

// persistence keeps one JSON document per entry under YYYY/MM/DD/<id>.
type persistence struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
	log      zerolog.Logger
}

func (p *persistence) read(key string) (*diary.Entry, error) {
	id, ok := idFromKey(key)
	if !ok {
		return nil, fmt.Errorf("unrecognised key %q", key)
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &diary.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	// The file name is authoritative for the id.
	e.ID = id
	return e, nil
}

func (p *persistence) ReadAll(ctx context.Context) ([]*diary.Entry, error) {
	all := make([]*diary.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("skipping unreadable entry")
			continue
		}
		all = append(all, e)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sortEntries(all)
	return all, nil
}

func (p *persistence) Get(ctx context.Context, id int64) (*diary.Entry, error) {
	key, ok := p.keyFor(ctx, id)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	e, err := p.read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %d: %w", id, err)
	}
	return e, nil
}

func (p *persistence) Store(ctx context.Context, e *diary.Entry) error {
	if err := validate(e); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	// An interrupted key walk is incomplete, so nothing is written after one.
	if e.ID == 0 {
		next := p.maxID(ctx) + 1
		if err := ctx.Err(); err != nil {
			return err
		}
		e.ID = next
	} else {
		old, ok := p.keyFor(ctx, e.ID)
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok && old != toKey(e) {
			// The entry moved to a different day; drop the stale document.
			if err := p.d.Erase(old); err != nil {
				return fmt.Errorf("store: erase %s: %w", old, err)
			}
		}
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := p.d.Write(toKey(e), data); err != nil {
		return fmt.Errorf("store: write %d: %w", e.ID, err)
	}
	return nil
}

func (p *persistence) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	key, ok := p.keyFor(ctx, id)
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return p.d.Erase(key)
}

func (p *persistence) Close() error {
	return nil
}

func (p *persistence) keyFor(ctx context.Context, id int64) (string, bool) {
	done := make(chan struct{})
	defer close(done)
	cancel := mergeDone(ctx.Done(), done)
	for key := range p.d.Keys(cancel) {
		if got, ok := idFromKey(key); ok && got == id {
			return key, true
		}
	}
	return "", false
}

func (p *persistence) maxID(ctx context.Context) int64 {
	var max int64
	for key := range p.d.Keys(ctx.Done()) {
		if id, ok := idFromKey(key); ok && id > max {
			max = id
		}
	}
	return max
}

// mergeDone closes when either input closes so an early return can stop the
// diskv key walker.
func mergeDone(a, b <-chan struct{}) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		select {
		case <-a:
		case <-b:
		}
	}()
	return out
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `YYYY-MM-DD-id`. Callers validate the entry first so the date
// conversion cannot fail.
func toKey(e *diary.Entry) string {
	d, _ := e.Date()
	return fmt.Sprintf("%s-%d", d.String(), e.ID)
}

func idFromKey(key string) (int64, bool) {
	pk := keyToPathTransform(key)
	if len(pk.Path) != 3 {
		return 0, false
	}
	id, err := strconv.ParseInt(pk.FileName, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
