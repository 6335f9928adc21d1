package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"

	"tableflip.dev/oneframe/pkg/diary"
)

const (
	sqliteFile = "oneframe.db"

	schema = `CREATE TABLE IF NOT EXISTS diary (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at INTEGER NOT NULL,
	image_uri  TEXT    NOT NULL,
	emotion    TEXT    NOT NULL DEFAULT '',
	title      TEXT    NOT NULL DEFAULT '',
	content    TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS diary_created_at ON diary (created_at, id);`
)

// OpenSQLite opens (or creates) a SQLite database at path with WAL journaling.
func OpenSQLite(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func openSQLite(basePath string, log zerolog.Logger) (*sqlStore, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	path := filepath.Join(basePath, sqliteFile)
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	s, err := newSQLStore(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.path = path
	return s, nil
}

// NewSQLiteWithDB wires the store onto an existing connection and ensures the
// schema exists. Watch is unavailable without a database file path.
func NewSQLiteWithDB(db *sql.DB, log zerolog.Logger) (Persistence, error) {
	s, err := newSQLStore(db, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newSQLStore(db *sql.DB, log zerolog.Logger) (*sqlStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &sqlStore{db: db, log: log}, nil
}

// sqlStore implements Persistence on top of database/sql.
type sqlStore struct {
	db   *sql.DB
	path string
	log  zerolog.Logger
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*diary.Entry, error) {
	var (
		e       diary.Entry
		emotion string
	)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.ImageURI, &emotion, &e.Title, &e.Content); err != nil {
		return nil, err
	}
	e.Emotion = diary.Emotion(emotion)
	return &e, nil
}

func (s *sqlStore) ReadAll(ctx context.Context) ([]*diary.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at, image_uri, emotion, title, content FROM diary ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: read all: %w", err)
	}
	defer rows.Close()

	all := make([]*diary.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			s.log.Warn().Err(err).Msg("skipping unreadable row")
			continue
		}
		all = append(all, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: read all: %w", err)
	}
	return all, nil
}

func (s *sqlStore) Get(ctx context.Context, id int64) (*diary.Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, created_at, image_uri, emotion, title, content FROM diary WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %d: %w", id, err)
	}
	return e, nil
}

func (s *sqlStore) Store(ctx context.Context, e *diary.Entry) error {
	if err := validate(e); err != nil {
		return err
	}
	if e.ID == 0 {
		res, err := s.db.ExecContext(ctx, `INSERT INTO diary (created_at, image_uri, emotion, title, content) VALUES (?,?,?,?,?)`,
			e.CreatedAt, e.ImageURI, string(e.Emotion), e.Title, e.Content)
		if err != nil {
			return fmt.Errorf("store: insert: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("store: insert id: %w", err)
		}
		e.ID = id
		return nil
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO diary (id, created_at, image_uri, emotion, title, content) VALUES (?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at, image_uri = excluded.image_uri,
	emotion = excluded.emotion, title = excluded.title, content = excluded.content`,
		e.ID, e.CreatedAt, e.ImageURI, string(e.Emotion), e.Title, e.Content)
	if err != nil {
		return fmt.Errorf("store: upsert %d: %w", e.ID, err)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM diary WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
