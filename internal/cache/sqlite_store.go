package cache

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"deepfloor/internal/gamemap"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore keeps floors in a floors(x, y, data, saved_at) table and
// metadata in meta(key, data).
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens the database at path and applies pending migrations.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// A single connection keeps writes serialized on the file.
	db.SetMaxOpenConns(1)
	if err := runMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Put(c gamemap.Coord, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO floors (x, y, data, saved_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(x, y) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		c.X, c.Y, data, time.Now().Unix())
	return err
}

func (s *SQLiteStore) Get(c gamemap.Coord) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM floors WHERE x = ? AND y = ?`, c.X, c.Y).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *SQLiteStore) Delete(c gamemap.Coord) error {
	_, err := s.db.Exec(`DELETE FROM floors WHERE x = ? AND y = ?`, c.X, c.Y)
	return err
}

func (s *SQLiteStore) Keys() ([]gamemap.Coord, error) {
	rows, err := s.db.Query(`SELECT x, y FROM floors ORDER BY y, x`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var keys []gamemap.Coord
	for rows.Next() {
		var c gamemap.Coord
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, err
		}
		keys = append(keys, c)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) PutMeta(key string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO meta (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	return err
}

func (s *SQLiteStore) GetMeta(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM meta WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *SQLiteStore) DeleteMeta(key string) error {
	_, err := s.db.Exec(`DELETE FROM meta WHERE key = ?`, key)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
