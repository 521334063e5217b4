package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"deepfloor/internal/gamemap"
)

// FileStore writes one file per floor, floor_<x>_<y>.sav, under a directory.
// Metadata lives next to them as <key>.meta.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(c gamemap.Coord) string {
	return filepath.Join(s.dir, fmt.Sprintf("floor_%d_%d.sav", c.X, c.Y))
}

func (s *FileStore) metaPath(key string) string {
	return filepath.Join(s.dir, key+".meta")
}

func (s *FileStore) Put(c gamemap.Coord, data []byte) error {
	return s.writeFile(s.path(c), data)
}

// writeFile writes to a temp file and renames it over the old one, so a
// crash never leaves a half-written file behind.
func (s *FileStore) writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, "floor-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *FileStore) Get(c gamemap.Coord) ([]byte, error) { return readFile(s.path(c)) }

func (s *FileStore) Delete(c gamemap.Coord) error { return removeFile(s.path(c)) }

func (s *FileStore) PutMeta(key string, data []byte) error {
	return s.writeFile(s.metaPath(key), data)
}

func (s *FileStore) GetMeta(key string) ([]byte, error) { return readFile(s.metaPath(key)) }

func (s *FileStore) DeleteMeta(key string) error { return removeFile(s.metaPath(key)) }

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func removeFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStore) Keys() ([]gamemap.Coord, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "floor_*_*.sav"))
	if err != nil {
		return nil, err
	}
	keys := make([]gamemap.Coord, 0, len(matches))
	for _, m := range matches {
		var c gamemap.Coord
		if _, err := fmt.Sscanf(filepath.Base(m), "floor_%d_%d.sav", &c.X, &c.Y); err != nil {
			continue
		}
		keys = append(keys, c)
	}
	return keys, nil
}

func (s *FileStore) Close() error { return nil }
