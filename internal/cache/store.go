package cache

import (
	"errors"
	"fmt"
	"path/filepath"

	"deepfloor/internal/gamemap"
)

// ErrNotFound is returned by Store.Get and Store.GetMeta for a key with no
// data.
var ErrNotFound = errors.New("no data stored")

// Store persists encoded floors by world coordinate, plus a few named
// metadata blobs kept apart from the floors. Put and PutMeta overwrite.
type Store interface {
	Put(c gamemap.Coord, data []byte) error
	Get(c gamemap.Coord) ([]byte, error)
	Delete(c gamemap.Coord) error
	Keys() ([]gamemap.Coord, error)
	PutMeta(key string, data []byte) error
	GetMeta(key string) ([]byte, error)
	DeleteMeta(key string) error
	Close() error
}

// Backend names accepted by OpenStore.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// OpenStore opens the named backend rooted at path. For file stores path is
// a directory; for bolt and sqlite it is a directory that will hold the
// database file.
func OpenStore(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendBolt:
		return OpenBoltStore(filepath.Join(path, "floors.db"))
	case BackendSQLite:
		return OpenSQLiteStore(filepath.Join(path, "floors.sqlite"))
	case BackendMemory:
		return NewMemStore(), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", backend)
}

func coordKey(c gamemap.Coord) string { return c.String() }

func parseCoordKey(key string) (gamemap.Coord, error) {
	var c gamemap.Coord
	if _, err := fmt.Sscanf(key, "%d,%d", &c.X, &c.Y); err != nil {
		return c, fmt.Errorf("bad floor key %q: %w", key, err)
	}
	return c, nil
}
