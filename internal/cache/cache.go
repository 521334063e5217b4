// Package cache persists visited floors by world coordinate and remembers
// which coordinates have been generated.
package cache

import (
	"errors"
	"fmt"

	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

var (
	// ErrPersist wraps any failure to write a floor.
	ErrPersist = errors.New("persist floor")
	// ErrLoad wraps a failure to read back a floor that is known to exist.
	ErrLoad = errors.New("load floor")
	// ErrNotCached is returned when loading a coordinate never generated.
	ErrNotCached = errors.New("floor not cached")
)

// Cache maps world coordinates to persisted floors.
type Cache struct {
	store Store
	known mapset.Set[gamemap.Coord]
	log   *zap.Logger
}

// New wraps store, seeding the explored index from what it already holds.
func New(store Store, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cache{
		store: store,
		known: mapset.New[gamemap.Coord](),
		log:   log.Named("cache"),
	}
	keys, err := store.Keys()
	if err != nil {
		return nil, fmt.Errorf("list stored floors: %w", err)
	}
	for _, k := range keys {
		c.known.Put(k)
	}
	return c, nil
}

// HasFloor reports whether coord was generated or persisted before.
func (c *Cache) HasFloor(coord gamemap.Coord) bool { return c.known.Has(coord) }

// MarkGenerated records that coord now exists. The floor's own SeedAnchor
// remembers where it was grown from.
func (c *Cache) MarkGenerated(coord gamemap.Coord) { c.known.Put(coord) }

// Known returns the number of coordinates in the explored index.
func (c *Cache) Known() int { return c.known.Size() }

// Save persists m under coord, overwriting any earlier copy.
func (c *Cache) Save(coord gamemap.Coord, m *gamemap.GameMap) error {
	data, err := Encode(SnapshotOf(m))
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrPersist, coord, err)
	}
	if err := c.store.Put(coord, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrPersist, coord, err)
	}
	c.known.Put(coord)
	c.log.Debug("saved floor", zap.Stringer("coord", coord), zap.Int("bytes", len(data)))
	return nil
}

// Load reads the floor at coord back, attaching catalog. The returned floor
// holds only viewer among its entities.
func (c *Cache) Load(coord gamemap.Coord, catalog *gamemap.Catalog, viewer ecs.EntityID) (*gamemap.GameMap, error) {
	if !c.known.Has(coord) {
		return nil, fmt.Errorf("%w: %s", ErrNotCached, coord)
	}
	data, err := c.store.Get(coord)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, coord, err)
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, coord, err)
	}
	if snap.Coord != coord {
		return nil, fmt.Errorf("%w %s: snapshot is for %s", ErrLoad, coord, snap.Coord)
	}
	m, err := snap.Restore(catalog, viewer)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, coord, err)
	}
	c.log.Debug("loaded floor", zap.Stringer("coord", coord))
	return m, nil
}

// SaveHeader records how to resume the current run.
func (c *Cache) SaveHeader(h Header) error {
	h.Version = HeaderVersion
	data, err := encodeHeader(h)
	if err != nil {
		return fmt.Errorf("%w header: %w", ErrPersist, err)
	}
	if err := c.store.PutMeta(headerKey, data); err != nil {
		return fmt.Errorf("%w header: %w", ErrPersist, err)
	}
	return nil
}

// LoadHeader returns the header of the last saved run. A store without one
// reports ErrNotFound.
func (c *Cache) LoadHeader() (Header, error) {
	data, err := c.store.GetMeta(headerKey)
	if err != nil {
		return Header{}, err
	}
	h, err := decodeHeader(data)
	if err != nil {
		return Header{}, fmt.Errorf("%w header: %w", ErrLoad, err)
	}
	return h, nil
}

// Clear forgets every floor and the run header, for a new world.
func (c *Cache) Clear() error {
	keys, err := c.store.Keys()
	if err != nil {
		return fmt.Errorf("list stored floors: %w", err)
	}
	for _, k := range keys {
		if err := c.store.Delete(k); err != nil {
			return fmt.Errorf("delete floor %s: %w", k, err)
		}
	}
	if err := c.store.DeleteMeta(headerKey); err != nil {
		return fmt.Errorf("delete header: %w", err)
	}
	c.known.Clear()
	c.log.Info("cleared floor cache", zap.Int("floors", len(keys)))
	return nil
}

// Close releases the backing store.
func (c *Cache) Close() error { return c.store.Close() }
