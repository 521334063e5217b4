package gamemap

import (
	"errors"
	"fmt"
	"sort"

	"deepfloor/internal/ecs"

	"github.com/zyedidia/generic/mapset"
)

// ErrOutOfBounds is returned when a coordinate falls outside a floor.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// GameMap is one floor: terrain, what the viewer has seen of it, and which
// entities are currently on it.
type GameMap struct {
	Width, Height int
	Coord         Coord

	Tiles  []TileID
	Memory []TileID // terrain as last seen, per cell

	Visible  Layer
	Lit      Layer
	Obscured Layer // seen only through partial occluders
	Explored Layer

	Upstairs   Point
	Downstairs Point
	SeedAnchor Point

	Entities mapset.Set[ecs.EntityID]

	catalog *Catalog
}

// New creates a floor filled with fill. Memory starts out as fill too.
func New(width, height int, fill TileID, catalog *Catalog) *GameMap {
	m := &GameMap{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileID, width*height),
		Memory:   make([]TileID, width*height),
		Visible:  NewLayer(width, height),
		Lit:      NewLayer(width, height),
		Obscured: NewLayer(width, height),
		Explored: NewLayer(width, height),
		Entities: mapset.New[ecs.EntityID](),
		catalog:  catalog,
	}
	for i := range m.Tiles {
		m.Tiles[i] = fill
		m.Memory[i] = fill
	}
	return m
}

// Catalog returns the tile catalog the floor resolves kinds against.
func (m *GameMap) Catalog() *Catalog { return m.catalog }

// AttachCatalog sets the catalog back-reference, e.g. after loading.
func (m *GameMap) AttachCatalog(c *Catalog) { m.catalog = c }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Check returns ErrOutOfBounds for coordinates off the floor.
func (m *GameMap) Check(x, y int) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("(%d,%d) on %dx%d floor: %w", x, y, m.Width, m.Height, ErrOutOfBounds)
	}
	return nil
}

// Index converts (x, y) to a layer index. Callers check bounds first.
func (m *GameMap) Index(x, y int) int { return y*m.Width + x }

// At returns the tile id at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) TileID {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: At(%d,%d) out of bounds", x, y))
	}
	return m.Tiles[m.Index(x, y)]
}

// Kind returns the kind of the tile at (x, y). Panics if out of bounds.
func (m *GameMap) Kind(x, y int) TileKind {
	return m.catalog.Kind(m.At(x, y))
}

// Set replaces the tile at (x, y). Panics if out of bounds.
func (m *GameMap) Set(x, y int, id TileID) {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: Set(%d,%d) out of bounds", x, y))
	}
	m.Tiles[m.Index(x, y)] = id
}

// SetIfInBounds writes id when (x, y) lies on the floor and reports whether
// it did. Generators use it to clip shapes at the edge.
func (m *GameMap) SetIfInBounds(x, y int, id TileID) bool {
	if !m.InBounds(x, y) {
		return false
	}
	m.Tiles[m.Index(x, y)] = id
	return true
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Kind(x, y).Walkable
}

// IsPassable is IsWalkable minus tiles that drop the walker a floor.
func (m *GameMap) IsPassable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	k := m.Kind(x, y)
	return k.Walkable && !k.FallThrough
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Kind(x, y).Transparent
}

// BlocksObscuredSight reports whether (x, y) stops the obscured sight pass.
// Cells off the floor always block.
func (m *GameMap) BlocksObscuredSight(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Kind(x, y).BlocksObscuredSight()
}

// LitAndVisible is derived from the visible and lit layers, never stored.
func (m *GameMap) LitAndVisible(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	i := m.Index(x, y)
	return m.Visible[i] && m.Lit[i]
}

// RememberVisible copies currently visible terrain into Memory.
func (m *GameMap) RememberVisible() {
	for i, v := range m.Visible {
		if v {
			m.Memory[i] = m.Tiles[i]
		}
	}
}

// AddEntity puts id on the floor.
func (m *GameMap) AddEntity(id ecs.EntityID) { m.Entities.Put(id) }

// RemoveEntity takes id off the floor.
func (m *GameMap) RemoveEntity(id ecs.EntityID) { m.Entities.Remove(id) }

// HasEntity reports whether id is on the floor.
func (m *GameMap) HasEntity(id ecs.EntityID) bool { return m.Entities.Has(id) }

// EntityIDs returns the ids on the floor in ascending order.
func (m *GameMap) EntityIDs() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, m.Entities.Size())
	m.Entities.Each(func(id ecs.EntityID) { ids = append(ids, id) })
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ResetEntities replaces the entity set with just the given ids.
func (m *GameMap) ResetEntities(ids ...ecs.EntityID) {
	m.Entities = mapset.New[ecs.EntityID]()
	for _, id := range ids {
		m.Entities.Put(id)
	}
}
