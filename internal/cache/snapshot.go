package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"

	"github.com/ulikunitz/xz/lzma"
)

// SnapshotVersion is bumped whenever Snapshot changes shape.
const SnapshotVersion = 1

// Snapshot is the persisted form of a floor. Live entities and the tile
// catalog are not part of it; both are re-attached on load.
type Snapshot struct {
	Version    int
	Coord      gamemap.Coord
	Depth      int
	Width      int
	Height     int
	Tiles      []gamemap.TileID
	Memory     []gamemap.TileID
	Lit        gamemap.Layer
	Visible    gamemap.Layer
	Obscured   gamemap.Layer
	Explored   gamemap.Layer
	Upstairs   gamemap.Point
	Downstairs gamemap.Point
	SeedAnchor gamemap.Point
}

// SnapshotOf captures m.
func SnapshotOf(m *gamemap.GameMap) Snapshot {
	return Snapshot{
		Version:    SnapshotVersion,
		Coord:      m.Coord,
		Depth:      m.Coord.Depth(),
		Width:      m.Width,
		Height:     m.Height,
		Tiles:      append([]gamemap.TileID(nil), m.Tiles...),
		Memory:     append([]gamemap.TileID(nil), m.Memory...),
		Lit:        append(gamemap.Layer(nil), m.Lit...),
		Visible:    append(gamemap.Layer(nil), m.Visible...),
		Obscured:   append(gamemap.Layer(nil), m.Obscured...),
		Explored:   append(gamemap.Layer(nil), m.Explored...),
		Upstairs:   m.Upstairs,
		Downstairs: m.Downstairs,
		SeedAnchor: m.SeedAnchor,
	}
}

// Restore rebuilds a floor from s. The only entity on it is viewer.
func (s Snapshot) Restore(catalog *gamemap.Catalog, viewer ecs.EntityID) (*gamemap.GameMap, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", s.Version, SnapshotVersion)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("snapshot size %dx%d", s.Width, s.Height)
	}
	n := s.Width * s.Height
	for name, l := range map[string]int{
		"tiles": len(s.Tiles), "memory": len(s.Memory), "lit": len(s.Lit),
		"visible": len(s.Visible), "obscured": len(s.Obscured), "explored": len(s.Explored),
	} {
		if l != n {
			return nil, fmt.Errorf("snapshot %s has %d cells, want %d", name, l, n)
		}
	}
	for i, t := range s.Tiles {
		if !catalog.Valid(t) || !catalog.Valid(s.Memory[i]) {
			return nil, fmt.Errorf("snapshot cell %d: tile not in catalog", i)
		}
	}

	m := gamemap.New(s.Width, s.Height, 0, catalog)
	m.Coord = s.Coord
	copy(m.Tiles, s.Tiles)
	copy(m.Memory, s.Memory)
	copy(m.Lit, s.Lit)
	copy(m.Visible, s.Visible)
	copy(m.Obscured, s.Obscured)
	copy(m.Explored, s.Explored)
	m.Upstairs = s.Upstairs
	m.Downstairs = s.Downstairs
	m.SeedAnchor = s.SeedAnchor
	if viewer != ecs.NilEntity {
		m.AddEntity(viewer)
	}
	return m, nil
}

// Encode gob-encodes s and compresses it with LZMA.
func Encode(s Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if err := gob.NewEncoder(zw).Encode(s); err != nil {
		zw.Close()
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	zr, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return s, fmt.Errorf("decompress snapshot: %w", err)
	}
	if err := gob.NewDecoder(zr).Decode(&s); err != nil {
		return s, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
