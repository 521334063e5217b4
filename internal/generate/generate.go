package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"deepfloor/internal/gamemap"

	"go.uber.org/zap"
)

// Params describes one floor to build. Width, Height, Coord, WorldSeed and
// Style fully determine the result.
type Params struct {
	Width, Height int
	Coord         gamemap.Coord
	WorldSeed     int64
	Style         Style
	// Anchor is where the viewer stands on arrival. Dense floors grow their
	// first room around it and no spawn lands on it.
	Anchor  gamemap.Point
	Catalog *gamemap.Catalog
	Tables  *Tables
	Log     *zap.Logger
}

// Result is a generated floor plus what the caller needs to bring it to life.
type Result struct {
	Map        *gamemap.GameMap
	Rooms      []gamemap.Rect
	Spawns     []Spawn
	Exhausted  bool
	Iterations int
}

// Seed derives the RNG seed of a floor from its coordinate.
func Seed(c gamemap.Coord, worldSeed int64) int64 {
	return int64(c.X)*10000 + int64(c.Y)*100 + worldSeed
}

// Validate rejects parameters the loop cannot honour.
func (p *Params) Validate() error {
	s := &p.Style
	switch {
	case p.Catalog == nil:
		return errors.New("generate: nil catalog")
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("generate: bad floor size %dx%d", p.Width, p.Height)
	case s.MinRoomSize < 2 || s.MaxRoomSize < s.MinRoomSize:
		return fmt.Errorf("generate: bad room size range [%d,%d]", s.MinRoomSize, s.MaxRoomSize)
	case s.MaxRoomSize > min(p.Width, p.Height)-1:
		return fmt.Errorf("generate: room size %d does not fit %dx%d", s.MaxRoomSize, p.Width, p.Height)
	case s.Highway != nil && (s.Highway.Y < 0 || s.Highway.Y+s.Highway.Height >= p.Height):
		return fmt.Errorf("generate: highway rows [%d,%d] off %d-row floor: %w",
			s.Highway.Y, s.Highway.Y+s.Highway.Height, p.Height, gamemap.ErrOutOfBounds)
	}
	for _, id := range []gamemap.TileID{s.FillTile, s.FloorTile, s.TunnelTile, s.DownstairsTile} {
		if !p.Catalog.Valid(id) {
			return fmt.Errorf("generate: style %q uses unknown tile %d", s.Name, id)
		}
	}
	if s.AnchorFirstRoom && (p.Anchor.X < 0 || p.Anchor.X >= p.Width || p.Anchor.Y < 0 || p.Anchor.Y >= p.Height) {
		return fmt.Errorf("generate: anchor (%d,%d): %w", p.Anchor.X, p.Anchor.Y, gamemap.ErrOutOfBounds)
	}
	return nil
}

// Generate builds one floor. Running out of iterations is reported through
// Result.Exhausted, never as an error.
func Generate(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	tables := p.Tables
	if tables == nil {
		tables = &Tables{}
	}
	style := p.Style
	depth := p.Coord.Depth()
	seed := Seed(p.Coord, p.WorldSeed)

	gmap := gamemap.New(p.Width, p.Height, style.FillTile, p.Catalog)
	gmap.Coord = p.Coord

	b := &roomBuilder{
		gmap:     gmap,
		rng:      rand.New(rand.NewSource(seed)),
		style:    &style,
		tables:   tables,
		depth:    depth,
		anchor:   p.Anchor,
		occupied: make(map[gamemap.Point]bool),
		log:      log,
	}
	if gmap.InBounds(p.Anchor.X, p.Anchor.Y) {
		b.occupied[p.Anchor] = true
	}
	if style.Highway != nil {
		b.rooms = append(b.rooms, gamemap.NewRect(0, style.Highway.Y, p.Width, style.Highway.Height))
	}

	exhausted := b.makeRooms()
	gmap.SeedAnchor = b.seedAnchor

	if hw := style.Highway; hw != nil {
		b.rooms[0].EachOuter(func(x, y int) { gmap.SetIfInBounds(x, y, hw.Tile) })
	}
	if style.FogDensity > 0 {
		scatterFog(gmap, &style, seed)
	}
	placeStairs(gmap, &style, b.rooms, p.Anchor)

	if exhausted {
		log.Warn("floor generated short",
			zap.Stringer("coord", p.Coord),
			zap.Int("rooms", len(b.rooms)),
			zap.Int("target", style.MaxRooms),
			zap.Error(ErrGenerationExhausted))
	}
	if style.AnchorFirstRoom && len(b.rooms) > 1 && !Reachable(gmap, gmap.Upstairs, gmap.Downstairs) {
		log.Warn("downstairs unreachable from upstairs", zap.Stringer("coord", p.Coord))
	}
	log.Debug("floor generated",
		zap.Stringer("coord", p.Coord),
		zap.String("style", style.Name),
		zap.Int64("seed", seed),
		zap.Int("rooms", len(b.rooms)),
		zap.Int("iterations", b.iterations),
		zap.Int("spawns", len(b.spawns)))

	return &Result{
		Map:        gmap,
		Rooms:      b.rooms,
		Spawns:     b.spawns,
		Exhausted:  exhausted,
		Iterations: b.iterations,
	}, nil
}

// placeStairs records and stamps the stairs: up at the first room, down at
// the last. A floor without rooms keeps both at the anchor.
func placeStairs(gmap *gamemap.GameMap, style *Style, rooms []gamemap.Rect, anchor gamemap.Point) {
	up, down := anchor, anchor
	if len(rooms) > 0 {
		up = rooms[0].CenterPoint()
		down = rooms[len(rooms)-1].CenterPoint()
	}
	gmap.Upstairs = up
	gmap.Downstairs = down
	if style.StampUpstairs {
		gmap.SetIfInBounds(up.X, up.Y, style.UpstairsTile)
	}
	gmap.SetIfInBounds(down.X, down.Y, style.DownstairsTile)
}
