package generate

import (
	"math/rand"

	"deepfloor/internal/gamemap"

	"go.uber.org/zap"
)

// roomBuilder carries the state of one run of the accretion loop.
type roomBuilder struct {
	gmap     *gamemap.GameMap
	rng      *rand.Rand
	style    *Style
	tables   *Tables
	depth    int
	anchor   gamemap.Point
	rooms    []gamemap.Rect
	spawns   []Spawn
	occupied map[gamemap.Point]bool
	log      *zap.Logger

	iterations int
	seedAnchor gamemap.Point
}

// makeRooms proposes rooms until MaxRooms are accepted or MaxIterations
// proposals were made. It reports whether the budget ran out first.
func (b *roomBuilder) makeRooms() (exhausted bool) {
	s := b.style
	accepted := 0
	for b.iterations < s.MaxIterations && len(b.rooms) < s.MaxRooms {
		b.iterations++

		w := randInt(b.rng, s.MinRoomSize, s.MaxRoomSize)
		h := randInt(b.rng, s.MinRoomSize, s.MaxRoomSize)

		var x, y int
		if accepted == 0 && s.AnchorFirstRoom {
			// The anchored room is pulled back onto the floor when the
			// arrival point sits too close to an edge.
			x = clamp(b.anchor.X-w/2, 0, b.gmap.Width-w-1)
			y = clamp(b.anchor.Y-h/2, 0, b.gmap.Height-h-1)
		} else {
			x = randInt(b.rng, 0, b.gmap.Width-w-1)
			y = randInt(b.rng, 0, b.gmap.Height-h-1)
		}
		b.seedAnchor = gamemap.Point{X: x, Y: y}
		room := gamemap.NewRect(x, y, w, h)

		if b.intersectsAny(room) {
			continue
		}
		if n := len(b.rooms); n > 0 && s.MaxTunnelDistance > 0 &&
			room.Chebyshev(b.rooms[n-1]) >= s.MaxTunnelDistance {
			continue
		}

		if s.Walls {
			b.stampWalls(room)
		}
		center := room.CenterPoint()
		if accepted > 0 && b.rng.Float64() < s.TunnelFromPrev {
			carveTunnel(b.gmap, b.rng, s, b.rooms[len(b.rooms)-1].CenterPoint(), center)
		}
		if len(b.rooms) > 0 && len(b.rooms) >= s.ConnectBackMinRooms && b.rng.Float64() < s.ConnectBack {
			carveTunnel(b.gmap, b.rng, s, b.rooms[0].CenterPoint(), center)
		}
		room.EachInner(func(x, y int) {
			b.gmap.SetIfInBounds(x, y, s.FloorTile)
		})
		accepted++

		b.spawns = append(b.spawns, populateRoom(b.rng, b.gmap, room, b.depth,
			b.tables, s.PlacementAttempts, b.occupied, b.log)...)
		b.rooms = append(b.rooms, room)
	}
	return len(b.rooms) < s.MaxRooms
}

func (b *roomBuilder) intersectsAny(room gamemap.Rect) bool {
	for _, other := range b.rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// stampWalls rings the room with wall tiles without cutting through floor
// or tunnels that are already there.
func (b *roomBuilder) stampWalls(room gamemap.Rect) {
	s := b.style
	room.EachOuter(func(x, y int) {
		if !b.gmap.InBounds(x, y) {
			return
		}
		if t := b.gmap.At(x, y); t != s.FloorTile && t != s.TunnelTile {
			b.gmap.Set(x, y, s.WallTile)
		}
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
