package generate

import (
	"math/rand"

	"deepfloor/internal/gamemap"
)

// tunnelBetween returns the cells of an L-shaped tunnel from a to b. The
// corner sits at (b.X, a.Y) or (a.X, b.Y) with equal odds.
func tunnelBetween(rng *rand.Rand, a, b gamemap.Point) []gamemap.Point {
	corner := gamemap.Point{X: a.X, Y: b.Y}
	if rng.Float64() < 0.5 {
		corner = gamemap.Point{X: b.X, Y: a.Y}
	}
	path := bresenham(a, corner)
	return append(path, bresenham(corner, b)...)
}

// carveTunnel writes style.TunnelTile along the tunnel, leaving room floor
// untouched.
func carveTunnel(gmap *gamemap.GameMap, rng *rand.Rand, style *Style, a, b gamemap.Point) {
	for _, p := range tunnelBetween(rng, a, b) {
		if !gmap.InBounds(p.X, p.Y) || gmap.At(p.X, p.Y) == style.FloorTile {
			continue
		}
		gmap.Set(p.X, p.Y, style.TunnelTile)
	}
}

// bresenham returns the cells on the line from a to b, both ends included.
func bresenham(a, b gamemap.Point) []gamemap.Point {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy
	x, y := a.X, a.Y
	out := make([]gamemap.Point, 0, max(dx, -dy)+1)
	for {
		out = append(out, gamemap.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
