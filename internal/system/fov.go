package system

import "deepfloor/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// opacityFunc reports whether (x, y) stops sight. It must treat cells off
// the floor as opaque.
type opacityFunc func(x, y int) bool

// fovScan collects one shadowcasting pass into a layer.
type fovScan struct {
	gmap   *gamemap.GameMap
	opaque opacityFunc
	out    gamemap.Layer
}

// ComputeFOV marks in out every cell visible from (cx, cy) out to radius
// rows in each octant. The origin is always marked. The result is not
// circular; callers mask it.
func ComputeFOV(gmap *gamemap.GameMap, cx, cy, radius int, opaque opacityFunc, out gamemap.Layer) {
	out.Clear()
	if !gmap.InBounds(cx, cy) {
		return
	}
	out[gmap.Index(cx, cy)] = true
	s := fovScan{gmap: gmap, opaque: opaque, out: out}
	for _, m := range octants {
		s.castLight(cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
}

// castLight casts light for one octant using recursive shadowcasting.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func (s *fovScan) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if s.gmap.InBounds(wx, wy) {
				s.out[s.gmap.Index(wx, wy)] = true
			}

			opaque := s.opaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				s.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
