package generate

import (
	"deepfloor/internal/gamemap"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// passPather walks the four cardinal neighbours that are passable.
type passPather struct {
	gmap *gamemap.GameMap
	nbs  paths.Neighbors
}

func (pp *passPather) Neighbors(p gruid.Point) []gruid.Point {
	return pp.nbs.Cardinal(p, func(q gruid.Point) bool {
		return pp.gmap.IsPassable(q.X, q.Y)
	})
}

// Reachable reports whether to can be walked to from from without stepping
// on a tile that drops the walker a floor.
func Reachable(gmap *gamemap.GameMap, from, to gamemap.Point) bool {
	if !gmap.IsPassable(from.X, from.Y) || !gmap.IsPassable(to.X, to.Y) {
		return false
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, gmap.Width, gmap.Height))
	target := gruid.Point{X: to.X, Y: to.Y}
	for _, p := range pr.CCMap(&passPather{gmap: gmap}, gruid.Point{X: from.X, Y: from.Y}) {
		if p == target {
			return true
		}
	}
	return false
}
