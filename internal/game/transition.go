package game

import (
	"fmt"

	"deepfloor/internal/factory"
	"deepfloor/internal/gamemap"
	"deepfloor/internal/generate"
	"deepfloor/internal/system"

	"go.uber.org/zap"
)

// Descend moves the viewer one floor down.
func (s *Session) Descend() error { return s.transition(1) }

// Ascend moves the viewer one floor up. The surface has nothing above it.
func (s *Session) Ascend() error {
	if s.coord.Depth() == 0 {
		s.addMessage("There is only sky above.")
		return ErrNoFloorAbove
	}
	return s.transition(-1)
}

// transition swaps the active floor. Nothing observable changes unless the
// whole move succeeds: a failed save or load leaves the session on the
// floor it started from.
func (s *Session) transition(dy int) error {
	from := s.coord
	to := gamemap.Coord{X: from.X, Y: from.Y + dy}
	pos := s.ViewerPos()
	log := s.log.With(zap.Stringer("from", from), zap.Stringer("to", to))

	if err := s.opts.Cache.Save(from, s.gmap); err != nil {
		s.runLog.FailedTransitions++
		log.Error("save failed, staying put", zap.Error(err))
		return err
	}

	var (
		next       *gamemap.GameMap
		spawns     []generate.Spawn
		firstVisit bool
	)
	if s.opts.Cache.HasFloor(to) {
		m, err := s.opts.Cache.Load(to, s.opts.Catalog, s.viewer)
		if err != nil {
			s.runLog.FailedTransitions++
			log.Error("load failed, staying put", zap.Error(err))
			return err
		}
		next = m
		s.runLog.FloorsLoaded++
	} else {
		res, err := s.generate(to, pos)
		if err != nil {
			s.runLog.FailedTransitions++
			return fmt.Errorf("generate %s: %w", to, err)
		}
		next, spawns, firstVisit = res.Map, res.Spawns, true
		s.opts.Cache.MarkGenerated(to)
		s.runLog.FloorsGenerated++
	}

	arrival := arrivalPoint(next, dy, firstVisit, pos)
	if firstVisit {
		arrival = stampArrivalStairs(next, dy, arrival)
		spawns = spawnsAwayFrom(spawns, arrival)
	}

	s.despawnFloor(s.gmap)
	next.ResetEntities(s.viewer)
	s.gmap, s.coord = next, to
	s.setViewerPos(arrival)
	factory.SpawnAll(s.world, next, spawns, s.log)
	system.UpdateFOV(s.world, s.gmap, s.viewer)

	if dy > 0 {
		s.runLog.Descents++
		s.addMessage("You descend the staircase.")
	} else {
		s.runLog.Ascents++
		s.addMessage("You ascend the staircase.")
	}
	s.runLog.DeepestDepth = max(s.runLog.DeepestDepth, to.Depth())
	log.Info("changed floor",
		zap.Bool("generated", firstVisit),
		zap.Int("x", arrival.X), zap.Int("y", arrival.Y))
	return nil
}

// arrivalPoint picks where the viewer lands. Known floors use their stairs;
// fresh floors grown around the viewer use the anchor, except the surface,
// which is entered by its ladder.
func arrivalPoint(m *gamemap.GameMap, dy int, firstVisit bool, anchor gamemap.Point) gamemap.Point {
	if dy > 0 {
		if firstVisit {
			return anchor
		}
		return m.Upstairs
	}
	if !firstVisit || m.Coord.Depth() == 0 {
		return m.Downstairs
	}
	return anchor
}

// stampArrivalStairs makes sure the viewer can go back the way they came
// and returns where they land. A cell already holding the other stair keeps
// it; the new stair goes on the nearest free floor cell instead.
func stampArrivalStairs(m *gamemap.GameMap, dy int, at gamemap.Point) gamemap.Point {
	k := m.Kind(at.X, at.Y)
	if dy > 0 {
		if !k.StairsUp {
			if k.StairsDown {
				at = nearestFreeFloor(m, at)
			}
			up := gamemap.TileUpStairs
			if m.Coord.Depth() == 1 {
				up = gamemap.TileUpLadder
			}
			m.Set(at.X, at.Y, up)
		}
		m.Upstairs = at
		return at
	}
	if !k.StairsDown {
		if k.StairsUp {
			at = nearestFreeFloor(m, at)
		}
		m.Set(at.X, at.Y, gamemap.TileDownStairs)
	}
	m.Downstairs = at
	return at
}

// spawnsAwayFrom drops any spawn sitting on p.
func spawnsAwayFrom(spawns []generate.Spawn, p gamemap.Point) []generate.Spawn {
	out := spawns[:0]
	for _, sp := range spawns {
		if sp.X != p.X || sp.Y != p.Y {
			out = append(out, sp)
		}
	}
	return out
}

// nearestFreeFloor searches growing squares around at for a walkable cell
// that holds no stairs and does not drop the walker. It returns at when the
// floor has none.
func nearestFreeFloor(m *gamemap.GameMap, at gamemap.Point) gamemap.Point {
	for r := 1; r < max(m.Width, m.Height); r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := at.X+dx, at.Y+dy
				if !m.InBounds(x, y) {
					continue
				}
				k := m.Kind(x, y)
				if k.Walkable && !k.FallThrough && !k.StairsUp && !k.StairsDown {
					return gamemap.Point{X: x, Y: y}
				}
			}
		}
	}
	return at
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// despawnFloor destroys every entity on m except the viewer. Carried items
// never sit on a floor, so they survive too.
func (s *Session) despawnFloor(m *gamemap.GameMap) {
	for _, id := range m.EntityIDs() {
		if id == s.viewer {
			continue
		}
		m.RemoveEntity(id)
		s.world.DestroyEntity(id)
	}
	m.ResetEntities()
}
