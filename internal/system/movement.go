package system

import (
	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped a blocking entity
	MoveFell                      // stepped onto a tile that drops to the floor below
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	case MoveFell:
		return "fell"
	}
	return "unknown"
}

// TryMove attempts to move entity id by (dx, dy) on gmap.
// Returns the outcome and, for MoveAttack, the entity bumped into. Only
// entities on gmap can block. On MoveFell the position is already updated;
// what falling means is up to the caller.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if other := BlockingAt(w, gmap, nx, ny, id); other != ecs.NilEntity {
		return MoveAttack, other
	}

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	if gmap.Kind(nx, ny).FallThrough {
		return MoveFell, ecs.NilEntity
	}
	return MoveOK, ecs.NilEntity
}

// BlockingAt returns a blocking entity on gmap standing at (x, y), ignoring
// skip, or NilEntity.
func BlockingAt(w *ecs.World, gmap *gamemap.GameMap, x, y int, skip ecs.EntityID) ecs.EntityID {
	for _, other := range gmap.EntityIDs() {
		if other == skip || !w.Has(other, component.CTagBlocking) {
			continue
		}
		posComp := w.Get(other, component.CPosition)
		if posComp == nil {
			continue
		}
		if p := posComp.(component.Position); p.X == x && p.Y == y {
			return other
		}
	}
	return ecs.NilEntity
}
