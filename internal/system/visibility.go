package system

import (
	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"
)

// Observer is the read-only view of an actor that sight and light need.
type Observer struct {
	X, Y   int
	Vision int
	Light  int
}

// SightRadius blends vision and carried light: a tenth of vision in the
// dark, twice the light radius when lit, never more than vision.
func SightRadius(vision, light int) int {
	r := max(float64(vision)*0.1, float64(light*2))
	return int(min(r, float64(vision)))
}

// Recompute rebuilds the visible, obscured and lit layers of gmap for viewer
// and folds what was seen into Explored and Memory. actors are every light
// carrier on the floor; the viewer may be among them.
func Recompute(gmap *gamemap.GameMap, viewer Observer, actors []Observer) {
	w := gmap.Width
	rad := SightRadius(viewer.Vision, viewer.Light)

	ComputeFOV(gmap, viewer.X, viewer.Y, rad, func(x, y int) bool {
		return !gmap.IsTransparent(x, y)
	}, gmap.Visible)
	gmap.Visible.MaskCircle(w, viewer.X, viewer.Y, rad)

	// Partial occluders only block the direct pass, so the second pass
	// reaches past fog and columns. It keeps the blended radius as its mask.
	ComputeFOV(gmap, viewer.X, viewer.Y, viewer.Vision, gmap.BlocksObscuredSight, gmap.Obscured)
	gmap.Obscured.MaskCircle(w, viewer.X, viewer.Y, rad)
	gmap.Obscured.AndNot(gmap.Visible)

	gmap.Lit.Clear()
	scratch := gamemap.NewLayer(gmap.Width, gmap.Height)
	for _, a := range actors {
		if a.Light <= 0 {
			continue
		}
		ComputeFOV(gmap, a.X, a.Y, a.Light, func(x, y int) bool {
			return !gmap.IsTransparent(x, y)
		}, scratch)
		scratch.MaskCircle(w, a.X, a.Y, a.Light)
		gmap.Lit.Or(scratch)
	}

	if viewer.Light >= 1 {
		gmap.Explored.Or(gmap.Visible)
		gmap.Explored.Or(gmap.Obscured)
	}
	gmap.RememberVisible()
}

// ObserverOf reads an entity's position and effective senses.
func ObserverOf(w *ecs.World, id ecs.EntityID) (Observer, bool) {
	posComp := w.Get(id, component.CPosition)
	sensesComp := w.Get(id, component.CSenses)
	if posComp == nil || sensesComp == nil {
		return Observer{}, false
	}
	pos := posComp.(component.Position)
	senses := sensesComp.(component.Senses)
	if eqComp := w.Get(id, component.CEquipment); eqComp != nil {
		eq := eqComp.(component.Equipment)
		senses = senses.Effective(&eq)
	}
	return Observer{X: pos.X, Y: pos.Y, Vision: senses.Vision, Light: senses.Light}, true
}

// UpdateFOV gathers the viewer and every sensing entity on the floor from
// the world and runs Recompute. It is a no-op when the viewer has no
// position or senses.
func UpdateFOV(w *ecs.World, gmap *gamemap.GameMap, viewerID ecs.EntityID) {
	viewer, ok := ObserverOf(w, viewerID)
	if !ok {
		return
	}
	actors := make([]Observer, 0, gmap.Entities.Size())
	for _, id := range gmap.EntityIDs() {
		if !w.Alive(id) {
			continue
		}
		if o, ok := ObserverOf(w, id); ok {
			actors = append(actors, o)
		}
	}
	Recompute(gmap, viewer, actors)
}
