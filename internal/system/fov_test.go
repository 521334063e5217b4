package system

import (
	"testing"

	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"
)

// openMapFOV creates a fully-open (all floor) map for FOV tests.
func openMapFOV(width, height int) *gamemap.GameMap {
	return gamemap.New(width, height, gamemap.TileConcreteFloor, gamemap.StandardCatalog())
}

func visible(gmap *gamemap.GameMap, x, y int) bool  { return gmap.Visible[gmap.Index(x, y)] }
func obscured(gmap *gamemap.GameMap, x, y int) bool { return gmap.Obscured[gmap.Index(x, y)] }
func explored(gmap *gamemap.GameMap, x, y int) bool { return gmap.Explored[gmap.Index(x, y)] }

func TestSightRadius(t *testing.T) {
	cases := []struct{ vision, light, want int }{
		{32, 0, 3},
		{32, 4, 8},
		{32, 20, 32},
		{5, 1, 2},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := SightRadius(c.vision, c.light); got != c.want {
			t.Errorf("SightRadius(%d,%d) = %d, want %d", c.vision, c.light, got, c.want)
		}
	}
}

func TestFOVOriginAlwaysVisible(t *testing.T) {
	gmap := openMapFOV(20, 20)
	Recompute(gmap, Observer{X: 5, Y: 5, Vision: 0, Light: 1}, nil)
	if !visible(gmap, 5, 5) {
		t.Error("viewer's own tile must always be visible")
	}
	if !explored(gmap, 5, 5) {
		t.Error("viewer's own tile must be marked explored")
	}
}

func TestFOVClearsOldVisibility(t *testing.T) {
	gmap := openMapFOV(20, 20)
	for i := range gmap.Visible {
		gmap.Visible[i] = true
	}
	Recompute(gmap, Observer{X: 5, Y: 5, Vision: 32}, nil)
	if visible(gmap, 19, 19) {
		t.Error("Recompute should clear stale visibility before recalculating")
	}
}

func TestDarkViewerSeesRadiusThree(t *testing.T) {
	gmap := openMapFOV(30, 30)
	Recompute(gmap, Observer{X: 15, Y: 15, Vision: 32, Light: 0}, nil)

	for _, p := range [][2]int{{15, 12}, {18, 15}, {17, 17}} {
		if !visible(gmap, p[0], p[1]) {
			t.Errorf("(%d,%d) within radius 3 should be visible", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{15, 11}, {19, 15}, {18, 18}} {
		if visible(gmap, p[0], p[1]) {
			t.Errorf("(%d,%d) beyond radius 3 should not be visible", p[0], p[1])
		}
	}
	if gmap.Explored.Count() != 0 {
		t.Error("a viewer without light must not explore")
	}
}

func TestVisibleIsCircular(t *testing.T) {
	gmap := openMapFOV(40, 40)
	v := Observer{X: 20, Y: 20, Vision: 32, Light: 5}
	Recompute(gmap, v, nil)
	rad := SightRadius(v.Vision, v.Light)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			dx, dy := x-v.X, y-v.Y
			if visible(gmap, x, y) && dx*dx+dy*dy > rad*rad {
				t.Fatalf("(%d,%d) visible beyond radius %d", x, y, rad)
			}
		}
	}
}

func TestFOVWallBlocks(t *testing.T) {
	gmap := openMapFOV(20, 20)
	gmap.Set(10, 8, gamemap.TileConcreteWall)
	Recompute(gmap, Observer{X: 10, Y: 10, Vision: 32, Light: 5}, nil)

	if !visible(gmap, 10, 8) {
		t.Error("the wall itself should be visible")
	}
	if visible(gmap, 10, 6) {
		t.Error("tile behind the wall should not be visible")
	}
	if obscured(gmap, 10, 6) {
		t.Error("walls also block the obscured pass")
	}
}

func TestFogObscuresWithoutBlocking(t *testing.T) {
	gmap := openMapFOV(20, 11)
	gmap.Set(7, 5, gamemap.TileFog)
	Recompute(gmap, Observer{X: 5, Y: 5, Vision: 32, Light: 4}, nil)

	if visible(gmap, 9, 5) {
		t.Error("cell straight behind fog should not be directly visible")
	}
	if !obscured(gmap, 9, 5) {
		t.Error("cell straight behind fog should be obscured-but-visible")
	}
	if !explored(gmap, 9, 5) {
		t.Error("obscured cells count as explored for a lit viewer")
	}
	if gmap.RenderState(9, 5) != gamemap.StateObscured {
		t.Errorf("render state = %v, want obscured", gmap.RenderState(9, 5))
	}
}

func TestVisibilityLayerLaws(t *testing.T) {
	gmap := openMapFOV(30, 20)
	gmap.Set(12, 10, gamemap.TileFog)
	gmap.Set(14, 8, gamemap.TileRedWall)
	viewer := Observer{X: 10, Y: 10, Vision: 32, Light: 3}
	actors := []Observer{viewer, {X: 20, Y: 10, Vision: 8, Light: 2}}

	prevExplored := gamemap.NewLayer(gmap.Width, gmap.Height)
	for step := 0; step < 4; step++ {
		viewer.X += step
		actors[0] = viewer
		Recompute(gmap, viewer, actors)
		for i := range gmap.Visible {
			if gmap.Visible[i] && gmap.Obscured[i] {
				t.Fatalf("cell %d both visible and obscured", i)
			}
			if prevExplored[i] && !gmap.Explored[i] {
				t.Fatalf("explored cell %d was forgotten", i)
			}
		}
		copy(prevExplored, gmap.Explored)
	}
}

func TestLightFromOtherActors(t *testing.T) {
	gmap := openMapFOV(30, 10)
	viewer := Observer{X: 5, Y: 5, Vision: 32, Light: 0}
	lamp := Observer{X: 15, Y: 5, Light: 2}
	Recompute(gmap, viewer, []Observer{viewer, lamp})

	if !gmap.Lit[gmap.Index(16, 5)] {
		t.Error("cell next to the lamp should be lit")
	}
	if gmap.Lit[gmap.Index(5, 5)] {
		t.Error("viewer without light should stand in the dark")
	}
	if gmap.LitAndVisible(16, 5) {
		t.Error("lit cells out of sight are not lit-and-visible")
	}
}

func TestMemoryTracksVisibleTerrain(t *testing.T) {
	gmap := openMapFOV(10, 10)
	gmap.Set(6, 5, gamemap.TileRedWall)
	Recompute(gmap, Observer{X: 5, Y: 5, Vision: 32, Light: 2}, nil)
	if got := gmap.Memory[gmap.Index(6, 5)]; got != gamemap.TileRedWall {
		t.Fatalf("memory = %d, want red wall", got)
	}
}

func TestUpdateFOVUsesEquipmentLight(t *testing.T) {
	gmap := openMapFOV(40, 40)
	w := ecs.NewWorld()
	viewer := w.CreateEntity()
	w.Add(viewer, component.Position{X: 20, Y: 20})
	w.Add(viewer, component.Senses{Vision: 32})
	var eq component.Equipment
	eq.Toggle(99, component.Equippable{Kind: component.KindWeapon, Light: 4}, true)
	w.Add(viewer, eq)
	gmap.AddEntity(viewer)

	UpdateFOV(w, gmap, viewer)

	if !visible(gmap, 28, 20) {
		t.Error("torch light 4 should give sight radius 8")
	}
	if visible(gmap, 29, 20) {
		t.Error("sight radius 8 should stop before distance 9")
	}
	if !gmap.LitAndVisible(24, 20) {
		t.Error("cells in torch light should be lit and visible")
	}
}

func TestUpdateFOVWithoutSensesIsNoop(t *testing.T) {
	gmap := openMapFOV(10, 10)
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Position{X: 1, Y: 1})
	UpdateFOV(w, gmap, id)
	if gmap.Visible.Count() != 0 {
		t.Fatal("no senses means nothing recomputed")
	}
}
