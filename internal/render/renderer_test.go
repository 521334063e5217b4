package render

import (
	"strings"
	"testing"

	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func scene(t *testing.T) (*ecs.World, *gamemap.GameMap, ecs.EntityID, ecs.EntityID) {
	t.Helper()
	gmap := gamemap.New(10, 5, gamemap.TileConcreteFloor, gamemap.StandardCatalog())
	w := ecs.NewWorld()

	viewer := w.CreateEntity()
	w.Add(viewer, component.Position{X: 2, Y: 2})
	w.Add(viewer, component.Renderable{Glyph: '@', FG: tcell.ColorWhite, Order: component.OrderActor})
	gmap.AddEntity(viewer)

	mon := w.CreateEntity()
	w.Add(mon, component.Position{X: 5, Y: 2})
	w.Add(mon, component.Renderable{Glyph: 'd', FG: tcell.ColorBlue, Order: component.OrderActor})
	gmap.AddEntity(mon)
	return w, gmap, viewer, mon
}

func cellAt(s tcell.SimulationScreen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(50, 20, 40, 10)
	sx, sy, ok := c.WorldToScreen(50, 20)
	if !ok || sx != 20 || sy != 5 {
		t.Fatalf("center maps to (%d,%d,%v), want (20,5,true)", sx, sy, ok)
	}
	if x, y := c.ScreenToWorld(sx, sy); x != 50 || y != 20 {
		t.Errorf("ScreenToWorld = (%d,%d), want (50,20)", x, y)
	}
	if _, _, ok := c.WorldToScreen(0, 0); ok {
		t.Error("far corner should be off screen")
	}
}

func TestCameraFit(t *testing.T) {
	c := NewCamera(5, 5, 20, 10)
	if !c.Fit(20, 10) || c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("exact fit should pin to origin, got offset (%d,%d)", c.OffsetX, c.OffsetY)
	}
	if c.Fit(21, 10) {
		t.Error("wider map should not fit")
	}
}

func TestEntityShownOnlyWhenLitAndVisible(t *testing.T) {
	tests := []struct {
		name         string
		visible, lit bool
		obscured     bool
		want         rune
	}{
		{"lit and visible", true, true, false, 'd'},
		{"visible but dark", true, false, false, '?'},
		{"obscured", false, false, true, '?'},
		{"unseen", false, true, false, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, gmap, viewer, _ := scene(t)
			i := gmap.Index(5, 2)
			gmap.Visible[i] = tt.visible
			gmap.Lit[i] = tt.lit
			gmap.Obscured[i] = tt.obscured

			s := newScreen(t, 20, 10)
			r := NewRenderer(s)
			r.CenterOn(gmap, 2, 2)
			r.DrawFrame(w, gmap, viewer)

			if got := cellAt(s, 5, 2); got != tt.want {
				t.Errorf("cell = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewerDrawnLastEvenInDarkness(t *testing.T) {
	w, gmap, viewer, mon := scene(t)
	// Park the monster on the viewer's cell; the viewer must still win.
	w.Add(mon, component.Position{X: 2, Y: 2})
	i := gmap.Index(2, 2)
	gmap.Visible[i], gmap.Lit[i] = true, true

	s := newScreen(t, 20, 10)
	r := NewRenderer(s)
	r.CenterOn(gmap, 2, 2)
	r.DrawFrame(w, gmap, viewer)

	if got := cellAt(s, 2, 2); got != '@' {
		t.Errorf("viewer cell = %q, want '@'", got)
	}
}

func TestSortForDrawOrdersByKey(t *testing.T) {
	w, gmap, viewer, mon := scene(t)
	item := w.CreateEntity()
	w.Add(item, component.Position{X: 1, Y: 1})
	w.Add(item, component.Renderable{Glyph: '!', Order: component.OrderItem, Value: 1})
	gmap.AddEntity(item)

	// Not on this floor: never drawn.
	stray := w.CreateEntity()
	w.Add(stray, component.Position{X: 1, Y: 1})
	w.Add(stray, component.Renderable{Glyph: 'x', Order: component.OrderCorpse})

	got := SortForDraw(w, gmap, viewer)
	if len(got) != 2 || got[0] != item || got[1] != mon {
		t.Errorf("SortForDraw = %v, want [%v %v]", got, item, mon)
	}
}

func TestASCIIRevealAndKnowledge(t *testing.T) {
	gmap := gamemap.New(3, 2, gamemap.TileConcreteFloor, gamemap.StandardCatalog())
	gmap.Set(1, 0, gamemap.TileConcreteWall)

	if got, want := ASCII(gmap, true), ".#.\n...\n"; got != want {
		t.Errorf("reveal dump = %q, want %q", got, want)
	}
	if got := ASCII(gmap, false); strings.Trim(got, " \n") != "" {
		t.Errorf("unexplored dump should be blank, got %q", got)
	}

	gmap.Explored[gmap.Index(1, 0)] = true
	gmap.Memory[gmap.Index(1, 0)] = gamemap.TileConcreteWall
	if got, want := ASCII(gmap, false), " # \n   \n"; got != want {
		t.Errorf("knowledge dump = %q, want %q", got, want)
	}
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(Status{Coord: gamemap.Coord{X: 40, Y: 3}, Vision: 32, Light: 4, Radius: 8, Under: "down stairs"})
	for _, want := range []string{"Depth 3", "[40,3]", "Sight:8", "down stairs"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}
