package render

import (
	"sort"
	"strings"

	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the status bar.
const hudRows = 3

// Unknown is drawn in place of an entity the viewer can see but not make out.
var Unknown = gamemap.Glyph{Ch: '?', FG: tcell.ColorGray, BG: tcell.ColorBlack}

// Renderer draws a floor onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	viewH := h - hudRows
	if viewH < 1 {
		viewH = 1
	}
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, viewH),
	}
}

// CenterOn recenters the camera on world position (x, y), unless the floor
// fits on screen whole.
func (r *Renderer) CenterOn(gmap *gamemap.GameMap, x, y int) {
	if gmap != nil && r.camera.Fit(gmap.Width, gmap.Height) {
		return
	}
	r.camera.Center(x, y)
}

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders terrain, then the floor's entities, then the viewer.
// The caller shows the screen after adding the HUD.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap, viewerID ecs.EntityID) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w, gmap, viewerID)
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			g := gmap.Glyph(x, y)
			r.putGlyph(sx, sy, g.Ch, tcell.StyleDefault.Foreground(g.FG).Background(g.BG))
		}
	}
}

// SortForDraw returns the floor's drawable entities, minus skip, in the
// order they should be painted.
func SortForDraw(w *ecs.World, gmap *gamemap.GameMap, skip ecs.EntityID) []ecs.EntityID {
	type keyed struct {
		id  ecs.EntityID
		key uint64
	}
	var list []keyed
	for _, id := range gmap.EntityIDs() {
		if id == skip || !w.Alive(id) {
			continue
		}
		c := w.Get(id, component.CRenderable)
		if c == nil || !w.Has(id, component.CPosition) {
			continue
		}
		list = append(list, keyed{id: id, key: component.DrawKey(c.(component.Renderable), id)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].key < list[j].key })
	out := make([]ecs.EntityID, len(list))
	for i, k := range list {
		out[i] = k.id
	}
	return out
}

// EntityGlyph decides how an entity at (x, y) appears: its own glyph when
// the cell is lit and visible, the unknown marker when it is only dimly seen
// or obscured, and nothing otherwise.
func EntityGlyph(gmap *gamemap.GameMap, rend component.Renderable, x, y int) (gamemap.Glyph, bool) {
	switch gmap.RenderState(x, y) {
	case gamemap.StateLit:
		return gamemap.Glyph{Ch: rend.Glyph, FG: rend.FG, BG: tcell.ColorBlack}, true
	case gamemap.StateDark, gamemap.StateObscured:
		return Unknown, true
	}
	return gamemap.Glyph{}, false
}

func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap, viewerID ecs.EntityID) {
	for _, id := range SortForDraw(w, gmap, viewerID) {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		g, ok := EntityGlyph(gmap, rend, pos.X, pos.Y)
		if !ok {
			continue
		}
		r.putAt(pos.X, pos.Y, g)
	}

	// The viewer always draws last, whatever the lighting.
	pc := w.Get(viewerID, component.CPosition)
	rc := w.Get(viewerID, component.CRenderable)
	if pc == nil || rc == nil {
		return
	}
	pos := pc.(component.Position)
	rend := rc.(component.Renderable)
	r.putAt(pos.X, pos.Y, gamemap.Glyph{Ch: rend.Glyph, FG: rend.FG, BG: tcell.ColorBlack})
}

func (r *Renderer) putAt(wx, wy int, g gamemap.Glyph) {
	sx, sy, onScreen := r.camera.WorldToScreen(wx, wy)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, g.Ch, tcell.StyleDefault.Foreground(g.FG).Background(g.BG))
}

// putGlyph draws a single rune at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
	if runewidth.RuneWidth(ch) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// ASCII dumps the floor as text, one line per row. With reveal set every
// cell shows its lit glyph; otherwise the normal visibility precedence
// applies and the viewer's knowledge is what gets printed.
func ASCII(gmap *gamemap.GameMap, reveal bool) string {
	var b strings.Builder
	b.Grow((gmap.Width + 1) * gmap.Height)
	cat := gmap.Catalog()
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if reveal {
				b.WriteRune(cat.Kind(gmap.At(x, y)).Lit.Ch)
				continue
			}
			b.WriteRune(gmap.Glyph(x, y).Ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
