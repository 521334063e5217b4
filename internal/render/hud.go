package render

import (
	"fmt"

	"deepfloor/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Status is what the bar under the map reports.
type Status struct {
	Coord  gamemap.Coord
	Vision int
	Light  int
	Radius int
	Under  string // name of the tile the viewer stands on
}

// StatusLine formats the status bar text.
func StatusLine(s Status) string {
	return fmt.Sprintf("Depth %d  [%s]  Vision:%d Light:%d Sight:%d  %s",
		s.Coord.Depth(), s.Coord, s.Vision, s.Light, s.Radius, s.Under)
}

// DrawHUD renders the status bar and the latest message, then shows the screen.
func (r *Renderer) DrawHUD(s Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, StatusLine(s), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if n := len(messages); n > 0 {
		r.drawText(0, hudY+2, messages[n-1], tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
