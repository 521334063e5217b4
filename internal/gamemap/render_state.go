package gamemap

// RenderState is how a cell should be drawn given the visibility layers.
type RenderState uint8

const (
	StateShroud RenderState = iota
	StateRemembered
	StateObscured
	StateDark
	StateLit
)

func (s RenderState) String() string {
	switch s {
	case StateLit:
		return "lit"
	case StateDark:
		return "dark"
	case StateObscured:
		return "obscured"
	case StateRemembered:
		return "remembered"
	}
	return "shroud"
}

// RenderState applies the precedence lit-and-visible, visible, obscured,
// explored, shroud. Out-of-bounds cells are shroud.
func (m *GameMap) RenderState(x, y int) RenderState {
	if !m.InBounds(x, y) {
		return StateShroud
	}
	i := m.Index(x, y)
	switch {
	case m.Visible[i] && m.Lit[i]:
		return StateLit
	case m.Visible[i]:
		return StateDark
	case m.Obscured[i]:
		return StateObscured
	case m.Explored[i]:
		return StateRemembered
	}
	return StateShroud
}

// Glyph returns what to draw at (x, y). Terrain comes from Memory, which the
// visibility pass keeps current for visible cells.
func (m *GameMap) Glyph(x, y int) Glyph {
	state := m.RenderState(x, y)
	if state == StateShroud {
		return Shroud
	}
	k := m.catalog.Kind(m.Memory[m.Index(x, y)])
	switch state {
	case StateLit:
		return k.Lit
	case StateDark:
		return k.Dark
	case StateObscured:
		return k.Obscured
	}
	return k.Remembered
}
