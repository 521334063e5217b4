package gamemap

// Layer is a row-major boolean mask the size of a floor.
type Layer []bool

// NewLayer allocates a cleared layer.
func NewLayer(width, height int) Layer {
	return make(Layer, width*height)
}

// Clear resets every cell to false.
func (l Layer) Clear() {
	for i := range l {
		l[i] = false
	}
}

// Or sets every cell that is set in other.
func (l Layer) Or(other Layer) {
	for i, v := range other {
		if v {
			l[i] = true
		}
	}
}

// AndNot clears every cell that is set in other.
func (l Layer) AndNot(other Layer) {
	for i, v := range other {
		if v {
			l[i] = false
		}
	}
}

// Count returns the number of set cells.
func (l Layer) Count() int {
	n := 0
	for _, v := range l {
		if v {
			n++
		}
	}
	return n
}

// MaskCircle clears every cell farther than radius from (cx, cy).
func (l Layer) MaskCircle(width, cx, cy, radius int) {
	r2 := radius * radius
	for i := range l {
		if !l[i] {
			continue
		}
		dx, dy := i%width-cx, i/width-cy
		if dx*dx+dy*dy > r2 {
			l[i] = false
		}
	}
}
