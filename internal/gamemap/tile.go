package gamemap

import "github.com/gdamore/tcell/v2"

// TileID indexes a TileKind in a Catalog. Grids store ids, never kinds.
type TileID uint8

const (
	TileChasm TileID = iota
	TileConcreteFloor
	TileConcreteWall
	TileRedWall
	TileWoodFloor
	TileConcreteHighway
	TileFog
	TileDownStairs
	TileUpStairs
	TileDownLadder
	TileUpLadder
)

// Glyph is one way of drawing a cell.
type Glyph struct {
	Ch rune
	FG tcell.Color
	BG tcell.Color
}

// Shroud is drawn for cells that were never seen.
var Shroud = Glyph{Ch: ' ', FG: tcell.ColorWhite, BG: tcell.ColorBlack}

// TileKind describes one kind of terrain. Values are registered in a Catalog
// and never changed afterwards.
type TileKind struct {
	ID   TileID
	Name string

	Walkable    bool
	Transparent bool
	// PartiallyOccluding kinds block direct sight but still let the viewer
	// make out what lies behind them (fog, columns).
	PartiallyOccluding bool
	FallThrough        bool
	StairsUp           bool
	StairsDown         bool

	Lit        Glyph // visible and lit
	Dark       Glyph // visible but unlit
	Obscured   Glyph // seen through a partial occluder
	Remembered Glyph // explored, not currently seen
}

// BlocksObscuredSight reports whether the kind stops the obscured pass.
func (k TileKind) BlocksObscuredSight() bool {
	return !k.Transparent && !k.PartiallyOccluding
}

func rgb(r, g, b int32) tcell.Color { return tcell.NewRGBColor(r, g, b) }

// Palette shared by the standard catalog.
var (
	colBlack       = rgb(0, 0, 0)
	colNavy        = rgb(0, 12, 25)
	colDkBlue      = rgb(20, 51, 103)
	colVdkBlue     = rgb(10, 26, 51)
	colHazy        = rgb(30, 35, 20)
	colDeep        = rgb(20, 20, 0)
	colNeutral     = rgb(138, 100, 0)
	colNeutralGray = rgb(128, 108, 64)
	colGray        = rgb(128, 128, 128)
	colOffWhite    = rgb(245, 231, 209)
	colRed         = rgb(242, 5, 50)
	colDkRed       = rgb(50, 0, 0)
	colBrown       = rgb(125, 91, 0)
	colMagenta     = rgb(255, 0, 70)
	colDeepMagenta = rgb(24, 0, 8)
	colDim         = rgb(20, 25, 10)
)

// standardKinds mirrors the terrain of the surface highway and the
// warehouse floors beneath it.
func standardKinds() []TileKind {
	floorish := func(id TileID, name string, ch rune, fg, bg tcell.Color) TileKind {
		return TileKind{
			ID: id, Name: name, Walkable: true, Transparent: true,
			Lit:        Glyph{ch, fg, bg},
			Dark:       Glyph{ch, colVdkBlue, colBlack},
			Obscured:   Glyph{'?', colGray, colBlack},
			Remembered: Glyph{ch, colDkBlue, colBlack},
		}
	}
	wall := func(id TileID, name string, fg, bg tcell.Color) TileKind {
		return TileKind{
			ID: id, Name: name,
			Lit:        Glyph{'#', fg, bg},
			Dark:       Glyph{'#', colHazy, colHazy},
			Obscured:   Glyph{'#', colDkBlue, colDkBlue},
			Remembered: Glyph{'#', colNavy, colNavy},
		}
	}
	stairs := func(id TileID, name string, ch rune, up bool) TileKind {
		k := floorish(id, name, ch, colBlack, colMagenta)
		k.Dark = Glyph{ch, colBlack, colDeepMagenta}
		k.Remembered = Glyph{ch, colDeepMagenta, colBlack}
		k.StairsUp = up
		k.StairsDown = !up
		return k
	}

	chasm := TileKind{
		ID: TileChasm, Name: "chasm", Walkable: true, Transparent: true, FallThrough: true,
		Lit:        Glyph{' ', colBlack, colBlack},
		Dark:       Glyph{' ', colBlack, colBlack},
		Obscured:   Glyph{' ', colBlack, colBlack},
		Remembered: Glyph{' ', colBlack, colBlack},
	}
	fog := floorish(TileFog, "fog", '░', colOffWhite, colNeutralGray)
	fog.Transparent = false
	fog.PartiallyOccluding = true
	fog.Dark = Glyph{'░', colGray, colDim}

	return []TileKind{
		chasm,
		floorish(TileConcreteFloor, "concrete floor", '.', colNeutralGray, colNavy),
		wall(TileConcreteWall, "concrete wall", colOffWhite, colGray),
		wall(TileRedWall, "red wall", colDkRed, colRed),
		floorish(TileWoodFloor, "wood floor", '.', colNeutral, colBrown),
		floorish(TileConcreteHighway, "concrete highway", '=', colGray, colDeep),
		fog,
		stairs(TileDownStairs, "down stairs", '>', false),
		stairs(TileUpStairs, "up stairs", '<', true),
		stairs(TileDownLadder, "down ladder", 'H', false),
		stairs(TileUpLadder, "up ladder", 'H', true),
	}
}
