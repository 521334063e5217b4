package component

import (
	"deepfloor/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// RenderOrder groups entities into draw layers; higher layers are drawn on top.
type RenderOrder uint8

const (
	OrderCorpse RenderOrder = iota
	OrderItem
	OrderActor
)

type Renderable struct {
	Glyph rune
	FG    tcell.Color
	Order RenderOrder
	// Value breaks ties inside a layer: more valuable things draw later.
	Value int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// DrawKey sorts entities for drawing: layer first, then value, then identity.
func DrawKey(r Renderable, id ecs.EntityID) uint64 {
	return uint64(r.Order)*10_000_000 + uint64(r.Value)*100_000 + uint64(id.Index())
}
