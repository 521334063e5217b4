package factory

import (
	"errors"
	"fmt"

	"deepfloor/assets"
	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"
	"deepfloor/internal/generate"

	"go.uber.org/zap"
)

// ErrUnknownTemplate is returned when a spawn names no known template.
var ErrUnknownTemplate = errors.New("unknown template")

// NewViewer creates the viewer at (x, y), wearing the starting kit: a metal
// dagger in the main hand, a gambeson and a torch in the off hand.
func NewViewer(w *ecs.World, x, y int) ecs.EntityID {
	t := assets.Viewer
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: t.Glyph, FG: t.FG, Order: component.OrderActor, Value: t.Value})
	w.Add(id, component.Name{Template: t.Name, Display: t.Name})
	w.Add(id, t.Senses)
	w.Add(id, component.Combat{Attack: t.Attack, Damage: t.Damage})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})

	var eq component.Equipment
	for _, kit := range []struct {
		name    string
		offhand bool
	}{
		{assets.MetalDagger, false},
		{assets.Gambeson, false},
		{assets.Torch, true},
	} {
		item, stats, err := newCarried(w, kit.name)
		if err != nil {
			// The kit is part of the asset tables; a miss is a build error.
			panic(err)
		}
		eq.Toggle(item, stats, kit.offhand)
	}
	w.Add(id, eq)
	return id
}

// NewMonster creates a monster from its template at (x, y).
func NewMonster(w *ecs.World, name string, x, y int) (ecs.EntityID, error) {
	t, ok := assets.Monster(name)
	if !ok {
		return ecs.NilEntity, fmt.Errorf("monster %q: %w", name, ErrUnknownTemplate)
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: t.Glyph, FG: t.FG, Order: component.OrderActor, Value: t.Value})
	w.Add(id, component.Name{Template: t.Name, Display: "the " + t.Name})
	w.Add(id, t.Senses)
	w.Add(id, component.Combat{Attack: t.Attack, Damage: t.Damage})
	w.Add(id, component.TagBlocking{})
	return id, nil
}

// NewItem creates an item lying on the floor at (x, y).
func NewItem(w *ecs.World, name string, x, y int) (ecs.EntityID, error) {
	id, _, err := newCarried(w, name)
	if err != nil {
		return ecs.NilEntity, err
	}
	w.Add(id, component.Position{X: x, Y: y})
	return id, nil
}

// newCarried builds an item with no position, as if held in a pack.
func newCarried(w *ecs.World, name string) (ecs.EntityID, component.Equippable, error) {
	t, ok := assets.Item(name)
	if !ok {
		return ecs.NilEntity, component.Equippable{}, fmt.Errorf("item %q: %w", name, ErrUnknownTemplate)
	}
	id := w.CreateEntity()
	w.Add(id, component.Renderable{Glyph: t.Glyph, FG: t.FG, Order: component.OrderItem, Value: t.Value})
	w.Add(id, component.Name{Template: t.Name, Display: t.Name})
	w.Add(id, component.TagItem{})
	var stats component.Equippable
	if t.Equip != nil {
		stats = *t.Equip
		w.Add(id, stats)
	}
	return id, stats, nil
}

// Spawn instantiates one generated spawn and registers it on the floor.
func Spawn(w *ecs.World, gmap *gamemap.GameMap, s generate.Spawn) (ecs.EntityID, error) {
	var (
		id  ecs.EntityID
		err error
	)
	switch s.Kind {
	case generate.SpawnMonster:
		id, err = NewMonster(w, s.Template, s.X, s.Y)
	default:
		id, err = NewItem(w, s.Template, s.X, s.Y)
	}
	if err != nil {
		return ecs.NilEntity, err
	}
	gmap.AddEntity(id)
	return id, nil
}

// SpawnAll instantiates every spawn, logging and skipping unknown templates.
func SpawnAll(w *ecs.World, gmap *gamemap.GameMap, spawns []generate.Spawn, log *zap.Logger) []ecs.EntityID {
	if log == nil {
		log = zap.NewNop()
	}
	ids := make([]ecs.EntityID, 0, len(spawns))
	for _, s := range spawns {
		id, err := Spawn(w, gmap, s)
		if err != nil {
			log.Warn("skipping spawn", zap.String("template", s.Template),
				zap.Int("x", s.X), zap.Int("y", s.Y), zap.Error(err))
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
