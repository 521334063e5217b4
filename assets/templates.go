package assets

import (
	"deepfloor/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Template names. Spawn tables refer to templates by these keys.
const (
	ViewerName = "eyeCube"

	Omnibot = "omnibot"
	Zetabie = "zetabie"

	HealthPotion    = "health potion"
	ConfusionScroll = "confusion scroll"
	LightningScroll = "lightning scroll"
	FireballScroll  = "fireball scroll"

	PolymerSword  = "polymer sword"
	PolymerDagger = "polymer dagger"
	PolymerAxe    = "polymer axe"
	MetalSword    = "metal sword"
	MetalDagger   = "metal dagger"
	MetalAxe      = "metal axe"
	AlloySword    = "alloy sword"
	AlloyDagger   = "alloy dagger"
	AlloyAxe      = "alloy axe"

	Torch    = "torch"
	Gambeson = "gambeson"
)

// ActorTemplate describes a monster or the viewer.
type ActorTemplate struct {
	Name   string
	Glyph  rune
	FG     tcell.Color
	Value  int
	Senses component.Senses
	Attack int
	Damage int
}

// ItemTemplate describes a pickup. Equip is nil for consumables.
type ItemTemplate struct {
	Name  string
	Glyph rune
	FG    tcell.Color
	Value int
	Equip *component.Equippable
}

func rgb(r, g, b int32) tcell.Color { return tcell.NewRGBColor(r, g, b) }

// Viewer is the player character.
var Viewer = ActorTemplate{
	Name: ViewerName, Glyph: '@', FG: rgb(255, 255, 255), Value: 99,
	Senses: component.Senses{Vision: 32},
}

var monsters = map[string]ActorTemplate{
	Omnibot: {Name: Omnibot, Glyph: 'd', FG: rgb(26, 125, 160), Value: 98,
		Senses: component.Senses{Vision: 16, Light: 1}, Attack: 90, Damage: 1},
	Zetabie: {Name: Zetabie, Glyph: 'z', FG: rgb(0, 85, 15), Value: 98,
		Senses: component.Senses{Vision: 16}, Attack: 110, Damage: 2},
}

// material scales a weapon family.
type material struct {
	name   string
	fg     tcell.Color
	value  int
	attack int
	damage int
}

var materials = []material{
	{"polymer", rgb(180, 200, 210), 1, 0, 0},
	{"metal", rgb(160, 160, 170), 2, 5, 1},
	{"alloy", rgb(210, 230, 255), 4, 10, 2},
}

// weapon families: base attack and damage before the material.
var families = []struct {
	name   string
	glyph  rune
	attack int
	damage int
}{
	{"sword", '|', 30, 2},
	{"dagger", '-', 40, 1},
	{"axe", 'P', 20, 3},
}

var items = buildItems()

func buildItems() map[string]ItemTemplate {
	out := map[string]ItemTemplate{
		HealthPotion:    {Name: HealthPotion, Glyph: '!', FG: rgb(127, 0, 255), Value: 1},
		ConfusionScroll: {Name: ConfusionScroll, Glyph: '~', FG: rgb(207, 63, 255), Value: 1},
		LightningScroll: {Name: LightningScroll, Glyph: '~', FG: rgb(255, 255, 0), Value: 1},
		FireballScroll:  {Name: FireballScroll, Glyph: '~', FG: rgb(255, 0, 0), Value: 1},
		Torch: {Name: Torch, Glyph: '/', FG: rgb(136, 160, 24), Value: 2,
			Equip: &component.Equippable{Kind: component.KindWeapon, Light: 4, Attack: 10, Damage: 1}},
		Gambeson: {Name: Gambeson, Glyph: '[', FG: rgb(139, 139, 139), Value: 2,
			Equip: &component.Equippable{Kind: component.KindArmor, Defense: 1, Reduction: 10}},
	}
	for _, m := range materials {
		for _, f := range families {
			name := m.name + " " + f.name
			out[name] = ItemTemplate{
				Name: name, Glyph: f.glyph, FG: m.fg, Value: m.value,
				Equip: &component.Equippable{
					Kind:   component.KindWeapon,
					Attack: f.attack + m.attack,
					Damage: f.damage + m.damage,
				},
			}
		}
	}
	return out
}

// Monster looks up a monster template by name.
func Monster(name string) (ActorTemplate, bool) {
	t, ok := monsters[name]
	return t, ok
}

// Item looks up an item template by name. The returned template's Equip
// points at a fresh copy so callers cannot alter the shared table.
func Item(name string) (ItemTemplate, bool) {
	t, ok := items[name]
	if ok && t.Equip != nil {
		eq := *t.Equip
		t.Equip = &eq
	}
	return t, ok
}
