package factory

import (
	"errors"
	"testing"

	"deepfloor/assets"
	"deepfloor/internal/component"
	"deepfloor/internal/ecs"
	"deepfloor/internal/gamemap"
	"deepfloor/internal/generate"
)

func TestNewViewerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewViewer(w, 5, 3)

	if !w.Alive(id) {
		t.Fatal("viewer entity must be alive")
	}
	if p := w.Get(id, component.CPosition).(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	for _, ct := range []ecs.ComponentType{component.CTagPlayer, component.CTagBlocking, component.CSenses, component.CEquipment} {
		if !w.Has(id, ct) {
			t.Errorf("viewer missing component %d", ct)
		}
	}
	s := w.Get(id, component.CSenses).(component.Senses)
	if s.Vision != 32 || s.Light != 0 {
		t.Errorf("base senses = %+v; want vision 32 light 0", s)
	}
}

func TestViewerStartingKit(t *testing.T) {
	w := ecs.NewWorld()
	id := NewViewer(w, 0, 0)
	eq := w.Get(id, component.CEquipment).(component.Equipment)

	want := map[component.Slot]string{
		component.SlotMainHand: assets.MetalDagger,
		component.SlotArmor:    assets.Gambeson,
		component.SlotOffHand:  assets.Torch,
	}
	for slot, name := range want {
		item := eq.Item(slot)
		if item == ecs.NilEntity {
			t.Errorf("%s empty; want %s", slot, name)
			continue
		}
		if got := w.Get(item, component.CName).(component.Name).Template; got != name {
			t.Errorf("%s holds %q; want %q", slot, got, name)
		}
		if w.Has(item, component.CPosition) {
			t.Errorf("carried %s should have no map position", name)
		}
	}

	eff := w.Get(id, component.CSenses).(component.Senses).Effective(&eq)
	if eff.Light != 4 {
		t.Errorf("effective light = %d; want 4 from the torch", eff.Light)
	}
}

func TestNewMonsterFromTemplate(t *testing.T) {
	w := ecs.NewWorld()
	id, err := NewMonster(w, assets.Omnibot, 2, 7)
	if err != nil {
		t.Fatalf("NewMonster: %v", err)
	}
	r := w.Get(id, component.CRenderable).(component.Renderable)
	if r.Glyph != 'd' || r.Order != component.OrderActor || r.Value != 98 {
		t.Errorf("renderable = %+v", r)
	}
	if !w.Has(id, component.CTagBlocking) {
		t.Error("monsters must block")
	}
	if s := w.Get(id, component.CSenses).(component.Senses); s.Light != 1 {
		t.Errorf("omnibot light = %d; want 1", s.Light)
	}
}

func TestUnknownTemplate(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewMonster(w, "grue", 0, 0); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("NewMonster err = %v; want ErrUnknownTemplate", err)
	}
	if _, err := NewItem(w, "grail", 0, 0); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("NewItem err = %v; want ErrUnknownTemplate", err)
	}
	if w.Len() != 0 {
		t.Errorf("failed spawns left %d entities", w.Len())
	}
}

func TestSpawnFreshState(t *testing.T) {
	w := ecs.NewWorld()
	gmap := gamemap.New(10, 10, gamemap.TileConcreteFloor, gamemap.StandardCatalog())

	a, err := Spawn(w, gmap, generate.Spawn{Kind: generate.SpawnItem, Template: assets.AlloyAxe, X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Spawn(w, gmap, generate.Spawn{Kind: generate.SpawnItem, Template: assets.AlloyAxe, X: 2, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two spawns share an entity")
	}
	if !gmap.HasEntity(a) || !gmap.HasEntity(b) {
		t.Error("spawned items must be registered on the floor")
	}
	ea := w.Get(a, component.CEquippable).(component.Equippable)
	if ea.Kind != component.KindWeapon || ea.Attack != 30 || ea.Damage != 5 {
		t.Errorf("alloy axe stats = %+v", ea)
	}
}

func TestSpawnAllSkipsUnknown(t *testing.T) {
	w := ecs.NewWorld()
	gmap := gamemap.New(10, 10, gamemap.TileConcreteFloor, gamemap.StandardCatalog())
	ids := SpawnAll(w, gmap, []generate.Spawn{
		{Kind: generate.SpawnMonster, Template: assets.Zetabie, X: 1, Y: 1},
		{Kind: generate.SpawnMonster, Template: "grue", X: 2, Y: 2},
		{Kind: generate.SpawnItem, Template: assets.HealthPotion, X: 3, Y: 3},
	}, nil)
	if len(ids) != 2 {
		t.Errorf("spawned %d; want 2", len(ids))
	}
}

func TestSpawnTablesReferenceKnownTemplates(t *testing.T) {
	tables := assets.SpawnTables()
	for _, e := range tables.Monsters {
		if _, ok := assets.Monster(e.Template); !ok {
			t.Errorf("monster table names unknown %q", e.Template)
		}
	}
	for _, e := range tables.Items {
		if _, ok := assets.Item(e.Template); !ok {
			t.Errorf("item table names unknown %q", e.Template)
		}
	}
}
