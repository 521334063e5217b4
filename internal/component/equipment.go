package component

import "deepfloor/internal/ecs"

const (
	CEquipment  ecs.ComponentType = 4
	CEquippable ecs.ComponentType = 5
)

// Slot is a place on the body an item can be worn.
type Slot uint8

const (
	SlotMainHand Slot = iota
	SlotOffHand
	SlotArmor
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotMainHand:
		return "mainhand"
	case SlotOffHand:
		return "offhand"
	case SlotArmor:
		return "armor"
	}
	return "unknown"
}

// EquipKind says which slots an item may occupy.
type EquipKind uint8

const (
	KindWeapon EquipKind = iota // main hand or off hand
	KindArmor
)

// Equippable is attached to items that can be worn.
type Equippable struct {
	Kind      EquipKind
	Light     int
	Vision    int
	Attack    int
	Damage    int
	Defense   int // armor value
	Reduction int // damage reduction, percent
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

type worn struct {
	item  ecs.EntityID
	stats Equippable
}

// Equipment tracks what an actor is wearing.
type Equipment struct {
	slots [slotCount]worn
}

func (Equipment) Type() ecs.ComponentType { return CEquipment }

// Item returns the entity in slot, or NilEntity.
func (e *Equipment) Item(s Slot) ecs.EntityID { return e.slots[s].item }

// SlotOf returns the slot item is worn in.
func (e *Equipment) SlotOf(item ecs.EntityID) (Slot, bool) {
	if item == ecs.NilEntity {
		return 0, false
	}
	for s := range e.slots {
		if e.slots[s].item == item {
			return Slot(s), true
		}
	}
	return 0, false
}

// Equip puts item into slot and returns whatever it displaced.
func (e *Equipment) Equip(s Slot, item ecs.EntityID, stats Equippable) (displaced ecs.EntityID) {
	displaced = e.Unequip(s)
	e.slots[s] = worn{item: item, stats: stats}
	return displaced
}

// Unequip empties slot and returns the item that was there.
func (e *Equipment) Unequip(s Slot) ecs.EntityID {
	prev := e.slots[s].item
	e.slots[s] = worn{}
	return prev
}

// Toggle equips or removes item. Weapons already held in either hand are
// removed; otherwise they go to the off hand when offhand is set and the main
// hand if not. Armor always uses the armor slot. The returned bool is true
// when the item ended up equipped.
func (e *Equipment) Toggle(item ecs.EntityID, stats Equippable, offhand bool) (Slot, bool) {
	var slot Slot
	switch stats.Kind {
	case KindWeapon:
		if s, ok := e.SlotOf(item); ok && s != SlotArmor {
			e.Unequip(s)
			return s, false
		}
		slot = SlotMainHand
		if offhand {
			slot = SlotOffHand
		}
	default:
		slot = SlotArmor
		if e.slots[SlotArmor].item == item {
			e.Unequip(SlotArmor)
			return SlotArmor, false
		}
	}
	e.Equip(slot, item, stats)
	return slot, true
}

// LightBonus is the brightest light among worn items.
func (e *Equipment) LightBonus() int {
	best := 0
	for _, w := range e.slots {
		if w.item != ecs.NilEntity {
			best = max(best, w.stats.Light)
		}
	}
	return best
}

// VisionBonus sums vision over worn items.
func (e *Equipment) VisionBonus() int {
	total := 0
	for _, w := range e.slots {
		if w.item != ecs.NilEntity {
			total += w.stats.Vision
		}
	}
	return total
}
