package ecs

// EntityID packs a 32-bit slot index in the low bits and a 32-bit generation
// in the high bits. Destroying an entity bumps its slot's generation, so ids
// held after a floor transition stop resolving.
type EntityID uint64

// NilEntity is the zero value. Slot 0 is never handed out.
const NilEntity EntityID = 0

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation the id was minted with.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
