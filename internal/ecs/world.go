package ecs

// World is the entity registry and component store. Entity slots are reused
// through a free list; see EntityID for how stale references are detected.
type World struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	components  map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		// slot 0 is reserved so that NilEntity never resolves
		generations: []uint32{0},
		alive:       []bool{false},
		components:  make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	if n := len(w.freeList); n > 0 {
		idx := w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		w.alive[idx] = true
		return newEntityID(idx, w.generations[idx])
	}
	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 0)
	w.alive = append(w.alive, true)
	return newEntityID(idx, 0)
}

// DestroyEntity removes all components of id and retires its slot.
// Destroying a stale or unknown id is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	for _, store := range w.components {
		delete(store, id)
	}
	idx := id.Index()
	w.alive[idx] = false
	w.generations[idx]++
	w.freeList = append(w.freeList, idx)
}

// Alive reports whether id refers to a live entity of the current generation.
func (w *World) Alive(id EntityID) bool {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == id.Generation()
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.generations) - 1 - len(w.freeList)
}

// Add attaches a component to an entity. Components on dead ids are dropped.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	var result []EntityID
	for id := range w.components[smallest] {
		if !w.Alive(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t != smallest && !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}
