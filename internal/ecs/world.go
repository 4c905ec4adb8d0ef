package ecs

import "fmt"

// World is the central entity registry and component store.
//
// Entities are enumerated in creation order everywhere (Query, Select), which
// keeps scans that break ties by "first found" reproducible.
type World struct {
	generations []uint32 // slot index → current generation; slot 0 is never used
	live        []bool
	free        []uint32
	order       []EntityID

	pending    []EntityID
	pendingSet map[EntityID]bool

	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		generations: []uint32{0},
		live:        []bool{false},
		pendingSet:  make(map[EntityID]bool),
		components:  make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive. Freed slots are
// reused with a bumped generation.
func (w *World) CreateEntity() EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 1)
		w.live = append(w.live, false)
	}
	w.live[idx] = true
	id := makeID(idx, w.generations[idx])
	w.order = append(w.order, id)
	return id
}

// DestroyEntity immediately removes the entity and all its components.
// Destroying a dead or stale id is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	idx := id.Index()
	w.live[idx] = false
	w.generations[idx]++
	w.free = append(w.free, idx)

	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	for _, store := range w.components {
		delete(store, id)
	}
	delete(w.pendingSet, id)
}

// QueueDestroy marks the entity for removal at the next Flush. The entity
// stays readable until then. Queuing twice is harmless.
func (w *World) QueueDestroy(id EntityID) {
	if !w.Alive(id) || w.pendingSet[id] {
		return
	}
	w.pendingSet[id] = true
	w.pending = append(w.pending, id)
}

// Pending reports whether the entity is queued for destruction.
func (w *World) Pending(id EntityID) bool {
	return w.pendingSet[id]
}

// Flush destroys every queued entity in queue order and returns how many
// were removed.
func (w *World) Flush() int {
	n := 0
	for _, id := range w.pending {
		if w.Alive(id) {
			w.DestroyEntity(id)
			n++
		}
	}
	w.pending = w.pending[:0]
	clear(w.pendingSet)
	return n
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	idx := id.Index()
	if id == NilEntity || int(idx) >= len(w.generations) {
		return false
	}
	return w.live[idx] && w.generations[idx] == id.Generation()
}

// Count returns the number of live entities.
func (w *World) Count() int { return len(w.order) }

// Add attaches a component to an entity, replacing any component of the
// same type. Adding to a dead entity is ignored.
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

// Lookup returns the typed component T of entity id.
func Lookup[T Component](w *World, id EntityID) (T, bool) {
	var zero T
	c := w.Get(id, zero.Type())
	if c == nil {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// Query returns all alive entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	return w.Select(types...).IDs()
}

// Single returns the one alive entity carrying every listed component type.
func (w *World) Single(types ...ComponentType) (EntityID, error) {
	ids := w.Query(types...)
	if len(ids) != 1 {
		return NilEntity, fmt.Errorf("query %v matched %d entities: %w", types, len(ids), ErrMissingSingleton)
	}
	return ids[0], nil
}
