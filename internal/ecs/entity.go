package ecs

import (
	"errors"
	"fmt"
)

// EntityID identifies an entity. The low 32 bits are the slot index and the
// high 32 bits the slot generation, so an id held after its entity was
// destroyed never aliases a newer entity reusing the slot.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

func makeID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the id.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation of the id.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

func (id EntityID) String() string {
	if id == NilEntity {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d.%d)", id.Index(), id.Generation())
}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

var (
	// ErrStaleReference means an id names an entity that no longer exists or
	// whose data can no longer be read.
	ErrStaleReference = errors.New("stale entity reference")

	// ErrMissingSingleton means a lookup expecting exactly one entity found
	// zero or several.
	ErrMissingSingleton = errors.New("expected exactly one entity")
)
