package component

import "arcade-survivors/internal/ecs"

const CHealth ecs.ComponentType = 3

// Health is a signed hit-point counter. It may drop below zero within a
// tick; anything at or below zero is dead.
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Dead reports whether health has reached zero or below.
func (h Health) Dead() bool { return h.Current <= 0 }
