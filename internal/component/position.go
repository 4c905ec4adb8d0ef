package component

import (
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/geom"
)

const (
	CPosition ecs.ComponentType = 1
	CVelocity ecs.ComponentType = 2
	CHitbox   ecs.ComponentType = 4
)

// Position is the world-space center of an entity.
type Position struct {
	geom.Vec2
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Velocity is a constant drift in world units per second.
type Velocity struct {
	geom.Vec2
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

// Hitbox is a centered square collision bound.
type Hitbox struct {
	Half float64 // half of the side length
}

func (Hitbox) Type() ecs.ComponentType { return CHitbox }
