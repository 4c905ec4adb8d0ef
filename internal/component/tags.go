package component

import "arcade-survivors/internal/ecs"

const (
	CPlayer ecs.ComponentType = 5
	CEnemy  ecs.ComponentType = 7
)

// Player marks the player-controlled entity and carries its movement speed.
type Player struct {
	MoveSpeed float64 // world units per second
}

func (Player) Type() ecs.ComponentType { return CPlayer }

// Enemy marks a swarming enemy.
type Enemy struct {
	Speed float64 // world units per second toward the player
}

func (Enemy) Type() ecs.ComponentType { return CEnemy }
