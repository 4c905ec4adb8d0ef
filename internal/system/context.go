// Package system holds the per-tick stages of the simulation. Each stage is
// a plain function over a Context; the sim package owns the order.
package system

import (
	"fmt"
	"math/rand"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/geom"
	"arcade-survivors/internal/tuning"

	"github.com/sirupsen/logrus"
)

// Context is the tick-scoped state shared by every stage.
type Context struct {
	World  *ecs.World
	Player ecs.EntityID
	Dt     float64
	Rng    *rand.Rand
	Events *event.Queues
	Config tuning.Config
	Log    logrus.FieldLogger
}

// Input is the held movement keys for one tick.
type Input struct {
	Left, Right, Up, Down bool
}

// playerPosition reads the player's position. A player without one cannot
// be simulated.
func playerPosition(ctx *Context) (geom.Vec2, error) {
	pos, ok := ecs.Lookup[component.Position](ctx.World, ctx.Player)
	if !ok {
		return geom.Vec2{}, fmt.Errorf("player %v has no position: %w", ctx.Player, ecs.ErrMissingSingleton)
	}
	return pos.Vec2, nil
}
