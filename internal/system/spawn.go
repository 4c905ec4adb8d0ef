package system

import (
	"arcade-survivors/internal/component"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
)

// SpawnEnemies tops the swarm up to the configured population, placing each
// newcomer uniformly inside the spawn square. It returns how many spawned.
func SpawnEnemies(ctx *Context) int {
	cfg := ctx.Config.Enemy
	alive := 0
	for _, id := range ctx.World.Query(component.CEnemy) {
		if !ctx.World.Pending(id) {
			alive++
		}
	}

	span := cfg.SpawnMax - cfg.SpawnMin
	spawned := 0
	for ; alive < cfg.Population; alive++ {
		pos := geom.Vec2{
			X: cfg.SpawnMin + ctx.Rng.Float64()*span,
			Y: cfg.SpawnMin + ctx.Rng.Float64()*span,
		}
		factory.NewEnemy(ctx.World, pos, ctx.Config)
		spawned++
	}
	if spawned > 0 {
		ctx.Log.WithField("count", spawned).Debug("spawned enemies")
	}
	return spawned
}
