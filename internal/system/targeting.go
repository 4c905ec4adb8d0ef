package system

import (
	"math"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
)

// NearestEnemy returns the live enemy closest to from by Manhattan distance.
// Ties go to the enemy created first.
func NearestEnemy(w *ecs.World, from geom.Vec2) (ecs.EntityID, geom.Vec2, bool) {
	best := ecs.NilEntity
	var bestPos geom.Vec2
	bestDist := math.Inf(1)
	for _, id := range w.Query(component.CEnemy, component.CPosition) {
		if w.Pending(id) {
			continue
		}
		pos, _ := ecs.Lookup[component.Position](w, id)
		if d := from.Manhattan(pos.Vec2); d < bestDist {
			best, bestPos, bestDist = id, pos.Vec2, d
		}
	}
	return best, bestPos, best != ecs.NilEntity
}

// FireWeapons ticks every equipped weapon on the player and launches a
// projectile for each one whose cooldown elapsed. It returns the number of
// projectiles launched.
func FireWeapons(ctx *Context) (int, error) {
	w := ctx.World
	weapons, ok := ecs.Lookup[component.Weapons](w, ctx.Player)
	if !ok {
		return 0, nil
	}
	origin, err := playerPosition(ctx)
	if err != nil {
		return 0, err
	}

	fired := 0
	for kind := component.WeaponKind(0); kind < component.NumWeaponKinds; kind++ {
		if !weapons.Equipped[kind] || !weapons.Timers[kind].Tick(ctx.Dt) {
			continue
		}
		switch kind {
		case component.WeaponWand:
			dir := aim(ctx, origin)
			factory.NewProjectile(w, origin, dir, ctx.Config)
			fired++
			ctx.Log.WithField("weapon", kind).WithField("dir", dir).Debug("fired")
		}
	}
	w.Add(ctx.Player, weapons)
	return fired, nil
}

// aim points at the nearest enemy. With no enemy on the field it picks a
// random direction in the positive quadrant.
func aim(ctx *Context, origin geom.Vec2) geom.Vec2 {
	if _, pos, ok := NearestEnemy(ctx.World, origin); ok {
		return pos.Sub(origin).Normalize()
	}
	return geom.Vec2{X: ctx.Rng.Float64(), Y: ctx.Rng.Float64()}.Normalize()
}
