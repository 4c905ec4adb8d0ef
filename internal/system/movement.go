package system

import (
	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
)

// MovePlayer moves the player by held keys. Each axis moves independently at
// full speed; Left wins over Right and Up over Down when both are held.
func MovePlayer(ctx *Context, in Input) error {
	w := ctx.World
	pos, err := playerPosition(ctx)
	if err != nil {
		return err
	}
	p, ok := ecs.Lookup[component.Player](w, ctx.Player)
	if !ok {
		return nil
	}
	step := p.MoveSpeed * ctx.Dt

	switch {
	case in.Left:
		pos.X -= step
	case in.Right:
		pos.X += step
	}
	switch {
	case in.Up:
		pos.Y += step
	case in.Down:
		pos.Y -= step
	}
	w.Add(ctx.Player, component.Position{Vec2: pos})
	return nil
}

// SteerEnemies walks every enemy straight at the player. An enemy standing
// exactly on the player does not move.
func SteerEnemies(ctx *Context) error {
	w := ctx.World
	target, err := playerPosition(ctx)
	if err != nil {
		return err
	}
	for _, id := range w.Query(component.CEnemy, component.CPosition) {
		e, _ := ecs.Lookup[component.Enemy](w, id)
		pos, _ := ecs.Lookup[component.Position](w, id)
		dir := target.Sub(pos.Vec2).Normalize()
		pos.Vec2 = pos.Add(dir.Scale(e.Speed * ctx.Dt))
		w.Add(id, pos)
	}
	return nil
}

// MoveProjectiles advances every projectile along its velocity and queues
// the expired ones for removal. It returns how many expired this tick.
func MoveProjectiles(ctx *Context) int {
	w := ctx.World
	expired := 0
	for _, id := range w.Query(component.CProjectile, component.CPosition) {
		pr, _ := ecs.Lookup[component.Projectile](w, id)
		pos, _ := ecs.Lookup[component.Position](w, id)

		pos.Vec2 = pos.Add(pr.Velocity.Scale(ctx.Dt))
		pr.Lifetime -= ctx.Dt
		w.Add(id, pos)
		w.Add(id, pr)

		if pr.Lifetime <= 0 {
			w.QueueDestroy(id)
			expired++
		}
	}
	return expired
}

// drift moves an entity along its Velocity component, if it has one.
func drift(w *ecs.World, id ecs.EntityID, dt float64) {
	vel, ok := ecs.Lookup[component.Velocity](w, id)
	if !ok {
		return
	}
	pos, ok := ecs.Lookup[component.Position](w, id)
	if !ok {
		return
	}
	pos.Vec2 = pos.Add(vel.Scale(dt))
	w.Add(id, pos)
}
