package system

import (
	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/factory"
)

// CombatResult summarizes one pass over the damage queue.
type CombatResult struct {
	Applied     int // events that reached a target
	Skipped     int // events whose target was gone or had no health
	DamageDealt int // to enemies
	DamageTaken int // by the player
	PlayerDied  bool
}

// ApplyDamage drains this tick's damage events in arrival order.
//
// Every hit is applied, even to an entity already queued for removal, so a
// target's final health is its starting health minus the sum of its hits.
// A death is emitted only when health crosses from positive to zero or
// below, so each entity dies at most once. Dead enemies are queued for
// removal; the player is left in place and PlayerDied is set.
func ApplyDamage(ctx *Context) CombatResult {
	var res CombatResult
	w := ctx.World
	for _, ev := range ctx.Events.Damage.Events() {
		if ev.Amount <= 0 {
			res.Skipped++
			continue
		}
		hp, ok := ecs.Lookup[component.Health](w, ev.Target)
		if !w.Alive(ev.Target) || !ok {
			res.Skipped++
			ctx.Log.WithField("target", ev.Target).Debug("damage for missing target ignored")
			continue
		}

		before := hp.Current
		hp.Current -= ev.Amount
		w.Add(ev.Target, hp)
		res.Applied++

		isPlayer := ev.Target == ctx.Player
		if isPlayer {
			res.DamageTaken += ev.Amount
		} else {
			res.DamageDealt += ev.Amount
		}
		if pos, ok := ecs.Lookup[component.Position](w, ev.Target); ok {
			factory.NewDamageNumber(w, pos.Vec2, ev.Amount, isPlayer, ctx.Config)
		}

		if before <= 0 || hp.Current > 0 {
			continue
		}
		if isPlayer {
			res.PlayerDied = true
			ctx.Events.Death.Push(event.Death{Target: ev.Target, Kind: event.VictimPlayer})
			ctx.Log.WithField("target", ev.Target).Info("player died")
			continue
		}
		w.QueueDestroy(ev.Target)
		ctx.Events.Death.Push(event.Death{Target: ev.Target, Kind: event.VictimEnemy})
	}
	return res
}
