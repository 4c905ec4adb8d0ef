package system

import (
	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/geom"
)

// Body is a read-only snapshot of something that can collide.
type Body struct {
	ID     ecs.EntityID
	Pos    geom.Vec2
	Half   float64
	Damage int // projectiles only
}

func (b Body) overlaps(o Body) bool {
	return geom.Overlaps(b.Pos, b.Half, o.Pos, o.Half)
}

// Hit records a projectile striking an enemy.
type Hit struct {
	Projectile ecs.EntityID
	Enemy      ecs.EntityID
	Damage     int
}

// Collisions is everything the collision stage found this tick.
type Collisions struct {
	Contacts []event.Damage
	Pickups  []ecs.EntityID
	Hits     []Hit

	Collected []component.Loot // what the pickups were worth
}

// ScanContacts damages the player once per overlapping enemy.
func ScanContacts(player Body, enemies []Body, damage int) []event.Damage {
	var out []event.Damage
	for _, e := range enemies {
		if player.overlaps(e) {
			out = append(out, event.Damage{Target: player.ID, Amount: damage})
		}
	}
	return out
}

// ScanPickups returns the loot the player is touching.
func ScanPickups(player Body, loot []Body) []ecs.EntityID {
	var out []ecs.EntityID
	for _, l := range loot {
		if player.overlaps(l) {
			out = append(out, l.ID)
		}
	}
	return out
}

// ScanProjectiles pairs each projectile with the first enemy it overlaps.
// A projectile hits at most one enemy per tick.
func ScanProjectiles(projectiles, enemies []Body) []Hit {
	var out []Hit
	for _, p := range projectiles {
		for _, e := range enemies {
			if p.overlaps(e) {
				out = append(out, Hit{Projectile: p.ID, Enemy: e.ID, Damage: p.Damage})
				break
			}
		}
	}
	return out
}

// bodies snapshots every live, non-pending entity carrying the given tag.
func bodies(w *ecs.World, tag ecs.ComponentType) []Body {
	var out []Body
	for _, id := range w.Query(tag, component.CPosition, component.CHitbox) {
		if w.Pending(id) {
			continue
		}
		pos, _ := ecs.Lookup[component.Position](w, id)
		hb, _ := ecs.Lookup[component.Hitbox](w, id)
		b := Body{ID: id, Pos: pos.Vec2, Half: hb.Half}
		if pr, ok := ecs.Lookup[component.Projectile](w, id); ok {
			b.Damage = pr.Damage
		}
		out = append(out, b)
	}
	return out
}

// ResolveCollisions runs the three overlap scans against this tick's
// positions, then applies their results: damage events are queued
// (contacts first, then projectile hits) and touched loot and spent
// projectiles are queued for removal.
func ResolveCollisions(ctx *Context) (Collisions, error) {
	w := ctx.World
	pos, err := playerPosition(ctx)
	if err != nil {
		return Collisions{}, err
	}
	player := Body{ID: ctx.Player, Pos: pos}
	if hb, ok := ecs.Lookup[component.Hitbox](w, ctx.Player); ok {
		player.Half = hb.Half
	}

	enemies := bodies(w, component.CEnemy)
	loot := bodies(w, component.CLoot)
	projectiles := bodies(w, component.CProjectile)

	res := Collisions{
		Contacts: ScanContacts(player, enemies, ctx.Config.Enemy.ContactDamage),
		Pickups:  ScanPickups(player, loot),
		Hits:     ScanProjectiles(projectiles, enemies),
	}

	ctx.Events.Damage.Push(res.Contacts...)
	for _, h := range res.Hits {
		ctx.Events.Damage.Push(event.Damage{Target: h.Enemy, Amount: h.Damage})
		w.QueueDestroy(h.Projectile)
	}
	for _, id := range res.Pickups {
		if l, ok := ecs.Lookup[component.Loot](w, id); ok {
			res.Collected = append(res.Collected, l)
		}
		w.QueueDestroy(id)
	}
	return res, nil
}
