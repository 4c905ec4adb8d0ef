package component

import (
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/geom"
)

const (
	CWeapons    ecs.ComponentType = 6
	CProjectile ecs.ComponentType = 8
)

// WeaponKind is a closed set of weapons; it indexes the Weapons arrays.
type WeaponKind uint8

const (
	WeaponWand WeaponKind = iota
	NumWeaponKinds
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponWand:
		return "wand"
	}
	return "unknown"
}

// Weapons holds one cooldown timer per weapon kind.
type Weapons struct {
	Equipped [NumWeaponKinds]bool
	Timers   [NumWeaponKinds]Timer
}

func (Weapons) Type() ecs.ComponentType { return CWeapons }

// Equip arms kind with a repeating cooldown of interval seconds.
func (w *Weapons) Equip(kind WeaponKind, interval float64) {
	w.Equipped[kind] = true
	w.Timers[kind] = NewTimer(interval)
}

// Projectile flies at a constant velocity until it hits or expires.
type Projectile struct {
	Velocity geom.Vec2 // world units per second
	Lifetime float64   // seconds left
	Damage   int
}

func (Projectile) Type() ecs.ComponentType { return CProjectile }
