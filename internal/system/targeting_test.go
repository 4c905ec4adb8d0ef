package system

import (
	"math"
	"testing"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
)

func TestNearestEnemyManhattan(t *testing.T) {
	ctx, _ := newTestContext(t)
	w := ctx.World
	// Euclidean would pick diag (≈70.7); Manhattan picks axis (80 < 100).
	factory.NewEnemy(w, geom.Vec2{X: 50, Y: 50}, ctx.Config)
	axis := factory.NewEnemy(w, geom.Vec2{X: 80}, ctx.Config)

	id, pos, ok := NearestEnemy(w, geom.Vec2{})
	if !ok || id != axis || pos != (geom.Vec2{X: 80}) {
		t.Fatalf("NearestEnemy = %v %+v %v; want %v", id, pos, ok, axis)
	}
}

func TestNearestEnemyTieGoesToFirstCreated(t *testing.T) {
	ctx, _ := newTestContext(t)
	first := factory.NewEnemy(ctx.World, geom.Vec2{X: 10}, ctx.Config)
	factory.NewEnemy(ctx.World, geom.Vec2{Y: -10}, ctx.Config)

	if id, _, _ := NearestEnemy(ctx.World, geom.Vec2{}); id != first {
		t.Fatalf("tie went to %v; want %v", id, first)
	}
}

func TestNearestEnemyNone(t *testing.T) {
	ctx, _ := newTestContext(t)
	if _, _, ok := NearestEnemy(ctx.World, geom.Vec2{}); ok {
		t.Fatal("found an enemy in an empty world")
	}
}

func TestFireWeaponsAimsAtNearest(t *testing.T) {
	ctx, _ := newTestContext(t)
	factory.NewEnemy(ctx.World, geom.Vec2{Y: 200}, ctx.Config)
	ctx.Dt = ctx.Config.Weapon.WandInterval

	fired, err := FireWeapons(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fired != 1 {
		t.Fatalf("fired %d; want 1", fired)
	}
	shots := ctx.World.Query(component.CProjectile)
	if len(shots) != 1 {
		t.Fatalf("%d projectiles in world; want 1", len(shots))
	}
	pr, _ := ecs.Lookup[component.Projectile](ctx.World, shots[0])
	want := geom.Vec2{Y: ctx.Config.Weapon.ProjectileSpeed}
	if pr.Velocity != want {
		t.Errorf("velocity = %+v; want %+v", pr.Velocity, want)
	}
	if got := positionOf(t, ctx.World, shots[0]); got != (geom.Vec2{}) {
		t.Errorf("projectile launched from %+v; want the player", got)
	}
}

func TestFireWeaponsCooldown(t *testing.T) {
	ctx, _ := newTestContext(t)
	total := 0
	for _, dt := range []float64{0.4, 0.4, 0.3} {
		ctx.Dt = dt
		n, err := FireWeapons(ctx)
		if err != nil {
			t.Fatal(err)
		}
		total += n
	}
	if total != 1 {
		t.Fatalf("fired %d times over 1.1s; want 1", total)
	}
}

func TestFireWeaponsFallbackDirection(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Dt = ctx.Config.Weapon.WandInterval
	if _, err := FireWeapons(ctx); err != nil {
		t.Fatal(err)
	}
	shot := ctx.World.Query(component.CProjectile)[0]
	pr, _ := ecs.Lookup[component.Projectile](ctx.World, shot)
	if pr.Velocity.X < 0 || pr.Velocity.Y < 0 {
		t.Errorf("fallback velocity %+v leaves the positive quadrant", pr.Velocity)
	}
	if speed := pr.Velocity.Len(); math.Abs(speed-ctx.Config.Weapon.ProjectileSpeed) > 1e-6 {
		t.Errorf("fallback speed = %v; want %v", speed, ctx.Config.Weapon.ProjectileSpeed)
	}
}

func TestFireWeaponsUnarmedPlayer(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.World.Remove(ctx.Player, component.CWeapons)
	ctx.Dt = 10
	if n, err := FireWeapons(ctx); n != 0 || err != nil {
		t.Fatalf("FireWeapons = %d, %v; want 0, nil", n, err)
	}
}
