package system

import (
	"testing"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"

	"github.com/sirupsen/logrus"
)

func TestApplyDamageAccumulatesToOneDeath(t *testing.T) {
	ctx, _ := newTestContext(t)
	w := ctx.World
	enemy := factory.NewEnemy(w, geom.Vec2{X: 100, Y: 50}, ctx.Config)
	ctx.Events.Damage.Push(
		event.Damage{Target: enemy, Amount: 5},
		event.Damage{Target: enemy, Amount: 7},
	)

	res := ApplyDamage(ctx)
	if res.Applied != 2 || res.DamageDealt != 12 {
		t.Fatalf("result = %+v; want 2 hits for 12", res)
	}
	if got := healthOf(t, w, enemy); got != -2 {
		t.Errorf("health = %d; want -2", got)
	}
	deaths := ctx.Events.Death.Events()
	if len(deaths) != 1 || deaths[0] != (event.Death{Target: enemy, Kind: event.VictimEnemy}) {
		t.Fatalf("deaths = %+v; want exactly one for %v", deaths, enemy)
	}
	if !w.Pending(enemy) {
		t.Error("dead enemy should be queued for removal")
	}
	if n := w.Flush(); n != 1 {
		t.Errorf("flush removed %d; want 1", n)
	}
	if w.Alive(enemy) {
		t.Error("dead enemy survived the flush")
	}
}

func TestApplyDamageOrderDoesNotMatter(t *testing.T) {
	for _, order := range [][]int{{5, 7}, {7, 5}, {3, 3, 3, 3}, {12}} {
		ctx, _ := newTestContext(t)
		enemy := factory.NewEnemy(ctx.World, geom.Vec2{}, ctx.Config)
		for _, amt := range order {
			ctx.Events.Damage.Push(event.Damage{Target: enemy, Amount: amt})
		}
		ApplyDamage(ctx)
		if got := healthOf(t, ctx.World, enemy); got != -2 {
			t.Errorf("%v: health = %d; want -2", order, got)
		}
		if n := ctx.Events.Death.Len(); n != 1 {
			t.Errorf("%v: %d deaths; want 1", order, n)
		}
	}
}

func TestApplyDamageNonLethal(t *testing.T) {
	ctx, _ := newTestContext(t)
	enemy := factory.NewEnemy(ctx.World, geom.Vec2{}, ctx.Config)
	ctx.Events.Damage.Push(event.Damage{Target: enemy, Amount: 9})
	ApplyDamage(ctx)
	if ctx.Events.Death.Len() != 0 || ctx.World.Pending(enemy) {
		t.Fatal("enemy at 1 health should not die")
	}
}

func TestApplyDamageStaleTargetIsNoop(t *testing.T) {
	ctx, hook := newTestContext(t)
	ctx.Log.(*logrus.Logger).SetLevel(logrus.DebugLevel)
	gone := factory.NewEnemy(ctx.World, geom.Vec2{}, ctx.Config)
	ctx.World.DestroyEntity(gone)
	ctx.Events.Damage.Push(event.Damage{Target: gone, Amount: 5})

	res := ApplyDamage(ctx)
	if res.Applied != 0 || res.Skipped != 1 {
		t.Fatalf("result = %+v; want one skipped event", res)
	}
	if ctx.Events.Death.Len() != 0 {
		t.Error("stale target produced a death")
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.DebugLevel {
		t.Errorf("expected a debug log for the stale target, got %v", entry)
	}
}

func TestApplyDamageSpawnsDamageNumbers(t *testing.T) {
	ctx, _ := newTestContext(t)
	enemy := factory.NewEnemy(ctx.World, geom.Vec2{X: 10}, ctx.Config)
	ctx.Events.Damage.Push(
		event.Damage{Target: enemy, Amount: 5},
		event.Damage{Target: ctx.Player, Amount: 3},
	)
	ApplyDamage(ctx)

	labels := ctx.World.Query(component.CFloatingText)
	if len(labels) != 2 {
		t.Fatalf("got %d floating labels; want 2", len(labels))
	}
	ft, _ := ecs.Lookup[component.FloatingText](ctx.World, labels[0])
	if ft.Text != "5" {
		t.Errorf("first label = %q; want \"5\"", ft.Text)
	}
}

func TestApplyDamagePlayerDeath(t *testing.T) {
	ctx, _ := newTestContext(t)
	for i := 0; i < 25; i++ {
		ctx.Events.Damage.Push(event.Damage{Target: ctx.Player, Amount: 5})
	}
	res := ApplyDamage(ctx)
	if !res.PlayerDied {
		t.Fatal("player should have died")
	}
	if res.DamageTaken != 125 {
		t.Errorf("damage taken = %d; want 125", res.DamageTaken)
	}
	if got := healthOf(t, ctx.World, ctx.Player); got != -25 {
		t.Errorf("player health = %d; want -25", got)
	}
	deaths := ctx.Events.Death.Events()
	if len(deaths) != 1 || deaths[0].Kind != event.VictimPlayer {
		t.Fatalf("deaths = %+v; want one player death", deaths)
	}
	if ctx.World.Pending(ctx.Player) {
		t.Error("the player must not be despawned")
	}
}
