package system

import (
	"errors"
	"math/rand"
	"testing"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
	"arcade-survivors/internal/wheel"
)

// rigLoot makes every roll come up gem/low for practical purposes.
func rigLoot(ctx *Context) {
	ctx.Config.Loot.WeightNothing = 1e-300
	ctx.Config.Loot.WeightGem = 1
	ctx.Config.Loot.WeightCoin = 1e-300
	ctx.Config.Loot.TierLow = 1
	ctx.Config.Loot.TierMedium = 1e-300
	ctx.Config.Loot.TierHigh = 1e-300
}

func TestDropLootAtDeathPosition(t *testing.T) {
	ctx, _ := newTestContext(t)
	rigLoot(ctx)
	enemy := factory.NewEnemy(ctx.World, geom.Vec2{X: 100, Y: 50}, ctx.Config)
	ctx.World.QueueDestroy(enemy)
	ctx.Events.Death.Push(event.Death{Target: enemy, Kind: event.VictimEnemy})

	drops, err := DropLoot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(drops) != 1 {
		t.Fatalf("got %d drops; want 1", len(drops))
	}
	d := drops[0]
	if d.Position != (geom.Vec2{X: 100, Y: 50}) {
		t.Errorf("dropped at %+v; want (100,50)", d.Position)
	}
	if d.Loot != (component.Loot{Kind: component.LootGem, Tier: component.TierLow}) {
		t.Errorf("dropped %v; want gem/low", d.Loot)
	}
	loot := ctx.World.Query(component.CLoot)
	if len(loot) != 1 || loot[0] != d.Entity {
		t.Fatalf("loot entities = %v; want [%v]", loot, d.Entity)
	}
	if got := positionOf(t, ctx.World, d.Entity); got != d.Position {
		t.Errorf("loot entity at %+v; want %+v", got, d.Position)
	}
}

func TestDropLootIgnoresPlayerDeath(t *testing.T) {
	ctx, _ := newTestContext(t)
	rigLoot(ctx)
	ctx.Events.Death.Push(event.Death{Target: ctx.Player, Kind: event.VictimPlayer})
	drops, err := DropLoot(ctx)
	if err != nil || len(drops) != 0 {
		t.Fatalf("DropLoot = %v, %v; want no drops", drops, err)
	}
}

func TestDropLootStaleVictimIsFatal(t *testing.T) {
	ctx, _ := newTestContext(t)
	enemy := factory.NewEnemy(ctx.World, geom.Vec2{}, ctx.Config)
	ctx.World.DestroyEntity(enemy)
	ctx.Events.Death.Push(event.Death{Target: enemy, Kind: event.VictimEnemy})

	if _, err := DropLoot(ctx); !errors.Is(err, ecs.ErrStaleReference) {
		t.Fatalf("err = %v; want ErrStaleReference", err)
	}
}

func TestRollLootDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	cfg := newLootConfig(t)
	const rolls = 50000
	var nothing, coins, gems int
	for i := 0; i < rolls; i++ {
		loot, ok, err := RollLoot(rng, cfg)
		if err != nil {
			t.Fatal(err)
		}
		switch {
		case !ok:
			nothing++
		case loot.Kind == component.LootCoin:
			coins++
		default:
			gems++
		}
	}
	// 10:10:5
	check := func(name string, got int, want float64) {
		if frac := float64(got) / rolls; frac < want-0.015 || frac > want+0.015 {
			t.Errorf("%s frequency %.3f; want about %.3f", name, frac, want)
		}
	}
	check("nothing", nothing, 0.4)
	check("gem", gems, 0.4)
	check("coin", coins, 0.2)
}

func TestRollLootBadWeight(t *testing.T) {
	cfg := newLootConfig(t)
	cfg.TierMedium = 0
	cfg.WeightNothing = 1e-300
	cfg.WeightCoin = 1e-300
	_, _, err := RollLoot(rand.New(rand.NewSource(1)), cfg)
	if !errors.Is(err, wheel.ErrBadWeight) {
		t.Fatalf("err = %v; want ErrBadWeight", err)
	}
}
