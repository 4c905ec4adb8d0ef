package system

import (
	"fmt"
	"math/rand"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
	"arcade-survivors/internal/tuning"
	"arcade-survivors/internal/wheel"
)

type dropCategory uint8

const (
	dropNothing dropCategory = iota
	dropGem
	dropCoin
)

// Drop is a loot entity spawned where an enemy died.
type Drop struct {
	Entity   ecs.EntityID
	Position geom.Vec2
	Loot     component.Loot
}

// RollLoot draws a drop category and, for gems, a tier. ok is false when the
// roll came up empty. Fresh tables are built for every roll.
func RollLoot(rng *rand.Rand, cfg tuning.LootConfig) (loot component.Loot, ok bool, err error) {
	categories := wheel.New[dropCategory](rng)
	if err := pushAll(categories,
		wheel.Entry[dropCategory]{Weight: cfg.WeightNothing, Value: dropNothing},
		wheel.Entry[dropCategory]{Weight: cfg.WeightGem, Value: dropGem},
		wheel.Entry[dropCategory]{Weight: cfg.WeightCoin, Value: dropCoin},
	); err != nil {
		return loot, false, fmt.Errorf("drop table: %w", err)
	}
	cat, err := categories.MustPop()
	if err != nil {
		return loot, false, fmt.Errorf("drop table: %w", err)
	}

	switch cat.Value {
	case dropCoin:
		return component.Loot{Kind: component.LootCoin}, true, nil
	case dropGem:
		tiers := wheel.New[component.GemTier](rng)
		if err := pushAll(tiers,
			wheel.Entry[component.GemTier]{Weight: cfg.TierLow, Value: component.TierLow},
			wheel.Entry[component.GemTier]{Weight: cfg.TierMedium, Value: component.TierMedium},
			wheel.Entry[component.GemTier]{Weight: cfg.TierHigh, Value: component.TierHigh},
		); err != nil {
			return loot, false, fmt.Errorf("gem tier table: %w", err)
		}
		tier, err := tiers.MustPop()
		if err != nil {
			return loot, false, fmt.Errorf("gem tier table: %w", err)
		}
		return component.Loot{Kind: component.LootGem, Tier: tier.Value}, true, nil
	}
	return loot, false, nil
}

func pushAll[T any](t *wheel.Table[T], entries ...wheel.Entry[T]) error {
	for _, e := range entries {
		if err := t.Push(e.Weight, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// DropLoot rolls loot for every enemy death this tick and spawns it where
// the enemy stood. The dead enemy must still be readable; if it is not the
// tick cannot continue.
func DropLoot(ctx *Context) ([]Drop, error) {
	var drops []Drop
	for _, d := range ctx.Events.Death.Events() {
		if d.Kind != event.VictimEnemy {
			continue
		}
		pos, ok := ecs.Lookup[component.Position](ctx.World, d.Target)
		if !ok {
			return drops, fmt.Errorf("loot for %v: %w", d.Target, ecs.ErrStaleReference)
		}
		loot, ok, err := RollLoot(ctx.Rng, ctx.Config.Loot)
		if err != nil {
			return drops, err
		}
		if !ok {
			continue
		}
		id := factory.NewLoot(ctx.World, pos.Vec2, loot, ctx.Config)
		drops = append(drops, Drop{Entity: id, Position: pos.Vec2, Loot: loot})
		ctx.Log.WithField("loot", loot).WithField("at", pos.Vec2).Debug("dropped")
	}
	return drops, nil
}
