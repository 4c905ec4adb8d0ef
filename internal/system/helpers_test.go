package system

import (
	"math/rand"
	"testing"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
	"arcade-survivors/internal/tuning"

	"github.com/sirupsen/logrus/hooks/test"
)

// newTestContext returns a context holding a player at the origin and no
// enemies. The spawner is never run unless a test calls it.
func newTestContext(t *testing.T) (*Context, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	w := ecs.NewWorld()
	cfg := tuning.Default()
	return &Context{
		World:  w,
		Player: factory.NewPlayer(w, geom.Vec2{}, cfg),
		Dt:     1.0 / 60,
		Rng:    rand.New(rand.NewSource(1)),
		Events: &event.Queues{},
		Config: cfg,
		Log:    logger,
	}, hook
}

func positionOf(t *testing.T, w *ecs.World, id ecs.EntityID) geom.Vec2 {
	t.Helper()
	pos, ok := ecs.Lookup[component.Position](w, id)
	if !ok {
		t.Fatalf("%v has no position", id)
	}
	return pos.Vec2
}

func healthOf(t *testing.T, w *ecs.World, id ecs.EntityID) int {
	t.Helper()
	hp, ok := ecs.Lookup[component.Health](w, id)
	if !ok {
		t.Fatalf("%v has no health", id)
	}
	return hp.Current
}

func place(w *ecs.World, id ecs.EntityID, pos geom.Vec2) {
	w.Add(id, component.Position{Vec2: pos})
}

func newLootConfig(t *testing.T) tuning.LootConfig {
	t.Helper()
	return tuning.Default().Loot
}
