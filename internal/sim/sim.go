// Package sim owns the world and drives one tick of the game at a time.
package sim

import (
	"fmt"
	"io"
	"math/rand"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/event"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/geom"
	"arcade-survivors/internal/system"
	"arcade-survivors/internal/tuning"

	"github.com/sirupsen/logrus"
)

// Starting enemies, placed before the spawner first runs.
var openingEnemies = []geom.Vec2{
	{X: 100, Y: 100},
	{X: -100, Y: -50},
}

// Report is what happened during one Step.
type Report struct {
	Tick    uint64
	Dt      float64
	Spawned int
	Fired   int

	Damage    []event.Damage
	Deaths    []event.Death
	Drops     []system.Drop
	Collected []component.Loot

	DamageDealt int
	DamageTaken int
	GameOver    bool
}

// Kills returns the number of enemies that died this tick.
func (r Report) Kills() int {
	n := 0
	for _, d := range r.Deaths {
		if d.Kind == event.VictimEnemy {
			n++
		}
	}
	return n
}

// Stats accumulate over a whole run.
type Stats struct {
	Ticks       uint64
	Elapsed     float64 // simulated seconds
	Kills       int
	Coins       int
	Gems        [3]int // by component.GemTier
	ShotsFired  int
	DamageDealt int
	DamageTaken int
}

// Simulation is a single game: one player, its swarm and the loot between.
// It is not safe for concurrent use.
type Simulation struct {
	world  *ecs.World
	player ecs.EntityID
	rng    *rand.Rand
	cfg    tuning.Config
	log    logrus.FieldLogger
	events event.Queues

	stats    Stats
	gameOver bool
}

// New builds the opening world: the player at the origin and two enemies.
// A nil logger discards output.
func New(cfg tuning.Config, rng *rand.Rand, log logrus.FieldLogger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	w := ecs.NewWorld()
	factory.NewPlayer(w, geom.Vec2{}, cfg)
	for _, pos := range openingEnemies {
		factory.NewEnemy(w, pos, cfg)
	}
	player, err := w.Single(component.CPlayer)
	if err != nil {
		return nil, fmt.Errorf("opening world: %w", err)
	}

	return &Simulation{
		world:  w,
		player: player,
		rng:    rng,
		cfg:    cfg,
		log:    log.WithField("component", "sim"),
	}, nil
}

// Step advances the game by dt seconds with the given held keys. Stages run
// in a fixed order: spawn, movement, targeting, collision, combat, loot,
// animation; queued removals are flushed last. Once the player has died
// Step does nothing but report GameOver.
//
// A returned error means the world is inconsistent and the run must end.
func (s *Simulation) Step(dt float64, in system.Input) (Report, error) {
	if s.gameOver {
		return Report{Tick: s.stats.Ticks, GameOver: true}, nil
	}
	if !s.world.Alive(s.player) {
		return Report{}, fmt.Errorf("player %v: %w", s.player, ecs.ErrMissingSingleton)
	}
	dt = s.clamp(dt)
	s.stats.Ticks++

	ctx := &system.Context{
		World:  s.world,
		Player: s.player,
		Dt:     dt,
		Rng:    s.rng,
		Events: &s.events,
		Config: s.cfg,
		Log:    s.log.WithField("tick", s.stats.Ticks),
	}
	defer s.events.Reset()

	rep := Report{Tick: s.stats.Ticks, Dt: dt}
	rep.Spawned = system.SpawnEnemies(ctx)

	if err := system.MovePlayer(ctx, in); err != nil {
		return rep, err
	}
	if err := system.SteerEnemies(ctx); err != nil {
		return rep, err
	}
	system.MoveProjectiles(ctx)

	fired, err := system.FireWeapons(ctx)
	if err != nil {
		return rep, err
	}
	rep.Fired = fired

	hits, err := system.ResolveCollisions(ctx)
	if err != nil {
		return rep, err
	}
	rep.Collected = hits.Collected

	combat := system.ApplyDamage(ctx)
	rep.DamageDealt = combat.DamageDealt
	rep.DamageTaken = combat.DamageTaken

	drops, err := system.DropLoot(ctx)
	if err != nil {
		return rep, err
	}
	rep.Drops = drops

	system.AnimateSprites(ctx)
	system.UpdateFloatingText(ctx)

	rep.Damage = s.events.Damage.Snapshot()
	rep.Deaths = s.events.Death.Snapshot()
	s.world.Flush()

	s.record(rep)
	if combat.PlayerDied {
		s.gameOver = true
		rep.GameOver = true
		s.log.WithFields(logrus.Fields{
			"ticks": s.stats.Ticks,
			"kills": s.stats.Kills,
			"coins": s.stats.Coins,
		}).Info("game over")
	}
	return rep, nil
}

func (s *Simulation) clamp(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if limit := s.cfg.Clock.MaxDelta; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

func (s *Simulation) record(rep Report) {
	st := &s.stats
	st.Elapsed += rep.Dt
	st.Kills += rep.Kills()
	st.ShotsFired += rep.Fired
	st.DamageDealt += rep.DamageDealt
	st.DamageTaken += rep.DamageTaken
	for _, l := range rep.Collected {
		switch l.Kind {
		case component.LootCoin:
			st.Coins++
		case component.LootGem:
			st.Gems[l.Tier]++
		}
	}
}

// World exposes the entity store for presentation. Callers must not mutate it.
func (s *Simulation) World() *ecs.World { return s.world }

// Player returns the player entity.
func (s *Simulation) Player() ecs.EntityID { return s.player }

// Config returns the tuning the simulation was built with.
func (s *Simulation) Config() tuning.Config { return s.cfg }

// Stats returns the running totals.
func (s *Simulation) Stats() Stats { return s.stats }

// GameOver reports whether the player has died.
func (s *Simulation) GameOver() bool { return s.gameOver }

// PlayerHealth returns the player's current and maximum health.
func (s *Simulation) PlayerHealth() (current, maxHP int) {
	hp, _ := ecs.Lookup[component.Health](s.world, s.player)
	return hp.Current, hp.Max
}
