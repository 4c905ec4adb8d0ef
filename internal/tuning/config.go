package tuning

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("invalid tuning config")

type PlayerConfig struct {
	Health    int     `mapstructure:"health"`
	HalfSize  float64 `mapstructure:"half_size"`
	MoveSpeed float64 `mapstructure:"move_speed"`
}

type EnemyConfig struct {
	Health        int     `mapstructure:"health"`
	HalfSize      float64 `mapstructure:"half_size"`
	Speed         float64 `mapstructure:"speed"`
	Population    int     `mapstructure:"population"`
	ContactDamage int     `mapstructure:"contact_damage"`
	SpawnMin      float64 `mapstructure:"spawn_min"`
	SpawnMax      float64 `mapstructure:"spawn_max"`
}

type WeaponConfig struct {
	WandInterval       float64 `mapstructure:"wand_interval"`
	ProjectileSpeed    float64 `mapstructure:"projectile_speed"`
	ProjectileHalfSize float64 `mapstructure:"projectile_half_size"`
	ProjectileLifetime float64 `mapstructure:"projectile_lifetime"`
	ProjectileDamage   int     `mapstructure:"projectile_damage"`
}

type LootConfig struct {
	HalfSize          float64 `mapstructure:"half_size"`
	AnimationInterval float64 `mapstructure:"animation_interval"`
	WeightNothing     float64 `mapstructure:"weight_nothing"`
	WeightGem         float64 `mapstructure:"weight_gem"`
	WeightCoin        float64 `mapstructure:"weight_coin"`
	TierLow           float64 `mapstructure:"tier_low"`
	TierMedium        float64 `mapstructure:"tier_medium"`
	TierHigh          float64 `mapstructure:"tier_high"`
}

type FeedbackConfig struct {
	TextLifetime float64 `mapstructure:"text_lifetime"`
	TextRise     float64 `mapstructure:"text_rise"`
}

type ClockConfig struct {
	TickRate int     `mapstructure:"tick_rate"`
	MaxDelta float64 `mapstructure:"max_delta"`
	Seed     int64   `mapstructure:"seed"` // 0 seeds from the wall clock
}

// Config collects every tunable used by a simulation.
type Config struct {
	Player   PlayerConfig   `mapstructure:"player"`
	Enemy    EnemyConfig    `mapstructure:"enemy"`
	Weapon   WeaponConfig   `mapstructure:"weapon"`
	Loot     LootConfig     `mapstructure:"loot"`
	Feedback FeedbackConfig `mapstructure:"feedback"`
	Clock    ClockConfig    `mapstructure:"clock"`
}

// Default returns the config built from the package constants.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Health:    PlayerHealth,
			HalfSize:  PlayerHalfSize,
			MoveSpeed: PlayerMoveSpeed,
		},
		Enemy: EnemyConfig{
			Health:        EnemyHealth,
			HalfSize:      EnemyHalfSize,
			Speed:         EnemySpeed,
			Population:    EnemyPopulation,
			ContactDamage: EnemyContactDamage,
			SpawnMin:      SpawnAreaMin,
			SpawnMax:      SpawnAreaMax,
		},
		Weapon: WeaponConfig{
			WandInterval:       WandInterval,
			ProjectileSpeed:    ProjectileSpeed,
			ProjectileHalfSize: ProjectileHalfSize,
			ProjectileLifetime: ProjectileLifetime,
			ProjectileDamage:   ProjectileDamage,
		},
		Loot: LootConfig{
			HalfSize:          LootHalfSize,
			AnimationInterval: AnimationInterval,
			WeightNothing:     DropWeightNothing,
			WeightGem:         DropWeightGem,
			WeightCoin:        DropWeightCoin,
			TierLow:           TierWeightLow,
			TierMedium:        TierWeightMedium,
			TierHigh:          TierWeightHigh,
		},
		Feedback: FeedbackConfig{
			TextLifetime: FloatingTextLifetime,
			TextRise:     FloatingTextRise,
		},
		Clock: ClockConfig{
			TickRate: TickRate,
			MaxDelta: MaxDelta,
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.Health > 0, "player.health %d must be positive", c.Player.Health)
	check(c.Player.HalfSize > 0, "player.half_size %v must be positive", c.Player.HalfSize)
	check(c.Enemy.Health > 0, "enemy.health %d must be positive", c.Enemy.Health)
	check(c.Enemy.HalfSize > 0, "enemy.half_size %v must be positive", c.Enemy.HalfSize)
	check(c.Enemy.Population >= 0, "enemy.population %d must not be negative", c.Enemy.Population)
	check(c.Enemy.ContactDamage > 0, "enemy.contact_damage %d must be positive", c.Enemy.ContactDamage)
	check(c.Enemy.SpawnMax > c.Enemy.SpawnMin, "enemy.spawn_max %v must exceed spawn_min %v", c.Enemy.SpawnMax, c.Enemy.SpawnMin)
	check(c.Weapon.WandInterval > 0, "weapon.wand_interval %v must be positive", c.Weapon.WandInterval)
	check(c.Weapon.ProjectileHalfSize > 0, "weapon.projectile_half_size %v must be positive", c.Weapon.ProjectileHalfSize)
	check(c.Weapon.ProjectileLifetime > 0, "weapon.projectile_lifetime %v must be positive", c.Weapon.ProjectileLifetime)
	check(c.Weapon.ProjectileDamage > 0, "weapon.projectile_damage %d must be positive", c.Weapon.ProjectileDamage)
	check(c.Loot.HalfSize > 0, "loot.half_size %v must be positive", c.Loot.HalfSize)
	check(c.Loot.AnimationInterval > 0, "loot.animation_interval %v must be positive", c.Loot.AnimationInterval)
	for name, w := range map[string]float64{
		"weight_nothing": c.Loot.WeightNothing,
		"weight_gem":     c.Loot.WeightGem,
		"weight_coin":    c.Loot.WeightCoin,
		"tier_low":       c.Loot.TierLow,
		"tier_medium":    c.Loot.TierMedium,
		"tier_high":      c.Loot.TierHigh,
	} {
		check(w > 0, "loot.%s %v must be positive", name, w)
	}
	check(c.Clock.TickRate > 0, "clock.tick_rate %d must be positive", c.Clock.TickRate)
	check(c.Clock.MaxDelta > 0, "clock.max_delta %v must be positive", c.Clock.MaxDelta)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
