package tuning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SURVIVORS_ENEMY_POPULATION=20.
const EnvPrefix = "SURVIVORS"

// Load returns Default() overlaid with the config file at path and with
// SURVIVORS_* environment variables. An empty path looks for an optional
// survivors.{yaml,toml,json} in the working directory.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("survivors")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("player.health", d.Player.Health)
	v.SetDefault("player.half_size", d.Player.HalfSize)
	v.SetDefault("player.move_speed", d.Player.MoveSpeed)

	v.SetDefault("enemy.health", d.Enemy.Health)
	v.SetDefault("enemy.half_size", d.Enemy.HalfSize)
	v.SetDefault("enemy.speed", d.Enemy.Speed)
	v.SetDefault("enemy.population", d.Enemy.Population)
	v.SetDefault("enemy.contact_damage", d.Enemy.ContactDamage)
	v.SetDefault("enemy.spawn_min", d.Enemy.SpawnMin)
	v.SetDefault("enemy.spawn_max", d.Enemy.SpawnMax)

	v.SetDefault("weapon.wand_interval", d.Weapon.WandInterval)
	v.SetDefault("weapon.projectile_speed", d.Weapon.ProjectileSpeed)
	v.SetDefault("weapon.projectile_half_size", d.Weapon.ProjectileHalfSize)
	v.SetDefault("weapon.projectile_lifetime", d.Weapon.ProjectileLifetime)
	v.SetDefault("weapon.projectile_damage", d.Weapon.ProjectileDamage)

	v.SetDefault("loot.half_size", d.Loot.HalfSize)
	v.SetDefault("loot.animation_interval", d.Loot.AnimationInterval)
	v.SetDefault("loot.weight_nothing", d.Loot.WeightNothing)
	v.SetDefault("loot.weight_gem", d.Loot.WeightGem)
	v.SetDefault("loot.weight_coin", d.Loot.WeightCoin)
	v.SetDefault("loot.tier_low", d.Loot.TierLow)
	v.SetDefault("loot.tier_medium", d.Loot.TierMedium)
	v.SetDefault("loot.tier_high", d.Loot.TierHigh)

	v.SetDefault("feedback.text_lifetime", d.Feedback.TextLifetime)
	v.SetDefault("feedback.text_rise", d.Feedback.TextRise)

	v.SetDefault("clock.tick_rate", d.Clock.TickRate)
	v.SetDefault("clock.max_delta", d.Clock.MaxDelta)
	v.SetDefault("clock.seed", d.Clock.Seed)
}
