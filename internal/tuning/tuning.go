// Package tuning centralizes the tunable game parameters.
package tuning

// Player
const (
	PlayerHealth    = 100
	PlayerHalfSize  = 25.0
	PlayerMoveSpeed = 60.0 // world units per second
)

// Enemies
const (
	EnemyHealth        = 10
	EnemyHalfSize      = 25.0
	EnemySpeed         = 12.0 // world units per second
	EnemyPopulation    = 10   // spawner tops the swarm up to this many
	EnemyContactDamage = 5    // per overlapping enemy per tick
)

// Spawn area for topped-up enemies, a square in world units.
const (
	SpawnAreaMin = 0.0
	SpawnAreaMax = 1000.0
)

// Wand
const (
	WandInterval       = 1.0 // seconds between shots
	ProjectileSpeed    = 240.0
	ProjectileHalfSize = 5.0
	ProjectileLifetime = 3.0 // seconds
	ProjectileDamage   = 5
)

// Loot
const (
	LootHalfSize      = 8.0
	AnimationInterval = 0.1 // seconds per sprite frame
	CoinFrames        = 5
	GemFrames         = 4
)

// Drop category weights.
const (
	DropWeightNothing = 10.0
	DropWeightGem     = 10.0
	DropWeightCoin    = 5.0
)

// Gem tier weights.
const (
	TierWeightLow    = 10.0
	TierWeightMedium = 1.0
	TierWeightHigh   = 0.1
)

// Floating damage numbers
const (
	FloatingTextLifetime = 0.6  // seconds
	FloatingTextRise     = 30.0 // world units per second
)

// Clock
const (
	TickRate = 60   // simulation ticks per second
	MaxDelta = 0.25 // seconds; longer frames are clamped
)
