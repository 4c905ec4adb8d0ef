package component

import "arcade-survivors/internal/ecs"

const CLoot ecs.ComponentType = 9

// LootKind is the drop category of a loot entity.
type LootKind uint8

const (
	LootCoin LootKind = iota
	LootGem
)

// GemTier is the value tier of a gem.
type GemTier uint8

const (
	TierLow GemTier = iota
	TierMedium
	TierHigh
)

func (t GemTier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

// Loot is a pickup dropped by a dead enemy. Tier is only meaningful for gems.
type Loot struct {
	Kind LootKind
	Tier GemTier
}

func (Loot) Type() ecs.ComponentType { return CLoot }

func (l Loot) String() string {
	if l.Kind == LootCoin {
		return "coin"
	}
	return "gem/" + l.Tier.String()
}
