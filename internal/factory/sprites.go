package factory

import (
	"arcade-survivors/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Glyphs for the static sprites.
const (
	GlyphPlayer     = "🧙"
	GlyphEnemy      = "👾"
	GlyphProjectile = "✨"
)

// Sprite sheets for animated loot. The coin strip has five frames, every
// gem strip four.
var (
	CoinFrames = []string{"◯", "◐", "◓", "◑", "◒"}
	GemFrames  = []string{"◆", "◈", "◇", "◈"}
)

// Render layers, lower drawn first.
const (
	orderLoot       = 2
	orderEnemy      = 5
	orderProjectile = 7
	orderPlayer     = 10
	orderText       = 20
)

// tierColors follows the blue/green/red gem art.
var tierColors = map[component.GemTier]tcell.Color{
	component.TierLow:    tcell.ColorBlue,
	component.TierMedium: tcell.ColorGreen,
	component.TierHigh:   tcell.ColorRed,
}

func lootSprite(l component.Loot) ([]string, tcell.Color) {
	if l.Kind == component.LootCoin {
		return CoinFrames, tcell.ColorYellow
	}
	return GemFrames, tierColors[l.Tier]
}
