package render

import (
	"arcade-survivors/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the styles the renderer draws with.
type Palette struct {
	Ground    tcell.Style
	Separator tcell.Style
	Text      tcell.Style
	Dim       tcell.Style
	Warning   tcell.Style
	HealthOK  tcell.Style
	HealthLow tcell.Style
	Gems      [3]tcell.Style // by component.GemTier
	Coin      tcell.Style
	Title     tcell.Style
}

// DefaultPalette is used unless the caller swaps it out.
var DefaultPalette = Palette{
	Ground:    tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack),
	Separator: tcell.StyleDefault.Foreground(tcell.ColorGray),
	Text:      tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Dim:       tcell.StyleDefault.Foreground(tcell.ColorGray),
	Warning:   tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	HealthOK:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	HealthLow: tcell.StyleDefault.Foreground(tcell.ColorRed),
	Gems: [3]tcell.Style{
		component.TierLow:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		component.TierMedium: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		component.TierHigh:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	},
	Coin:  tcell.StyleDefault.Foreground(tcell.ColorGold),
	Title: tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
}

// Spacing of the ground grid in world units.
const groundSpacing = 100.0

const groundGlyph = '·'
