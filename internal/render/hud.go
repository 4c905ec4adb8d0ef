package render

import (
	"fmt"
	"strings"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/factory"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is the player-facing status shown under the play field.
type HUD struct {
	Name      string
	Health    int
	MaxHealth int
	Elapsed   float64 // seconds
	Kills     int
	Coins     int
	Gems      [3]int
	Best      int // best kill count on record, 0 if none
	Muted     bool
	Message   string
}

const healthBarWidth = 20

// DrawHUD renders the status rows at the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows
	if hudY < 0 {
		return
	}
	p := r.palette

	r.drawHLine(hudY, p.Separator)

	x := 0
	if h.Name != "" {
		x = r.drawText(x, hudY+1, "["+h.Name+"] ", p.Dim)
	}
	x = r.drawText(x, hudY+1, "HP ", p.Text)
	x = r.drawHealthBar(x, hudY+1, h.Health, h.MaxHealth)
	x = r.drawText(x, hudY+1, fmt.Sprintf(" %d/%d", max(h.Health, 0), h.MaxHealth), p.Text)
	x = r.drawText(x, hudY+1, fmt.Sprintf("  ⏱ %s  ☠ %d", clock(h.Elapsed), h.Kills), p.Text)
	if h.Best > 0 {
		r.drawText(x, hudY+1, fmt.Sprintf("  best %d", h.Best), p.Dim)
	}

	x = r.drawText(0, hudY+2, factory.CoinFrames[0], p.Coin)
	x = r.drawText(x, hudY+2, fmt.Sprintf(" %d ", h.Coins), p.Coin)
	for tier := component.TierLow; tier <= component.TierHigh; tier++ {
		x = r.drawText(x, hudY+2, fmt.Sprintf(" %s %d", factory.GemFrames[0], h.Gems[tier]), p.Gems[tier])
	}
	msg := h.Message
	if h.Muted {
		msg = strings.TrimSpace("🔇 " + msg)
	}
	if msg != "" {
		r.drawText(x+2, hudY+2, msg, p.Warning)
	}
}

func (r *Renderer) drawHealthBar(x, y, cur, maxHP int) int {
	filled := 0
	if maxHP > 0 && cur > 0 {
		filled = (cur*healthBarWidth + maxHP - 1) / maxHP
	}
	style := r.palette.HealthOK
	if maxHP > 0 && cur*4 <= maxHP {
		style = r.palette.HealthLow
	}
	for i := 0; i < healthBarWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
	return x + healthBarWidth
}

// Summary is the end-of-run screen content.
type Summary struct {
	Elapsed  float64
	Kills    int
	Coins    int
	Gems     [3]int
	Shots    int
	Dealt    int
	Taken    int
	NewBest  bool
	Continue string // hint for the key that leaves the screen
}

// DrawGameOver renders the end screen over a cleared frame.
func (r *Renderer) DrawGameOver(s Summary) {
	r.screen.Clear()
	_, h := r.screen.Size()
	p := r.palette
	y := h/2 - 5
	if y < 0 {
		y = 0
	}

	r.drawCentered(y, "GAME OVER", p.Title)
	y += 2
	lines := []string{
		fmt.Sprintf("survived %s", clock(s.Elapsed)),
		fmt.Sprintf("enemies defeated %d", s.Kills),
		fmt.Sprintf("coins %d   gems %d/%d/%d", s.Coins, s.Gems[component.TierLow], s.Gems[component.TierMedium], s.Gems[component.TierHigh]),
		fmt.Sprintf("shots %d   dealt %d   taken %d", s.Shots, s.Dealt, s.Taken),
	}
	for _, l := range lines {
		r.drawCentered(y, l, p.Text)
		y++
	}
	if s.NewBest {
		y++
		r.drawCentered(y, "new best!", p.Warning)
	}
	if s.Continue != "" {
		r.drawCentered(y+2, s.Continue, p.Dim)
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// clock formats seconds as m:ss.
func clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// TextWidth is the terminal column width of s.
func TextWidth(s string) int { return runewidth.StringWidth(s) }
