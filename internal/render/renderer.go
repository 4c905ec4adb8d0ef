package render

import (
	"math"
	"sort"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved at the bottom for the HUD.
const HUDRows = 3

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, palette: DefaultPalette}
	r.camera = NewCamera(geom.Vec2{}, 0, 0)
	r.Resize()
	return r
}

// Resize picks up a new screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	viewH := h - HUDRows
	if viewH < 1 {
		viewH = 1
	}
	r.camera.ViewWidth = w
	r.camera.ViewHeight = viewH
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// CenterOn recenters the camera on a world position.
func (r *Renderer) CenterOn(p geom.Vec2) { r.camera.Center = p }

// DrawFrame clears the screen and draws the ground and every entity with a
// Renderable and Position, centered on the player. Call DrawHUD and Show
// afterwards.
func (r *Renderer) DrawFrame(w *ecs.World, playerID ecs.EntityID) {
	if pos, ok := ecs.Lookup[component.Position](w, playerID); ok {
		r.CenterOn(pos.Vec2)
	}
	r.screen.Clear()
	r.drawGround()
	r.drawEntities(w)
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// drawGround scatters a fixed world-space grid so movement is visible.
func (r *Renderer) drawGround() {
	c := r.camera
	topLeft := c.ScreenToWorld(0, 0)
	bottomRight := c.ScreenToWorld(c.ViewWidth, c.ViewHeight)

	for y := math.Floor(bottomRight.Y/groundSpacing) * groundSpacing; y <= topLeft.Y; y += groundSpacing {
		for x := math.Floor(topLeft.X/groundSpacing) * groundSpacing; x <= bottomRight.X; x += groundSpacing {
			if sx, sy, ok := c.WorldToScreen(geom.Vec2{X: x, Y: y}); ok {
				r.screen.SetContent(sx, sy, groundGlyph, nil, r.palette.Ground)
			}
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   geom.Vec2
	glyph string
	text  bool
	style tcell.Style
}

func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos, _ := ecs.Lookup[component.Position](w, id)
		rend, _ := ecs.Lookup[component.Renderable](w, id)
		e := renderableEntity{
			order: rend.RenderOrder,
			pos:   pos.Vec2,
			glyph: glyphFor(w, id, rend),
			text:  w.Has(id, component.CFloatingText),
			style: tcell.StyleDefault.Foreground(rend.FGColor).Background(tcell.ColorBlack),
		}
		entities = append(entities, e)
	}

	// Lower order is drawn first, so behind. Stable keeps creation order
	// among equals.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos)
		if !onScreen {
			continue
		}
		if e.text {
			r.drawText(sx, sy, e.glyph, e.style.Bold(true))
			continue
		}
		// Center wide glyphs on their cell.
		if runewidth.StringWidth(e.glyph) == 2 {
			sx--
		}
		r.putGlyph(sx, sy, e.glyph, e.style)
	}
}

// glyphFor returns the current animation frame when the entity has one.
func glyphFor(w *ecs.World, id ecs.EntityID, rend component.Renderable) string {
	if len(rend.Frames) == 0 {
		return rend.Glyph
	}
	anim, ok := ecs.Lookup[component.Animation](w, id)
	if !ok {
		return rend.Frames[0]
	}
	return rend.Frames[anim.Frame%len(rend.Frames)]
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}

// drawCentered writes text horizontally centered on row y.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}
