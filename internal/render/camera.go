package render

import (
	"math"

	"arcade-survivors/internal/geom"
)

// World units covered by one terminal cell. Terminal cells are about twice
// as tall as they are wide, so a row spans twice the distance of a column.
const (
	UnitsPerColumn = 10.0
	UnitsPerRow    = 20.0
)

// Camera translates between world coordinates and screen coordinates.
// World +Y points up; screen rows grow downward.
type Camera struct {
	Center     geom.Vec2
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c geom.Vec2, viewW, viewH int) *Camera {
	return &Camera{Center: c, ViewWidth: viewW, ViewHeight: viewH}
}

// WorldToScreen converts a world position to the screen cell it falls in.
// visible is false when the result is outside the viewport.
func (c *Camera) WorldToScreen(p geom.Vec2) (sx, sy int, visible bool) {
	sx = c.ViewWidth/2 + int(math.Floor((p.X-c.Center.X)/UnitsPerColumn))
	sy = c.ViewHeight/2 - int(math.Floor((p.Y-c.Center.Y)/UnitsPerRow))
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld returns the world position at the top-left corner of cell (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) geom.Vec2 {
	return geom.Vec2{
		X: c.Center.X + float64(sx-c.ViewWidth/2)*UnitsPerColumn,
		Y: c.Center.Y - float64(sy-c.ViewHeight/2)*UnitsPerRow,
	}
}
