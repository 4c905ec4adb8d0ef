package geom

import "math"

// Overlaps reports whether two centered square hitboxes intersect.
// Each box is described by its center and half-size. Both axis distances
// must be strictly below halfA+halfB, so squares that only touch do not
// collide.
func Overlaps(posA Vec2, halfA float64, posB Vec2, halfB float64) bool {
	reach := halfA + halfB
	return math.Abs(posA.X-posB.X) < reach && math.Abs(posA.Y-posB.Y) < reach
}
