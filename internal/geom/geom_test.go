package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestOverlapsScenario(t *testing.T) {
	player := Vec2{0, 0}

	if Overlaps(player, 25, Vec2{60, 0}, 25) {
		t.Error("boxes 60 apart with reach 50 must not overlap")
	}
	if !Overlaps(player, 25, Vec2{40, 0}, 25) {
		t.Error("boxes 40 apart with reach 50 must overlap")
	}
}

func TestOverlapsTouchingIsNotACollision(t *testing.T) {
	if Overlaps(Vec2{0, 0}, 25, Vec2{50, 0}, 25) {
		t.Error("edge-touching squares must not overlap")
	}
	if Overlaps(Vec2{0, 0}, 25, Vec2{10, 50}, 25) {
		t.Error("edge-touching squares on Y must not overlap")
	}
}

func TestOverlapsNeedsBothAxes(t *testing.T) {
	// Close on X, far on Y.
	if Overlaps(Vec2{0, 0}, 5, Vec2{1, 100}, 5) {
		t.Error("far Y distance must prevent overlap")
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 2000; i++ {
		a := Vec2{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		b := Vec2{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		ha, hb := rng.Float64()*50, rng.Float64()*50
		if Overlaps(a, ha, b, hb) != Overlaps(b, hb, a, ha) {
			t.Fatalf("asymmetric result for a=%v/%v b=%v/%v", a, ha, b, hb)
		}
	}
}

func TestNormalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = %v; want (0.6,0.8)", n)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Normalize(0,0) = %v; want zero vector", z)
	}
}

func TestManhattan(t *testing.T) {
	if d := (Vec2{1, 2}).Manhattan(Vec2{-2, 6}); d != 7 {
		t.Errorf("Manhattan = %v; want 7", d)
	}
}
