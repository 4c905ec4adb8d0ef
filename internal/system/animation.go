package system

import (
	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
)

// AnimateSprites advances every sprite animation by one frame each time its
// timer fires.
func AnimateSprites(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CAnimation) {
		anim, _ := ecs.Lookup[component.Animation](w, id)
		if anim.Timer.Tick(ctx.Dt) && anim.FrameCount > 0 {
			anim.Frame = (anim.Frame + 1) % anim.FrameCount
		}
		w.Add(id, anim)
	}
}

// UpdateFloatingText drifts floating labels and queues the expired ones
// for removal.
func UpdateFloatingText(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CFloatingText) {
		ft, _ := ecs.Lookup[component.FloatingText](w, id)
		drift(w, id, ctx.Dt)
		ft.Remaining -= ctx.Dt
		w.Add(id, ft)
		if ft.Remaining <= 0 {
			w.QueueDestroy(id)
		}
	}
}
