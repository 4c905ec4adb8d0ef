package factory

import (
	"strconv"

	"arcade-survivors/internal/component"
	"arcade-survivors/internal/ecs"
	"arcade-survivors/internal/geom"
	"arcade-survivors/internal/tuning"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at pos armed with the wand.
func NewPlayer(w *ecs.World, pos geom.Vec2, cfg tuning.Config) ecs.EntityID {
	var weapons component.Weapons
	weapons.Equip(component.WeaponWand, cfg.Weapon.WandInterval)

	id := w.CreateEntity()
	w.Add(id, component.Position{Vec2: pos})
	w.Add(id, component.Player{MoveSpeed: cfg.Player.MoveSpeed})
	w.Add(id, component.Health{Current: cfg.Player.Health, Max: cfg.Player.Health})
	w.Add(id, component.Hitbox{Half: cfg.Player.HalfSize})
	w.Add(id, weapons)
	w.Add(id, component.Renderable{
		Glyph:       GlyphPlayer,
		FGColor:     tcell.ColorFuchsia,
		RenderOrder: orderPlayer,
	})
	return id
}

// NewEnemy creates a swarming enemy at pos.
func NewEnemy(w *ecs.World, pos geom.Vec2, cfg tuning.Config) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{Vec2: pos})
	w.Add(id, component.Enemy{Speed: cfg.Enemy.Speed})
	w.Add(id, component.Health{Current: cfg.Enemy.Health, Max: cfg.Enemy.Health})
	w.Add(id, component.Hitbox{Half: cfg.Enemy.HalfSize})
	w.Add(id, component.Renderable{
		Glyph:       GlyphEnemy,
		FGColor:     tcell.ColorRed,
		RenderOrder: orderEnemy,
	})
	return id
}

// NewProjectile creates a wand bolt at pos flying along dir. dir is expected
// to be normalized; it is scaled by the configured projectile speed.
func NewProjectile(w *ecs.World, pos, dir geom.Vec2, cfg tuning.Config) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{Vec2: pos})
	w.Add(id, component.Projectile{
		Velocity: dir.Scale(cfg.Weapon.ProjectileSpeed),
		Lifetime: cfg.Weapon.ProjectileLifetime,
		Damage:   cfg.Weapon.ProjectileDamage,
	})
	w.Add(id, component.Hitbox{Half: cfg.Weapon.ProjectileHalfSize})
	w.Add(id, component.Renderable{
		Glyph:       GlyphProjectile,
		FGColor:     tcell.ColorBlue,
		RenderOrder: orderProjectile,
	})
	return id
}

// NewLoot creates an animated pickup at pos.
func NewLoot(w *ecs.World, pos geom.Vec2, loot component.Loot, cfg tuning.Config) ecs.EntityID {
	frames, color := lootSprite(loot)

	id := w.CreateEntity()
	w.Add(id, component.Position{Vec2: pos})
	w.Add(id, loot)
	w.Add(id, component.Hitbox{Half: cfg.Loot.HalfSize})
	w.Add(id, component.Animation{
		Timer:      component.NewTimer(cfg.Loot.AnimationInterval),
		FrameCount: len(frames),
	})
	w.Add(id, component.Renderable{
		Glyph:       frames[0],
		Frames:      frames,
		FGColor:     color,
		RenderOrder: orderLoot,
	})
	return id
}

// NewDamageNumber creates a floating damage label rising from pos.
// Hits on the player are drawn in red, hits on enemies in white.
func NewDamageNumber(w *ecs.World, pos geom.Vec2, amount int, onPlayer bool, cfg tuning.Config) ecs.EntityID {
	color := tcell.ColorWhite
	if onPlayer {
		color = tcell.ColorRed
	}
	text := strconv.Itoa(amount)

	id := w.CreateEntity()
	w.Add(id, component.Position{Vec2: pos})
	w.Add(id, component.Velocity{Vec2: geom.Vec2{Y: cfg.Feedback.TextRise}})
	w.Add(id, component.FloatingText{Text: text, Remaining: cfg.Feedback.TextLifetime})
	w.Add(id, component.Renderable{
		Glyph:       text,
		FGColor:     color,
		RenderOrder: orderText,
	})
	return id
}
