package component

import (
	"arcade-survivors/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const (
	CRenderable   ecs.ComponentType = 12
	CAnimation    ecs.ComponentType = 10
	CFloatingText ecs.ComponentType = 11
)

// Renderable describes how the presentation layer draws an entity.
// When Frames is set and the entity has an Animation, the current frame
// replaces Glyph.
type Renderable struct {
	Glyph       string
	Frames      []string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// Animation steps through a sprite sheet on a fixed cadence.
type Animation struct {
	Timer      Timer
	Frame      int
	FrameCount int
}

func (Animation) Type() ecs.ComponentType { return CAnimation }

// FloatingText is a short-lived label such as a damage number.
type FloatingText struct {
	Text      string
	Remaining float64 // seconds
}

func (FloatingText) Type() ecs.ComponentType { return CFloatingText }
