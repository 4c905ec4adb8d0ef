// Package event holds the transient per-tick messages passed between
// simulation stages.
package event

import "arcade-survivors/internal/ecs"

// Damage asks the combat stage to subtract Amount from Target's health.
type Damage struct {
	Target ecs.EntityID
	Amount int
}

// VictimKind tells death consumers what kind of entity died.
type VictimKind uint8

const (
	VictimEnemy VictimKind = iota
	VictimPlayer
)

// Death is emitted exactly once when an entity's health crosses zero.
// The target stays readable until the end of the tick so consumers can
// still look up where it died.
type Death struct {
	Target ecs.EntityID
	Kind   VictimKind
}
