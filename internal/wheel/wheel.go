// Package wheel implements a weighted random table: entries are drawn with
// probability proportional to their weight and removed once drawn.
package wheel

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrEmptyTable is returned when a draw is required from a table with no entries.
var ErrEmptyTable = errors.New("weighted table is empty")

// ErrBadWeight is returned by Push for weights that are not positive finite numbers.
var ErrBadWeight = errors.New("weight must be positive and finite")

// Entry is one weighted payload.
type Entry[T any] struct {
	Weight float64
	Value  T
}

// Table holds weighted entries. Duplicate values are allowed; each entry
// keeps its own weight. Not safe for concurrent use.
type Table[T any] struct {
	rng     *rand.Rand
	entries []Entry[T]
	total   float64
}

// New returns an empty table drawing from rng. A nil rng uses the
// process-wide generator.
func New[T any](rng *rand.Rand) *Table[T] {
	return &Table[T]{rng: rng}
}

// Push appends an entry.
func (t *Table[T]) Push(weight float64, value T) error {
	if !(weight > 0) || math.IsInf(weight, 0) {
		return fmt.Errorf("push %v: %w", weight, ErrBadWeight)
	}
	t.entries = append(t.entries, Entry[T]{Weight: weight, Value: value})
	t.total += weight
	return nil
}

// Len returns the number of entries left.
func (t *Table[T]) Len() int { return len(t.entries) }

// TotalWeight returns the sum of the remaining weights.
func (t *Table[T]) TotalWeight() float64 { return t.total }

// Pop draws one entry with probability weight/TotalWeight, removes it and
// returns it. ok is false when the table is empty.
func (t *Table[T]) Pop() (e Entry[T], ok bool) {
	if len(t.entries) == 0 {
		return e, false
	}

	r := t.float() * t.total
	idx := len(t.entries) - 1 // float rounding can leave r just past the last bound
	for i, entry := range t.entries {
		if r < entry.Weight {
			idx = i
			break
		}
		r -= entry.Weight
	}

	e = t.entries[idx]
	t.entries = append(t.entries[:idx], t.entries[idx+1:]...)
	if len(t.entries) == 0 {
		t.total = 0
	} else {
		t.total -= e.Weight
	}
	return e, true
}

// MustPop is Pop for callers that require a draw. An empty table means a
// required entry was never pushed, so it is reported as ErrEmptyTable.
func (t *Table[T]) MustPop() (Entry[T], error) {
	e, ok := t.Pop()
	if !ok {
		return e, ErrEmptyTable
	}
	return e, nil
}

func (t *Table[T]) float() float64 {
	if t.rng == nil {
		return rand.Float64()
	}
	return t.rng.Float64()
}
