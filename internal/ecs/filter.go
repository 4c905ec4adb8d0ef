package ecs

// Filter selects entities by component presence and absence.
//
//	ids := w.Select(component.CPosition, component.CEnemy).
//	    Without(component.CPlayer).
//	    IDs()
type Filter struct {
	world   *World
	with    []ComponentType
	without []ComponentType
}

// Select starts a filter requiring every listed component type.
func (w *World) Select(types ...ComponentType) *Filter {
	return &Filter{world: w, with: types}
}

// Without excludes entities carrying any of the listed component types.
func (f *Filter) Without(types ...ComponentType) *Filter {
	f.without = append(f.without, types...)
	return f
}

// IDs runs the filter and returns matches in creation order. A filter with
// no required types matches nothing.
func (f *Filter) IDs() []EntityID {
	if len(f.with) == 0 {
		return nil
	}
	// Empty required store short-circuits.
	for _, t := range f.with {
		if len(f.world.components[t]) == 0 {
			return nil
		}
	}

	var result []EntityID
	for _, id := range f.world.order {
		if f.matches(id) {
			result = append(result, id)
		}
	}
	return result
}

func (f *Filter) matches(id EntityID) bool {
	for _, t := range f.with {
		if !f.world.Has(id, t) {
			return false
		}
	}
	for _, t := range f.without {
		if f.world.Has(id, t) {
			return false
		}
	}
	return true
}
