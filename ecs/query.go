package ecs

import (
	"sort"

	"github.com/milk9111/panelgrid/ecs/component"
)

// Query returns the entities that have every listed component. The smallest
// store drives the intersection.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]anyStore, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil || s.Len() == 0 {
			return nil
		}
		stores = append(stores, s)
	}
	sort.Slice(stores, func(i, j int) bool {
		return stores[i].Len() < stores[j].Len()
	})

	out := make([]Entity, 0, stores[0].Len())
	for _, e := range stores[0].Entities() {
		matched := true
		for _, s := range stores[1:] {
			if !s.Has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}

// First returns any entity that has every listed component.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	entities := w.Query(kinds...)
	if len(entities) == 0 {
		return 0, false
	}
	return entities[0], true
}
