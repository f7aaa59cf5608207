package ecs

import (
	"fmt"

	"github.com/milk9111/panelgrid/ecs/component"
)

func storeOf[T any](w *World, handle component.ComponentHandle[T], create bool) *SparseSet[T] {
	if w == nil || !handle.Valid() {
		return nil
	}
	if s, ok := w.store(handle.ID()).(*SparseSet[T]); ok {
		return s
	}
	if !create {
		return nil
	}
	s := newSparseSet[T](handle.ID())
	w.addStore(s)
	return s
}

// Add attaches or overwrites a component on a live entity.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !handle.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add %s to %v: %w", handle.Kind().Name(), e, component.ErrEntityNotAlive)
	}
	s := storeOf(w, handle, false)
	if s == nil || !s.Has(e) {
		if w.dispatching.Load() > 0 {
			return component.ErrStructuralChange
		}
		s = storeOf(w, handle, true)
	}
	s.Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	w.mustNotDispatch()
	return storeOf(w, handle, false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return storeOf(w, handle, false).Has(e)
}

// Get returns a pointer to the stored component. Writes through the pointer
// are visible immediately.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	return storeOf(w, handle, false).Get(e)
}

// Count returns how many entities carry the component.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	return storeOf(w, handle, false).Len()
}

// ForEach visits every entity with the component, in storage order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, c *T)) {
	s := storeOf(w, handle, false)
	if s == nil {
		return
	}
	for i, e := range s.owners {
		fn(e, &s.dense[i])
	}
}

// ForEach2 visits every entity that has both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(e Entity, a *A, b *B)) {
	sa := storeOf(w, ha, false)
	sb := storeOf(w, hb, false)
	if sa == nil || sb == nil {
		return
	}
	for i, e := range sa.owners {
		if b, ok := sb.Get(e); ok {
			fn(e, &sa.dense[i], b)
		}
	}
}
