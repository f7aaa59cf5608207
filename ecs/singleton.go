package ecs

import "github.com/milk9111/panelgrid/ecs/component"

// Singletons are addressed by component type rather than by entity. The
// registry holds at most one value per type.

// GetSingleton returns a copy of the singleton value, if present.
func GetSingleton[T any](w *World, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if w == nil {
		return zero, false
	}
	v, ok := w.singletons[handle.ID()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

func HasSingleton[T any](w *World, handle component.ComponentHandle[T]) bool {
	_, ok := GetSingleton(w, handle)
	return ok
}

// SetSingleton creates or replaces the singleton value.
func SetSingleton[T any](w *World, handle component.ComponentHandle[T], value T) {
	w.mustNotDispatch()
	w.singletons[handle.ID()] = value
}

// GetOrCreateSingleton returns the existing singleton or stores the value
// produced by create. created reports whether create ran.
func GetOrCreateSingleton[T any](w *World, handle component.ComponentHandle[T], create func() T) (value T, created bool) {
	if v, ok := GetSingleton(w, handle); ok {
		return v, false
	}
	value = create()
	SetSingleton(w, handle, value)
	return value, true
}

func RemoveSingleton[T any](w *World, handle component.ComponentHandle[T]) bool {
	w.mustNotDispatch()
	if _, ok := w.singletons[handle.ID()]; !ok {
		return false
	}
	delete(w.singletons, handle.ID())
	return true
}
