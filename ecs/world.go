package ecs

import (
	"runtime"
	"sync/atomic"

	"github.com/milk9111/panelgrid/ecs/component"
)

// World owns entities, component stores, singletons and the deferred command
// buffer for the current tick.
type World struct {
	entities   entityStore
	stores     map[component.ComponentID]anyStore
	order      []anyStore
	singletons map[component.ComponentID]any
	commands   *CommandBuffer

	workers     int
	chunkSize   int
	dispatching atomic.Int32
}

type Option func(*World)

// WithWorkers bounds the number of goroutines a parallel dispatch may use.
// Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(w *World) {
		w.workers = n
	}
}

// WithChunkSize fixes how many entities each parallel job processes. Values
// below 1 let the world size chunks from the worker count.
func WithChunkSize(n int) Option {
	return func(w *World) {
		w.chunkSize = n
	}
}

// NewWorld creates an empty ECS world.
func NewWorld(opts ...Option) *World {
	w := &World{
		stores:     make(map[component.ComponentID]anyStore),
		singletons: make(map[component.ComponentID]any),
		commands:   &CommandBuffer{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.workers < 1 {
		w.workers = runtime.GOMAXPROCS(0)
	}
	return w
}

// Workers returns the parallel dispatch bound.
func (w *World) Workers() int {
	return w.workers
}

// CreateEntity allocates a new entity. It panics when called from inside a
// parallel dispatch; use a CommandWriter there.
func CreateEntity(w *World) Entity {
	w.mustNotDispatch()
	return w.entities.create()
}

// DestroyEntity removes e and all of its components.
func DestroyEntity(w *World, e Entity) bool {
	w.mustNotDispatch()
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.order {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Commands returns the deferred command buffer for the current tick.
func (w *World) Commands() *CommandBuffer {
	return w.commands
}

// Playback applies and clears the deferred command buffer.
func (w *World) Playback() (int, error) {
	w.mustNotDispatch()
	return w.commands.Playback(w)
}

func (w *World) store(id component.ComponentID) anyStore {
	return w.stores[id]
}

func (w *World) addStore(s anyStore) {
	w.stores[s.id()] = s
	w.order = append(w.order, s)
}

// cloneComponents copies every component of src onto dst except the prefab
// tag.
func (w *World) cloneComponents(src, dst Entity) {
	for _, s := range w.order {
		if s.id() == component.PrefabComponent.ID() {
			continue
		}
		s.clone(src, dst)
	}
}

func (w *World) mustNotDispatch() {
	if w.dispatching.Load() > 0 {
		panic(component.ErrStructuralChange)
	}
}
