package ecs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/milk9111/panelgrid/ecs/component"
)

var ErrTemplateNotAlive = errors.New("ecs: template entity not alive")

// ComponentValue is a typed component value carried by a deferred command.
type ComponentValue interface {
	ComponentID() component.ComponentID
	apply(w *World, e Entity) error
}

type componentValue[T any] struct {
	handle component.ComponentHandle[T]
	value  T
}

// With pairs a component handle with a value for deferred commands.
func With[T any](handle component.ComponentHandle[T], value T) ComponentValue {
	return componentValue[T]{handle: handle, value: value}
}

func (v componentValue[T]) ComponentID() component.ComponentID {
	return v.handle.ID()
}

func (v componentValue[T]) apply(w *World, e Entity) error {
	return Add(w, e, v.handle, v.value)
}

type commandOp uint8

const (
	opCreate commandOp = iota
	opInstantiate
	opAdd
	opDestroy
)

type command struct {
	op     commandOp
	target Entity
	values []ComponentValue
}

// CommandWriter is an append-only log owned by one parallel job.
type CommandWriter struct {
	cmds []command
}

// Create queues a new entity carrying values.
func (cw *CommandWriter) Create(values ...ComponentValue) {
	cw.cmds = append(cw.cmds, command{op: opCreate, values: values})
}

// Instantiate queues a copy of template (minus its prefab tag) with values
// applied on top.
func (cw *CommandWriter) Instantiate(template Entity, values ...ComponentValue) {
	cw.cmds = append(cw.cmds, command{op: opInstantiate, target: template, values: values})
}

// Add queues component values for an existing entity.
func (cw *CommandWriter) Add(e Entity, values ...ComponentValue) {
	cw.cmds = append(cw.cmds, command{op: opAdd, target: e, values: values})
}

func (cw *CommandWriter) Destroy(e Entity) {
	cw.cmds = append(cw.cmds, command{op: opDestroy, target: e})
}

func (cw *CommandWriter) Len() int {
	return len(cw.cmds)
}

// CommandBuffer collects structural changes made during a tick. Each parallel
// job writes to its own lane; Playback replays lanes in index order.
type CommandBuffer struct {
	mu    sync.Mutex
	lanes []*CommandWriter
}

// Lane returns the writer for lane i, creating it if needed. Lanes are safe
// to fetch concurrently; each writer must only be used by one goroutine.
func (b *CommandBuffer) Lane(i int) *CommandWriter {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.lanes) <= i {
		b.lanes = append(b.lanes, nil)
	}
	if b.lanes[i] == nil {
		b.lanes[i] = &CommandWriter{}
	}
	return b.lanes[i]
}

// Len returns the number of queued commands.
func (b *CommandBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, l := range b.lanes {
		if l != nil {
			n += len(l.cmds)
		}
	}
	return n
}

// Playback applies every queued command sequentially, then clears the buffer.
// It returns the number of entities created. A failing command does not stop
// the rest.
func (b *CommandBuffer) Playback(w *World) (int, error) {
	b.mu.Lock()
	lanes := b.lanes
	b.lanes = nil
	b.mu.Unlock()

	var (
		created int
		errs    []error
	)
	for _, lane := range lanes {
		if lane == nil {
			continue
		}
		for _, cmd := range lane.cmds {
			n, err := cmd.run(w)
			created += n
			if err != nil {
				errs = append(errs, err)
			}
		}
	}
	return created, errors.Join(errs...)
}

func (c command) run(w *World) (int, error) {
	switch c.op {
	case opCreate:
		e := CreateEntity(w)
		return 1, applyValues(w, e, c.values)
	case opInstantiate:
		if !IsAlive(w, c.target) {
			return 0, fmt.Errorf("instantiate %v: %w", c.target, ErrTemplateNotAlive)
		}
		e := CreateEntity(w)
		w.cloneComponents(c.target, e)
		return 1, applyValues(w, e, c.values)
	case opAdd:
		return 0, applyValues(w, c.target, c.values)
	case opDestroy:
		if !DestroyEntity(w, c.target) {
			return 0, fmt.Errorf("destroy %v: %w", c.target, component.ErrEntityNotAlive)
		}
	}
	return 0, nil
}

func applyValues(w *World, e Entity, values []ComponentValue) error {
	var errs []error
	for _, v := range values {
		if err := v.apply(w, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
