package ecs

import "fmt"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs a fixed, ordered list of systems. Structural changes queued
// during a tick are applied after the last system, so they become visible on
// the next tick.
type Scheduler struct {
	systems []System
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Tick runs every system once and then plays back the command buffer.
func (s *Scheduler) Tick(w *World) error {
	if w == nil {
		return nil
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	s.ticks++

	created, err := w.Playback()
	if created > 0 {
		logger.WithField("tick", s.ticks).Debugf("playback created %d entities", created)
	}
	if err != nil {
		logger.WithField("tick", s.ticks).WithError(err).Warn("command playback failed")
		return fmt.Errorf("tick %d: playback: %w", s.ticks, err)
	}
	return nil
}

// Ticks returns how many ticks have completed.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
