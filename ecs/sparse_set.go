package ecs

import "github.com/milk9111/panelgrid/ecs/component"

// SparseSet stores one component type densely. sparse maps an entity slot to
// its dense index plus one, so the zero value means absent.
type SparseSet[T any] struct {
	kind   component.ComponentID
	dense  []T
	owners []Entity
	sparse []int32
}

func newSparseSet[T any](kind component.ComponentID) *SparseSet[T] {
	return &SparseSet[T]{kind: kind}
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if s == nil || id >= len(s.sparse) {
		return 0, false
	}
	idx := int(s.sparse[id]) - 1
	if idx < 0 || s.owners[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e has a component in this set.
func (s *SparseSet[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns a pointer into dense storage. It is invalidated by the next
// insertion or removal.
func (s *SparseSet[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return &s.dense[idx], true
}

// Set inserts or overwrites the component of e.
func (s *SparseSet[T]) Set(e Entity, v T) {
	if idx, ok := s.index(e); ok {
		s.dense[idx] = v
		return
	}
	id := int(e.id())
	if id >= len(s.sparse) {
		grown := make([]int32, id+1, max(id+1, 2*len(s.sparse)))
		copy(grown, s.sparse)
		s.sparse = grown
	}
	s.dense = append(s.dense, v)
	s.owners = append(s.owners, e)
	s.sparse[id] = int32(len(s.dense))
}

// Remove swap-removes the component of e.
func (s *SparseSet[T]) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.owners[last]
	s.dense[idx] = s.dense[last]
	s.owners[idx] = moved
	s.sparse[moved.id()] = int32(idx + 1)

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	s.sparse[e.id()] = 0
	return true
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the dense owner list. Callers must not modify it.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.owners
}

// Values returns the dense component list, aligned with Entities.
func (s *SparseSet[T]) Values() []T {
	if s == nil {
		return nil
	}
	return s.dense
}

func (s *SparseSet[T]) clone(src, dst Entity) bool {
	v, ok := s.Get(src)
	if !ok {
		return false
	}
	s.Set(dst, *v)
	return true
}

func (s *SparseSet[T]) id() component.ComponentID {
	return s.kind
}

// anyStore is the type-erased view the world uses for lifecycle operations.
type anyStore interface {
	Has(e Entity) bool
	Remove(e Entity) bool
	Len() int
	Entities() []Entity
	clone(src, dst Entity) bool
	id() component.ComponentID
}
