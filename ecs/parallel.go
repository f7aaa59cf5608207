package ecs

import (
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/panelgrid/ecs/component"
)

// Parallel dispatch splits a matched set into contiguous chunks and runs them
// on at most w.Workers() goroutines. Chunk numbers are stable for a given set
// size, so per-chunk command lanes replay in a deterministic order. While a
// dispatch is running the world rejects structural changes.

func (w *World) chunking(n int) (size, chunks int) {
	size = w.chunkSize
	if size < 1 {
		size = (n + w.workers*4 - 1) / (w.workers * 4)
		size = max(size, 1)
	}
	return size, (n + size - 1) / size
}

func (w *World) dispatch(n int, job func(chunk, lo, hi int)) {
	if n == 0 {
		return
	}
	w.dispatching.Add(1)
	defer w.dispatching.Add(-1)

	size, chunks := w.chunking(n)
	if chunks == 1 || w.workers == 1 {
		for c := 0; c < chunks; c++ {
			job(c, c*size, min((c+1)*size, n))
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(w.workers)
	for c := 0; c < chunks; c++ {
		g.Go(func() error {
			job(c, c*size, min((c+1)*size, n))
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelForEach runs fn for every entity with the component. fn receives
// the chunk it runs in; use it to pick a command lane.
func ParallelForEach[T any](w *World, handle component.ComponentHandle[T], fn func(chunk int, e Entity, c *T)) {
	s := storeOf(w, handle, false)
	if s == nil {
		return
	}
	owners, dense := s.owners, s.dense
	w.dispatch(len(owners), func(chunk, lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(chunk, owners[i], &dense[i])
		}
	})
}

// ParallelForEach2 runs fn for every entity that has both components.
func ParallelForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(chunk int, e Entity, a *A, b *B)) {
	sa := storeOf(w, ha, false)
	sb := storeOf(w, hb, false)
	if sa == nil || sb == nil {
		return
	}

	type match struct{ a, b int }
	matches := make([]match, 0, min(sa.Len(), sb.Len()))
	for i, e := range sa.owners {
		if j, ok := sb.index(e); ok {
			matches = append(matches, match{i, j})
		}
	}

	w.dispatch(len(matches), func(chunk, lo, hi int) {
		for _, m := range matches[lo:hi] {
			fn(chunk, sa.owners[m.a], &sa.dense[m.a], &sb.dense[m.b])
		}
	})
}
