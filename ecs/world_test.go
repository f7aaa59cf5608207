package ecs

import (
	"testing"

	"github.com/milk9111/panelgrid/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second destroy should report false")
				}
			}
		})
	}
}

func TestEntityReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	second := CreateEntity(w)

	if first.id() != second.id() {
		t.Fatalf("expected slot reuse, got %d and %d", first.id(), second.id())
	}
	if first == second {
		t.Fatalf("reused entity should carry a new generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle must not be alive")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := Count(w, h2); got != 2 {
					t.Fatalf("expected 2 strings, got %d", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "write_through_pointer",
			setup: func() error { return Add(w, e2, h3, 1.5) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h3)
				*v = 2.5
				if again, _ := Get(w, e2, h3); *again != 2.5 {
					t.Fatalf("expected pointer write to stick, got %v", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h3) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddToDeadEntity(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	if err := Add(w, e, h, 1); err == nil {
		t.Fatalf("expected error adding to dead entity")
	}
	var invalid component.ComponentHandle[int]
	if err := Add(w, CreateEntity(w), invalid, 1); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestSwapRemoveKeepsIndex(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h, i); err != nil {
			t.Fatal(err)
		}
	}

	DestroyEntity(w, ents[1])
	Remove(w, ents[3], h)

	for i, e := range ents {
		v, ok := Get(w, e, h)
		switch i {
		case 1, 3:
			if ok {
				t.Fatalf("entity %d should have no component", i)
			}
		default:
			if !ok || *v != i {
				t.Fatalf("entity %d: expected %d, got %v ok=%v", i, i, v, ok)
			}
		}
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]int{}
	ForEach(w, h, func(e Entity, v *int) { seen[e] = *v })

	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected visit set %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()

				_ = Add(w, e1, ka, 1)
				_ = Add(w, e2, ka, 2)
				_ = Add(w, e2, kb, 3)
				_ = Add(w, e3, kb, 4)

				res := w.Query(ka, kb)
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}

				var pairs []Entity
				ForEach2(w, ka, kb, func(e Entity, a *int, b *int) {
					if *a != 2 || *b != 3 {
						t.Fatalf("unexpected values %d %d", *a, *b)
					}
					pairs = append(pairs, e)
				})
				if len(pairs) != 1 {
					t.Fatalf("expected one pair, got %v", pairs)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponent[int]()
				_ = Add(w, e, ka, 1)
				DestroyEntity(w, e)

				if res := w.Query(ka); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
				if _, ok := w.First(ka); ok {
					t.Fatalf("First should find nothing")
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				_ = Add(w, e, ka, 1)

				if res := w.Query(ka, kb); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestSingletons(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()

	if _, ok := GetSingleton(w, h); ok {
		t.Fatalf("singleton should start absent")
	}

	calls := 0
	create := func() string { calls++; return "first" }
	for i := 0; i < 3; i++ {
		v, _ := GetOrCreateSingleton(w, h, create)
		if v != "first" {
			t.Fatalf("expected first, got %q", v)
		}
	}
	if calls != 1 {
		t.Fatalf("create should run once, ran %d times", calls)
	}

	SetSingleton(w, h, "second")
	if v, _ := GetSingleton(w, h); v != "second" {
		t.Fatalf("expected replacement, got %q", v)
	}
	if !RemoveSingleton(w, h) || HasSingleton(w, h) {
		t.Fatalf("singleton should be removed")
	}
}
