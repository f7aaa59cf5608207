package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

func newTemplate(t *testing.T, w *ecs.World, withColor bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PrefabComponent, component.Prefab{}))
	require.NoError(t, ecs.Add(w, e, component.PanelMeshComponent, component.PanelMesh{Width: 1, Height: 1}))
	if withColor {
		require.NoError(t, ecs.Add(w, e, component.PanelColorComponent, component.PanelColor{Color: common.ColorRed}))
	}
	return e
}

func newRequest(t *testing.T, w *ecs.World, template ecs.Entity) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlacementRequestComponent, component.PlacementRequest{Template: uint64(template)}))
	return e
}

func setGrid(t *testing.T, w *ecs.World, width, height int) component.GridConfig {
	t.Helper()
	grid, err := component.NewGridConfig(component.GridConfig{
		WidthCount:       width,
		HeightCount:      height,
		HorizontalOffset: common.Vec3{X: 1},
		VerticalOffset:   common.Vec3{Y: 1},
		Scale:            common.Vec3{X: 2, Y: 1, Z: 3},
	})
	require.NoError(t, err)
	ecs.SetSingleton(w, component.GridConfigComponent, grid)
	return grid
}

func panelPositions(w *ecs.World) []common.Vec3 {
	var out []common.Vec3
	ecs.ForEach(w, component.PanelTransformComponent, func(_ ecs.Entity, t *component.PanelTransform) {
		out = append(out, t.Position)
	})
	return out
}

func TestPlacementGeometry(t *testing.T) {
	w := ecs.NewWorld(ecs.WithWorkers(4))
	template := newTemplate(t, w, true)
	req := newRequest(t, w, template)
	setGrid(t, w, 3, 2)

	sched := ecs.NewScheduler(NewPlacementSystem())
	require.NoError(t, sched.Tick(w))

	assert.ElementsMatch(t, []common.Vec3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}, panelPositions(w))

	r, ok := ecs.Get(w, req, component.PlacementRequestComponent)
	require.True(t, ok)
	assert.True(t, r.Placed)
}

func TestPlacementPanelComponents(t *testing.T) {
	tests := []struct {
		name      string
		withColor bool
		want      common.Color
	}{
		{"keeps_template_color", true, common.ColorRed},
		{"adds_missing_color", false, common.ColorWhite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			template := newTemplate(t, w, tc.withColor)
			newRequest(t, w, template)
			grid := setGrid(t, w, 2, 2)

			require.NoError(t, ecs.NewScheduler(NewPlacementSystem()).Tick(w))

			panels := w.Query(component.PanelTransformComponent)
			require.Len(t, panels, 4)
			for _, e := range panels {
				assert.False(t, ecs.Has(w, e, component.PrefabComponent))
				assert.True(t, ecs.Has(w, e, component.PanelMeshComponent))

				tr, _ := ecs.Get(w, e, component.PanelTransformComponent)
				assert.Equal(t, grid.Rotation, tr.Rotation)
				assert.Equal(t, 1.0, tr.Scale)

				sc, ok := ecs.Get(w, e, component.PanelScaleComponent)
				require.True(t, ok)
				assert.Equal(t, common.Vec3{X: 2, Y: 1, Z: 3}, sc.Value.Diagonal())

				c, ok := ecs.Get(w, e, component.PanelColorComponent)
				require.True(t, ok)
				assert.Equal(t, tc.want, c.Color)
			}
		})
	}
}

func TestPlacementRunsOnce(t *testing.T) {
	w := ecs.NewWorld()
	template := newTemplate(t, w, true)
	newRequest(t, w, template)
	setGrid(t, w, 4, 5)

	sched := ecs.NewScheduler(NewPlacementSystem())
	for i := 0; i < 3; i++ {
		require.NoError(t, sched.Tick(w))
		assert.Equal(t, 20, ecs.Count(w, component.PanelTransformComponent), "tick %d", i)
	}
}

func TestPlacementManyRequests(t *testing.T) {
	w := ecs.NewWorld(ecs.WithWorkers(8), ecs.WithChunkSize(1))
	template := newTemplate(t, w, true)
	for i := 0; i < 16; i++ {
		newRequest(t, w, template)
	}
	setGrid(t, w, 3, 3)

	require.NoError(t, ecs.NewScheduler(NewPlacementSystem()).Tick(w))
	assert.Equal(t, 16*9, ecs.Count(w, component.PanelTransformComponent))

	ecs.ForEach(w, component.PlacementRequestComponent, func(_ ecs.Entity, r *component.PlacementRequest) {
		assert.True(t, r.Placed)
	})
}

func TestPlacementEmptyGrid(t *testing.T) {
	w := ecs.NewWorld()
	template := newTemplate(t, w, true)
	req := newRequest(t, w, template)
	grid := setGrid(t, w, 0, 4)

	assert.Equal(t, common.Vec3One, grid.Scale)

	require.NoError(t, ecs.NewScheduler(NewPlacementSystem()).Tick(w))
	assert.Zero(t, ecs.Count(w, component.PanelTransformComponent))

	r, _ := ecs.Get(w, req, component.PlacementRequestComponent)
	assert.True(t, r.Placed)
}

func TestPlacementWithoutGridIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	template := newTemplate(t, w, true)
	req := newRequest(t, w, template)

	require.NoError(t, ecs.NewScheduler(NewPlacementSystem()).Tick(w))
	assert.Zero(t, ecs.Count(w, component.PanelTransformComponent))

	r, _ := ecs.Get(w, req, component.PlacementRequestComponent)
	assert.False(t, r.Placed)
}

func TestPlacementDeadTemplate(t *testing.T) {
	w := ecs.NewWorld()
	template := newTemplate(t, w, true)
	newRequest(t, w, template)
	setGrid(t, w, 1, 2)
	ecs.DestroyEntity(w, template)

	err := ecs.NewScheduler(NewPlacementSystem()).Tick(w)
	assert.ErrorIs(t, err, ecs.ErrTemplateNotAlive)
	assert.Zero(t, ecs.Count(w, component.PanelTransformComponent))
}

func TestPanelsVisibleNextTick(t *testing.T) {
	w := ecs.NewWorld()
	template := newTemplate(t, w, true)
	newRequest(t, w, template)
	setGrid(t, w, 3, 2)

	var seen []int
	sched := ecs.NewScheduler(
		NewPlacementSystem(),
		ecs.SystemFunc(func(w *ecs.World) {
			seen = append(seen, ecs.Count(w, component.PanelTransformComponent))
		}),
	)
	require.NoError(t, sched.Tick(w))
	require.NoError(t, sched.Tick(w))

	assert.Equal(t, []int{0, 6}, seen)
}
