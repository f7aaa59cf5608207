package system

import (
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

// ColoringSystem recolors every panel from its distance to the cursor.
type ColoringSystem struct{}

func NewColoringSystem() *ColoringSystem {
	return &ColoringSystem{}
}

func (s *ColoringSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cursor, ok := ecs.GetSingleton(w, component.CursorStateComponent)
	if !ok {
		return
	}
	cfg, ok := ecs.GetSingleton(w, component.ColorConfigComponent)
	if !ok {
		return
	}

	ecs.ParallelForEach2(w, component.PanelTransformComponent, component.PanelColorComponent,
		func(_ int, _ ecs.Entity, t *component.PanelTransform, c *component.PanelColor) {
			c.Color = cfg.ColorAt(t.Position.Distance(cursor.Position))
		})
}
