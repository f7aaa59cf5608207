package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

// PlacementSystem expands every unplaced PlacementRequest into one panel per
// grid cell. Panels are instantiated through the command buffer, so they show
// up on the tick after the request is placed.
type PlacementSystem struct{}

func NewPlacementSystem() *PlacementSystem {
	return &PlacementSystem{}
}

func (s *PlacementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	grid, ok := ecs.GetSingleton(w, component.GridConfigComponent)
	if !ok {
		return
	}

	count := grid.Count()
	scale := component.NewPanelScale(grid.Scale)
	ecs.ParallelForEach(w, component.PlacementRequestComponent, func(chunk int, e ecs.Entity, req *component.PlacementRequest) {
		if req.Placed {
			return
		}

		template := ecs.Entity(req.Template)
		needsColor := !ecs.Has(w, template, component.PanelColorComponent)
		cw := w.Commands().Lane(chunk)
		for i := 0; i < count; i++ {
			values := []ecs.ComponentValue{
				ecs.With(component.PanelTransformComponent, component.PanelTransform{
					Position: grid.PanelPosition(i),
					Rotation: grid.Rotation,
					Scale:    1,
				}),
				ecs.With(component.PanelScaleComponent, scale),
			}
			if needsColor {
				values = append(values, ecs.With(component.PanelColorComponent, component.PanelColor{Color: common.ColorWhite}))
			}
			cw.Instantiate(template, values...)
		}
		req.Placed = true

		logger.WithFields(logrus.Fields{
			"system":  "placement",
			"request": e,
			"panels":  count,
		}).Debug("placement request expanded")
	})
}
