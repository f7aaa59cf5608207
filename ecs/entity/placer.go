package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
	"github.com/milk9111/panelgrid/prefabs"
)

var ErrNoGrid = errors.New("entity: placer defines neither grid nor layout")

const defaultPanelPrefab = "panel.yaml"

// GridFromPlacer resolves the grid of a placer prefab. An explicit grid block
// wins over a layout block.
func GridFromPlacer(spec prefabs.PlacerSpec) (component.GridConfig, error) {
	switch {
	case spec.Grid != nil:
		return GridFromSpec(*spec.Grid)
	case spec.Layout != nil:
		return GridFromLayout(CameraFromSpec(spec.Camera), LayoutFromSpec(*spec.Layout))
	default:
		return component.GridConfig{}, ErrNoGrid
	}
}

// NewPlacer bakes a placer into the world: the GridConfig singleton unless
// one exists, the panel template and an unplaced PlacementRequest. It returns
// the request entity.
func NewPlacer(w *ecs.World, spec prefabs.PlacerSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("new placer: world is nil")
	}

	if !ecs.HasSingleton(w, component.GridConfigComponent) {
		grid, err := GridFromPlacer(spec)
		if err != nil {
			return 0, fmt.Errorf("new placer %q: %w", spec.Name, err)
		}
		ecs.SetSingleton(w, component.GridConfigComponent, grid)
	}

	panel := spec.Panel
	if panel == "" {
		panel = defaultPanelPrefab
	}
	template, err := NewPanelTemplate(w, panel)
	if err != nil {
		return 0, fmt.Errorf("new placer %q: %w", spec.Name, err)
	}

	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.PlacementRequestComponent, component.PlacementRequest{Template: uint64(template)}); err != nil {
		return 0, err
	}
	return req, nil
}
