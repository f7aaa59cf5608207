package entity

import (
	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

var defaultPanelColor = common.ColorRed

// NewPanelTemplate builds the panel template from prefabPath. Templates always
// carry the prefab tag, a mesh and an initial color.
func NewPanelTemplate(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}

	if !ecs.Has(w, e, component.PrefabComponent) {
		if err := ecs.Add(w, e, component.PrefabComponent, component.Prefab{}); err != nil {
			return 0, err
		}
	}
	if !ecs.Has(w, e, component.PanelMeshComponent) {
		mesh := component.PanelMesh{Plane: component.MeshPlaneXZ, Width: 1, Height: 1}
		if err := ecs.Add(w, e, component.PanelMeshComponent, mesh); err != nil {
			return 0, err
		}
	}
	if !ecs.Has(w, e, component.PanelColorComponent) {
		if err := ecs.Add(w, e, component.PanelColorComponent, component.PanelColor{Color: defaultPanelColor}); err != nil {
			return 0, err
		}
	}
	return e, nil
}
