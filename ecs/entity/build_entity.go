package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
	"github.com/milk9111/panelgrid/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"prefab":      addPrefab,
	"panel_mesh":  addPanelMesh,
	"panel_color": addPanelColor,
}

var componentBuildOrder = []string{
	"prefab",
	"panel_mesh",
	"panel_color",
}

// BuildEntity creates an entity from a component-block prefab. On error the
// partially built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	unknown := make([]string, 0, len(remaining))
	for name := range remaining {
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)
	if len(unknown) > 0 {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func addPrefab(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PrefabComponent, component.Prefab{})
}

func addPanelMesh(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PanelMeshComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode panel_mesh: %w", err)
	}

	mesh := component.PanelMesh{Width: spec.Width, Height: spec.Height}
	switch spec.Plane {
	case "", "plane":
		mesh.Plane = component.MeshPlaneXZ
	case "quad":
		mesh.Plane = component.MeshQuad
	default:
		return fmt.Errorf("unknown plane %q", spec.Plane)
	}
	if mesh.Width <= 0 {
		mesh.Width = 1
	}
	if mesh.Height <= 0 {
		mesh.Height = 1
	}
	return ecs.Add(w, e, component.PanelMeshComponent, mesh)
}

func addPanelColor(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PanelColorComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode panel_color: %w", err)
	}
	c := defaultPanelColor
	if spec.Color.Color != nil {
		c = spec.Color.Common()
	}
	return ecs.Add(w, e, component.PanelColorComponent, component.PanelColor{Color: c})
}
