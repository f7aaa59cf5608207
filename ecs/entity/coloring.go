package entity

import (
	"fmt"

	"github.com/milk9111/panelgrid/ecs/component"
	"github.com/milk9111/panelgrid/prefabs"
)

func ColorConfigFromSpec(s prefabs.ColoringSpec) (component.ColorConfig, error) {
	return component.NewColorConfig(s.DistanceMax, s.Near.Common(), s.Far.Common())
}

// LoadColorConfig loads and validates a coloring prefab.
func LoadColorConfig(prefabPath string) (component.ColorConfig, error) {
	spec, err := prefabs.LoadColoringSpec(prefabPath)
	if err != nil {
		return component.ColorConfig{}, err
	}
	cfg, err := ColorConfigFromSpec(spec)
	if err != nil {
		return component.ColorConfig{}, fmt.Errorf("coloring %q: %w", prefabPath, err)
	}
	return cfg, nil
}
