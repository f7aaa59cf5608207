package entity

import (
	"fmt"

	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
	"github.com/milk9111/panelgrid/prefabs"
)

// Scene is what the apps need after baking the authoring data.
type Scene struct {
	Request  ecs.Entity
	Camera   PlacementCamera
	Coloring component.ColorConfig
}

// LoadScene bakes the placer and coloring prefabs into w. The coloring config
// is returned, not stored; ColorConfigSystem owns the singleton.
func LoadScene(w *ecs.World, placerPath, coloringPath string) (*Scene, error) {
	placer, err := prefabs.LoadPlacerSpec(placerPath)
	if err != nil {
		return nil, err
	}
	coloring, err := LoadColorConfig(coloringPath)
	if err != nil {
		return nil, err
	}

	cam := CameraFromSpec(placer.Camera)
	if !(cam.Size > 0) {
		return nil, fmt.Errorf("load scene %q: %w", placerPath, ErrInvalidCamera)
	}

	req, err := NewPlacer(w, placer)
	if err != nil {
		return nil, err
	}
	return &Scene{Request: req, Camera: cam, Coloring: coloring}, nil
}
