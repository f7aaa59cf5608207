package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab made of named component blocks.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PanelMeshComponentSpec struct {
	// Plane is "quad" (XY) or "plane" (XZ).
	Plane  string  `yaml:"plane"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PanelColorComponentSpec struct {
	Color YAMLColor `yaml:"color"`
}
