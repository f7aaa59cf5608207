package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/panelgrid/common"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 {
	return common.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// CameraSpec describes the orthographic camera the grid is authored against.
// Rotation is in euler degrees.
type CameraSpec struct {
	Position Vec3Spec `yaml:"position"`
	Rotation Vec3Spec `yaml:"rotation"`
	Size     float64  `yaml:"ortho_size"`
	Aspect   float64  `yaml:"aspect"`
	Distance float64  `yaml:"distance"`
}

type QuatSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
}

func (q QuatSpec) Quat() common.Quat {
	return common.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// GridSpec is a baked grid, as written by cmd/placer. A zero rotation means
// identity.
type GridSpec struct {
	Width              int      `yaml:"width"`
	Height             int      `yaml:"height"`
	FirstPanelPosition Vec3Spec `yaml:"first_panel_position"`
	HorizontalOffset   Vec3Spec `yaml:"horizontal_offset"`
	VerticalOffset     Vec3Spec `yaml:"vertical_offset"`
	Rotation           QuatSpec `yaml:"rotation"`
	Scale              Vec3Spec `yaml:"scale"`
}

// LayoutSpec fills the camera view with Width x Height panels.
type LayoutSpec struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	PanelRotation Vec3Spec `yaml:"panel_rotation"`
	PanelScale    float64  `yaml:"panel_scale"`
}

// PlacerSpec is the authoring data for one placement request. Grid wins over
// Layout when both are set.
type PlacerSpec struct {
	Name   string      `yaml:"name"`
	Panel  string      `yaml:"panel"`
	Camera CameraSpec  `yaml:"camera"`
	Grid   *GridSpec   `yaml:"grid,omitempty"`
	Layout *LayoutSpec `yaml:"layout,omitempty"`
}

func LoadPlacerSpec(filename string) (PlacerSpec, error) {
	return LoadSpec[PlacerSpec](filename)
}

type ColoringSpec struct {
	Name        string    `yaml:"name"`
	DistanceMax float64   `yaml:"distance_max"`
	Near        YAMLColor `yaml:"near"`
	Far         YAMLColor `yaml:"far"`
}

func LoadColoringSpec(filename string) (ColoringSpec, error) {
	return LoadSpec[ColoringSpec](filename)
}

// YAMLColor accepts "#RRGGBB", "#RRGGBBAA", a CSS color name or a sequence of
// three or four floats in [0, 1].
type YAMLColor struct {
	color.Color
}

// Common converts the color, treating an unset color as transparent black.
func (c YAMLColor) Common() common.Color {
	if c.Color == nil {
		return common.Color{}
	}
	return common.ColorFrom(c.Color)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return c.unmarshalString(value.Value)
	case yaml.SequenceNode:
		var v []float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
		if len(v) != 3 && len(v) != 4 {
			return fmt.Errorf("color sequence must have 3 or 4 values, got %d", len(v))
		}
		if len(v) == 3 {
			v = append(v, 1)
		}
		c.Color = common.Color{R: v[0], G: v[1], B: v[2], A: v[3]}.NRGBA()
		return nil
	default:
		return fmt.Errorf("color must be a string or a sequence")
	}
}

func (c *YAMLColor) unmarshalString(raw string) error {
	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(raw, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// MarshalYAML writes the color as #RRGGBBAA.
func (c YAMLColor) MarshalYAML() (any, error) {
	n := c.Common().NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
