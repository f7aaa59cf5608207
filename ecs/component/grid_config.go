package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/panelgrid/common"
)

var ErrNegativeGridCount = errors.New("grid config: negative panel count")

// GridConfig describes how a placement request expands into panels. It is a
// singleton.
type GridConfig struct {
	WidthCount         int
	HeightCount        int
	FirstPanelPosition Vec3
	HorizontalOffset   Vec3
	VerticalOffset     Vec3
	Rotation           Quat
	Scale              Vec3
}

var GridConfigComponent = NewComponent[GridConfig]()

// NewGridConfig validates the counts and applies the empty-grid defaults: a
// zero-area grid gets unit scale, a zero first position and axis-aligned unit
// offsets. A zero rotation becomes the identity.
func NewGridConfig(cfg GridConfig) (GridConfig, error) {
	if cfg.WidthCount < 0 || cfg.HeightCount < 0 {
		return GridConfig{}, fmt.Errorf("%w: %dx%d", ErrNegativeGridCount, cfg.WidthCount, cfg.HeightCount)
	}
	if cfg.Rotation.IsZero() {
		cfg.Rotation = common.QuatIdentity
	}
	if cfg.Empty() {
		cfg.Scale = common.Vec3One
		cfg.FirstPanelPosition = common.Vec3Zero
		cfg.HorizontalOffset = common.Vec3Right
		cfg.VerticalOffset = common.Vec3Up
	}
	return cfg, nil
}

func (g GridConfig) Count() int {
	return g.WidthCount * g.HeightCount
}

func (g GridConfig) Empty() bool {
	return g.Count() == 0
}

// PanelPosition returns the world position of the panel with the given
// index. Index is x + y*WidthCount.
func (g GridConfig) PanelPosition(index int) Vec3 {
	x := index % g.WidthCount
	y := index / g.WidthCount
	return g.FirstPanelPosition.
		Add(g.HorizontalOffset.Scale(float64(x))).
		Add(g.VerticalOffset.Scale(float64(y)))
}
