package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/panelgrid/common"
)

var ErrInvalidDistance = errors.New("color config: distance max must be positive and finite")

// ColorConfig holds the interaction radius and the two interpolation colors.
// It is a singleton.
type ColorConfig struct {
	DistanceMax float64
	Near        Color
	Far         Color
}

var ColorConfigComponent = NewComponent[ColorConfig]()

func NewColorConfig(distanceMax float64, near, far Color) (ColorConfig, error) {
	if !(distanceMax > 0) || !common.IsFinite(distanceMax) {
		return ColorConfig{}, fmt.Errorf("%w: %v", ErrInvalidDistance, distanceMax)
	}
	return ColorConfig{DistanceMax: distanceMax, Near: near, Far: far}, nil
}

// Weight is 1 at zero distance, 0 at or beyond DistanceMax and linear in
// between.
func (c ColorConfig) Weight(distance float64) float64 {
	return common.Clamp01(1 - distance/c.DistanceMax)
}

// ColorAt returns the interpolated color for a panel at the given distance.
func (c ColorConfig) ColorAt(distance float64) Color {
	return common.LerpColor(c.Far, c.Near, c.Weight(distance))
}
