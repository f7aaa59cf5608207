package entity

import (
	"errors"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs/component"
	"github.com/milk9111/panelgrid/prefabs"
)

var ErrInvalidCamera = errors.New("entity: camera ortho size must be positive")

// PlacementCamera is the orthographic camera a grid is laid out against.
type PlacementCamera struct {
	Position common.Vec3
	Rotation common.Quat
	// Size is half the visible height; Aspect is width over height.
	Size     float64
	Aspect   float64
	Distance float64
}

func CameraFromSpec(s prefabs.CameraSpec) PlacementCamera {
	cam := PlacementCamera{
		Position: s.Position.Vec3(),
		Rotation: common.QuatEuler(s.Rotation.Vec3()),
		Size:     s.Size,
		Aspect:   s.Aspect,
		Distance: s.Distance,
	}
	if cam.Aspect <= 0 {
		cam.Aspect = 1
	}
	return cam
}

// Ortho returns a screen mapping for a viewport of the given size. The
// viewport's own aspect replaces the authored one.
func (c PlacementCamera) Ortho(viewWidth, viewHeight, cellAspect float64) common.OrthoCamera {
	return common.OrthoCamera{
		Position:   c.Position,
		Rotation:   c.Rotation,
		Size:       c.Size,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
		CellAspect: cellAspect,
	}
}

// Layout fills the camera view with Width x Height panels. PanelRotation is in
// euler degrees and applied on top of the camera rotation.
type Layout struct {
	Width         int
	Height        int
	PanelRotation common.Vec3
	PanelScale    float64
}

func LayoutFromSpec(s prefabs.LayoutSpec) Layout {
	l := Layout{
		Width:         s.Width,
		Height:        s.Height,
		PanelRotation: s.PanelRotation.Vec3(),
		PanelScale:    s.PanelScale,
	}
	if l.PanelScale <= 0 {
		l.PanelScale = 1
	}
	return l
}

// GridFromLayout bakes a GridConfig whose panels tile the camera view on the
// plane Distance units in front of the camera.
func GridFromLayout(cam PlacementCamera, l Layout) (component.GridConfig, error) {
	if l.Width < 0 || l.Height < 0 {
		return component.NewGridConfig(component.GridConfig{WidthCount: l.Width, HeightCount: l.Height})
	}
	if !(cam.Size > 0) {
		return component.GridConfig{}, ErrInvalidCamera
	}

	parentRot := cam.Rotation
	if parentRot.IsZero() {
		parentRot = common.QuatIdentity
	}
	parentPos := cam.Position.Add(parentRot.Rotate(common.Vec3Fwd).Scale(cam.Distance))

	cfg := component.GridConfig{
		WidthCount:       l.Width,
		HeightCount:      l.Height,
		HorizontalOffset: common.Vec3Right,
		VerticalOffset:   common.Vec3Up,
		Rotation:         common.QuatEuler(l.PanelRotation).Mul(parentRot),
	}
	if l.Width*l.Height == 0 {
		return component.NewGridConfig(cfg)
	}

	dx := cam.Size * 2 * cam.Aspect / float64(l.Width)
	dy := cam.Size * 2 / float64(l.Height)
	local := func(x, y int) common.Vec3 {
		return common.Vec3{
			X: (float64(x) - float64(l.Width-1)*0.5) * dx,
			Y: (float64(y) - float64(l.Height-1)*0.5) * dy,
		}
	}

	origin := local(0, 0)
	cfg.FirstPanelPosition = parentRot.Rotate(origin).Add(parentPos)
	if l.Width > 1 {
		cfg.HorizontalOffset = parentRot.Rotate(local(1, 0).Sub(origin))
	}
	if l.Height > 1 {
		cfg.VerticalOffset = parentRot.Rotate(local(0, 1).Sub(origin))
	}
	cfg.Scale = common.Vec3{X: l.PanelScale * dx, Y: l.PanelScale, Z: l.PanelScale * dy}
	return component.NewGridConfig(cfg)
}

func GridFromSpec(s prefabs.GridSpec) (component.GridConfig, error) {
	return component.NewGridConfig(component.GridConfig{
		WidthCount:         s.Width,
		HeightCount:        s.Height,
		FirstPanelPosition: s.FirstPanelPosition.Vec3(),
		HorizontalOffset:   s.HorizontalOffset.Vec3(),
		VerticalOffset:     s.VerticalOffset.Vec3(),
		Rotation:           s.Rotation.Quat(),
		Scale:              s.Scale.Vec3(),
	})
}

// GridToSpec is the inverse of GridFromSpec.
func GridToSpec(g component.GridConfig) prefabs.GridSpec {
	vec := func(v common.Vec3) prefabs.Vec3Spec {
		return prefabs.Vec3Spec{X: v.X, Y: v.Y, Z: v.Z}
	}
	return prefabs.GridSpec{
		Width:              g.WidthCount,
		Height:             g.HeightCount,
		FirstPanelPosition: vec(g.FirstPanelPosition),
		HorizontalOffset:   vec(g.HorizontalOffset),
		VerticalOffset:     vec(g.VerticalOffset),
		Rotation:           prefabs.QuatSpec{X: g.Rotation.X, Y: g.Rotation.Y, Z: g.Rotation.Z, W: g.Rotation.W},
		Scale:              vec(g.Scale),
	}
}
