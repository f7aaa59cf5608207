package component

import "github.com/milk9111/panelgrid/common"

// PanelTransform is the rigid part of a panel's transform. Scale is uniform;
// non-uniform scale lives in PanelScale.
type PanelTransform struct {
	Position Vec3
	Rotation Quat
	Scale    float64
}

var PanelTransformComponent = NewComponent[PanelTransform]()

// PanelScale is a diagonal matrix applied before PanelTransform.
type PanelScale struct {
	Value Mat4
}

var PanelScaleComponent = NewComponent[PanelScale]()

func NewPanelScale(s Vec3) PanelScale {
	return PanelScale{Value: common.Mat4Diagonal(s)}
}

// PanelColor is the color handed to the renderer.
type PanelColor struct {
	Color Color
}

var PanelColorComponent = NewComponent[PanelColor]()

// MeshPlane selects which local plane a panel's rectangle lies in.
type MeshPlane uint8

const (
	// MeshQuad lies in the local XY plane, facing -Z.
	MeshQuad MeshPlane = iota
	// MeshPlaneXZ lies in the local XZ plane, facing +Y.
	MeshPlaneXZ
)

// PanelMesh is the renderable shape of a panel, in local units.
type PanelMesh struct {
	Plane  MeshPlane
	Width  float64
	Height float64
}

var PanelMeshComponent = NewComponent[PanelMesh]()

// Corners returns the rectangle corners in local space, counter-clockwise.
func (m PanelMesh) Corners() [4]Vec3 {
	hw, hh := m.Width/2, m.Height/2
	if m.Plane == MeshPlaneXZ {
		return [4]Vec3{{X: -hw, Z: -hh}, {X: hw, Z: -hh}, {X: hw, Z: hh}, {X: -hw, Z: hh}}
	}
	return [4]Vec3{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
}

// Prefab marks a template entity. It is never copied onto instances.
type Prefab struct{}

var PrefabComponent = NewComponent[Prefab]()
