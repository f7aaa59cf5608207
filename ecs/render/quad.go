package render

import (
	"sort"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

// Quad is one panel in world space, ready to be projected.
type Quad struct {
	Corners [4]common.Vec3
	Center  common.Vec3
	Color   common.Color
}

// PanelCorners applies mesh, non-uniform scale, uniform scale, rotation and
// position, in that order. A nil scale is treated as identity.
func PanelCorners(t component.PanelTransform, s *component.PanelScale, m component.PanelMesh) [4]common.Vec3 {
	scale := common.Mat4Identity()
	if s != nil {
		scale = s.Value
	}
	rot := t.Rotation
	if rot.IsZero() {
		rot = common.QuatIdentity
	}

	out := m.Corners()
	for i, c := range out {
		out[i] = t.Position.Add(rot.Rotate(scale.MulPoint(c).Scale(t.Scale)))
	}
	return out
}

// Quads collects every renderable panel. Panels without a mesh use a unit XZ
// plane. The result is ordered back to front along forward, so painting in
// order leaves the nearest panel on top.
func Quads(w *ecs.World, forward common.Vec3, dst []Quad) []Quad {
	dst = dst[:0]
	ecs.ForEach2(w, component.PanelTransformComponent, component.PanelColorComponent,
		func(e ecs.Entity, t *component.PanelTransform, c *component.PanelColor) {
			mesh := component.PanelMesh{Plane: component.MeshPlaneXZ, Width: 1, Height: 1}
			if m, ok := ecs.Get(w, e, component.PanelMeshComponent); ok {
				mesh = *m
			}
			scale, _ := ecs.Get(w, e, component.PanelScaleComponent)
			dst = append(dst, Quad{
				Corners: PanelCorners(*t, scale, mesh),
				Center:  t.Position,
				Color:   c.Color,
			})
		})

	sort.SliceStable(dst, func(i, j int) bool {
		return dst[i].Center.Dot(forward) > dst[j].Center.Dot(forward)
	})
	return dst
}
