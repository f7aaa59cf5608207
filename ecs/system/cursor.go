package system

import (
	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

// PointerSource reports the pointer position in screen units. ok is false
// while the pointer is outside the view.
type PointerSource interface {
	CursorPosition() (x, y float64, ok bool)
}

// PointerFunc adapts a function to PointerSource.
type PointerFunc func() (x, y float64, ok bool)

func (f PointerFunc) CursorPosition() (float64, float64, bool) { return f() }

// CursorInputSystem projects the pointer onto the panel plane and stores the
// result in the CursorState singleton.
type CursorInputSystem struct {
	pointer  PointerSource
	camera   *common.OrthoCamera
	distance float64
}

// NewCursorInputSystem keeps a pointer to camera and reads it on every tick,
// so callers may resize the viewport between ticks.
func NewCursorInputSystem(pointer PointerSource, camera *common.OrthoCamera, distance float64) *CursorInputSystem {
	return &CursorInputSystem{pointer: pointer, camera: camera, distance: distance}
}

func (s *CursorInputSystem) Update(w *ecs.World) {
	if w == nil || s.pointer == nil || s.camera == nil {
		return
	}

	x, y, ok := s.pointer.CursorPosition()
	if !ok {
		return
	}
	pos := s.camera.ScreenToWorld(x, y, s.distance)
	ecs.SetSingleton(w, component.CursorStateComponent, component.CursorState{Position: pos})
}
