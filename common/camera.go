package common

// OrthoCamera maps between screen space (origin top-left, y down) and world
// space for an orthographic camera looking along its local +Z axis.
type OrthoCamera struct {
	Position Vec3
	Rotation Quat
	// Size is half of the visible world height.
	Size float64
	// ViewWidth and ViewHeight are the viewport size in screen units.
	ViewWidth, ViewHeight float64
	// CellAspect is the height/width ratio of one screen unit. Pixels are
	// square (1); terminal cells are roughly twice as tall as wide.
	CellAspect float64
}

func (c OrthoCamera) rotation() Quat {
	if c.Rotation.IsZero() {
		return QuatIdentity
	}
	return c.Rotation
}

// Aspect returns the visible world width divided by the visible world height.
func (c OrthoCamera) Aspect() float64 {
	if c.ViewHeight <= 0 {
		return 1
	}
	cell := c.CellAspect
	if cell <= 0 {
		cell = 1
	}
	return c.ViewWidth / (c.ViewHeight * cell)
}

func (c OrthoCamera) Right() Vec3   { return c.rotation().Rotate(Vec3Right) }
func (c OrthoCamera) Up() Vec3      { return c.rotation().Rotate(Vec3Up) }
func (c OrthoCamera) Forward() Vec3 { return c.rotation().Rotate(Vec3Fwd) }

// ScreenToWorld projects a screen point onto the plane depth units in front
// of the camera.
func (c OrthoCamera) ScreenToWorld(sx, sy, depth float64) Vec3 {
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return c.Position.Add(c.Forward().Scale(depth))
	}
	nx := sx/c.ViewWidth*2 - 1
	ny := 1 - sy/c.ViewHeight*2
	return c.Position.
		Add(c.Right().Scale(nx * c.Size * c.Aspect())).
		Add(c.Up().Scale(ny * c.Size)).
		Add(c.Forward().Scale(depth))
}

// WorldToScreen returns the screen position of p. Depth is discarded.
func (c OrthoCamera) WorldToScreen(p Vec3) (float64, float64) {
	if c.Size == 0 {
		return 0, 0
	}
	d := p.Sub(c.Position)
	nx := d.Dot(c.Right()) / (c.Size * c.Aspect())
	ny := d.Dot(c.Up()) / c.Size
	return (nx + 1) / 2 * c.ViewWidth, (1 - ny) / 2 * c.ViewHeight
}
