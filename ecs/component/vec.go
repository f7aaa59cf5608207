package component

import "github.com/milk9111/panelgrid/common"

// Aliases so component declarations read without the common prefix.
type (
	Vec3  = common.Vec3
	Quat  = common.Quat
	Mat4  = common.Mat4
	Color = common.Color
)
