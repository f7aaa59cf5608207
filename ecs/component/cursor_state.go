package component

// CursorState is the pointer's world position for the current tick. It is a
// singleton written by the input collaborator.
type CursorState struct {
	Position Vec3
}

var CursorStateComponent = NewComponent[CursorState]()
