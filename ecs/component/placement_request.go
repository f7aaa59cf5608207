package component

// PlacementRequest asks for one grid of panels cloned from Template. Placed
// flips to true once the panels have been queued and never reverts.
type PlacementRequest struct {
	Template uint64 // ecs.Entity of the panel template
	Placed   bool
}

var PlacementRequestComponent = NewComponent[PlacementRequest]()
