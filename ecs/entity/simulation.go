package entity

import (
	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
	"github.com/milk9111/panelgrid/ecs/system"
)

type SimulationOptions struct {
	Workers   int
	ChunkSize int
	Placer    string
	Coloring  string
	// CellAspect is the height/width ratio of one screen unit.
	CellAspect float64
}

// Simulation is a baked scene plus the scheduler that drives it. Front ends
// own the loop: they call Tick, resize Camera and render World.
type Simulation struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Scene     *Scene
	Camera    *common.OrthoCamera
	// Reload accepts replacement coloring configs; they apply on the next
	// tick.
	Reload chan component.ColorConfig
}

func NewSimulation(opts SimulationOptions, pointer system.PointerSource) (*Simulation, error) {
	w := ecs.NewWorld(ecs.WithWorkers(opts.Workers), ecs.WithChunkSize(opts.ChunkSize))
	scene, err := LoadScene(w, opts.Placer, opts.Coloring)
	if err != nil {
		return nil, err
	}

	cam := scene.Camera.Ortho(0, 0, opts.CellAspect)
	reload := make(chan component.ColorConfig, 1)
	sched := ecs.NewScheduler(
		system.NewCursorInputSystem(pointer, &cam, scene.Camera.Distance),
		system.NewColorConfigSystem(scene.Coloring, reload),
		system.NewPlacementSystem(),
		system.NewColoringSystem(),
	)

	logger.WithField("workers", w.Workers()).Info("simulation ready")
	return &Simulation{
		World:     w,
		Scheduler: sched,
		Scene:     scene,
		Camera:    &cam,
		Reload:    reload,
	}, nil
}

// Resize updates the viewport used for pointer projection and rendering.
func (s *Simulation) Resize(width, height float64) {
	s.Camera.ViewWidth, s.Camera.ViewHeight = width, height
}

func (s *Simulation) Tick() error {
	return s.Scheduler.Tick(s.World)
}

// PanelCount returns the number of placed panels.
func (s *Simulation) PanelCount() int {
	return ecs.Count(s.World, component.PanelTransformComponent)
}
