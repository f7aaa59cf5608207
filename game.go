package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/config"
	"github.com/milk9111/panelgrid/ecs/entity"
	"github.com/milk9111/panelgrid/prefabs"
)

type Game struct {
	sim      *entity.Simulation
	renderer *Renderer
	watcher  *prefabs.Watcher
	debug    bool
}

func NewGame(cfg config.Config) (*Game, error) {
	g := &Game{debug: cfg.LogLevel == "debug" || cfg.LogLevel == "trace"}

	sim, err := entity.NewSimulation(entity.SimulationOptions{
		Workers:    cfg.Workers,
		ChunkSize:  cfg.ChunkSize,
		Placer:     cfg.Placer,
		Coloring:   cfg.Coloring,
		CellAspect: 1,
	}, g)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	sim.Resize(float64(cfg.Width), float64(cfg.Height))
	g.sim = sim
	g.renderer = NewRenderer(sim.Camera, common.ColorBlack)

	if cfg.Watch && cfg.PrefabDir != "" {
		watcher, err := prefabs.NewWatcher(cfg.PrefabDir)
		if err != nil {
			logrus.WithError(err).WithField("dir", cfg.PrefabDir).Warn("prefab hot reload disabled")
		} else {
			g.watcher = watcher
			go entity.WatchColoring(watcher.Events, cfg.Coloring, sim.Reload)
			go func() {
				for err := range watcher.Errors {
					logrus.WithError(err).Warn("prefab watcher")
				}
			}()
		}
	}

	return g, nil
}

// CursorPosition reports the mouse position while it is inside the window.
func (g *Game) CursorPosition() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	w, h := g.sim.Camera.ViewWidth, g.sim.Camera.ViewHeight
	fx, fy := float64(x), float64(y)
	return fx, fy, fx >= 0 && fy >= 0 && fx < w && fy < h
}

func (g *Game) Update() error {
	if err := g.sim.Tick(); err != nil {
		logrus.WithError(err).Error("tick failed")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.World)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f    FPS: %.2f    Panels: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.PanelCount()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sim.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
