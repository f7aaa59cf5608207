package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/config"
	"github.com/milk9111/panelgrid/ecs/entity"
	"github.com/milk9111/panelgrid/ecs/render"
	"github.com/milk9111/panelgrid/prefabs"
)

// terminal cells are roughly twice as tall as they are wide
const cellAspect = 2

type pointer struct {
	x, y   float64
	inside bool
}

func (p *pointer) CursorPosition() (float64, float64, bool) { return p.x, p.y, p.inside }

type app struct {
	screen  tcell.Screen
	sim     *entity.Simulation
	painter *render.TerminalPainter
	pointer *pointer
	tick    time.Duration
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	logFile, err := config.SetupLogging(cfg)
	if err != nil {
		fail(err)
	}
	defer logFile.Close()
	if cfg.LogFile == "" {
		// stderr belongs to the screen
		logrus.SetOutput(io.Discard)
	}

	prefabs.SetDir(cfg.PrefabDir)

	a, err := newApp(cfg)
	if err != nil {
		fail(err)
	}
	defer a.screen.Fini()

	if cfg.Watch && cfg.PrefabDir != "" {
		watcher, err := prefabs.NewWatcher(cfg.PrefabDir)
		if err != nil {
			logrus.WithError(err).Warn("prefab hot reload disabled")
		} else {
			defer watcher.Close()
			go entity.WatchColoring(watcher.Events, cfg.Coloring, a.sim.Reload)
		}
	}

	a.run()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func newApp(cfg config.Config) (*app, error) {
	p := &pointer{}
	sim, err := entity.NewSimulation(entity.SimulationOptions{
		Workers:    cfg.Workers,
		ChunkSize:  cfg.ChunkSize,
		Placer:     cfg.Placer,
		Coloring:   cfg.Coloring,
		CellAspect: cellAspect,
	}, p)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	w, h := screen.Size()
	sim.Resize(float64(w), float64(h))

	return &app{
		screen:  screen,
		sim:     sim,
		painter: render.NewTerminalPainter(sim.Camera, common.ColorBlack),
		pointer: p,
		tick:    time.Second / time.Duration(cfg.TPS),
	}, nil
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointer.x, a.pointer.y = float64(x)+0.5, float64(y)+0.5
		a.pointer.inside = true
	case *tcell.EventFocus:
		// The terminal stops reporting motion once the mouse leaves, so hold
		// the cursor where it is until the next mouse event.
		if !ev.Focused {
			a.pointer.inside = false
		}
	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.sim.Resize(float64(w), float64(h))
		a.screen.Sync()
	case nil:
		return false
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			if err := a.sim.Tick(); err != nil {
				logrus.WithError(err).Error("tick failed")
			}
			a.painter.Paint(a.screen, a.sim.World)
			a.screen.Show()
		}
	}
}
