package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/component"
)

// ColorConfigSystem makes sure the ColorConfig singleton exists and swaps in
// reloaded configs. It must run before ColoringSystem.
type ColorConfigSystem struct {
	initial component.ColorConfig
	reload  <-chan component.ColorConfig
}

// NewColorConfigSystem uses initial when the world has no ColorConfig yet.
// Values received on reload replace the singleton; reload may be nil.
func NewColorConfigSystem(initial component.ColorConfig, reload <-chan component.ColorConfig) *ColorConfigSystem {
	return &ColorConfigSystem{initial: initial, reload: reload}
}

func (s *ColorConfigSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if cfg, ok := s.latest(); ok {
		ecs.SetSingleton(w, component.ColorConfigComponent, cfg)
		logger.WithFields(logrus.Fields{
			"system":      "color_config",
			"distanceMax": cfg.DistanceMax,
		}).Info("color config reloaded")
		return
	}

	if _, created := ecs.GetOrCreateSingleton(w, component.ColorConfigComponent, func() component.ColorConfig {
		return s.initial
	}); created {
		logger.WithField("system", "color_config").Debug("color config created")
	}
}

// latest drains the reload channel without blocking and keeps the last value.
func (s *ColorConfigSystem) latest() (component.ColorConfig, bool) {
	var (
		cfg component.ColorConfig
		got bool
	)
	for {
		select {
		case next, ok := <-s.reload:
			if !ok {
				s.reload = nil
				return cfg, got
			}
			cfg, got = next, true
		default:
			return cfg, got
		}
	}
}
