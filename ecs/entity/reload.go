package entity

import (
	"path/filepath"

	"github.com/milk9111/panelgrid/ecs/component"
)

// WatchColoring reloads the coloring prefab whenever a path with the same
// base name arrives on events, and offers the result on out. Invalid files
// are logged and skipped. When a buffered out is full the pending config is
// replaced; an unbuffered out blocks until the config is received. It
// returns when events is closed.
func WatchColoring(events <-chan string, coloringPath string, out chan component.ColorConfig) {
	name := filepath.Base(coloringPath)
	for path := range events {
		if filepath.Base(path) != name {
			continue
		}
		cfg, err := LoadColorConfig(coloringPath)
		if err != nil {
			logger.WithError(err).WithField("path", path).Warn("coloring reload rejected")
			continue
		}
		offer(out, cfg)
		logger.WithField("path", path).Debug("coloring reload queued")
	}
}

func offer(out chan component.ColorConfig, cfg component.ColorConfig) {
	if cap(out) == 0 {
		out <- cfg
		return
	}
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
