// Command placer bakes a layout placer into an explicit grid so the runtime
// does not recompute it from the camera.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/panelgrid/ecs/entity"
	"github.com/milk9111/panelgrid/prefabs"
)

type overrides struct {
	width, height int
	scale         float64
}

func (o overrides) set() bool {
	return o.width > 0 || o.height > 0 || o.scale > 0
}

var errNoLayout = errors.New("placer: -width, -height and -scale need a layout block")

func main() {
	var (
		dir = flag.String("prefabs", "prefabs", "directory to read placer files from, empty for embedded only")
		in  = flag.String("in", "placer.yaml", "placer file to bake")
		out = flag.String("out", "", "output path, stdout when empty")
		o   overrides
	)
	flag.IntVar(&o.width, "width", 0, "override layout width")
	flag.IntVar(&o.height, "height", 0, "override layout height")
	flag.Float64Var(&o.scale, "scale", 0, "override layout panel scale")
	flag.Parse()

	prefabs.SetDir(*dir)

	spec, err := prefabs.LoadPlacerSpec(*in)
	if err != nil {
		logrus.Fatal(err)
	}

	baked, err := bake(spec, o)
	if err != nil {
		logrus.WithField("file", *in).Fatal(err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logrus.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := write(w, baked); err != nil {
		logrus.Fatal(err)
	}

	logrus.WithFields(logrus.Fields{
		"width":  baked.Grid.Width,
		"height": baked.Grid.Height,
	}).Info("grid baked")
}

// bake replaces the layout of spec with the grid it produces.
func bake(spec prefabs.PlacerSpec, o overrides) (prefabs.PlacerSpec, error) {
	if spec.Layout == nil && o.set() {
		return prefabs.PlacerSpec{}, errNoLayout
	}
	if spec.Layout != nil {
		layout := *spec.Layout
		if o.width > 0 {
			layout.Width = o.width
		}
		if o.height > 0 {
			layout.Height = o.height
		}
		if o.scale > 0 {
			layout.PanelScale = o.scale
		}
		spec.Layout = &layout
		spec.Grid = nil
	}

	grid, err := entity.GridFromPlacer(spec)
	if err != nil {
		return prefabs.PlacerSpec{}, err
	}

	gs := entity.GridToSpec(grid)
	spec.Grid = &gs
	spec.Layout = nil
	return spec, nil
}

func write(w io.Writer, spec prefabs.PlacerSpec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encode placer: %w", err)
	}
	return enc.Close()
}
