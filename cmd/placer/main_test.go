package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/panelgrid/ecs/entity"
	"github.com/milk9111/panelgrid/prefabs"
)

func TestBake(t *testing.T) {
	spec := prefabs.PlacerSpec{
		Name:   "test",
		Panel:  "panel.yaml",
		Camera: prefabs.CameraSpec{Size: 1, Aspect: 2, Distance: 10},
		Layout: &prefabs.LayoutSpec{Width: 4, Height: 2, PanelScale: 1},
	}

	t.Run("layout_becomes_grid", func(t *testing.T) {
		baked, err := bake(spec, overrides{})
		require.NoError(t, err)
		assert.Nil(t, baked.Layout)
		require.NotNil(t, baked.Grid)
		assert.Equal(t, 4, baked.Grid.Width)
		assert.Equal(t, 2, baked.Grid.Height)
		assert.NotNil(t, spec.Layout, "input spec is left alone")
	})

	t.Run("overrides", func(t *testing.T) {
		baked, err := bake(spec, overrides{width: 8, height: 3, scale: 0.5})
		require.NoError(t, err)
		assert.Equal(t, 8, baked.Grid.Width)
		assert.Equal(t, 3, baked.Grid.Height)
		assert.Equal(t, 4, spec.Layout.Width)
	})

	t.Run("overrides_on_baked_grid", func(t *testing.T) {
		baked := prefabs.PlacerSpec{Grid: &prefabs.GridSpec{Width: 2, Height: 2}}
		_, err := bake(baked, overrides{width: 10, height: 7})
		assert.ErrorIs(t, err, errNoLayout)

		_, err = bake(baked, overrides{scale: 0.5})
		assert.ErrorIs(t, err, errNoLayout)

		again, err := bake(baked, overrides{})
		require.NoError(t, err)
		assert.Equal(t, 2, again.Grid.Width)
	})

	t.Run("nothing_to_bake", func(t *testing.T) {
		_, err := bake(prefabs.PlacerSpec{Name: "empty"}, overrides{})
		assert.ErrorIs(t, err, entity.ErrNoGrid)
	})
}

func TestWriteLoadsBack(t *testing.T) {
	baked, err := bake(prefabs.PlacerSpec{
		Camera: prefabs.CameraSpec{Size: 2, Aspect: 1.5, Distance: 5, Rotation: prefabs.Vec3Spec{Y: 30}},
		Layout: &prefabs.LayoutSpec{Width: 3, Height: 3, PanelRotation: prefabs.Vec3Spec{X: -90}, PanelScale: 0.9},
	}, overrides{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, write(&buf, baked))
	assert.NotContains(t, buf.String(), "layout:")

	var back prefabs.PlacerSpec
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))

	want, err := entity.GridFromPlacer(baked)
	require.NoError(t, err)
	got, err := entity.GridFromPlacer(back)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
