package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/panelgrid/common"
)

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    common.Color
		wantErr bool
	}{
		{"hex", `"#ff0000"`, common.Color{R: 1, A: 1}, false},
		{"hex_no_hash", `"00ff00"`, common.Color{G: 1, A: 1}, false},
		{"hex_alpha", `"#0000ff00"`, common.Color{B: 1}, false},
		{"name", `white`, common.ColorWhite, false},
		{"name_case", `Black`, common.ColorBlack, false},
		{"floats", `[0.5, 0.25, 1]`, common.Color{R: 0.5, G: 0.25, B: 1, A: 1}, false},
		{"floats_alpha", `[1, 0, 0, 0]`, common.Color{R: 1}, false},
		{"bad_hex", `"#12"`, common.Color{}, true},
		{"bad_digits", `"#gg0000"`, common.Color{}, true},
		{"bad_sequence", `[1, 2]`, common.Color{}, true},
		{"mapping", `{r: 1}`, common.Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := c.Common()
			assert.InDelta(t, tc.want.R, got.R, 1.0/255)
			assert.InDelta(t, tc.want.G, got.G, 1.0/255)
			assert.InDelta(t, tc.want.B, got.B, 1.0/255)
			assert.InDelta(t, tc.want.A, got.A, 1.0/255)
		})
	}
}

func TestYAMLColorMarshal(t *testing.T) {
	var c YAMLColor
	require.NoError(t, yaml.Unmarshal([]byte(`"#4aa3ff"`), &c))

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#4aa3ffff")

	var back YAMLColor
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, c.Common(), back.Common())
}

func TestEmbeddedPrefabs(t *testing.T) {
	SetDir("")
	t.Cleanup(func() { SetDir("prefabs") })

	placer, err := LoadPlacerSpec("placer.yaml")
	require.NoError(t, err)
	assert.Equal(t, "panel.yaml", placer.Panel)
	require.NotNil(t, placer.Layout)
	assert.Greater(t, placer.Layout.Width, 0)
	assert.Greater(t, placer.Camera.Distance, 0.0)

	coloring, err := LoadColoringSpec("prefabs/coloring.yaml")
	require.NoError(t, err)
	assert.Greater(t, coloring.DistanceMax, 0.0)
	assert.NotNil(t, coloring.Near.Color)
	assert.NotNil(t, coloring.Far.Color)

	panel, err := LoadEntityBuildSpec("panel.yaml")
	require.NoError(t, err)
	assert.Contains(t, panel.Components, "prefab")

	mesh, err := DecodeComponentSpec[PanelMeshComponentSpec](panel.Components["panel_mesh"])
	require.NoError(t, err)
	assert.Equal(t, "plane", mesh.Plane)

	col, err := DecodeComponentSpec[PanelColorComponentSpec](panel.Components["panel_color"])
	require.NoError(t, err)
	assert.Equal(t, common.ColorRed, col.Color.Common())
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	SetDir(dir)
	t.Cleanup(func() { SetDir("prefabs") })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "coloring.yaml"), []byte("distance_max: 42\nnear: red\nfar: blue\n"), 0o644))

	spec, err := LoadColoringSpec("coloring.yaml")
	require.NoError(t, err)
	assert.Equal(t, 42.0, spec.DistanceMax)

	_, ok := ModTime("coloring.yaml")
	assert.True(t, ok)
	_, ok = ModTime("placer.yaml")
	assert.False(t, ok)

	// Files missing on disk still come from the embedded set.
	_, err = LoadPlacerSpec("placer.yaml")
	assert.NoError(t, err)

	_, err = LoadSpec[ColoringSpec]("missing.yaml")
	assert.Error(t, err)
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "coloring.yaml")
	require.NoError(t, os.WriteFile(target, []byte("distance_max: 1\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for yaml change")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
