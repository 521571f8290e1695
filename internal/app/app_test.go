package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-viewer/core"
	"mesh-viewer/math"
	"mesh-viewer/scene"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags(nil, io.Discard)
	require.NoError(t, err)

	cfg, err := opts.Config()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)
	assert.False(t, opts.Headless)
}

func TestParseFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cylinder]\nsegments = 12\nheight = 4.0\n"), 0o644))

	opts, err := ParseFlags([]string{"-config", path, "-height", "1.5", "-headless"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.Headless)

	cfg, err := opts.Config()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Cylinder.Segments, "file value kept when flag is absent")
	assert.Equal(t, float32(1.5), cfg.Cylinder.Height)
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	_, err := ParseFlags([]string{"-segments", "many"}, io.Discard)
	assert.Error(t, err)

	var usage bytes.Buffer
	_, err = ParseFlags([]string{"-headless", "stray"}, &usage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected arguments: [stray]")
	assert.Contains(t, usage.String(), "Usage of cylinderviewer")
	assert.Contains(t, usage.String(), "-segments")

	opts, err := ParseFlags([]string{"-segments", "2"}, io.Discard)
	require.NoError(t, err)
	_, err = opts.Config()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestCameraEye(t *testing.T) {
	c := core.DefaultConfig().Camera
	eye := CameraEye(c)
	assert.InDelta(t, c.Distance, eye.Length(), 1e-5)
	assert.Greater(t, eye.Y, float32(0))

	c.Elevation = 0
	assert.True(t, CameraEye(c).ApproxEqual(math.Vec3{Z: c.Distance}, 1e-5))
}

func TestViewProjectionKeepsCylinderInClipSpace(t *testing.T) {
	cfg := core.DefaultConfig()
	vp := ViewProjection(cfg.Camera, 16.0/9.0)
	mesh := scene.BuildCylinder(cfg.Cylinder.Segments, cfg.Cylinder.Height)

	for i, p := range mesh.Positions {
		ndc := vp.MulPoint(p)
		assert.True(t, ndc.X >= -1 && ndc.X <= 1 && ndc.Y >= -1 && ndc.Y <= 1 && ndc.Z >= -1 && ndc.Z <= 1,
			"vertex %d %v maps outside the view volume: %v", i, p, ndc)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	mesh := scene.BuildCylinder(6, 2)

	for _, name := range []string{"c.obj", "c.gltf", "c.GLB"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Export(path, mesh), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.ErrorIs(t, Export(filepath.Join(dir, "c.stl"), mesh), ErrUnknownFormat)
}

func TestBuildScene(t *testing.T) {
	cfg := core.DefaultConfig()
	sc := BuildScene(cfg)
	require.NotNil(t, sc.Axes)
	assert.Equal(t, 2*(cfg.Cylinder.Segments+1), sc.Cylinder.VertexCount())
	assert.Equal(t, scene.Lines, sc.Axes.Mode)
	assert.Equal(t, math.Vec3{X: 4}, sc.Axes.Positions[1])
	assert.Equal(t, []*scene.Mesh{sc.Cylinder, sc.Axes}, sc.Meshes())
	for _, m := range sc.Meshes() {
		assert.NoError(t, m.Validate())
	}

	cfg.Axes.Visible = false
	sc = BuildScene(cfg)
	assert.Nil(t, sc.Axes)
	assert.Len(t, sc.Meshes(), 1)
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "Cylinder [shaded]", WindowTitle("Cylinder", false))
	assert.Equal(t, "Cylinder [wireframe]", WindowTitle("Cylinder", true))
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := core.LoadConfig(filepath.Join("..", "..", "cmd", "cylinderviewer", "viewer.toml"))
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)
}
