package app

import (
	"mesh-viewer/core"
	"mesh-viewer/scene"
)

// Scene holds the meshes the viewer draws.
type Scene struct {
	Cylinder *scene.Mesh
	// Axes is nil when the config hides them.
	Axes *scene.Mesh
}

// BuildScene builds the barrel and, unless hidden, the coordinate axes.
func BuildScene(cfg core.Config) Scene {
	s := Scene{Cylinder: scene.BuildCylinder(cfg.Cylinder.Segments, cfg.Cylinder.Height)}
	if cfg.Axes.Visible {
		s.Axes = scene.BuildAxes(cfg.Axes.Length)
	}
	return s
}

// Meshes lists the scene's meshes in draw order.
func (s Scene) Meshes() []*scene.Mesh {
	meshes := []*scene.Mesh{s.Cylinder}
	if s.Axes != nil {
		meshes = append(meshes, s.Axes)
	}
	return meshes
}

// WindowTitle appends the render mode to the configured title.
func WindowTitle(base string, wireframe bool) string {
	if wireframe {
		return base + " [wireframe]"
	}
	return base + " [shaded]"
}
