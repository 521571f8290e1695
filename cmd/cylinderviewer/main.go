// Command cylinderviewer builds a cylinder barrel, optionally exports it,
// and shows it next to the coordinate axes in a window. Press W to toggle
// wireframe, Esc to quit.
package main

import (
	"errors"
	"flag"
	"os"

	"mesh-viewer/core"
	"mesh-viewer/internal/app"
	"mesh-viewer/math"
	"mesh-viewer/opengl"
	"mesh-viewer/platform"
)

func main() {
	opts, err := app.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		core.LogError("invalid arguments", "err", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		core.LogFatal("viewer stopped", "err", err)
	}
}

func run(opts app.Options) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		return err
	}

	sc := app.BuildScene(cfg)
	mesh := sc.Cylinder
	core.LogInfo("cylinder built",
		"segments", cfg.Cylinder.Segments,
		"height", cfg.Cylinder.Height,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())

	if opts.ExportPath != "" {
		if err := app.Export(opts.ExportPath, mesh); err != nil {
			return err
		}
		core.LogInfo("mesh exported", "path", opts.ExportPath)
	}
	if opts.Headless {
		if opts.ExportPath == "" {
			core.LogWarn("headless run without -export produces no output")
		}
		return nil
	}
	return view(cfg, sc)
}

func view(cfg core.Config, sc app.Scene) error {
	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	meshes := sc.Meshes()
	for _, m := range meshes {
		if err := renderer.Upload(m); err != nil {
			return err
		}
	}

	window.SetTitle(app.WindowTitle(cfg.Window.Title, renderer.IsWireframe()))
	window.OnKeyPress(platform.KeyW, func() {
		core.LogInfo("render mode", "wireframe", renderer.ToggleWireframe())
		window.SetTitle(app.WindowTitle(cfg.Window.Title, renderer.IsWireframe()))
	})
	window.OnKeyPress(platform.KeyEscape, window.Close)
	core.LogInfo("controls: W toggles wireframe, Esc quits")

	model := math.Mat4Identity()
	for !window.ShouldClose() {
		renderer.SetViewport(window.Width, window.Height)
		renderer.BeginFrame(cfg.Window.Background)
		viewProj := app.ViewProjection(cfg.Camera, window.Aspect())
		for _, m := range meshes {
			renderer.DrawMesh(m, model, viewProj)
		}

		window.SwapBuffers()
		window.PollEvents()
	}
	return nil
}
