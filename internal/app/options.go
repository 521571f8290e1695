// Package app holds the viewer's startup logic that does not need a GL
// context: flag parsing, config merging, camera placement and export.
package app

import (
	"flag"
	"fmt"
	stdio "io"

	"mesh-viewer/core"
)

type Options struct {
	ConfigPath string
	Segments   int
	Height     float64
	ExportPath string
	Headless   bool

	// set records which flags were given explicitly.
	set map[string]bool
}

// ParseFlags parses command-line arguments (without the program name).
// Usage is written to output on any error; the error itself is returned
// for the caller to report.
func ParseFlags(args []string, output stdio.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("cylinderviewer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.ConfigPath, "config", "", "path to a TOML config file")
	fs.IntVar(&opts.Segments, "segments", 0, "number of segments around the barrel (overrides config)")
	fs.Float64Var(&opts.Height, "height", 0, "cylinder height (overrides config)")
	fs.StringVar(&opts.ExportPath, "export", "", "write the mesh to a .obj, .gltf or .glb file")
	fs.BoolVar(&opts.Headless, "headless", false, "do not open a window")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// Config loads the config file, if any, and applies flag overrides on top.
func (o Options) Config() (core.Config, error) {
	cfg := core.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = core.LoadConfig(o.ConfigPath); err != nil {
			return core.Config{}, err
		}
	}
	if o.set["segments"] {
		cfg.Cylinder.Segments = o.Segments
	}
	if o.set["height"] {
		cfg.Cylinder.Height = float32(o.Height)
	}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}
