// cmd/flydemo/main.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// flydemo exercises the map-view core without a host engine: it wires a
// flat equirectangular projection stub in place of the real map engine,
// flies the camera to a target, highlights a parcel footprint around it,
// and prints the events and geometry as they happen.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/LeDuc34/ar-project/pkg/config"
	"github.com/LeDuc34/ar-project/pkg/log"
	"github.com/LeDuc34/ar-project/pkg/math"
	"github.com/LeDuc34/ar-project/pkg/renderer"
	"github.com/LeDuc34/ar-project/pkg/view"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	ConfigFile string  `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	LogLevel   string  `short:"l" long:"log-level" env:"LOG_LEVEL"   description:"Log level (debug, info, warn, error)" default:"info"`
	LogDir     string  `long:"log-dir"             env:"LOG_DIR"     description:"Directory for log files"`
	Latitude   float64 `long:"lat"  description:"Target latitude"  default:"48.8566"`
	Longitude  float64 `long:"lon"  description:"Target longitude" default:"2.3522"`
	Zoom       float32 `short:"z" long:"zoom" description:"Target zoom level" default:"15"`
	Duration   float32 `short:"d" long:"duration" description:"Flight duration in seconds (negative for configured default)" default:"-1"`
	FPS        int     `long:"fps" description:"Simulated tick rate" default:"60"`
}

// flatEngine stands in for the host map engine with an equirectangular
// projection around a fixed origin: one degree maps to a fixed number of
// meters on the ground plane, render space is Y-up.
type flatEngine struct {
	origin math.GeoPosition
	state  view.ViewState
}

func (e *flatEngine) ProjectGeoToRender(p math.GeoPosition) ([3]float32, bool) {
	if !p.Valid() {
		return [3]float32{}, false
	}
	return [3]float32{
		float32((p.Longitude - e.origin.Longitude) * view.MetersPerDegree),
		0,
		float32((p.Latitude - e.origin.Latitude) * view.MetersPerDegree),
	}, true
}

func (e *flatEngine) ProjectRenderToGeo(p [3]float32) (math.GeoPosition, bool) {
	return math.GeoPosition{
		Latitude:  e.origin.Latitude + float64(p[2])/view.MetersPerDegree,
		Longitude: e.origin.Longitude + float64(p[0])/view.MetersPerDegree,
	}, true
}

func (e *flatEngine) PushViewState(state view.ViewState) error {
	e.state = state
	return nil
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	lg := log.New(opts.LogLevel, opts.LogDir)

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			lg.Errorf("%s: failed to load configuration: %v", opts.ConfigFile, err)
			os.Exit(1)
		}
		def := config.Default()
		cfg = &def
	}

	target := math.GeoPosition{Latitude: opts.Latitude, Longitude: opts.Longitude}
	engine := &flatEngine{origin: target}

	vp := view.NewMapViewport(engine, view.Config{
		DefaultFlyDuration:   cfg.DefaultFlyDuration,
		FootprintFlyDuration: cfg.FootprintFlyDuration,
		Easing:               math.EasingNamed(cfg.Easing),
	}, lg)

	vp.Events().Subscribe(func(ev view.Event) {
		fmt.Printf("%s\n", ev)
	})

	vp.Initialize(math.GeoPosition{}, 10)
	vp.FlyTo(target, opts.Zoom, opts.Duration)
	runTicks(vp, opts.FPS)

	// A ~60m square parcel around the target.
	const d = 30.0 / view.MetersPerDegree
	fp := math.Footprint{
		{Latitude: target.Latitude - d, Longitude: target.Longitude - d},
		{Latitude: target.Latitude - d, Longitude: target.Longitude + d},
		{Latitude: target.Latitude + d, Longitude: target.Longitude + d},
		{Latitude: target.Latitude + d, Longitude: target.Longitude - d},
	}

	vp.CenterOnFootprint(fp, -1)
	runTicks(vp, opts.FPS)

	style := renderer.Style{
		Elevation:    cfg.Highlight.Elevation,
		OutlineLift:  cfg.Highlight.OutlineLift,
		OutlineWidth: cfg.Highlight.OutlineWidth,
		FillColor:    renderer.RGBFromHex(cfg.Highlight.FillColor).WithAlpha(cfg.Highlight.FillAlpha),
		OutlineColor: renderer.RGBFromHex(cfg.Highlight.OutlineColor),
	}
	if cfg.Highlight.Triangulation == "earcut" {
		style.Triangulation = renderer.TriangulateEarcut
	}

	fr := renderer.NewFootprintRenderer(engine, style, lg)
	g, err := fr.Highlight(fp)
	if err != nil {
		lg.Errorf("failed to highlight footprint: %v", err)
		os.Exit(1)
	}

	fmt.Printf("highlight: %d fill vertices, %d triangles, %d outline points (zoom %d)\n",
		len(g.FillVertices), len(g.FillTriangles), len(g.OutlinePoints), view.EstimateZoom(fp))
}

// runTicks drives the viewport's frame loop at the given simulated rate
// until the active flight completes.
func runTicks(vp *view.MapViewport, fps int) {
	if fps <= 0 {
		fps = 60
	}
	dt := 1 / float32(fps)
	for vp.Animator().Running() {
		vp.Tick(dt)
	}
}
