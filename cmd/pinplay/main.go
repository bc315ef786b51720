// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gioui.org/pin"
	"gioui.org/pin/font/gofont"
	"gioui.org/pin/scene"
	"gioui.org/pin/script"
	"gioui.org/pin/text"
	"gioui.org/pin/unit"
)

var (
	scenePath  = flag.String("scene", "", "YAML scene description.")
	scriptPath = flag.String("script", "", "JavaScript layout script to run over the scene.")
	pngPath    = flag.String("png", "", "render the laid out scene to a PNG file.")
	scale      = flag.Float64("scale", 1, "pixels per dp, for snapping and rendering.")
	fontSize   = flag.Float64("fontsize", 14, "font size in dp of text nodes.")
	fontName   = flag.String("font", "regular", "Go font face of text nodes (regular, bold, mono...).")
	strict     = flag.Bool("strict", false, "fail if a layout constraint was dropped.")
)

type config struct {
	scene    string
	script   string
	png      string
	scale    float64
	fontSize float64
	font     string
	strict   bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "pinplay: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *scenePath == "" {
		return errors.New("specify -scene")
	}
	if *scale <= 0 {
		return fmt.Errorf("invalid -scale %g", *scale)
	}
	cfg := config{
		scene:    *scenePath,
		script:   *scriptPath,
		png:      *pngPath,
		scale:    *scale,
		fontSize: *fontSize,
		font:     *fontName,
		strict:   *strict,
	}
	return run(cfg, os.Stdout, os.Stderr)
}

// run lays out the scene of cfg, writes the resulting frames to stdout
// and dropped constraints to stderr.
func run(cfg config, stdout, stderr io.Writer) error {
	ttf, err := gofont.Lookup(cfg.font)
	if err != nil {
		return err
	}
	m, err := text.NewMeasurer(ttf, cfg.fontSize)
	if err != nil {
		return err
	}
	root, err := loadScene(cfg.scene, m)
	if err != nil {
		return err
	}
	host := scene.Host{Metric: unit.Metric{PxPerDp: float32(cfg.scale)}}

	rec := new(pin.Recorder)
	logger := pin.LogSink(log.New(stderr, "", 0))
	sink := pin.SinkFunc(func(d pin.Diagnostic) {
		rec.Report(d)
		logger.Report(d)
	})
	if cfg.script != "" {
		src, err := os.ReadFile(cfg.script)
		if err != nil {
			return err
		}
		e := script.New(root, host, script.WithLayoutOptions(pin.WithSink(sink)), script.WithOutput(stdout))
		if err := e.Run(filepath.Base(cfg.script), string(src)); err != nil {
			return err
		}
	}

	if err := scene.Dump(stdout, root); err != nil {
		return err
	}
	if cfg.png != "" {
		if err := renderPNG(cfg.png, root, host, m.Face()); err != nil {
			return fmt.Errorf("rendering %s: %w", cfg.png, err)
		}
	}
	if n := len(rec.Diagnostics); cfg.strict && n > 0 {
		return fmt.Errorf("%d constraint(s) were dropped", n)
	}
	return nil
}

func loadScene(path string, m scene.TextMeasurer) (*scene.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := scene.Decode(f, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
