// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/pin/f32"
	"gioui.org/pin/scene"
	"gioui.org/pin/text"
	"gioui.org/pin/unit"
)

func testConfig() config {
	return config{
		scene:    filepath.Join("testdata", "scene.yaml"),
		script:   filepath.Join("testdata", "layout.js"),
		scale:    1,
		fontSize: 14,
		font:     "regular",
	}
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(testConfig(), &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "laid out\nroot x=0 y=0 w=320 h=480\n") {
		t.Errorf("unexpected output start:\n%s", out)
	}
	for _, want := range []string{"\n  title x=", "\n  list x=", " w=256 ", "\n    item x=4 y=4 w=20 h=20\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", stderr.String())
	}
}

func TestRunStrict(t *testing.T) {
	cfg := testConfig()
	cfg.script = filepath.Join("testdata", "conflict.js")
	cfg.strict = true
	var stdout, stderr bytes.Buffer
	err := run(cfg, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "1 constraint(s) were dropped") {
		t.Errorf("got %v, want a dropped constraint error", err)
	}
	if !strings.Contains(stderr.String(), "pin conflict: width(10)") {
		t.Errorf("diagnostic not logged: %q", stderr.String())
	}

	cfg.strict = false
	stderr.Reset()
	if err := run(cfg, &stdout, &stderr); err != nil {
		t.Errorf("non-strict run failed: %v", err)
	}
}

func TestRenderPNG(t *testing.T) {
	cfg := testConfig()
	cfg.scale = 2
	cfg.png = filepath.Join(t.TempDir(), "out.png")
	var stdout, stderr bytes.Buffer
	if err := run(cfg, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(cfg.png)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 960 {
		t.Errorf("image size %v, want 640x960", b.Size())
	}
}

func TestRenderPNGOverflow(t *testing.T) {
	m, err := text.NewMeasurer(nil, 14)
	if err != nil {
		t.Fatal(err)
	}
	root := scene.NewNode("root", f32.Rect(10, 10, 100, 100))
	root.Add(scene.NewNode("spill", f32.Rect(80, -20, 40, 40)))
	host := scene.Host{Metric: unit.Metric{PxPerDp: 2}}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := renderPNG(path, root, host, m.Face()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// The canvas spans (0,-20)-(120,100) in dp.
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Errorf("image size %v, want 240x240", b.Size())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.js")
	if err := os.WriteFile(bad, []byte(`pin("missing").top(1);`), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		edit func(c *config)
		want string
	}{
		{"no scene", func(c *config) { c.scene = filepath.Join(dir, "none.yaml") }, "none.yaml"},
		{"no script", func(c *config) { c.script = filepath.Join(dir, "none.js") }, "none.js"},
		{"bad script", func(c *config) { c.script = bad }, `unknown view "missing"`},
		{"bad font", func(c *config) { c.font = "comic" }, `unknown face "comic"`},
	}
	for _, tt := range tests {
		cfg := testConfig()
		tt.edit(&cfg)
		var stdout, stderr bytes.Buffer
		err := run(cfg, &stdout, &stderr)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: got %v, want error containing %q", tt.name, err, tt.want)
		}
	}
}
