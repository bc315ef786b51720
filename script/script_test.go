// SPDX-License-Identifier: Unlicense OR MIT

package script

import (
	"bytes"
	"strings"
	"testing"

	"gioui.org/pin"
	"gioui.org/pin/scene"
)

const tree = `
name: root
frame: [0, 0, 400, 400]
children:
  - name: title
    frame: [0, 0, 10, 10]
  - name: body
  - name: badge
`

func newScene(t *testing.T) *scene.Node {
	t.Helper()
	root, err := scene.Decode(strings.NewReader(tree), nil)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func dump(t *testing.T, root *scene.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := scene.Dump(&buf, root); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRun(t *testing.T) {
	root := newScene(t)
	rec := new(pin.Recorder)
	e := New(root, scene.Host{}, WithLayoutOptions(pin.WithSink(rec)))
	err := e.Run("layout.js", `
		pin("title").topCenter().size(200, 40).marginTop(10);
		pin("body").belowAligned("center", "title").width("80%").bottom(10);
		pin("badge").topRightTo("body", "topRight").sizeSquare(16);
	`)
	if err != nil {
		t.Fatal(err)
	}
	want := `root x=0 y=0 w=400 h=400
  title x=100 y=10 w=200 h=40
  body x=40 y=50 w=320 h=340
  badge x=344 y=50 w=16 h=16
`
	if got := dump(t, root); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if len(rec.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", rec.Diagnostics)
	}
}

func TestApplyAndView(t *testing.T) {
	root := newScene(t)
	var out bytes.Buffer
	e := New(root, scene.Host{}, WithOutput(&out))
	err := e.Run("view.js", `
		var f = pin("title").left(5).top(6).size(7, 8).apply();
		console.log(f.x, f.y, f.width, f.height);
		var v = view("title");
		console.log(v.x + v.width);
	`)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "5 6 7 8\n12\n"; got != want {
		t.Errorf("output %q, want %q", got, want)
	}
}

func TestCenteredAndPercent(t *testing.T) {
	root := newScene(t)
	e := New(root, scene.Host{}, WithLayoutOptions(pin.WithSink(pin.Discard)))
	if err := e.Run("center.js", `pin("title").hCenter().vCenter("25%").size("10%");`); err != nil {
		t.Fatal(err)
	}
	if got := root.Find("title").Frame(); got.Min.X != 180 || got.Min.Y != 80 || got.Dx() != 40 {
		t.Errorf("frame %v, want x=180 y=80 w=40", got)
	}
}

func TestDiagnostics(t *testing.T) {
	root := newScene(t)
	rec := new(pin.Recorder)
	e := New(root, scene.Host{}, WithLayoutOptions(pin.WithSink(rec)))
	err := e.Run("diag.js", `
		pin("title").top(10).top(20);
		pin("body").left(0).right(0).width(5).margin(1, 2, 3, 4, 5);
	`)
	if err != nil {
		t.Fatal(err)
	}
	want := []pin.Kind{pin.AlreadySet, pin.ValueConflict, pin.InvalidArgument}
	if len(rec.Diagnostics) != len(want) {
		t.Fatalf("got %v, want kinds %v", rec.Diagnostics, want)
	}
	for i, d := range rec.Diagnostics {
		if d.Kind != want[i] {
			t.Errorf("diagnostic %d: %v, want %v", i, d.Kind, want[i])
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{`pin("nope")`, `unknown view "nope"`},
		{`pin("title").topLeftTo("body", "middle")`, `unknown corner "middle"`},
		{`pin("title").topTo("body", "left")`, `unknown vertical edge "left"`},
		{`pin("title").aboveAligned("diagonal", "body")`, `unknown alignment "diagonal"`},
		{`pin("title").top("ten")`, `invalid length "ten"`},
		{`pin("title").width()`, `argument 1 is missing`},
		{`pin(`, `script:`},
	}
	for _, tt := range tests {
		root := newScene(t)
		err := New(root, scene.Host{}).Run("bad.js", tt.src)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: got %v, want error containing %q", tt.src, err, tt.want)
		}
	}
}

func TestAppliedOnError(t *testing.T) {
	root := newScene(t)
	e := New(root, scene.Host{}, WithLayoutOptions(pin.WithSink(pin.Discard)))
	err := e.Run("throw.js", `pin("title").left(33); throw new Error("stop");`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if x := root.Find("title").Frame().Min.X; x != 33 {
		t.Errorf("x = %v, want 33", x)
	}
}
