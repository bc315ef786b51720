// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"bytes"
	"strings"
	"testing"

	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
	"gioui.org/pin/unit"
)

func TestAddRemove(t *testing.T) {
	root := NewNode("root", f32.Rect(0, 0, 100, 100))
	other := NewNode("other", f32.Rect(0, 0, 100, 100))
	child := NewNode("child", f32.Rect(0, 0, 10, 10))

	root.Add(child)
	if child.Parent() != root {
		t.Fatalf("parent = %v, want root", child.Parent())
	}
	other.Add(child)
	if len(root.Children()) != 0 {
		t.Errorf("root still has %d children after reparenting", len(root.Children()))
	}
	if child.Parent() != other {
		t.Errorf("parent = %v, want other", child.Parent())
	}
	child.Remove()
	if child.Parent() != nil {
		t.Errorf("detached node has parent %v", child.Parent())
	}
	if len(other.Children()) != 0 {
		t.Errorf("other still has %d children after Remove", len(other.Children()))
	}
}

func TestConvert(t *testing.T) {
	root := NewNode("root", f32.Rect(0, 0, 400, 400))
	a := NewNode("a", f32.Rect(10, 20, 100, 100))
	b := NewNode("b", f32.Rect(200, 0, 100, 100))
	b.Transform = f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(2, 2))
	root.Add(a, b)

	var h Host
	tests := []struct {
		name     string
		from, to *Node
		in, want f32.Point
	}{
		{"same", a, a, f32.Pt(5, 5), f32.Pt(5, 5)},
		{"child to parent", a, root, f32.Pt(5, 5), f32.Pt(15, 25)},
		{"parent to child", root, a, f32.Pt(15, 25), f32.Pt(5, 5)},
		{"into scaled", a, b, f32.Pt(5, 5), f32.Pt(-92.5, 12.5)},
		{"out of scaled", b, root, f32.Pt(10, 10), f32.Pt(220, 20)},
	}
	for _, tt := range tests {
		if got := h.Convert(tt.in, tt.from, tt.to); got != tt.want {
			t.Errorf("%s: Convert(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestSnap(t *testing.T) {
	h := Host{Metric: unit.Metric{PxPerDp: 2}}
	got := h.Snap(f32.Rect(0.3, 0.3, 10, 10))
	if want := f32.Rect(0.5, 0.5, 10, 10); got != want {
		t.Errorf("Snap = %v, want %v", got, want)
	}
}

func TestSizeThatFits(t *testing.T) {
	n := NewNode("n", f32.Rect(0, 0, 30, 40))
	cs := layout.Exact(f32.Pt(10, 10))
	if got := n.SizeThatFits(cs); got != f32.Pt(30, 40) {
		t.Errorf("default SizeThatFits = %v, want current size", got)
	}
	n.Fit = func(cs layout.Constraints) f32.Point { return cs.Max }
	if got := n.SizeThatFits(cs); got != f32.Pt(10, 10) {
		t.Errorf("SizeThatFits = %v, want %v", got, cs.Max)
	}
}

type fixedMeasurer f32.Point

func (m fixedMeasurer) Measure(s string, cs layout.Constraints) f32.Point {
	return f32.Point(m)
}

const sceneYAML = `
name: root
frame: [0, 0, 320, 480]
children:
  - name: header
    frame: [0, 0, 320, 60]
    children:
      - name: title
        text: Hello
  - name: list
    frame: [0, 60, 320, 420]
    scale: 2
`

func TestDecode(t *testing.T) {
	root, err := Decode(strings.NewReader(sceneYAML), fixedMeasurer{X: 50, Y: 12})
	if err != nil {
		t.Fatal(err)
	}
	title := root.Find("title")
	if title == nil || title.Parent() != root.Find("header") {
		t.Fatalf("title not found under header")
	}
	if title.Text != "Hello" {
		t.Errorf("title text = %q, want Hello", title.Text)
	}
	if got := title.SizeThatFits(layout.Exact(f32.Pt(100, 100))); got != f32.Pt(50, 12) {
		t.Errorf("title fit = %v, want (50,12)", got)
	}
	list := root.Find("list")
	if got := list.Transform.Transform(f32.Pt(1, 1)); got != f32.Pt(2, 2) {
		t.Errorf("list transform maps (1,1) to %v, want (2,2)", got)
	}

	var buf bytes.Buffer
	if err := Dump(&buf, root); err != nil {
		t.Fatal(err)
	}
	want := `root x=0 y=0 w=320 h=480
  header x=0 y=0 w=320 h=60
    title x=0 y=0 w=50 h=12
  list x=0 y=60 w=320 h=420
`
	if got := buf.String(); got != want {
		t.Errorf("Dump mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"no name":          "frame: [0, 0, 1, 1]",
		"bad frame":        "name: a\nframe: [1, 2]",
		"duplicate":        "name: a\nchildren:\n  - name: a",
		"syntax":           "name: [",
		"no text measurer": "name: a\ntext: hi",
	}
	for name, src := range tests {
		var m TextMeasurer
		if _, err := Decode(strings.NewReader(src), m); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
