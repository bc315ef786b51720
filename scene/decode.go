// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
)

// TextMeasurer measures the text of nodes that size to their content.
type TextMeasurer interface {
	Measure(s string, cs layout.Constraints) f32.Point
}

// nodeSpec is the YAML form of a Node:
//
//	name: root
//	frame: [0, 0, 320, 480]
//	children:
//	  - name: title
//	    text: Hello
//	  - name: list
//	    scale: 2
type nodeSpec struct {
	Name     string     `yaml:"name"`
	Frame    []float32  `yaml:"frame"`
	Scale    float32    `yaml:"scale"`
	Text     string     `yaml:"text"`
	Children []nodeSpec `yaml:"children"`
}

// Decode reads a tree from its YAML description. Nodes with a text
// field prefer the size m measures for it; m may be nil if no node has
// text.
func Decode(r io.Reader, m TextMeasurer) (*Node, error) {
	var spec nodeSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("scene: decoding: %w", err)
	}
	seen := make(map[string]bool)
	return build(spec, m, seen)
}

func build(spec nodeSpec, m TextMeasurer, seen map[string]bool) (*Node, error) {
	if spec.Name == "" {
		return nil, errors.New("scene: node without a name")
	}
	if seen[spec.Name] {
		return nil, fmt.Errorf("scene: duplicate node %q", spec.Name)
	}
	seen[spec.Name] = true

	var frame f32.Rectangle
	switch len(spec.Frame) {
	case 0:
	case 4:
		frame = f32.Rect(spec.Frame[0], spec.Frame[1], spec.Frame[2], spec.Frame[3])
	default:
		return nil, fmt.Errorf("scene: node %q: frame needs 4 values (x, y, w, h), got %d", spec.Name, len(spec.Frame))
	}

	n := NewNode(spec.Name, frame)
	if spec.Scale != 0 {
		n.Transform = f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(spec.Scale, spec.Scale))
	}
	if spec.Text != "" {
		if m == nil {
			return nil, fmt.Errorf("scene: node %q has text but no measurer is configured", spec.Name)
		}
		n.Text = spec.Text
		n.Fit = func(cs layout.Constraints) f32.Point {
			return m.Measure(n.Text, cs)
		}
		if len(spec.Frame) == 0 {
			n.frame = frame.WithSize(n.Fit(layout.Bounded(0, false, 0, false)))
		}
	}
	for _, cs := range spec.Children {
		c, err := build(cs, m, seen)
		if err != nil {
			return nil, err
		}
		n.Add(c)
	}
	return n, nil
}
