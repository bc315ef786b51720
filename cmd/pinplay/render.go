// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"gioui.org/pin/f32"
	"gioui.org/pin/scene"
)

var palette = []color.NRGBA{
	{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff},
	{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff},
	{R: 0x00, G: 0x96, B: 0x88, A: 0xff},
	{R: 0xff, G: 0x98, B: 0x00, A: 0xff},
}

// renderPNG draws the frame outline and label of every node below root.
// The image covers the content of root and every node overflowing it,
// at the pixel density of h.
func renderPNG(path string, root *scene.Node, h scene.Host, face font.Face) error {
	bounds := root.Frame().WithOrigin(f32.Point{})
	root.Walk(func(n *scene.Node, depth int) {
		if n != root {
			bounds = bounds.Union(quadBounds(corners(n, root, h)))
		}
	})
	w := int(math.Ceil(float64(h.Metric.Dp(bounds.Dx()))))
	ht := int(math.Ceil(float64(h.Metric.Dp(bounds.Dy()))))
	dc := gg.NewContext(w, ht)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	scale := float64(h.Metric.Dp(1))
	dc.Scale(scale, scale)
	dc.Translate(float64(-bounds.Min.X), float64(-bounds.Min.Y))
	dc.SetFontFace(face)
	// Hairline outlines.
	dc.SetLineWidth(float64(h.Metric.PxToDp(1)))

	root.Walk(func(n *scene.Node, depth int) {
		if n == root {
			return
		}
		quad := corners(n, root, h)
		c := palette[depth%len(palette)]

		dc.MoveTo(float64(quad[0].X), float64(quad[0].Y))
		for _, p := range quad[1:] {
			dc.LineTo(float64(p.X), float64(p.Y))
		}
		dc.ClosePath()
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 0x30)
		dc.FillPreserve()
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
		dc.Stroke()

		label := n.Text
		if label == "" {
			label = n.Name
		}
		dc.DrawStringAnchored(label, float64(quad[0].X)+2, float64(quad[0].Y)+2, 0, 1)
	})
	return dc.SavePNG(path)
}

// corners returns the corners of the frame of n in the content space of
// root, clockwise from the top left.
func corners(n, root *scene.Node, h scene.Host) [4]f32.Point {
	f := n.Frame()
	quad := [4]f32.Point{f.Min, f32.Pt(f.Max.X, f.Min.Y), f.Max, f32.Pt(f.Min.X, f.Max.Y)}
	parent := n.Parent()
	for i, p := range quad {
		quad[i] = h.Convert(p, parent, root)
	}
	return quad
}

func quadBounds(quad [4]f32.Point) f32.Rectangle {
	r := f32.Rectangle{Min: quad[0], Max: quad[0]}
	for _, p := range quad[1:] {
		r = r.Union(f32.Rectangle{Min: p, Max: p})
	}
	return r
}
