// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
)

// Measurer computes the size of text wrapped to a maximum width. It
// caches recent measurements and is not safe for concurrent use.
type Measurer struct {
	face       font.Face
	lineHeight fixed.Int26_6
	shaper     *shaper
	cache      sizeCache
}

// NewMeasurer returns a Measurer for the font in src at size dp. If src
// is nil, the Go regular font is used.
func NewMeasurer(src []byte, size float64) (*Measurer, error) {
	if src == nil {
		src = goregular.TTF
	}
	fnt, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: creating face: %w", err)
	}
	sh, err := newShaper(src, toFixed(float32(size)))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	return &Measurer{
		face:       face,
		lineHeight: face.Metrics().Height,
		shaper:     sh,
	}, nil
}

// Measure returns the size of s wrapped at line break opportunities to
// fit the width of cs. Words wider than the bound are not broken. The
// height is not limited by cs.
func (m *Measurer) Measure(s string, cs layout.Constraints) f32.Point {
	maxWidth := fixed.Int26_6(-1)
	if cs.Bounded(layout.Horizontal) {
		maxWidth = toFixed(cs.Max.X)
	}
	key := sizeKey{maxWidth: maxWidth, str: s}
	b, ok := m.cache.Get(key)
	if !ok {
		b = m.shaper.wrap(s, maxWidth)
		m.cache.Put(key, b)
	}
	return f32.Pt(fromFixed(b.width), fromFixed(m.lineHeight)*float32(b.lines))
}

// Face returns the font face text is measured with.
func (m *Measurer) Face() font.Face {
	return m.face
}

// Fit returns a function measuring s, suitable as the preferred size
// of a text element.
func (m *Measurer) Fit(s string) func(cs layout.Constraints) f32.Point {
	return func(cs layout.Constraints) f32.Point {
		return m.Measure(s, cs)
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed rounds up to whole dps so that measured text is never
// clipped.
func fromFixed(v fixed.Int26_6) float32 {
	return float32(v.Ceil())
}
