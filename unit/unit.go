// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units, percentages and
the pixel grid frames are snapped to.

Device independent pixel, or dp, is the unit for frames. Pixels, or
px, are the display dependent pixels a frame is eventually drawn
with. A Metric converts between the two and aligns frames to whole
physical pixels.
*/
package unit

import (
	"fmt"
	"math"

	"gioui.org/pin/f32"
)

// Metric converts dp values to pixels.
type Metric struct {
	// PxPerDp is the device dependent density. Zero means 1.
	PxPerDp float32
}

// Percent is a percentage of a parent dimension.
type Percent float32

// Of returns p percent of v.
func (p Percent) Of(v float32) float32 {
	return float32(p) * v / 100
}

func (p Percent) String() string {
	return fmt.Sprintf("%g%%", float32(p))
}

func (m Metric) scale() float32 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}

// Dp converts v dp to pixels.
func (m Metric) Dp(v float32) float32 {
	return v * m.scale()
}

// PxToDp converts v pixels to dp.
func (m Metric) PxToDp(v float32) float32 {
	return v / m.scale()
}

// Align rounds v dp to the nearest physical pixel boundary.
func (m Metric) Align(v float32) float32 {
	s := m.scale()
	return float32(math.Round(float64(v*s))) / s
}

// Snap aligns r to the physical pixel grid. The origin is rounded and
// the size is derived from the rounded far corner so that adjacent
// frames sharing an edge stay adjacent after snapping.
func (m Metric) Snap(r f32.Rectangle) f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Pt(m.Align(r.Min.X), m.Align(r.Min.Y)),
		Max: f32.Pt(m.Align(r.Max.X), m.Align(r.Max.Y)),
	}
}
