// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
)

// View is an element that can be positioned. Frames are expressed in
// the coordinate space of the element's parent. Views are compared with
// == to detect siblings, so implementations must be comparable; pointer
// types are.
type View interface {
	// Parent returns the element's container, or nil if the element is
	// detached.
	Parent() View
	// Frame returns the committed frame.
	Frame() f32.Rectangle
	// SetFrame commits a new frame.
	SetFrame(r f32.Rectangle)
	// SizeThatFits returns the preferred size of the element's content
	// within cs.
	SizeThatFits(cs layout.Constraints) f32.Point
}

// Host converts between the coordinate spaces of containers and aligns
// frames to the display.
type Host interface {
	// Convert maps p from the content space of from to the content
	// space of to.
	Convert(p f32.Point, from, to View) f32.Point
	// Snap aligns r to the physical pixel grid.
	Snap(r f32.Rectangle) f32.Rectangle
}
