// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"gioui.org/pin/f32"
)

// Unbounded is the Max of an axis that places no limit on the size.
const Unbounded float32 = math.MaxFloat32

// Constraints is the bounding box an element is asked to fit its
// content into. Either axis may be Unbounded.
type Constraints struct {
	Max f32.Point
}

// Alignment is the mutual alignment of an element and a group of
// reference elements along one axis.
type Alignment uint8

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	// Start aligns left edges horizontally and top edges vertically.
	Start Alignment = iota
	// End aligns right edges horizontally and bottom edges vertically.
	End
	// Middle aligns centers.
	Middle
)

const (
	Horizontal Axis = iota
	Vertical
)

// Exact returns constraints bounded by size on both axes.
func Exact(size f32.Point) Constraints {
	return Constraints{Max: size}
}

// Bounded returns constraints with a bound for each axis that has
// one. Axes reported as !ok are Unbounded.
func Bounded(w float32, wok bool, h float32, hok bool) Constraints {
	cs := Constraints{Max: f32.Pt(Unbounded, Unbounded)}
	if wok {
		cs.Max.X = w
	}
	if hok {
		cs.Max.Y = h
	}
	return cs
}

// Bounded reports whether the axis has a finite bound.
func (c Constraints) Bounded(a Axis) bool {
	if a == Horizontal {
		return c.Max.X != Unbounded
	}
	return c.Max.Y != Unbounded
}

// Constrain clamps a size to the bounded axes of c.
func (c Constraints) Constrain(size f32.Point) f32.Point {
	if c.Bounded(Horizontal) && size.X > c.Max.X {
		size.X = c.Max.X
	}
	if c.Bounded(Vertical) && size.Y > c.Max.Y {
		size.Y = c.Max.Y
	}
	return size
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints{%s, %s}", axisString(c.Max.X), axisString(c.Max.Y))
}

func axisString(v float32) string {
	if v == Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%g", v)
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
