// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"fmt"

	"gioui.org/pin/f32"
)

// Corner names a point of a frame: one of its corners, the middle of
// one of its sides or its center.
type Corner uint8

// HEdgeKind names a vertical line of a frame, resolving to an x
// coordinate.
type HEdgeKind uint8

// VEdgeKind names a horizontal line of a frame, resolving to a y
// coordinate.
type VEdgeKind uint8

const (
	TopLeft Corner = iota
	TopCenter
	TopRight
	LeftCenter
	Center
	RightCenter
	BottomLeft
	BottomCenter
	BottomRight
)

const (
	LeftEdge HEdgeKind = iota
	HCenterEdge
	RightEdge
)

const (
	TopEdge VEdgeKind = iota
	VCenterEdge
	BottomEdge
)

// Anchor is a point of another view's frame. It is resolved when it is
// used, so it always reflects the view's latest frame.
type Anchor struct {
	View   View
	Corner Corner
}

// HorizontalEdge is the x coordinate of a vertical line of another
// view's frame.
type HorizontalEdge struct {
	View View
	Kind HEdgeKind
}

// VerticalEdge is the y coordinate of a horizontal line of another
// view's frame.
type VerticalEdge struct {
	View View
	Kind VEdgeKind
}

// AnchorOf returns the Anchor of v at c.
func AnchorOf(v View, c Corner) Anchor {
	return Anchor{View: v, Corner: c}
}

// HEdgeOf returns the horizontal edge k of v.
func HEdgeOf(v View, k HEdgeKind) HorizontalEdge {
	return HorizontalEdge{View: v, Kind: k}
}

// VEdgeOf returns the vertical edge k of v.
func VEdgeOf(v View, k VEdgeKind) VerticalEdge {
	return VerticalEdge{View: v, Kind: k}
}

type refKind uint8

const (
	refAnchor refKind = iota
	refHEdge
	refVEdge
)

// reference is the common form of anchors and edges. Edges only use
// one coordinate of the resolved point.
type reference struct {
	kind   refKind
	view   View
	corner Corner
	hedge  HEdgeKind
	vedge  VEdgeKind
}

func (a Anchor) ref() reference {
	return reference{kind: refAnchor, view: a.View, corner: a.Corner}
}

func (e HorizontalEdge) ref() reference {
	return reference{kind: refHEdge, view: e.View, hedge: e.Kind}
}

func (e VerticalEdge) ref() reference {
	return reference{kind: refVEdge, view: e.View, vedge: e.Kind}
}

// point returns the referenced point in the content space of the
// view's parent.
func (r reference) point() f32.Point {
	f := r.view.Frame()
	switch r.kind {
	case refAnchor:
		return cornerPoint(f, r.corner)
	case refHEdge:
		switch r.hedge {
		case LeftEdge:
			return f32.Pt(f.Min.X, 0)
		case HCenterEdge:
			return f32.Pt(f.Center().X, 0)
		default:
			return f32.Pt(f.Max.X, 0)
		}
	case refVEdge:
		switch r.vedge {
		case TopEdge:
			return f32.Pt(0, f.Min.Y)
		case VCenterEdge:
			return f32.Pt(0, f.Center().Y)
		default:
			return f32.Pt(0, f.Max.Y)
		}
	default:
		panic("unreachable")
	}
}

func cornerPoint(f f32.Rectangle, c Corner) f32.Point {
	mid := f.Center()
	switch c {
	case TopLeft:
		return f.Min
	case TopCenter:
		return f32.Pt(mid.X, f.Min.Y)
	case TopRight:
		return f32.Pt(f.Max.X, f.Min.Y)
	case LeftCenter:
		return f32.Pt(f.Min.X, mid.Y)
	case Center:
		return mid
	case RightCenter:
		return f32.Pt(f.Max.X, mid.Y)
	case BottomLeft:
		return f32.Pt(f.Min.X, f.Max.Y)
	case BottomCenter:
		return f32.Pt(mid.X, f.Max.Y)
	case BottomRight:
		return f.Max
	default:
		panic("unreachable")
	}
}

// layoutParent returns the parent of the laid out view.
func (l *Layout) layoutParent(context describer) View {
	p := l.view.Parent()
	if p == nil {
		l.warn(DetachedElement, "the view must be added to a parent before being laid out using this method.", context)
	}
	return p
}

// referenceParent returns the parent of a reference view.
func (l *Layout) referenceParent(v View, context describer) View {
	p := v.Parent()
	if p == nil {
		l.warn(DetachedElement, fmt.Sprintf("the reference view %s is invalid. Views must be added to a parent before being used as a reference.", describe(v)), context)
	}
	return p
}

// resolve converts the point of r into the content space of the laid
// out view's parent.
func (l *Layout) resolve(r reference, parent View, context describer) (f32.Point, bool) {
	refParent := l.referenceParent(r.view, context)
	if refParent == nil {
		return f32.Point{}, false
	}
	p := r.point()
	if refParent == parent {
		return p, true
	}
	return l.host.Convert(p, refParent, parent), true
}

// resolveAll resolves every reference that can be resolved. It fails
// only if none can.
func (l *Layout) resolveAll(refs []reference, context describer) ([]f32.Point, bool) {
	parent := l.layoutParent(context)
	if parent == nil {
		return nil, false
	}
	points := make([]f32.Point, 0, len(refs))
	for _, r := range refs {
		if p, ok := l.resolve(r, parent, context); ok {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		l.warn(EmptyReferenceGroup, "no valid references", context)
		return nil, false
	}
	return points, true
}

// resolveOne resolves a single reference.
func (l *Layout) resolveOne(r reference, context describer) (f32.Point, bool) {
	parent := l.layoutParent(context)
	if parent == nil {
		return f32.Point{}, false
	}
	return l.resolve(r, parent, context)
}

// describe returns a short description of v for diagnostics.
func describe(v View) string {
	if s, ok := v.(fmt.Stringer); ok {
		return fmt.Sprintf("%q", s.String())
	}
	return fmt.Sprintf("%T", v)
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "topLeft"
	case TopCenter:
		return "topCenter"
	case TopRight:
		return "topRight"
	case LeftCenter:
		return "leftCenter"
	case Center:
		return "center"
	case RightCenter:
		return "rightCenter"
	case BottomLeft:
		return "bottomLeft"
	case BottomCenter:
		return "bottomCenter"
	case BottomRight:
		return "bottomRight"
	default:
		panic("unreachable")
	}
}

func (k HEdgeKind) String() string {
	switch k {
	case LeftEdge:
		return "left"
	case HCenterEdge:
		return "hCenter"
	case RightEdge:
		return "right"
	default:
		panic("unreachable")
	}
}

func (k VEdgeKind) String() string {
	switch k {
	case TopEdge:
		return "top"
	case VCenterEdge:
		return "vCenter"
	case BottomEdge:
		return "bottom"
	default:
		panic("unreachable")
	}
}
