// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
)

// Above places the bottom edge of the view above all of views.
func (l *Layout) Above(views ...View) *Layout {
	context := func() string { return "above(of: " + describeAll(views) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, TopLeft), context); ok {
		l.setBottom(topMost(points), context)
	}
	return l
}

// AboveAligned places the bottom edge of the view above all of views
// and aligns it horizontally with the group.
func (l *Layout) AboveAligned(a layout.Alignment, views ...View) *Layout {
	context := func() string { return "above(of: " + describeAll(views) + ", aligned: " + hAlignName(a) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, alignedCorner(a, TopLeft, TopCenter, TopRight)), context); ok {
		l.setBottom(topMost(points), context)
		l.alignHorizontally(a, points, context)
	}
	return l
}

// Below places the top edge of the view below all of views.
func (l *Layout) Below(views ...View) *Layout {
	context := func() string { return "below(of: " + describeAll(views) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, BottomLeft), context); ok {
		l.setTop(bottomMost(points), context)
	}
	return l
}

// BelowAligned places the top edge of the view below all of views and
// aligns it horizontally with the group.
func (l *Layout) BelowAligned(a layout.Alignment, views ...View) *Layout {
	context := func() string { return "below(of: " + describeAll(views) + ", aligned: " + hAlignName(a) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, alignedCorner(a, BottomLeft, BottomCenter, BottomRight)), context); ok {
		l.setTop(bottomMost(points), context)
		l.alignHorizontally(a, points, context)
	}
	return l
}

// LeftOf places the right edge of the view left of all of views.
func (l *Layout) LeftOf(views ...View) *Layout {
	context := func() string { return "left(of: " + describeAll(views) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, TopLeft), context); ok {
		l.setRight(leftMost(points), context)
	}
	return l
}

// LeftOfAligned places the right edge of the view left of all of views
// and aligns it vertically with the group.
func (l *Layout) LeftOfAligned(a layout.Alignment, views ...View) *Layout {
	context := func() string { return "left(of: " + describeAll(views) + ", aligned: " + vAlignName(a) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, alignedCorner(a, TopLeft, LeftCenter, BottomLeft)), context); ok {
		l.setRight(leftMost(points), context)
		l.alignVertically(a, points, context)
	}
	return l
}

// RightOf places the left edge of the view right of all of views.
func (l *Layout) RightOf(views ...View) *Layout {
	context := func() string { return "right(of: " + describeAll(views) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, TopRight), context); ok {
		l.setLeft(rightMost(points), context)
	}
	return l
}

// RightOfAligned places the left edge of the view right of all of
// views and aligns it vertically with the group.
func (l *Layout) RightOfAligned(a layout.Alignment, views ...View) *Layout {
	context := func() string { return "right(of: " + describeAll(views) + ", aligned: " + vAlignName(a) + ")" }
	if !l.accepting(context) || !l.validateGroup(views, context) {
		return l
	}
	if points, ok := l.resolveAll(anchors(views, alignedCorner(a, TopRight, RightCenter, BottomRight)), context); ok {
		l.setLeft(rightMost(points), context)
		l.alignVertically(a, points, context)
	}
	return l
}

func (l *Layout) alignHorizontally(a layout.Alignment, points []f32.Point, context describer) {
	switch a {
	case layout.Start:
		l.setLeft(leftMost(points), context)
	case layout.Middle:
		l.setHCenter(averageX(points), context)
	case layout.End:
		l.setRight(rightMost(points), context)
	}
}

func (l *Layout) alignVertically(a layout.Alignment, points []f32.Point, context describer) {
	switch a {
	case layout.Start:
		l.setTop(topMost(points), context)
	case layout.Middle:
		l.setVCenter(averageY(points), context)
	case layout.End:
		l.setBottom(bottomMost(points), context)
	}
}

// validateGroup checks that the view is attached and that at least one
// reference view is given.
func (l *Layout) validateGroup(views []View, context describer) bool {
	if l.layoutParent(context) == nil {
		return false
	}
	if len(views) == 0 {
		l.warn(EmptyReferenceGroup, "at least one view must be specified", context)
		return false
	}
	return true
}

func anchors(views []View, c Corner) []reference {
	refs := make([]reference, len(views))
	for i, v := range views {
		refs[i] = AnchorOf(v, c).ref()
	}
	return refs
}

// alignedCorner picks the corner matching a.
func alignedCorner(a layout.Alignment, start, middle, end Corner) Corner {
	switch a {
	case layout.Middle:
		return middle
	case layout.End:
		return end
	default:
		return start
	}
}

func hAlignName(a layout.Alignment) string {
	switch a {
	case layout.Middle:
		return "center"
	case layout.End:
		return "right"
	default:
		return "left"
	}
}

func vAlignName(a layout.Alignment) string {
	switch a {
	case layout.Middle:
		return "center"
	case layout.End:
		return "bottom"
	default:
		return "top"
	}
}

// The combinators below require a non-empty list; resolveAll never
// returns an empty one.

func topMost(points []f32.Point) float32 {
	m := points[0].Y
	for _, p := range points[1:] {
		if p.Y < m {
			m = p.Y
		}
	}
	return m
}

func bottomMost(points []f32.Point) float32 {
	m := points[0].Y
	for _, p := range points[1:] {
		if p.Y > m {
			m = p.Y
		}
	}
	return m
}

func leftMost(points []f32.Point) float32 {
	m := points[0].X
	for _, p := range points[1:] {
		if p.X < m {
			m = p.X
		}
	}
	return m
}

func rightMost(points []f32.Point) float32 {
	m := points[0].X
	for _, p := range points[1:] {
		if p.X > m {
			m = p.X
		}
	}
	return m
}

func averageX(points []f32.Point) float32 {
	var sum float32
	for _, p := range points {
		sum += p.X
	}
	return sum / float32(len(points))
}

func averageY(points []f32.Point) float32 {
	var sum float32
	for _, p := range points {
		sum += p.Y
	}
	return sum / float32(len(points))
}
