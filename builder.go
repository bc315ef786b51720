// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"fmt"
	"strconv"
	"strings"

	"gioui.org/pin/f32"
	"gioui.org/pin/unit"
)

// Top sets the top edge v below the parent's top edge.
func (l *Layout) Top(v float32) *Layout {
	context := func() string { return "top(" + formatFloat(v) + ")" }
	if l.accepting(context) {
		l.setTop(v, context)
	}
	return l
}

// TopPercent sets the top edge p percent of the parent's height below
// the parent's top edge.
func (l *Layout) TopPercent(p unit.Percent) *Layout {
	context := func() string { return "top(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setTop(p.Of(parent.Frame().Dy()), context)
	}
	return l
}

// TopTo aligns the top edge with e.
func (l *Layout) TopTo(e VerticalEdge) *Layout {
	context := func() string { return relativeContext("top", e.Kind.String(), e.View) }
	if !l.accepting(context) {
		return l
	}
	if p, ok := l.resolveOne(e.ref(), context); ok {
		l.setTop(p.Y, context)
	}
	return l
}

// Left sets the left edge v right of the parent's left edge.
func (l *Layout) Left(v float32) *Layout {
	context := func() string { return "left(" + formatFloat(v) + ")" }
	if l.accepting(context) {
		l.setLeft(v, context)
	}
	return l
}

// LeftPercent sets the left edge p percent of the parent's width right
// of the parent's left edge.
func (l *Layout) LeftPercent(p unit.Percent) *Layout {
	context := func() string { return "left(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setLeft(p.Of(parent.Frame().Dx()), context)
	}
	return l
}

// LeftTo aligns the left edge with e.
func (l *Layout) LeftTo(e HorizontalEdge) *Layout {
	context := func() string { return relativeContext("left", e.Kind.String(), e.View) }
	if !l.accepting(context) {
		return l
	}
	if p, ok := l.resolveOne(e.ref(), context); ok {
		l.setLeft(p.X, context)
	}
	return l
}

// Bottom sets the bottom edge v above the parent's bottom edge.
func (l *Layout) Bottom(v float32) *Layout {
	context := func() string { return "bottom(" + formatFloat(v) + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setBottom(parent.Frame().Dy()-v, context)
	}
	return l
}

// BottomPercent sets the bottom edge p percent of the parent's height
// above the parent's bottom edge.
func (l *Layout) BottomPercent(p unit.Percent) *Layout {
	context := func() string { return "bottom(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		h := parent.Frame().Dy()
		l.setBottom(h-p.Of(h), context)
	}
	return l
}

// BottomTo aligns the bottom edge with e.
func (l *Layout) BottomTo(e VerticalEdge) *Layout {
	context := func() string { return relativeContext("bottom", e.Kind.String(), e.View) }
	if !l.accepting(context) {
		return l
	}
	if p, ok := l.resolveOne(e.ref(), context); ok {
		l.setBottom(p.Y, context)
	}
	return l
}

// Right sets the right edge v left of the parent's right edge.
func (l *Layout) Right(v float32) *Layout {
	context := func() string { return "right(" + formatFloat(v) + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setRight(parent.Frame().Dx()-v, context)
	}
	return l
}

// RightPercent sets the right edge p percent of the parent's width
// left of the parent's right edge.
func (l *Layout) RightPercent(p unit.Percent) *Layout {
	context := func() string { return "right(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		w := parent.Frame().Dx()
		l.setRight(w-p.Of(w), context)
	}
	return l
}

// RightTo aligns the right edge with e.
func (l *Layout) RightTo(e HorizontalEdge) *Layout {
	context := func() string { return relativeContext("right", e.Kind.String(), e.View) }
	if !l.accepting(context) {
		return l
	}
	if p, ok := l.resolveOne(e.ref(), context); ok {
		l.setRight(p.X, context)
	}
	return l
}

// HCenter sets the horizontal center v right of the parent's left edge.
func (l *Layout) HCenter(v float32) *Layout {
	context := func() string { return "hCenter(" + formatFloat(v) + ")" }
	if l.accepting(context) {
		l.setHCenter(v, context)
	}
	return l
}

// HCenterPercent sets the horizontal center p percent of the parent's
// width right of the parent's left edge.
func (l *Layout) HCenterPercent(p unit.Percent) *Layout {
	context := func() string { return "hCenter(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setHCenter(p.Of(parent.Frame().Dx()), context)
	}
	return l
}

// HCentered centers the view horizontally in its parent.
func (l *Layout) HCentered() *Layout {
	context := func() string { return "hCenter()" }
	if parent := l.parentFor(context); parent != nil {
		l.setHCenter(parent.Frame().Dx()/2, context)
	}
	return l
}

// VCenter sets the vertical center v below the parent's top edge.
func (l *Layout) VCenter(v float32) *Layout {
	context := func() string { return "vCenter(" + formatFloat(v) + ")" }
	if l.accepting(context) {
		l.setVCenter(v, context)
	}
	return l
}

// VCenterPercent sets the vertical center p percent of the parent's
// height below the parent's top edge.
func (l *Layout) VCenterPercent(p unit.Percent) *Layout {
	context := func() string { return "vCenter(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setVCenter(p.Of(parent.Frame().Dy()), context)
	}
	return l
}

// VCentered centers the view vertically in its parent.
func (l *Layout) VCentered() *Layout {
	context := func() string { return "vCenter()" }
	if parent := l.parentFor(context); parent != nil {
		l.setVCenter(parent.Frame().Dy()/2, context)
	}
	return l
}

// TopLeft pins the view to the top left corner of its parent. The
// corner is the origin of the parent's space, so a detached view is
// pinned as well.
func (l *Layout) TopLeft() *Layout {
	context := func() string { return "topLeft()" }
	if l.accepting(context) {
		l.setTopLeft(f32.Point{}, context)
	}
	return l
}

// TopCenter pins the view to the middle of its parent's top edge.
func (l *Layout) TopCenter() *Layout { return l.pinToParent(TopCenter) }

// TopRight pins the view to the top right corner of its parent.
func (l *Layout) TopRight() *Layout { return l.pinToParent(TopRight) }

// LeftCenter pins the view to the middle of its parent's left edge.
func (l *Layout) LeftCenter() *Layout { return l.pinToParent(LeftCenter) }

// Center centers the view in its parent.
func (l *Layout) Center() *Layout { return l.pinToParent(Center) }

// RightCenter pins the view to the middle of its parent's right edge.
func (l *Layout) RightCenter() *Layout { return l.pinToParent(RightCenter) }

// BottomLeft pins the view to the bottom left corner of its parent.
func (l *Layout) BottomLeft() *Layout { return l.pinToParent(BottomLeft) }

// BottomCenter pins the view to the middle of its parent's bottom edge.
func (l *Layout) BottomCenter() *Layout { return l.pinToParent(BottomCenter) }

// BottomRight pins the view to the bottom right corner of its parent.
func (l *Layout) BottomRight() *Layout { return l.pinToParent(BottomRight) }

// TopLeftTo places the view's top left corner on a.
func (l *Layout) TopLeftTo(a Anchor) *Layout { return l.pinTo(TopLeft, a) }

// TopCenterTo places the middle of the view's top edge on a.
func (l *Layout) TopCenterTo(a Anchor) *Layout { return l.pinTo(TopCenter, a) }

// TopRightTo places the view's top right corner on a.
func (l *Layout) TopRightTo(a Anchor) *Layout { return l.pinTo(TopRight, a) }

// LeftCenterTo places the middle of the view's left edge on a.
func (l *Layout) LeftCenterTo(a Anchor) *Layout { return l.pinTo(LeftCenter, a) }

// CenterTo places the view's center on a.
func (l *Layout) CenterTo(a Anchor) *Layout { return l.pinTo(Center, a) }

// RightCenterTo places the middle of the view's right edge on a.
func (l *Layout) RightCenterTo(a Anchor) *Layout { return l.pinTo(RightCenter, a) }

// BottomLeftTo places the view's bottom left corner on a.
func (l *Layout) BottomLeftTo(a Anchor) *Layout { return l.pinTo(BottomLeft, a) }

// BottomCenterTo places the middle of the view's bottom edge on a.
func (l *Layout) BottomCenterTo(a Anchor) *Layout { return l.pinTo(BottomCenter, a) }

// BottomRightTo places the view's bottom right corner on a.
func (l *Layout) BottomRightTo(a Anchor) *Layout { return l.pinTo(BottomRight, a) }

func (l *Layout) pinToParent(c Corner) *Layout {
	context := func() string { return c.String() + "()" }
	parent := l.parentFor(context)
	if parent == nil {
		return l
	}
	// The parent's own frame is in its parent's space; only its size
	// matters here.
	bounds := f32.Rectangle{Max: parent.Frame().Size()}
	l.setPoint(c, cornerPoint(bounds, c), context)
	return l
}

func (l *Layout) pinTo(c Corner, a Anchor) *Layout {
	context := func() string { return relativeContext(c.String(), a.Corner.String(), a.View) }
	if !l.accepting(context) {
		return l
	}
	if p, ok := l.resolveOne(a.ref(), context); ok {
		l.setPoint(c, p, context)
	}
	return l
}

// Width sets the width.
func (l *Layout) Width(v float32) *Layout {
	context := func() string { return "width(" + formatFloat(v) + ")" }
	if l.accepting(context) {
		l.setWidth(v, context)
	}
	return l
}

// WidthPercent sets the width to p percent of the parent's width.
func (l *Layout) WidthPercent(p unit.Percent) *Layout {
	context := func() string { return "width(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setWidth(p.Of(parent.Frame().Dx()), context)
	}
	return l
}

// WidthOf sets the width to the current width of v.
func (l *Layout) WidthOf(v View) *Layout {
	context := func() string { return "width(of: " + describe(v) + ")" }
	if l.accepting(context) {
		l.setWidth(v.Frame().Dx(), context)
	}
	return l
}

// Height sets the height.
func (l *Layout) Height(v float32) *Layout {
	context := func() string { return "height(" + formatFloat(v) + ")" }
	if l.accepting(context) {
		l.setHeight(v, context)
	}
	return l
}

// HeightPercent sets the height to p percent of the parent's height.
func (l *Layout) HeightPercent(p unit.Percent) *Layout {
	context := func() string { return "height(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		l.setHeight(p.Of(parent.Frame().Dy()), context)
	}
	return l
}

// HeightOf sets the height to the current height of v.
func (l *Layout) HeightOf(v View) *Layout {
	context := func() string { return "height(of: " + describe(v) + ")" }
	if l.accepting(context) {
		l.setHeight(v.Frame().Dy(), context)
	}
	return l
}

// Size sets the width to sz.X and the height to sz.Y.
func (l *Layout) Size(sz f32.Point) *Layout {
	context := func() string { return fmt.Sprintf("size(%s, %s)", formatFloat(sz.X), formatFloat(sz.Y)) }
	if l.accepting(context) {
		l.setSize(sz, context)
	}
	return l
}

// SizeSquare sets both the width and the height to side.
func (l *Layout) SizeSquare(side float32) *Layout {
	context := func() string { return "size(sideLength: " + formatFloat(side) + ")" }
	if l.accepting(context) {
		l.setSize(f32.Pt(side, side), context)
	}
	return l
}

// SizePercent sets the size to p percent of the parent's size.
func (l *Layout) SizePercent(p unit.Percent) *Layout {
	context := func() string { return "size(" + p.String() + ")" }
	if parent := l.parentFor(context); parent != nil {
		sz := parent.Frame().Size()
		l.setSize(f32.Pt(p.Of(sz.X), p.Of(sz.Y)), context)
	}
	return l
}

// SizeOf sets the size to the current size of v.
func (l *Layout) SizeOf(v View) *Layout {
	context := func() string { return "size(of: " + describe(v) + ")" }
	if l.accepting(context) {
		l.setSize(v.Frame().Size(), context)
	}
	return l
}

// SizeToFit adjusts the computed size to the size of the view's
// content. The computed size bounds the content; an axis without a
// computed size is unbounded.
func (l *Layout) SizeToFit() *Layout {
	if l.accepting(func() string { return "sizeToFit()" }) {
		l.sizeToFit = true
	}
	return l
}

// PinEdges converts a size anchored on one side into two edges, so the
// frame keeps its edges when the size is adjusted to fit.
func (l *Layout) PinEdges() *Layout {
	if l.accepting(func() string { return "pinEdges()" }) {
		l.pinEdges = true
	}
	return l
}

// MarginTop sets the top margin.
func (l *Layout) MarginTop(v float32) *Layout {
	return l.margins("marginTop", v, &l.marginTop)
}

// MarginLeft sets the left margin.
func (l *Layout) MarginLeft(v float32) *Layout {
	return l.margins("marginLeft", v, &l.marginLeft)
}

// MarginBottom sets the bottom margin.
func (l *Layout) MarginBottom(v float32) *Layout {
	return l.margins("marginBottom", v, &l.marginBottom)
}

// MarginRight sets the right margin.
func (l *Layout) MarginRight(v float32) *Layout {
	return l.margins("marginRight", v, &l.marginRight)
}

// MarginHorizontal sets the left and right margins.
func (l *Layout) MarginHorizontal(v float32) *Layout {
	return l.margins("marginHorizontal", v, &l.marginLeft, &l.marginRight)
}

// MarginVertical sets the top and bottom margins.
func (l *Layout) MarginVertical(v float32) *Layout {
	return l.margins("marginVertical", v, &l.marginTop, &l.marginBottom)
}

// Margin sets the margins from one to four values:
//
//	Margin(all)
//	Margin(vertical, horizontal)
//	Margin(top, horizontal, bottom)
//	Margin(top, left, bottom, right)
func (l *Layout) Margin(values ...float32) *Layout {
	context := func() string { return "margin(" + formatFloats(values) + ")" }
	if !l.accepting(context) {
		return l
	}
	var t, left, b, r float32
	switch len(values) {
	case 1:
		t, left, b, r = values[0], values[0], values[0], values[0]
	case 2:
		t, left, b, r = values[0], values[1], values[0], values[1]
	case 3:
		t, left, b, r = values[0], values[1], values[2], values[1]
	case 4:
		t, left, b, r = values[0], values[1], values[2], values[3]
	default:
		l.warn(InvalidArgument, fmt.Sprintf("margin takes 1 to 4 values, got %d.", len(values)), context)
		return l
	}
	l.marginTop, l.marginLeft = some(t), some(left)
	l.marginBottom, l.marginRight = some(b), some(r)
	return l
}

func (l *Layout) margins(name string, v float32, dst ...*opt) *Layout {
	if !l.accepting(func() string { return name + "(" + formatFloat(v) + ")" }) {
		return l
	}
	for _, d := range dst {
		*d = some(v)
	}
	return l
}

// parentFor returns the parent for a constraint expressed relative to
// it, or nil if the constraint must be dropped.
func (l *Layout) parentFor(context describer) View {
	if !l.accepting(context) {
		return nil
	}
	return l.layoutParent(context)
}

func relativeContext(method, kind string, v View) string {
	return method + "(to: " + kind + ", of: " + describe(v) + ")"
}

func describeAll(views []View) string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = describe(v)
	}
	return strings.Join(names, ", ")
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatFloats(vs []float32) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = formatFloat(v)
	}
	return strings.Join(s, ", ")
}
