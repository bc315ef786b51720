// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"gioui.org/pin/f32"
)

// The set methods are the only writers of the position and size
// properties. Each one checks the properties that already determine its
// axis before writing; a rejected value leaves the Layout unchanged.

func (l *Layout) setTop(v float32, context describer) {
	switch {
	case l.bottom.ok && l.height.ok:
		l.warnConflict(context, Property{"bottom", l.bottom.v}, Property{"height", l.height.v})
	case l.vCenter.ok:
		l.warnConflict(context, Property{"vCenter", l.vCenter.v})
	case l.top.ok && l.top.v != v:
		l.warnAlreadySet("top", l.top.v, context)
	default:
		l.top = some(v)
	}
}

func (l *Layout) setLeft(v float32, context describer) {
	switch {
	case l.right.ok && l.width.ok:
		l.warnConflict(context, Property{"right", l.right.v}, Property{"width", l.width.v})
	case l.hCenter.ok:
		l.warnConflict(context, Property{"hCenter", l.hCenter.v})
	case l.left.ok && l.left.v != v:
		l.warnAlreadySet("left", l.left.v, context)
	default:
		l.left = some(v)
	}
}

func (l *Layout) setRight(v float32, context describer) {
	switch {
	case l.left.ok && l.width.ok:
		l.warnConflict(context, Property{"left", l.left.v}, Property{"width", l.width.v})
	case l.hCenter.ok:
		l.warnConflict(context, Property{"hCenter", l.hCenter.v})
	case l.right.ok && l.right.v != v:
		l.warnAlreadySet("right", l.right.v, context)
	default:
		l.right = some(v)
	}
}

func (l *Layout) setBottom(v float32, context describer) {
	switch {
	case l.top.ok && l.height.ok:
		l.warnConflict(context, Property{"top", l.top.v}, Property{"height", l.height.v})
	case l.vCenter.ok:
		l.warnConflict(context, Property{"vCenter", l.vCenter.v})
	case l.bottom.ok && l.bottom.v != v:
		l.warnAlreadySet("bottom", l.bottom.v, context)
	default:
		l.bottom = some(v)
	}
}

func (l *Layout) setHCenter(v float32, context describer) {
	switch {
	case l.left.ok:
		l.warnConflict(context, Property{"left", l.left.v})
	case l.right.ok:
		l.warnConflict(context, Property{"right", l.right.v})
	case l.hCenter.ok && l.hCenter.v != v:
		l.warnAlreadySet("hCenter", l.hCenter.v, context)
	default:
		l.hCenter = some(v)
	}
}

func (l *Layout) setVCenter(v float32, context describer) {
	switch {
	case l.top.ok:
		l.warnConflict(context, Property{"top", l.top.v})
	case l.bottom.ok:
		l.warnConflict(context, Property{"bottom", l.bottom.v})
	case l.vCenter.ok && l.vCenter.v != v:
		l.warnAlreadySet("vCenter", l.vCenter.v, context)
	default:
		l.vCenter = some(v)
	}
}

func (l *Layout) setWidth(v float32, context describer) {
	switch {
	case v < 0:
		l.warn(InvalidMagnitude, "the width ("+formatFloat(v)+") must be greater than or equal to zero.", context)
	case l.left.ok && l.right.ok:
		l.warnConflict(context, Property{"left", l.left.v}, Property{"right", l.right.v})
	case l.width.ok && l.width.v != v:
		l.warnAlreadySet("width", l.width.v, context)
	default:
		l.width = some(v)
	}
}

func (l *Layout) setHeight(v float32, context describer) {
	switch {
	case v < 0:
		l.warn(InvalidMagnitude, "the height ("+formatFloat(v)+") must be greater than or equal to zero.", context)
	case l.top.ok && l.bottom.ok:
		l.warnConflict(context, Property{"top", l.top.v}, Property{"bottom", l.bottom.v})
	case l.height.ok && l.height.v != v:
		l.warnAlreadySet("height", l.height.v, context)
	default:
		l.height = some(v)
	}
}

func (l *Layout) setSize(sz f32.Point, context describer) {
	l.setWidth(sz.X, func() string { return context() + "'s width" })
	l.setHeight(sz.Y, func() string { return context() + "'s height" })
}

// Points are split into one horizontal and one vertical property. Each
// half is checked on its own.

func (l *Layout) setTopLeft(p f32.Point, context describer) {
	l.setLeft(p.X, context)
	l.setTop(p.Y, context)
}

func (l *Layout) setTopCenter(p f32.Point, context describer) {
	l.setHCenter(p.X, context)
	l.setTop(p.Y, context)
}

func (l *Layout) setTopRight(p f32.Point, context describer) {
	l.setRight(p.X, context)
	l.setTop(p.Y, context)
}

func (l *Layout) setLeftCenter(p f32.Point, context describer) {
	l.setLeft(p.X, context)
	l.setVCenter(p.Y, context)
}

func (l *Layout) setCenter(p f32.Point, context describer) {
	l.setHCenter(p.X, context)
	l.setVCenter(p.Y, context)
}

func (l *Layout) setRightCenter(p f32.Point, context describer) {
	l.setRight(p.X, context)
	l.setVCenter(p.Y, context)
}

func (l *Layout) setBottomLeft(p f32.Point, context describer) {
	l.setLeft(p.X, context)
	l.setBottom(p.Y, context)
}

func (l *Layout) setBottomCenter(p f32.Point, context describer) {
	l.setHCenter(p.X, context)
	l.setBottom(p.Y, context)
}

func (l *Layout) setBottomRight(p f32.Point, context describer) {
	l.setRight(p.X, context)
	l.setBottom(p.Y, context)
}

// setPoint dispatches a point to the composite setter of a corner.
func (l *Layout) setPoint(c Corner, p f32.Point, context describer) {
	switch c {
	case TopLeft:
		l.setTopLeft(p, context)
	case TopCenter:
		l.setTopCenter(p, context)
	case TopRight:
		l.setTopRight(p, context)
	case LeftCenter:
		l.setLeftCenter(p, context)
	case Center:
		l.setCenter(p, context)
	case RightCenter:
		l.setRightCenter(p, context)
	case BottomLeft:
		l.setBottomLeft(p, context)
	case BottomCenter:
		l.setBottomCenter(p, context)
	case BottomRight:
		l.setBottomRight(p, context)
	default:
		panic("unreachable")
	}
}
