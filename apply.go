// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
)

// compute resolves the accumulated constraints into a frame. Components
// no constraint determines are taken from the view's current frame.
func (l *Layout) compute() f32.Rectangle {
	cur := l.view.Frame()
	x, y := cur.Min.X, cur.Min.Y
	w, h := cur.Dx(), cur.Dy()

	l.handlePinEdges()
	width, height := l.computeSize()

	mTop, mLeft := l.marginTop.or(0), l.marginLeft.or(0)
	mBottom, mRight := l.marginBottom.or(0), l.marginRight.or(0)

	switch {
	case l.left.ok && width.ok:
		x = l.left.v + mLeft
		w = width.v
	case l.left.ok && l.right.ok:
		x = l.left.v + mLeft
		w = l.right.v - mRight - x
	case l.right.ok && width.ok:
		w = width.v
		x = l.right.v - mRight - w
	case l.hCenter.ok && width.ok:
		w = width.v
		x = l.hCenter.v - w/2 + mLeft
	case l.left.ok:
		x = l.left.v + mLeft
	case l.right.ok:
		x = l.right.v - cur.Dx() - mRight
	case l.hCenter.ok:
		x = l.hCenter.v - cur.Dx()/2
	case width.ok:
		w = width.v
	}

	switch {
	case l.top.ok && height.ok:
		y = l.top.v + mTop
		h = height.v
	case l.top.ok && l.bottom.ok:
		y = l.top.v + mTop
		h = l.bottom.v - mBottom - y
	case l.bottom.ok && height.ok:
		h = height.v
		y = l.bottom.v - mBottom - h
	case l.vCenter.ok && height.ok:
		h = height.v
		y = l.vCenter.v - h/2 + mTop
	case l.top.ok:
		y = l.top.v + mTop
	case l.bottom.ok:
		y = l.bottom.v - cur.Dy() - mBottom
	case l.vCenter.ok:
		y = l.vCenter.v - cur.Dy()/2
	case height.ok:
		h = height.v
	}

	return f32.Rect(x, y, w, h)
}

// handlePinEdges turns a size anchored on one side into a pair of
// edges, so that both edges stay where they are regardless of the
// content size.
func (l *Layout) handlePinEdges() {
	if !l.pinEdges {
		return
	}

	if l.width.ok {
		w := l.width.v
		switch {
		case l.left.ok:
			mustUnset(l.right, "right")
			l.right = some(l.left.v + w)
			l.width = opt{}
		case l.right.ok:
			mustUnset(l.left, "left")
			l.left = some(l.right.v - w)
			l.width = opt{}
		case l.hCenter.ok:
			mustUnset(l.left, "left")
			mustUnset(l.right, "right")
			l.left = some(l.hCenter.v - w/2)
			l.right = some(l.hCenter.v + w/2)
			l.hCenter = opt{}
			l.width = opt{}
		}
	}

	if l.height.ok {
		h := l.height.v
		switch {
		case l.top.ok:
			mustUnset(l.bottom, "bottom")
			l.bottom = some(l.top.v + h)
			l.height = opt{}
		case l.bottom.ok:
			mustUnset(l.top, "top")
			l.top = some(l.bottom.v - h)
			l.height = opt{}
		case l.vCenter.ok:
			mustUnset(l.top, "top")
			mustUnset(l.bottom, "bottom")
			l.top = some(l.vCenter.v - h/2)
			l.bottom = some(l.vCenter.v + h/2)
			l.vCenter = opt{}
			l.height = opt{}
		}
	}
}

// mustUnset panics if o is set. The setters never let a size coexist
// with both edges of its axis, so pinning always has a free target.
func mustUnset(o opt, name string) {
	if o.ok {
		panic("pin: " + name + " is already set while pinning edges")
	}
}

// computeSize derives the width and height from the edges or explicit
// sizes and, if requested, reconciles them with the content size.
// Margins may be adjusted to keep the content against its anchor.
func (l *Layout) computeSize() (width, height opt) {
	width, height = l.computeWidth(), l.computeHeight()
	if !l.sizeToFit || (!width.ok && !height.ok) {
		return width, height
	}

	cs := layout.Bounded(width.v, width.ok, height.v, height.ok)
	fit := l.view.SizeThatFits(cs)

	if width.ok && width.v != fit.X {
		delta := width.v - fit.X
		switch {
		case l.left.ok:
			l.marginRight = some(l.marginRight.or(0) + delta)
		case l.right.ok:
			l.marginLeft = some(l.marginLeft.or(0) + delta)
		}
	}
	if height.ok && height.v != fit.Y {
		delta := height.v - fit.Y
		switch {
		case l.top.ok:
			l.marginBottom = some(l.marginBottom.or(0) + delta)
		case l.bottom.ok:
			l.marginTop = some(l.marginTop.or(0) + delta)
		}
	}

	return some(cs.Constrain(fit).X), some(cs.Constrain(fit).Y)
}

func (l *Layout) computeWidth() opt {
	switch {
	case l.left.ok && l.right.ok:
		return some(l.right.v - l.left.v - l.marginLeft.or(0) - l.marginRight.or(0))
	case l.width.ok:
		return l.width
	default:
		return opt{}
	}
}

func (l *Layout) computeHeight() opt {
	switch {
	case l.top.ok && l.bottom.ok:
		return some(l.bottom.v - l.top.v - l.marginTop.or(0) - l.marginBottom.or(0))
	case l.height.ok:
		return l.height
	default:
		return opt{}
	}
}
