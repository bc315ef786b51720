// SPDX-License-Identifier: Unlicense OR MIT

package pin

// Props is a snapshot of the properties of a Layout. Unset properties
// are nil.
type Props struct {
	Top, Left, Bottom, Right *float32
	HCenter, VCenter         *float32
	Width, Height            *float32

	MarginTop, MarginLeft, MarginBottom, MarginRight *float32
}

func (l *Layout) Props() Props {
	return Props{
		Top: l.top.ptr(), Left: l.left.ptr(), Bottom: l.bottom.ptr(), Right: l.right.ptr(),
		HCenter: l.hCenter.ptr(), VCenter: l.vCenter.ptr(),
		Width: l.width.ptr(), Height: l.height.ptr(),
		MarginTop: l.marginTop.ptr(), MarginLeft: l.marginLeft.ptr(),
		MarginBottom: l.marginBottom.ptr(), MarginRight: l.marginRight.ptr(),
	}
}

// Compute runs the frame computation without committing the frame.
func (l *Layout) Compute() (x, y, w, h float32) {
	r := l.compute()
	return r.Min.X, r.Min.Y, r.Dx(), r.Dy()
}

func (o opt) ptr() *float32 {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

var (
	TopMost    = topMost
	BottomMost = bottomMost
	LeftMost   = leftMost
	RightMost  = rightMost
	AverageX   = averageX
	AverageY   = averageY
)
