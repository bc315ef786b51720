// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func eq(p1, p2 Point) bool {
	tol := 1e-5
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestTransformOffset(t *testing.T) {
	p := Point{X: 1, Y: 2}
	o := Point{X: 2, Y: -3}

	r := Affine2D{}.Offset(o).Transform(p)
	if !eq(r, Pt(3, -1)) {
		t.Errorf("offset transformation mismatch: have %v, want {3 -1}", r)
	}
	i := Affine2D{}.Offset(o).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("offset transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformScale(t *testing.T) {
	p := Point{X: 1, Y: 2}
	s := Point{X: -1, Y: 2}

	r := Affine2D{}.Scale(Point{}, s).Transform(p)
	if !eq(r, Pt(-1, 4)) {
		t.Errorf("scale transformation mismatch: have %v, want {-1 4}", r)
	}
	i := Affine2D{}.Scale(Point{}, s).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("scale transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformScaleAround(t *testing.T) {
	p := Point{X: 3, Y: 3}
	r := Affine2D{}.Scale(Pt(1, 1), Pt(2, 2)).Transform(p)
	if !eq(r, Pt(5, 5)) {
		t.Errorf("scale around origin mismatch: have %v, want {5 5}", r)
	}
}

func TestTransformMultiply(t *testing.T) {
	p := Point{X: 1, Y: 2}
	offset := Affine2D{}.Offset(Pt(10, 20))
	scale := Affine2D{}.Scale(Point{}, Pt(2, 2))

	// Scale first, then offset.
	r := offset.Mul(scale).Transform(p)
	if !eq(r, Pt(12, 24)) {
		t.Errorf("multiply mismatch: have %v, want {12 24}", r)
	}
	i := offset.Mul(scale).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("multiply inverse mismatch: have %v, want %v", i, p)
	}
}

func TestElems(t *testing.T) {
	a := NewAffine2D(2, 0, 5, 0, 3, 7)
	sx, hx, ox, hy, sy, oy := a.Elems()
	if sx != 2 || hx != 0 || ox != 5 || hy != 0 || sy != 3 || oy != 7 {
		t.Errorf("elems mismatch: have %v", a)
	}
	if got := a.Transform(Pt(1, 1)); !eq(got, Pt(7, 10)) {
		t.Errorf("transform mismatch: have %v, want {7 10}", got)
	}
}

func TestRectangle(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	if r.Dx() != 30 || r.Dy() != 40 {
		t.Errorf("size mismatch: have %v", r.Size())
	}
	if c := r.Center(); c != Pt(25, 40) {
		t.Errorf("center mismatch: have %v, want (25,40)", c)
	}
	if got := r.WithOrigin(Pt(0, 0)); got != Rect(0, 0, 30, 40) {
		t.Errorf("WithOrigin mismatch: have %v", got)
	}
	if got := r.WithSize(Pt(1, 2)); got != Rect(10, 20, 1, 2) {
		t.Errorf("WithSize mismatch: have %v", got)
	}
	if got := Rect(0, 0, 10, 10).Union(Rect(5, 5, 10, 10)); got != Rect(0, 0, 15, 15) {
		t.Errorf("Union mismatch: have %v", got)
	}
}
