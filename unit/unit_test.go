// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/pin/f32"
	"gioui.org/pin/unit"
)

func TestMetric_DpToPx(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}

	{
		exp := float32(10)
		got := m.Dp(5)
		if got != exp {
			t.Errorf("Dp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := float32(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestMetricZeroValue(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(3); got != 3 {
		t.Errorf("zero metric Dp(3) = %v, want 3", got)
	}
	if got := m.Align(3.4); got != 3 {
		t.Errorf("zero metric Align(3.4) = %v, want 3", got)
	}
}

func TestMetricSnap(t *testing.T) {
	tests := []struct {
		name   string
		metric unit.Metric
		in     f32.Rectangle
		want   f32.Rectangle
	}{
		{"aligned", unit.Metric{PxPerDp: 1}, f32.Rect(1, 2, 3, 4), f32.Rect(1, 2, 3, 4)},
		{"round 1x", unit.Metric{PxPerDp: 1}, f32.Rect(0.4, 0.6, 10.2, 10.2), f32.Rect(0, 1, 11, 10)},
		{"half pixels 2x", unit.Metric{PxPerDp: 2}, f32.Rect(0.5, 0.25, 10.5, 10), f32.Rect(0.5, 0.5, 10.5, 10)},
		{"thirds 3x", unit.Metric{PxPerDp: 3}, f32.Rect(0, 0, 1.0/3, 2), f32.Rect(0, 0, 1.0/3, 2)},
	}
	for _, tt := range tests {
		got := tt.metric.Snap(tt.in)
		if got != tt.want {
			t.Errorf("%s: Snap(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := unit.Percent(25).Of(200); got != 50 {
		t.Errorf("25%% of 200 = %v, want 50", got)
	}
	if got := unit.Percent(12.5).String(); got != "12.5%" {
		t.Errorf("String() = %q, want %q", got, "12.5%")
	}
}
