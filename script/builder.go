// SPDX-License-Identifier: Unlicense OR MIT

package script

import (
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"gioui.org/pin"
	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
	"gioui.org/pin/unit"
)

// builder is the JS object returned by pin. Every method except apply
// returns the builder itself.
type builder struct {
	e   *Engine
	obj *goja.Object
}

func (e *Engine) builder(l *pin.Layout) *goja.Object {
	b := &builder{e: e, obj: e.vm.NewObject()}

	b.length("top", l.Top, l.TopPercent)
	b.length("left", l.Left, l.LeftPercent)
	b.length("bottom", l.Bottom, l.BottomPercent)
	b.length("right", l.Right, l.RightPercent)
	b.length("width", l.Width, l.WidthPercent)
	b.length("height", l.Height, l.HeightPercent)
	b.center("hCenter", l.HCenter, l.HCenterPercent, l.HCentered)
	b.center("vCenter", l.VCenter, l.VCenterPercent, l.VCentered)

	b.method("topTo", func(call goja.FunctionCall) { l.TopTo(pin.VEdgeOf(b.view(call, 0), b.vedge(call, 1))) })
	b.method("bottomTo", func(call goja.FunctionCall) { l.BottomTo(pin.VEdgeOf(b.view(call, 0), b.vedge(call, 1))) })
	b.method("leftTo", func(call goja.FunctionCall) { l.LeftTo(pin.HEdgeOf(b.view(call, 0), b.hedge(call, 1))) })
	b.method("rightTo", func(call goja.FunctionCall) { l.RightTo(pin.HEdgeOf(b.view(call, 0), b.hedge(call, 1))) })

	corners := []struct {
		c      pin.Corner
		parent func() *pin.Layout
		to     func(pin.Anchor) *pin.Layout
	}{
		{pin.TopLeft, l.TopLeft, l.TopLeftTo},
		{pin.TopCenter, l.TopCenter, l.TopCenterTo},
		{pin.TopRight, l.TopRight, l.TopRightTo},
		{pin.LeftCenter, l.LeftCenter, l.LeftCenterTo},
		{pin.Center, l.Center, l.CenterTo},
		{pin.RightCenter, l.RightCenter, l.RightCenterTo},
		{pin.BottomLeft, l.BottomLeft, l.BottomLeftTo},
		{pin.BottomCenter, l.BottomCenter, l.BottomCenterTo},
		{pin.BottomRight, l.BottomRight, l.BottomRightTo},
	}
	for _, c := range corners {
		b.method(c.c.String(), func(goja.FunctionCall) { c.parent() })
		b.method(c.c.String()+"To", func(call goja.FunctionCall) {
			c.to(pin.AnchorOf(b.view(call, 0), b.corner(call, 1)))
		})
	}

	groups := []struct {
		name    string
		plain   func(...pin.View) *pin.Layout
		aligned func(layout.Alignment, ...pin.View) *pin.Layout
	}{
		{"above", l.Above, l.AboveAligned},
		{"below", l.Below, l.BelowAligned},
		{"leftOf", l.LeftOf, l.LeftOfAligned},
		{"rightOf", l.RightOf, l.RightOfAligned},
	}
	for _, g := range groups {
		b.method(g.name, func(call goja.FunctionCall) { g.plain(b.views(call, 0)...) })
		b.method(g.name+"Aligned", func(call goja.FunctionCall) {
			g.aligned(b.alignment(call, 0), b.views(call, 1)...)
		})
	}

	b.method("size", func(call goja.FunctionCall) {
		if len(call.Arguments) == 1 {
			if p, ok := b.percent(call.Argument(0)); ok {
				l.SizePercent(p)
				return
			}
		}
		l.Size(f32.Pt(b.number(call, 0), b.number(call, 1)))
	})
	b.method("sizeSquare", func(call goja.FunctionCall) { l.SizeSquare(b.number(call, 0)) })
	b.method("widthOf", func(call goja.FunctionCall) { l.WidthOf(b.view(call, 0)) })
	b.method("heightOf", func(call goja.FunctionCall) { l.HeightOf(b.view(call, 0)) })
	b.method("sizeOf", func(call goja.FunctionCall) { l.SizeOf(b.view(call, 0)) })
	b.method("sizeToFit", func(goja.FunctionCall) { l.SizeToFit() })
	b.method("pinEdges", func(goja.FunctionCall) { l.PinEdges() })

	b.method("margin", func(call goja.FunctionCall) {
		values := make([]float32, len(call.Arguments))
		for i := range values {
			values[i] = b.number(call, i)
		}
		l.Margin(values...)
	})
	margins := map[string]func(float32) *pin.Layout{
		"marginTop":        l.MarginTop,
		"marginLeft":       l.MarginLeft,
		"marginBottom":     l.MarginBottom,
		"marginRight":      l.MarginRight,
		"marginHorizontal": l.MarginHorizontal,
		"marginVertical":   l.MarginVertical,
	}
	for name, set := range margins {
		b.method(name, func(call goja.FunctionCall) { set(b.number(call, 0)) })
	}

	b.obj.Set("apply", func(goja.FunctionCall) goja.Value {
		if e.open == l {
			e.open = nil
		}
		return e.frame(l.Apply())
	})
	return b.obj
}

func (b *builder) method(name string, fn func(call goja.FunctionCall)) {
	b.obj.Set(name, func(call goja.FunctionCall) goja.Value {
		fn(call)
		return b.obj
	})
}

// length binds a method taking a dp number or a percentage.
func (b *builder) length(name string, dp func(float32) *pin.Layout, pct func(unit.Percent) *pin.Layout) {
	b.method(name, func(call goja.FunctionCall) {
		if p, ok := b.percent(call.Argument(0)); ok {
			pct(p)
			return
		}
		dp(b.number(call, 0))
	})
}

// center is like length, but centers in the parent without argument.
func (b *builder) center(name string, dp func(float32) *pin.Layout, pct func(unit.Percent) *pin.Layout, centered func() *pin.Layout) {
	b.method(name, func(call goja.FunctionCall) {
		v := call.Argument(0)
		if goja.IsUndefined(v) {
			centered()
			return
		}
		if p, ok := b.percent(v); ok {
			pct(p)
			return
		}
		dp(b.number(call, 0))
	})
}

// percent parses strings like "25%".
func (b *builder) percent(v goja.Value) (unit.Percent, bool) {
	s, ok := v.Export().(string)
	if !ok {
		return 0, false
	}
	num, ok := strings.CutSuffix(strings.TrimSpace(s), "%")
	if !ok {
		panic(b.e.vm.NewTypeError("invalid length %q", s))
	}
	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		panic(b.e.vm.NewTypeError("invalid percentage %q", s))
	}
	return unit.Percent(f), true
}

func (b *builder) number(call goja.FunctionCall, i int) float32 {
	v := call.Argument(i)
	if goja.IsUndefined(v) {
		panic(b.e.vm.NewTypeError("argument %d is missing", i+1))
	}
	return float32(v.ToFloat())
}

func (b *builder) view(call goja.FunctionCall, i int) pin.View {
	return b.e.node(call.Argument(i).String())
}

// views returns the nodes named by the arguments from i on.
func (b *builder) views(call goja.FunctionCall, i int) []pin.View {
	var vs []pin.View
	for ; i < len(call.Arguments); i++ {
		vs = append(vs, b.view(call, i))
	}
	return vs
}

func (b *builder) corner(call goja.FunctionCall, i int) pin.Corner {
	name := call.Argument(i).String()
	for c := pin.TopLeft; c <= pin.BottomRight; c++ {
		if c.String() == name {
			return c
		}
	}
	panic(b.e.vm.NewTypeError("unknown corner %q", name))
}

func (b *builder) hedge(call goja.FunctionCall, i int) pin.HEdgeKind {
	name := call.Argument(i).String()
	for k := pin.LeftEdge; k <= pin.RightEdge; k++ {
		if k.String() == name {
			return k
		}
	}
	panic(b.e.vm.NewTypeError("unknown horizontal edge %q", name))
}

func (b *builder) vedge(call goja.FunctionCall, i int) pin.VEdgeKind {
	name := call.Argument(i).String()
	for k := pin.TopEdge; k <= pin.BottomEdge; k++ {
		if k.String() == name {
			return k
		}
	}
	panic(b.e.vm.NewTypeError("unknown vertical edge %q", name))
}

func (b *builder) alignment(call goja.FunctionCall, i int) layout.Alignment {
	switch name := call.Argument(i).String(); name {
	case "start", "left", "top":
		return layout.Start
	case "center", "middle":
		return layout.Middle
	case "end", "right", "bottom":
		return layout.End
	default:
		panic(b.e.vm.NewTypeError("unknown alignment %q", name))
	}
}
