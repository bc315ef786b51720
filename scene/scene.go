// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene is an in-memory element tree implementing the pin View
and Host interfaces.

Each Node has a frame in the content space of its parent. A node's
content space is offset by its frame origin and further transformed by
its Transform, which lets tests and tools model scrolled or scaled
containers.
*/
package scene

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"gioui.org/pin"
	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
	"gioui.org/pin/unit"
)

// Node is an element of the tree.
type Node struct {
	Name string
	// Text is the label of the node, if any.
	Text string
	// Transform maps the node's content space to its frame space,
	// after the offset of the frame origin.
	Transform f32.Affine2D
	// Fit returns the preferred size of the node's content. If nil,
	// the current frame size is preferred.
	Fit func(cs layout.Constraints) f32.Point

	frame    f32.Rectangle
	parent   *Node
	children []*Node
}

// Host converts between node content spaces and snaps frames with
// Metric.
type Host struct {
	Metric unit.Metric
}

var (
	_ pin.View = (*Node)(nil)
	_ pin.Host = Host{}
)

// NewNode returns a detached node with the given frame.
func NewNode(name string, frame f32.Rectangle) *Node {
	return &Node{Name: name, frame: frame}
}

// Add appends children to n, detaching them from their current parent
// first. It returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// Children returns the children of n in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Find returns the first node named name in the tree rooted at n.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk calls fn for n and its descendants in depth first order.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int), depth int) {
	fn(n, depth)
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Parent implements pin.View.
func (n *Node) Parent() pin.View {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Frame implements pin.View.
func (n *Node) Frame() f32.Rectangle {
	return n.frame
}

// SetFrame implements pin.View.
func (n *Node) SetFrame(r f32.Rectangle) {
	n.frame = r
}

// SizeThatFits implements pin.View.
func (n *Node) SizeThatFits(cs layout.Constraints) f32.Point {
	if n.Fit == nil {
		return n.frame.Size()
	}
	return n.Fit(cs)
}

func (n *Node) String() string {
	return n.Name
}

// contentToRoot returns the transform from the content space of n to
// the frame space of the root of its tree.
func (n *Node) contentToRoot() f32.Affine2D {
	t := n.Transform
	t = f32.Affine2D{}.Offset(n.frame.Min).Mul(t)
	if n.parent != nil {
		t = n.parent.contentToRoot().Mul(t)
	}
	return t
}

// Convert implements pin.Host. Views that are not Nodes are assumed to
// share a coordinate space.
func (h Host) Convert(p f32.Point, from, to pin.View) f32.Point {
	src, ok1 := from.(*Node)
	dst, ok2 := to.(*Node)
	if !ok1 || !ok2 {
		return p
	}
	return dst.contentToRoot().Invert().Mul(src.contentToRoot()).Transform(p)
}

// Snap implements pin.Host.
func (h Host) Snap(r f32.Rectangle) f32.Rectangle {
	return h.Metric.Snap(r)
}

// Dump writes the tree rooted at n with one line per node.
func Dump(w io.Writer, n *Node) error {
	var err error
	n.Walk(func(n *Node, depth int) {
		if err != nil {
			return
		}
		f := n.frame
		_, err = fmt.Fprintf(w, "%s%s x=%g y=%g w=%g h=%g\n",
			strings.Repeat("  ", depth), n.Name, f.Min.X, f.Min.Y, f.Dx(), f.Dy())
	})
	return err
}
