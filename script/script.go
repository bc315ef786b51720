// SPDX-License-Identifier: Unlicense OR MIT

/*
Package script runs JavaScript layout scripts over a scene tree.

A script lays out nodes by name with the global pin function, which
starts a session and returns a chainable builder mirroring pin.Layout:

	pin("title").topCenter().size(200, 40).marginTop(10);
	pin("body").belowAligned("center", "title").width("80%").bottom(10);
	pin("badge").topRightTo("body", "topRight").sizeSquare(16);

Distances are numbers in dp or percentages of the parent written as
strings, "50%". Corners and edges are named as pin prints them
(topLeft, bottomCenter, hCenter...). A session is applied by apply(),
when the next pin call starts another session, or when the script
ends. The global view function returns the current frame of a node as
{x, y, width, height}, and console.log prints to the engine's output.
*/
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dop251/goja"

	"gioui.org/pin"
	"gioui.org/pin/f32"
	"gioui.org/pin/scene"
)

// Engine evaluates layout scripts against a tree.
type Engine struct {
	vm   *goja.Runtime
	root *scene.Node
	host scene.Host
	opts []pin.Option
	out  io.Writer

	// open is the session of the last pin call, applied when the next
	// one starts.
	open *pin.Layout
}

// Option configures an Engine.
type Option func(e *Engine)

// WithLayoutOptions passes opts to every session the engine starts.
func WithLayoutOptions(opts ...pin.Option) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, opts...)
	}
}

// WithOutput directs console.log to w. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// New returns an Engine laying out the nodes of the tree rooted at root.
func New(root *scene.Node, h scene.Host, opts ...Option) *Engine {
	e := &Engine{
		vm:   goja.New(),
		root: root,
		host: h,
		out:  os.Stdout,
	}
	for _, o := range opts {
		o(e)
	}
	e.vm.Set("pin", e.pin)
	e.vm.Set("view", e.view)
	console := e.vm.NewObject()
	console.Set("log", e.log)
	e.vm.Set("console", console)
	return e
}

// Run evaluates src. The name is used in error positions. Open sessions
// are applied even if the script fails.
func (e *Engine) Run(name, src string) error {
	_, err := e.vm.RunScript(name, src)
	e.flush()
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (e *Engine) flush() {
	if e.open != nil {
		e.open.Apply()
		e.open = nil
	}
}

func (e *Engine) node(name string) *scene.Node {
	n := e.root.Find(name)
	if n == nil {
		panic(e.vm.NewTypeError("unknown view %q", name))
	}
	return n
}

func (e *Engine) pin(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) == 0 {
		panic(e.vm.NewTypeError("pin: 1 argument required"))
	}
	n := e.node(call.Argument(0).String())
	e.flush()
	l := pin.New(e.host, n, e.opts...)
	e.open = l
	return e.builder(l)
}

func (e *Engine) view(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) == 0 {
		panic(e.vm.NewTypeError("view: 1 argument required"))
	}
	return e.frame(e.node(call.Argument(0).String()).Frame())
}

func (e *Engine) frame(r f32.Rectangle) goja.Value {
	o := e.vm.NewObject()
	o.Set("x", r.Min.X)
	o.Set("y", r.Min.Y)
	o.Set("width", r.Dx())
	o.Set("height", r.Dy())
	return o
}

func (e *Engine) log(call goja.FunctionCall) goja.Value {
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = arg.String()
	}
	fmt.Fprintln(e.out, strings.Join(parts, " "))
	return goja.Undefined()
}
