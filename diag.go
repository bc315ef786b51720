// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"fmt"
	"log"
	"strings"
)

// Kind classifies a dropped constraint.
type Kind uint8

const (
	// ValueConflict reports a constraint on an axis that other
	// constraints already determine.
	ValueConflict Kind = iota
	// AlreadySet reports a property set twice with different values.
	AlreadySet
	// InvalidMagnitude reports a negative width or height.
	InvalidMagnitude
	// DetachedElement reports an element or reference without parent.
	DetachedElement
	// EmptyReferenceGroup reports a relative constraint with no usable
	// reference.
	EmptyReferenceGroup
	// InvalidArgument reports a malformed argument list.
	InvalidArgument
	// AlreadyApplied reports a call on a finalized Layout.
	AlreadyApplied
)

// Property is a named value a dropped constraint conflicted with.
type Property struct {
	Name  string
	Value float32
}

// Diagnostic describes a constraint that was not applied.
type Diagnostic struct {
	Kind Kind
	// Context is the call that was dropped, for example "top(10)".
	Context string
	// Reason explains why, for warnings without conflicting values.
	Reason string
	// Conflicts lists the already set properties for ValueConflict and
	// AlreadySet.
	Conflicts []Property
}

// A Sink receives the diagnostics of a Layout.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

// Discard is a Sink that drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Recorder is a Sink that keeps every diagnostic it receives.
type Recorder struct {
	Diagnostics []Diagnostic
}

type logSink struct {
	l *log.Logger
}

func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

// LogSink returns a Sink printing diagnostics to l.
func LogSink(l *log.Logger) Sink {
	return logSink{l: l}
}

func (s logSink) Report(d Diagnostic) {
	s.l.Print(d.Error())
}

// Report implements Sink.
func (r *Recorder) Report(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Last returns the most recent diagnostic.
func (r *Recorder) Last() (Diagnostic, bool) {
	if len(r.Diagnostics) == 0 {
		return Diagnostic{}, false
	}
	return r.Diagnostics[len(r.Diagnostics)-1], true
}

// Reset forgets all recorded diagnostics.
func (r *Recorder) Reset() {
	r.Diagnostics = r.Diagnostics[:0]
}

func (d Diagnostic) Error() string {
	var b strings.Builder
	switch d.Kind {
	case ValueConflict:
		fmt.Fprintf(&b, "pin conflict: %s won't be applied since it conflicts with the following already set properties:", d.Context)
		for i, p := range d.Conflicts {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, " %s: %g", p.Name, p.Value)
		}
	case AlreadySet:
		fmt.Fprintf(&b, "pin conflict: %s won't be applied since its value has already been set to ", d.Context)
		for i, p := range d.Conflicts {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", p.Value)
		}
	default:
		fmt.Fprintf(&b, "pin warning: %s won't be applied, %s", d.Context, d.Reason)
	}
	return b.String()
}

func (k Kind) String() string {
	switch k {
	case ValueConflict:
		return "ValueConflict"
	case AlreadySet:
		return "AlreadySet"
	case InvalidMagnitude:
		return "InvalidMagnitude"
	case DetachedElement:
		return "DetachedElement"
	case EmptyReferenceGroup:
		return "EmptyReferenceGroup"
	case InvalidArgument:
		return "InvalidArgument"
	case AlreadyApplied:
		return "AlreadyApplied"
	default:
		panic("unreachable")
	}
}

// warn reports a dropped call. The context is only formatted when a
// diagnostic is actually emitted.
func (l *Layout) warn(kind Kind, reason string, context describer) {
	l.sink.Report(Diagnostic{Kind: kind, Context: context(), Reason: reason})
}

func (l *Layout) warnConflict(context describer, props ...Property) {
	l.sink.Report(Diagnostic{Kind: ValueConflict, Context: context(), Conflicts: props})
}

func (l *Layout) warnAlreadySet(name string, value float32, context describer) {
	l.sink.Report(Diagnostic{
		Kind:      AlreadySet,
		Context:   context(),
		Reason:    name + " is already set",
		Conflicts: []Property{{Name: name, Value: value}},
	})
}
