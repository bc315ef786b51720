// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pin positions a single element from edge, anchor and size
constraints expressed relative to its parent or to other elements.

A Layout accumulates constraints for one element during one layout
pass and commits a frame when it is applied:

	pin.New(host, title).Top(10).Left(10).Right(10).Height(40).Apply()

	pin.Do(host, avatar, func(l *pin.Layout) {
		l.Below(title).Left(10).Size(f32.Pt(64, 64)).MarginTop(8)
	})

Constraints that contradict the ones already set are dropped and
reported to the Layout's Sink. They never abort the pass: a mistake in a
layout rule shows up as a diagnostic, not as a crash.

The element tree is supplied by the caller through the View and Host
interfaces. Package scene provides an in-memory implementation.
*/
package pin
