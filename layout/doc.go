// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout defines the bounding boxes elements are measured
against and the alignments used when an element is placed next to a
group of other elements.

# Constraints

A Constraints value is passed to an element when its preferred size is
queried. Each axis is either bounded by Max or Unbounded:

	cs := layout.Bounded(100, true, 0, false)
	// cs.Max.X == 100, cs.Max.Y == layout.Unbounded

# Alignment

Start, Middle and End select the left, center and right edges of a
group horizontally, or its top, center and bottom edges vertically.
*/
package layout
