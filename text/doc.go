// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures strings for elements that size themselves to
their content.

A Measurer shapes text with HarfBuzz, wraps it at Unicode line break
opportunities to a maximum width and reports the resulting size in dp. Its Fit method adapts a string to the
preferred size function of a scene node:

	m, err := text.NewMeasurer(nil, 14)
	...
	label.Fit = m.Fit("Hello, Gopher")
*/
package text
