// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The pinplay command lays out a scene with a pin layout script.

Usage:

	pinplay -scene <scene.yaml> [-script <layout.js>] [flags]

The scene is a YAML tree of named nodes:

	name: root
	frame: [0, 0, 320, 480]
	children:
	  - name: title
	    text: Hello, pin
	  - name: list
	    frame: [0, 0, 100, 100]
	    scale: 2

Frames are x, y, width and height in dp, relative to the parent. Nodes
with text prefer the size of their text, wrapped to the width they are
given, and start at the unwrapped size of their text when they have no
frame. A scale transforms the content of a node, so children of the
list above are drawn twice as large.

The script positions nodes by name:

	pin("title").topCenter().marginTop(16).width("80%").height(100).sizeToFit();
	pin("list").belowAligned("center", "title").bottom(0).width("80%");

pinplay prints the frame of every node after the script has run. Dropped
constraints are reported on standard error.

The -png flag renders the laid out scene to a PNG file.

The -scale flag sets the number of pixels per dp. Frames are snapped to
whole pixels.

The -fontsize flag sets the size of text in dp. The default is 14.

The -font flag selects one of the Go fonts for text: regular, italic,
bold, bold-italic, medium, medium-italic, mono, mono-bold,
mono-bold-italic, mono-italic, smallcaps or smallcaps-italic.

The -strict flag makes pinplay fail if a constraint was dropped.
`
