// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides the Go fonts by name, for measuring text with
// a typeface other than the default regular one.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Face is the font data of one Go font variant.
type Face struct {
	Name string
	TTF  []byte
}

var (
	once       sync.Once
	collection []Face
)

// Collection returns all Go font faces, starting with "regular".
func Collection() []Face {
	once.Do(func() {
		register("regular", goregular.TTF)
		register("italic", goitalic.TTF)
		register("bold", gobold.TTF)
		register("bold-italic", gobolditalic.TTF)
		register("medium", gomedium.TTF)
		register("medium-italic", gomediumitalic.TTF)
		register("mono", gomono.TTF)
		register("mono-bold", gomonobold.TTF)
		register("mono-bold-italic", gomonobolditalic.TTF)
		register("mono-italic", gomonoitalic.TTF)
		register("smallcaps", gosmallcaps.TTF)
		register("smallcaps-italic", gosmallcapsitalic.TTF)
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

// Lookup returns the font data of the named face.
func Lookup(name string) ([]byte, error) {
	for _, f := range Collection() {
		if f.Name == name {
			return f.TTF, nil
		}
	}
	return nil, fmt.Errorf("gofont: unknown face %q", name)
}

func register(name string, ttf []byte) {
	collection = append(collection, Face{Name: name, TTF: ttf})
}
