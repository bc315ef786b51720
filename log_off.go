// SPDX-License-Identifier: Unlicense OR MIT

//go:build pinrelease
// +build pinrelease

package pin

func defaultSink() Sink {
	return Discard
}
