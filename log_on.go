// SPDX-License-Identifier: Unlicense OR MIT

//go:build !pinrelease
// +build !pinrelease

package pin

import (
	"log"
	"os"
)

func defaultSink() Sink {
	return LogSink(log.New(os.Stderr, "", log.LstdFlags))
}
