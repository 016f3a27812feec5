// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"fmt"
	"strings"
)

// Mode describes how the hardware reacts to writes to a bit field.
type Mode uint8

const (
	RW   Mode = iota // plain read/write
	RO               // read-only, writes are rejected
	RW1C             // writing 1 clears the bit, writing 0 has no effect
	RW1O             // writing 1 triggers an action the hardware clears itself
)

var modeNames = [...]string{
	RW:   "RW",
	RO:   "RO",
	RW1C: "RW1C",
	RW1O: "RW1O",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Writable reports whether a write to a field of mode m can reach the
// hardware.
func (m Mode) Writable() bool { return m != RO }

// writeOne reports whether m uses the zero-elsewhere write protocol.
func (m Mode) writeOne() bool { return m == RW1C || m == RW1O }

// ParseMode parses the mode names used in register listings. It is case
// insensitive.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("reg: unknown access mode %q", s)
}
