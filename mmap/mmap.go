// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmap provides base memory adresses of the peripherals handled by
// this module.
package mmap

// Timers
const (
	TMR0_BASE uintptr = 0x40010000 // 32-bit reconfigurable timer 0
	TMR1_BASE uintptr = 0x40011000 // 32-bit reconfigurable timer 1
	TMR2_BASE uintptr = 0x40012000 // 32-bit reconfigurable timer 2
)
