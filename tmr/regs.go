// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tmr provides access to the registers of the MAX78000 32-bit
// reconfigurable timers (User Guide, chapter 19).
//
// Instances:
//
//	TMR0  TMR0_BASE  port 0
//	TMR1  TMR1_BASE  port 1
//	TMR2  TMR2_BASE  port 2
//
// Registers:
//
//	0x000 32  CNT     Timer Counter
//	0x004 32  CMP     Timer Compare
//	0x008 32  PWM     Timer PWM
//	0x00C 32  INTFL   Timer Interrupt
//	0x010 32  CTRL0   Timer Control 0
//	0x014 32  NOLCMP  Timer Non-Overlapping Compare
//	0x018 32  CTRL1   Timer Configuration
//	0x01C 32  WKFL    Timer Wake-up Status
//
// The timer registers mix write-one fields with plain RW fields (INTFL,
// CTRL0). Writing RST_A or RST_B stores zero into the other CTRL0 fields and
// acknowledging IRQ_A or IRQ_B clears WR_DIS_A and WR_DIS_B. Code sharing a
// timer between thread mode and its interrupt handler must serialize the
// accesses itself.
package tmr

// Register offsets (User Guide Table 19-8).
const (
	CNT    uintptr = 0x000
	CMP    uintptr = 0x004
	PWM    uintptr = 0x008
	INTFL  uintptr = 0x00C
	CTRL0  uintptr = 0x010
	NOLCMP uintptr = 0x014
	CTRL1  uintptr = 0x018
	WKFL   uintptr = 0x01C
)

// RegName returns the name of the register at offset or "" if there is no
// register there.
func RegName(offset uintptr) string {
	switch offset {
	case CNT:
		return "CNT"
	case CMP:
		return "CMP"
	case PWM:
		return "PWM"
	case INTFL:
		return "INTFL"
	case CTRL0:
		return "CTRL0"
	case NOLCMP:
		return "NOLCMP"
	case CTRL1:
		return "CTRL1"
	case WKFL:
		return "WKFL"
	}
	return ""
}
