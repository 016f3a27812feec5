// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmr

import (
	"github.com/embeddedgo/max78000/mmap"
	"github.com/embeddedgo/max78000/mmio"
	"github.com/embeddedgo/max78000/reg"
)

// NumPorts is the number of timer instances.
const NumPorts = 3

// Bases lists the timer base addresses in port order.
var Bases = [NumPorts]uintptr{mmap.TMR0_BASE, mmap.TMR1_BASE, mmap.TMR2_BASE}

// Layout is the register map shared by all timer instances.
var Layout = reg.MustLayout(
	"TMR",
	Count, Compare, Match,
	IRQ_A, WRDONE_A, WR_DIS_A, IRQ_B, WR_DIS_B, WRDONE_B,
	MODE_A, CLKDIV_A, POL_A, PWMSYNC_A, NOLHPOL_A, NOLLPOL_A, PWMCKBD_A,
	RST_A, CLKEN_A, EN_A, MODE_B, CLKDIV_B, RST_B, CLKEN_B, EN_B,
	LO_A, HI_A, LO_B, HI_B,
	CLKSEL_A, CLKENA_A, CLKRDY_A, EVENT_SEL_A, NEGTRIG_A, IE_A,
	CAPEVENT_SEL_A, SW_CAPEVENT_A, WE_A, OUTEN_A, OUTBEN_A,
	CLKSEL_B, CLKEN_B_STAT, CLKRDY_B, EVENT_SEL_B, NEGTRIG_B, IE_B,
	CAPEVENT_SEL_B, SW_CAPEVENT_B, WE_B, CASCADE,
	WKFL_A, WKFL_B,
)

// New returns the timer device with its three ports at the standard base
// addresses, accessed through bus.
func New(bus reg.Bus) *reg.Device {
	d, err := reg.NewDevice(Layout, bus, Bases[:]...)
	if err != nil {
		panic(err)
	}
	return d
}

// NewAt is like New but takes the base addresses from the caller, e.g. from
// an mmap.Map.
func NewAt(bus reg.Bus, bases ...uintptr) (*reg.Device, error) {
	return reg.NewDevice(Layout, bus, bases...)
}

// Hardware returns the timer device of the running MCU.
func Hardware() *reg.Device { return New(mmio.Bus{}) }
