// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

// Bus performs 32-bit accesses to memory-mapped registers. Every call must
// result in exactly one access of the full register width, in program order,
// and must never be merged, cached or elided.
type Bus interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, v uint32)
}

// Register is a handle to one 32-bit register of one peripheral instance.
type Register struct {
	bus  Bus
	addr uintptr
}

// Addr returns the absolute address of r.
func (r Register) Addr() uintptr { return r.addr }

// Load reads the current register value.
func (r Register) Load() uint32 { return r.bus.Load(r.addr) }

// Store writes v to the register.
func (r Register) Store(v uint32) { r.bus.Store(r.addr, v) }
