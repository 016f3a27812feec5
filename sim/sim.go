// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim simulates the register space of memory-mapped peripherals.
//
// Memory implements reg.Bus. Registers mapped from a reg.Layout behave the
// way the hardware does from the bus side: RO bits ignore writes, RW1C bits
// are cleared by writing 1, RW1O bits read as 1 after a write of 1 until the
// simulated hardware completes the action (Tick). Unmapped words are plain
// memory.
package sim

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/embeddedgo/max78000/reg"
)

// Op is the kind of a bus access.
type Op uint8

const (
	Load Op = iota
	Store
)

func (op Op) String() string {
	if op == Store {
		return "st"
	}
	return "ld"
}

// Access is one recorded bus access.
type Access struct {
	Op    Op
	Addr  uintptr
	Value uint32
}

func (a Access) String() string {
	return fmt.Sprintf("%v %#08x %#08x", a.Op, a.Addr, a.Value)
}

type cell struct {
	ro, w1c, w1o uint32
}

// Memory is a simulated register space. It is safe for concurrent use so
// tests can model interrupt handlers with goroutines.
type Memory struct {
	mu    sync.Mutex
	words map[uintptr]uint32
	cells map[uintptr]cell
	trace []Access
}

// New returns an empty register space.
func New() *Memory {
	return &Memory{
		words: make(map[uintptr]uint32),
		cells: make(map[uintptr]cell),
	}
}

// Map gives the registers of layout, replicated at every base address, the
// write semantics of their fields.
func (m *Memory) Map(layout *reg.Layout, bases ...uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, base := range bases {
		for _, f := range layout.Fields() {
			addr := base + f.Offset
			c := m.cells[addr]
			switch f.Mode {
			case reg.RO:
				c.ro |= f.Mask()
			case reg.RW1C:
				c.w1c |= f.Mask()
			case reg.RW1O:
				c.w1o |= f.Mask()
			}
			m.cells[addr] = c
			if _, ok := m.words[addr]; !ok {
				m.words[addr] = 0
			}
		}
	}
}

// Load implements reg.Bus.
func (m *Memory) Load(addr uintptr) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.words[addr]
	m.trace = append(m.trace, Access{Load, addr, v})
	return v
}

// Store implements reg.Bus.
func (m *Memory) Store(addr uintptr, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trace = append(m.trace, Access{Store, addr, v})
	c := m.cells[addr]
	old := m.words[addr]
	plain := ^(c.ro | c.w1c | c.w1o)
	w := old&^plain | v&plain // RW bits
	w &^= v & c.w1c           // write one to clear
	w |= v & c.w1o            // write one to trigger
	m.words[addr] = w
}

// Peek returns the register value without recording an access.
func (m *Memory) Peek(addr uintptr) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.words[addr]
}

// Poke sets the register value from the hardware side, e.g. to raise an
// event flag or advance a counter. It bypasses the write semantics and is
// not recorded.
func (m *Memory) Poke(addr uintptr, v uint32) {
	m.mu.Lock()
	m.words[addr] = v
	m.mu.Unlock()
}

// Raise sets bits in the register from the hardware side.
func (m *Memory) Raise(addr uintptr, bits uint32) {
	m.mu.Lock()
	m.words[addr] |= bits
	m.mu.Unlock()
}

// Tick completes all pending RW1O actions: the hardware clears every RW1O
// bit.
func (m *Memory) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for addr, c := range m.cells {
		if c.w1o != 0 {
			m.words[addr] &^= c.w1o
		}
	}
}

// Trace returns the accesses recorded since the last call to ResetTrace.
func (m *Memory) Trace() []Access {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Access(nil), m.trace...)
}

// Stores returns the recorded store accesses.
func (m *Memory) Stores() []Access {
	var st []Access
	for _, a := range m.Trace() {
		if a.Op == Store {
			st = append(st, a)
		}
	}
	return st
}

// ResetTrace forgets the recorded accesses.
func (m *Memory) ResetTrace() {
	m.mu.Lock()
	m.trace = m.trace[:0]
	m.mu.Unlock()
}

// Addrs returns the addresses of all known registers in ascending order.
func (m *Memory) Addrs() []uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	addrs := make([]uintptr, 0, len(m.words))
	for a := range m.words {
		addrs = append(addrs, a)
	}
	slices.Sort(addrs)
	return addrs
}
