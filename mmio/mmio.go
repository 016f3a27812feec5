// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmio provides access to real memory-mapped registers.
package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Bus implements reg.Bus for the registers of the running MCU. Every Load
// and Store is a single 32-bit access that the compiler can neither remove,
// merge nor reorder relative to other memory operations.
type Bus struct{}

func ptr(addr uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(addr))
}

func (Bus) Load(addr uintptr) uint32 { return atomic.LoadUint32(ptr(addr)) }

func (Bus) Store(addr uintptr, v uint32) { atomic.StoreUint32(ptr(addr), v) }
