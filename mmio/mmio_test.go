// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmio

import (
	"runtime"
	"testing"
	"unsafe"
)

func TestBus(t *testing.T) {
	words := make([]uint32, 4)
	base := uintptr(unsafe.Pointer(&words[0]))

	var b Bus
	b.Store(base+8, 0xA5)
	b.Store(base+8, 0xAF)
	if words[2] != 0xAF {
		t.Errorf("word 2: got %#x, want 0xaf", words[2])
	}
	words[1] = 0x10001
	if got := b.Load(base + 4); got != 0x10001 {
		t.Errorf("load: got %#x, want 0x10001", got)
	}
	runtime.KeepAlive(words)
}
