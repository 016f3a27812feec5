// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/marcinbor85/gohex"
)

var ErrImage = errors.New("sim: bad register image")

// DumpHex writes the register values as an Intel HEX image, little endian,
// one data segment for every run of consecutive registers.
func (m *Memory) DumpHex(w io.Writer) error {
	mem := gohex.NewMemory()
	addrs := m.Addrs()
	for len(addrs) > 0 {
		n := 1
		for n < len(addrs) && addrs[n] == addrs[n-1]+4 {
			n++
		}
		if addrs[0] > math.MaxUint32-uintptr(4*n) {
			return fmt.Errorf("%w: address %#x out of 32-bit space", ErrImage, addrs[0])
		}
		data := make([]byte, 0, 4*n)
		for _, a := range addrs[:n] {
			data = binary.LittleEndian.AppendUint32(data, m.Peek(a))
		}
		if err := mem.AddBinary(uint32(addrs[0]), data); err != nil {
			return err
		}
		addrs = addrs[n:]
	}
	return mem.DumpIntelHex(w, 16)
}

// LoadHex sets registers from an Intel HEX image written by DumpHex. The
// values are loaded from the hardware side, as by Poke.
func (m *Memory) LoadHex(r io.Reader) error {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return err
	}
	for _, seg := range mem.GetDataSegments() {
		if seg.Address&3 != 0 || len(seg.Data)&3 != 0 {
			return fmt.Errorf(
				"%w: segment %#x+%d not word aligned",
				ErrImage, seg.Address, len(seg.Data),
			)
		}
		for i := 0; i < len(seg.Data); i += 4 {
			addr := uintptr(seg.Address) + uintptr(i)
			m.Poke(addr, binary.LittleEndian.Uint32(seg.Data[i:]))
		}
	}
	return nil
}
