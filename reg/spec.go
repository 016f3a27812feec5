// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import "fmt"

// BitSpec describes one bit field of a 32-bit register.
type BitSpec struct {
	Name   string
	Offset uintptr // register offset from the port base
	Start  uint    // lowest bit
	Width  uint    // number of bits, 1..32
	Mode   Mode
	Descr  string
}

// Bit returns the specification of the single bit n of the register at
// offset.
func Bit(n uint, mode Mode, offset uintptr, name string) BitSpec {
	return BitSpec{Name: name, Offset: offset, Start: n, Width: 1, Mode: mode}
}

// Bits returns the specification of the field occupying bits lo to hi
// (inclusive) of the register at offset.
func Bits(lo, hi uint, mode Mode, offset uintptr, name string) BitSpec {
	return BitSpec{
		Name: name, Offset: offset, Start: lo, Width: hi + 1 - lo, Mode: mode,
	}
}

// Doc returns a copy of s with the description set to descr.
func (s BitSpec) Doc(descr string) BitSpec {
	s.Descr = descr
	return s
}

// Mask returns the bits occupied by the field inside its register.
func (s BitSpec) Mask() uint32 { return Mask(s.Width) << s.Start }

// Hi returns the highest bit of the field.
func (s BitSpec) Hi() uint { return s.Start + s.Width - 1 }

// Check reports whether s describes a field that fits in a 32-bit register
// at an aligned offset.
func (s BitSpec) Check() error {
	if s.Width == 0 || s.Width > 32 || s.Start >= 32 || s.Start+s.Width > 32 {
		return fmt.Errorf("%s: bits %d+%d: %w", s.Name, s.Start, s.Width, ErrFieldWidthOverflow)
	}
	if s.Offset&3 != 0 {
		return fmt.Errorf("%s: offset %#x: %w", s.Name, s.Offset, ErrMisaligned)
	}
	if s.Mode > RW1O {
		return fmt.Errorf("%s: bad mode %v", s.Name, s.Mode)
	}
	return nil
}

func (s BitSpec) String() string {
	if s.Width == 1 {
		return fmt.Sprintf("%s[%d] %v @%#03x", s.Name, s.Start, s.Mode, s.Offset)
	}
	return fmt.Sprintf("%s[%d:%d] %v @%#03x", s.Name, s.Hi(), s.Start, s.Mode, s.Offset)
}
