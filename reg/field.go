// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

// Field gives access to one bit field of one peripheral instance. It holds
// only the address, every method accesses the hardware.
//
// Writes to RW fields are read-modify-write sequences. They are not atomic
// against interrupt handlers or the hardware itself writing other fields of
// the same register: the caller must own the register (e.g. disable the
// interrupts that touch it) for the duration of the call.
type Field struct {
	reg  Register
	spec BitSpec
	w1   uint32 // write-one bits sharing the register
}

// Spec returns the field specification.
func (f Field) Spec() BitSpec { return f.spec }

// Addr returns the absolute address of the field register.
func (f Field) Addr() uintptr { return f.reg.addr }

// Register returns the handle of the register that contains f.
func (f Field) Register() Register { return f.reg }

// Read returns the current value of the field.
func (f Field) Read() uint32 {
	return Extract(f.reg.Load(), f.spec.Start, f.spec.Width)
}

// Write writes v to the field using the protocol of its access mode. Bits of
// v above the field width are ignored.
//
// RW: the register is read, the field replaced and the word written back
// with all RW1C and RW1O bits of the register set to zero.
//
// RO: nothing is written and ErrReadOnly is returned.
//
// RW1C, RW1O: if v is zero nothing is written. Otherwise the register is
// written once with v in the field position and zeros everywhere else. This
// is harmless for other write-one fields but stores zero into any RW field of
// the same register. Layouts must not place write-one fields next to RW
// fields for which zero is meaningful (see Layout.Hazards).
func (f Field) Write(v uint32) error {
	s := &f.spec
	switch s.Mode {
	case RO:
		return ErrReadOnly
	case RW1C, RW1O:
		v &= Mask(s.Width)
		if v == 0 {
			return nil
		}
		f.reg.Store(v << s.Start)
	default:
		w := f.reg.Load()
		f.reg.Store(Insert(w, s.Start, s.Width, v) &^ f.w1)
	}
	return nil
}

// Flag returns the single-bit view of f.
func (f Field) Flag() (Flag, error) {
	if f.spec.Width != 1 {
		return Flag{}, ErrNotSingleBit
	}
	return Flag{f}, nil
}

// Switch returns the toggleable view of f. Only single-bit RW fields can be
// toggled: RO fields give ErrReadOnly, RW1C and RW1O fields give ErrNoToggle
// because the hardware may have changed them since they were last read.
func (f Field) Switch() (Switch, error) {
	switch {
	case f.spec.Width != 1:
		return Switch{}, ErrNotSingleBit
	case f.spec.Mode == RO:
		return Switch{}, ErrReadOnly
	case f.spec.Mode.writeOne():
		return Switch{}, ErrNoToggle
	}
	return Switch{f}, nil
}

// Flag is a single-bit field.
type Flag struct {
	f Field
}

// Field returns the underlying field.
func (g Flag) Field() Field { return g.f }

// IsSet reports whether the bit reads as 1.
func (g Flag) IsSet() bool { return g.f.Read() != 0 }

// Set writes 1 to the bit. For RW1O fields it triggers the action. RW1C bits
// cannot be set by software and give ErrNotSettable.
func (g Flag) Set() error {
	if g.f.spec.Mode == RW1C {
		return ErrNotSettable
	}
	return g.f.Write(1)
}

// Clear clears the bit. For RW1C fields it writes 1, which acknowledges the
// event. For RW1O fields it does nothing: the hardware clears them itself.
func (g Flag) Clear() error {
	switch g.f.spec.Mode {
	case RW1C:
		return g.f.Write(1)
	case RW1O:
		return nil
	}
	return g.f.Write(0)
}

// Switch is a single-bit RW field. Its methods cannot fail.
type Switch struct {
	f Field
}

// Field returns the underlying field.
func (s Switch) Field() Field { return s.f }

// IsSet reports whether the bit reads as 1.
func (s Switch) IsSet() bool { return s.f.Read() != 0 }

// Set sets the bit.
func (s Switch) Set() { _ = s.f.Write(1) } // RW writes never fail

// Clear clears the bit.
func (s Switch) Clear() { _ = s.f.Write(0) }

// Toggle inverts the bit with one read-modify-write of its register.
func (s Switch) Toggle() {
	w := s.f.reg.Load()
	s.f.reg.Store((w ^ s.f.spec.Mask()) &^ s.f.w1)
}
