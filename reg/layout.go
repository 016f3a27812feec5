// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Layout is the register map shared by all instances of a peripheral. It is
// built once, checked at construction time and never modified afterwards.
type Layout struct {
	name   string
	fields []BitSpec
	index  map[string]int
	regs   []uintptr
	used   map[uintptr]uint32 // bits claimed by fields
	w1     map[uintptr]uint32 // bits of RW1C and RW1O fields
}

// NewLayout checks the field specifications and returns the layout named
// name. The order of fields is preserved.
func NewLayout(name string, fields ...BitSpec) (*Layout, error) {
	l := &Layout{
		name:   name,
		fields: make([]BitSpec, len(fields)),
		index:  make(map[string]int, len(fields)),
		used:   make(map[uintptr]uint32),
		w1:     make(map[uintptr]uint32),
	}
	copy(l.fields, fields)
	for i, f := range l.fields {
		if err := f.Check(); err != nil {
			return nil, fmt.Errorf("%s.%w", name, err)
		}
		if _, ok := l.index[f.Name]; ok {
			return nil, fmt.Errorf("%s.%s: %w", name, f.Name, ErrDuplicateField)
		}
		l.index[f.Name] = i
		used, ok := l.used[f.Offset]
		if !ok {
			l.regs = append(l.regs, f.Offset)
		}
		if m := f.Mask(); used&m != 0 {
			other := l.owner(f.Offset, used&m, i)
			return nil, fmt.Errorf(
				"%s.%s: bits %#08x shared with %s: %w",
				name, f.Name, used&m, other, ErrFieldOverlap,
			)
		}
		l.used[f.Offset] = used | f.Mask()
		if f.Mode.writeOne() {
			l.w1[f.Offset] |= f.Mask()
		}
	}
	slices.Sort(l.regs)
	return l, nil
}

// MustLayout is like NewLayout but panics on a bad definition. It is
// intended for package level register maps.
func MustLayout(name string, fields ...BitSpec) *Layout {
	l, err := NewLayout(name, fields...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) owner(offset uintptr, bits uint32, n int) string {
	for _, f := range l.fields[:n] {
		if f.Offset == offset && f.Mask()&bits != 0 {
			return f.Name
		}
	}
	return "?"
}

// Name returns the peripheral name.
func (l *Layout) Name() string { return l.name }

// Len returns the number of fields.
func (l *Layout) Len() int { return len(l.fields) }

// Lookup returns the field called name.
func (l *Layout) Lookup(name string) (BitSpec, bool) {
	i, ok := l.index[name]
	if !ok {
		return BitSpec{}, false
	}
	return l.fields[i], true
}

// Has reports whether s is one of the layout fields.
func (l *Layout) Has(s BitSpec) bool {
	i, ok := l.index[s.Name]
	return ok && l.fields[i] == s
}

// Fields returns a copy of the field list in definition order.
func (l *Layout) Fields() []BitSpec {
	return append([]BitSpec(nil), l.fields...)
}

// Registers returns the offsets of all registers that have fields, in
// ascending order.
func (l *Layout) Registers() []uintptr {
	return append([]uintptr(nil), l.regs...)
}

// InRegister returns the fields of the register at offset ordered from the
// most significant bit down.
func (l *Layout) InRegister(offset uintptr) []BitSpec {
	var fs []BitSpec
	for _, f := range l.fields {
		if f.Offset == offset {
			fs = append(fs, f)
		}
	}
	slices.SortFunc(fs, func(a, b BitSpec) bool { return a.Start > b.Start })
	return fs
}

// WriteOneMask returns the bits of the register at offset that belong to
// RW1C or RW1O fields. A read-modify-write of the register must write these
// bits as zero.
func (l *Layout) WriteOneMask(offset uintptr) uint32 { return l.w1[offset] }

// Hazard describes a register in which write-one fields share the word with
// plain read/write fields. A write-one write stores zero into the RW fields
// of the same register, so such layouts rely on the hardware ignoring those
// zeros.
type Hazard struct {
	Offset   uintptr
	WriteOne []string
	Plain    []string
}

// Hazards lists the registers that mix write-one and RW fields.
func (l *Layout) Hazards() []Hazard {
	var hs []Hazard
	for _, off := range l.regs {
		var h Hazard
		for _, f := range l.InRegister(off) {
			switch {
			case f.Mode.writeOne():
				h.WriteOne = append(h.WriteOne, f.Name)
			case f.Mode == RW:
				h.Plain = append(h.Plain, f.Name)
			}
		}
		if len(h.WriteOne) != 0 && len(h.Plain) != 0 {
			h.Offset = off
			hs = append(hs, h)
		}
	}
	return hs
}
