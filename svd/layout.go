// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/embeddedgo/max78000/reg"
)

var (
	ErrNoPeripheral = errors.New("svd: no such peripheral")
	ErrUnsupported  = errors.New("svd: unsupported")
)

// Instance is one peripheral instance.
type Instance struct {
	Name string
	Base uintptr
}

// Reg describes one register of a peripheral.
type Reg struct {
	Name   string
	Offset uintptr
	Descr  string
}

// Bits is a field together with the name of its register.
type Bits struct {
	Reg  string
	Spec reg.BitSpec
}

// Periph is the register map of a peripheral built from its SVD
// description.
type Periph struct {
	Name      string
	Descr     string
	Regs      []Reg  // ordered by offset
	Bits      []Bits // in SVD order
	Instances []Instance
	Layout    *reg.Layout
}

// Peripheral returns the peripheral called name or nil.
func (d *Device) Peripheral(name string) *Peripheral {
	for _, p := range d.Peripherals {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// origin follows the derivedFrom chain of the peripheral called name and
// returns the peripheral that describes the registers.
func (d *Device) origin(name string) (*Peripheral, error) {
	seen := make(map[string]bool)
	for {
		p := d.Peripheral(name)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoPeripheral, name)
		}
		if p.DerivedFrom == nil {
			return p, nil
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: derivedFrom cycle at %s", ErrUnsupported, name)
		}
		seen[name] = true
		name = *p.DerivedFrom
	}
}

// Instances returns all peripherals that share the registers of the
// peripheral called name, directly or through a chain of derivedFrom
// attributes, ordered by base address.
func (d *Device) Instances(name string) []Instance {
	root, err := d.origin(name)
	if err != nil {
		return nil
	}
	var insts []Instance
	for _, p := range d.Peripherals {
		if o, err := d.origin(p.Name); err == nil && o == root {
			insts = append(insts, Instance{p.Name, uintptr(p.BaseAddress)})
		}
	}
	slices.SortFunc(insts, func(a, b Instance) bool { return a.Base < b.Base })
	return insts
}

// Layout returns the register layout of the peripheral called name.
func (d *Device) Layout(name string) (*reg.Layout, error) {
	p, err := d.Periph(name)
	if err != nil {
		return nil, err
	}
	return p.Layout, nil
}

// Periph converts the registers of the peripheral called name. Field names
// are the SVD field names, prefixed with the register name if more than one
// register has a field of that name. A derived peripheral gives the map of
// its origin.
func (d *Device) Periph(name string) (*Periph, error) {
	sp, err := d.origin(name)
	if err != nil {
		return nil, err
	}
	b := &builder{
		p:     &Periph{Name: sp.Name, Instances: d.Instances(sp.Name)},
		width: uint(d.Width),
	}
	if sp.Description != nil {
		b.p.Descr = fixSpaces(*sp.Description)
	}
	b.props(d.RegisterPropertiesGroup)
	b.props(sp.RegisterPropertiesGroup)
	if err := b.regs("", 0, sp.Registers); err != nil {
		return nil, err
	}
	for _, c := range sp.Clusters {
		if err := b.cluster(c, 0); err != nil {
			return nil, err
		}
	}
	p := b.p
	count := make(map[string]int)
	for _, bs := range p.Bits {
		count[bs.Spec.Name]++
	}
	specs := make([]reg.BitSpec, len(p.Bits))
	for i := range p.Bits {
		bs := &p.Bits[i]
		if count[bs.Spec.Name] > 1 {
			bs.Spec.Name = bs.Reg + "_" + bs.Spec.Name
		}
		specs[i] = bs.Spec
	}
	slices.SortFunc(p.Regs, func(a, b Reg) bool { return a.Offset < b.Offset })
	if p.Layout, err = reg.NewLayout(p.Name, specs...); err != nil {
		return nil, err
	}
	return p, nil
}

type builder struct {
	p      *Periph
	width  uint
	access string
}

func (b *builder) props(g *RegisterPropertiesGroup) {
	if g == nil {
		return
	}
	if g.Size != nil {
		b.width = uint(*g.Size)
	}
	if g.Access != nil {
		b.access = *g.Access
	}
}

func (b *builder) cluster(c *Cluster, offset uint64) error {
	offset += uint64(c.AddressOffset)
	if err := b.regs(c.Name, offset, c.Registers); err != nil {
		return err
	}
	for _, sc := range c.Clusters {
		if err := b.cluster(sc, offset); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) regs(cname string, offset uint64, srs []*Register) error {
	for _, sr := range srs {
		name := sr.Name
		if cname != "" {
			name = cname + "_" + name
		}
		if sr.DerivedFrom != nil {
			return fmt.Errorf("%s.%s: %w: derived register", b.p.Name, name, ErrUnsupported)
		}
		if sr.Dim != 0 {
			return fmt.Errorf("%s.%s: %w: register array", b.p.Name, name, ErrUnsupported)
		}
		width, access := b.width, b.access
		if g := sr.RegisterPropertiesGroup; g != nil {
			if g.Size != nil {
				width = uint(*g.Size)
			}
			if g.Access != nil {
				access = *g.Access
			}
		}
		if width != 32 {
			return fmt.Errorf("%s.%s: %w: %d-bit register", b.p.Name, name, ErrUnsupported, width)
		}
		r := Reg{Name: name, Offset: uintptr(offset + uint64(sr.AddressOffset))}
		if sr.Description != nil {
			r.Descr = fixSpaces(*sr.Description)
		}
		b.p.Regs = append(b.p.Regs, r)
		if len(sr.Fields) == 0 {
			// the whole register is one field
			mode, err := Mode(access, str(sr.ModifiedWriteValues))
			if err != nil {
				return fmt.Errorf("%s.%s: %w", b.p.Name, name, err)
			}
			s := reg.Bits(0, 31, mode, r.Offset, name).Doc(r.Descr)
			b.p.Bits = append(b.p.Bits, Bits{name, s})
			continue
		}
		for _, sf := range sr.Fields {
			s, err := fieldSpec(sf, r.Offset, access, str(sr.ModifiedWriteValues))
			if err != nil {
				return fmt.Errorf("%s.%s.%s: %w", b.p.Name, name, sf.Name, err)
			}
			b.p.Bits = append(b.p.Bits, Bits{name, s})
		}
	}
	return nil
}

func fieldSpec(sf *Field, offset uintptr, access, mwv string) (reg.BitSpec, error) {
	if sf.DerivedFrom != nil {
		return reg.BitSpec{}, fmt.Errorf("%w: derived field", ErrUnsupported)
	}
	if sf.Access != nil {
		access = *sf.Access
	}
	if sf.ModifiedWriteValues != nil {
		mwv = *sf.ModifiedWriteValues
	}
	mode, err := Mode(access, mwv)
	if err != nil {
		return reg.BitSpec{}, err
	}
	var lo, hi uint
	switch {
	case sf.BitRangeOffsetWidth != nil:
		lo = uint(sf.BitOffset)
		hi = lo
		if w := sf.BitWidth; w != nil {
			hi = lo + uint(*w) - 1
		}
	case sf.BitRangeLSBMSB != nil:
		lo, hi = uint(sf.LSB), uint(sf.MSB)
	case sf.BitRangePattern != nil:
		if lo, hi, err = bitRange(*sf.BitRangePattern); err != nil {
			return reg.BitSpec{}, err
		}
	default:
		return reg.BitSpec{}, fmt.Errorf("%w: bit range not specified", ErrUnsupported)
	}
	s := reg.Bits(lo, hi, mode, offset, sf.Name)
	if sf.Description != nil {
		s.Descr = fixSpaces(*sf.Description)
	}
	return s, nil
}

// bitRange parses the [MSB:LSB] bit range pattern.
func bitRange(s string) (lo, hi uint, err error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 || s[0] != '[' || s[len(s)-1] != ']' {
		return 0, 0, fmt.Errorf("bad bit range %q", s)
	}
	msb, lsb, ok := strings.Cut(s[1:len(s)-1], ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad bit range %q", s)
	}
	h, err := strconv.ParseUint(msb, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad bit range %q: %w", s, err)
	}
	l, err := strconv.ParseUint(lsb, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad bit range %q: %w", s, err)
	}
	return uint(l), uint(h), nil
}

// Mode returns the access mode described by the SVD access and
// modifiedWriteValues properties.
func Mode(access, modifiedWriteValues string) (reg.Mode, error) {
	switch access {
	case "read-only":
		return reg.RO, nil
	case "", "read-write", "write-only", "writeOnce", "read-writeOnce":
	default:
		return 0, fmt.Errorf("%w: access %q", ErrUnsupported, access)
	}
	switch modifiedWriteValues {
	case "", "modify", "clear", "set":
		return reg.RW, nil
	case "oneToClear":
		return reg.RW1C, nil
	case "oneToSet":
		return reg.RW1O, nil
	}
	return 0, fmt.Errorf("%w: modifiedWriteValues %q", ErrUnsupported, modifiedWriteValues)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fixSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
