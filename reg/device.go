// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import "fmt"

// Device is a peripheral type replicated at several base addresses. All
// instances (ports) share one Layout.
type Device struct {
	layout *Layout
	bus    Bus
	bases  []uintptr
}

// NewDevice returns the device described by layout with one port for every
// base address. The order of bases defines the port indexes.
func NewDevice(layout *Layout, bus Bus, bases ...uintptr) (*Device, error) {
	if bus == nil {
		return nil, ErrNilBus
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("%s: %w", layout.name, ErrNoPorts)
	}
	for i, b := range bases {
		if b == 0 || b&3 != 0 {
			return nil, fmt.Errorf("%s%d: %#x: %w", layout.name, i, b, ErrBadBase)
		}
		for k, o := range bases[:i] {
			if o == b {
				return nil, fmt.Errorf(
					"%s%d: %#x already used by %s%d: %w",
					layout.name, i, b, layout.name, k, ErrBadBase,
				)
			}
		}
	}
	return &Device{
		layout: layout,
		bus:    bus,
		bases:  append([]uintptr(nil), bases...),
	}, nil
}

// Layout returns the register map of d.
func (d *Device) Layout() *Layout { return d.layout }

// NumPorts returns the number of instances of d.
func (d *Device) NumPorts() int { return len(d.bases) }

// Port returns the instance with index i.
func (d *Device) Port(i int) (Port, error) {
	if uint(i) >= uint(len(d.bases)) {
		return Port{}, fmt.Errorf(
			"%s: %w: %d not in [0,%d)",
			d.layout.name, ErrPortIndexOutOfRange, i, len(d.bases),
		)
	}
	return Port{dev: d, index: i, base: d.bases[i]}, nil
}

// Field returns the accessor of field s of port i.
func (d *Device) Field(i int, s BitSpec) (Field, error) {
	p, err := d.Port(i)
	if err != nil {
		return Field{}, err
	}
	return p.Field(s)
}

// FieldByName returns the accessor of the field called name of port i.
func (d *Device) FieldByName(i int, name string) (Field, error) {
	p, err := d.Port(i)
	if err != nil {
		return Field{}, err
	}
	return p.FieldByName(name)
}

// Flag returns the single-bit accessor of field s of port i.
func (d *Device) Flag(i int, s BitSpec) (Flag, error) {
	f, err := d.Field(i, s)
	if err != nil {
		return Flag{}, err
	}
	return f.Flag()
}

// Switch returns the toggleable accessor of field s of port i.
func (d *Device) Switch(i int, s BitSpec) (Switch, error) {
	f, err := d.Field(i, s)
	if err != nil {
		return Switch{}, err
	}
	return f.Switch()
}

// Port is one instance of a Device.
type Port struct {
	dev   *Device
	index int
	base  uintptr
}

// Index returns the port index.
func (p Port) Index() int { return p.index }

// Base returns the base address of the port.
func (p Port) Base() uintptr { return p.base }

// Register returns the handle of the register at offset from the port base.
func (p Port) Register(offset uintptr) Register {
	return Register{bus: p.dev.bus, addr: p.base + offset}
}

// Field returns the accessor of field s. The field must belong to the
// device layout.
func (p Port) Field(s BitSpec) (Field, error) {
	if !p.dev.layout.Has(s) {
		return Field{}, fmt.Errorf("%s: %s: %w", p.dev.layout.name, s.Name, ErrUnknownField)
	}
	return p.field(s), nil
}

// FieldByName returns the accessor of the field called name.
func (p Port) FieldByName(name string) (Field, error) {
	s, ok := p.dev.layout.Lookup(name)
	if !ok {
		return Field{}, fmt.Errorf("%s: %s: %w", p.dev.layout.name, name, ErrUnknownField)
	}
	return p.field(s), nil
}

// Flag returns the single-bit accessor of field s.
func (p Port) Flag(s BitSpec) (Flag, error) {
	f, err := p.Field(s)
	if err != nil {
		return Flag{}, err
	}
	return f.Flag()
}

// Switch returns the toggleable accessor of field s.
func (p Port) Switch(s BitSpec) (Switch, error) {
	f, err := p.Field(s)
	if err != nil {
		return Switch{}, err
	}
	return f.Switch()
}

func (p Port) field(s BitSpec) Field {
	return Field{
		reg:  p.Register(s.Offset),
		spec: s,
		w1:   p.dev.layout.WriteOneMask(s.Offset),
	}
}
