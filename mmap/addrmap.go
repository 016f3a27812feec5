// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoDevice = errors.New("mmap: no such device")
	ErrBadMap   = errors.New("mmap: bad address map")
)

// Addr is a base address. In YAML it may be written in any Go integer
// literal syntax (0x40010000, 1073807360, 0o..., 0b...). Addresses are 32
// bits wide.
type Addr uintptr

func (a *Addr) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: address must be a scalar", n.Line)
	}
	v, err := strconv.ParseUint(n.Value, 0, 32)
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("line %d: %w: %s does not fit in 32 bits", n.Line, ErrBadMap, n.Value)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*a = Addr(v)
	return nil
}

func (a Addr) MarshalYAML() (any, error) {
	return fmt.Sprintf("%#08x", uintptr(a)), nil
}

// Device lists the ports (instances) of one peripheral type.
type Device struct {
	Name  string `yaml:"name"`
	Ports []Addr `yaml:"ports"`
}

// Map is the device-port address table.
type Map struct {
	Devices []Device `yaml:"devices"`
}

// Default returns the address map of the peripherals known to this package.
func Default() *Map {
	return &Map{
		Devices: []Device{
			{Name: "TMR", Ports: []Addr{
				Addr(TMR0_BASE), Addr(TMR1_BASE), Addr(TMR2_BASE),
			}},
		},
	}
}

// Decode reads and checks a YAML address map.
func Decode(r io.Reader) (*Map, error) {
	m := new(Map)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, err
	}
	if err := m.Check(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads the YAML address map from file.
func Load(file string) (*Map, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

// Check reports unnamed or repeated devices and zero or repeated addresses.
func (m *Map) Check() error {
	var (
		names []string
		addrs []Addr
	)
	for _, d := range m.Devices {
		if d.Name == "" {
			return fmt.Errorf("%w: unnamed device", ErrBadMap)
		}
		if slices.Contains(names, d.Name) {
			return fmt.Errorf("%w: device %s listed twice", ErrBadMap, d.Name)
		}
		names = append(names, d.Name)
		if len(d.Ports) == 0 {
			return fmt.Errorf("%w: %s has no ports", ErrBadMap, d.Name)
		}
		for i, a := range d.Ports {
			if a == 0 {
				return fmt.Errorf("%w: %s%d: zero base address", ErrBadMap, d.Name, i)
			}
			if slices.Contains(addrs, a) {
				return fmt.Errorf("%w: %s%d: address %#x used twice", ErrBadMap, d.Name, i, uintptr(a))
			}
			addrs = append(addrs, a)
		}
	}
	return nil
}

// Ports returns the base addresses of the device called name.
func (m *Map) Ports(name string) ([]uintptr, error) {
	i := slices.IndexFunc(m.Devices, func(d Device) bool { return d.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, name)
	}
	ports := make([]uintptr, len(m.Devices[i].Ports))
	for k, a := range m.Devices[i].Ports {
		ports[k] = uintptr(a)
	}
	return ports, nil
}

// Encode writes m as YAML.
func (m *Map) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
