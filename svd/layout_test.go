// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svd

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/embeddedgo/max78000/reg"
)

func decodeFile(t *testing.T, name string) *Device {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPeriph(t *testing.T) {
	d := decodeFile(t, "testdata/tmr.svd")
	p, err := d.Periph("TMR1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "TMR" || p.Descr != "Low-Power Configurable Timer" {
		t.Errorf("name %q descr %q", p.Name, p.Descr)
	}
	want := []Instance{{"TMR", 0x40010000}, {"TMR1", 0x40011000}, {"TMR2", 0x40012000}}
	if !reflect.DeepEqual(p.Instances, want) {
		t.Errorf("instances: %+v", p.Instances)
	}
	if len(p.Regs) != 4 || p.Regs[0].Descr != "Timer Counter Register." || p.Regs[3].Offset != 0x18 {
		t.Errorf("regs: %+v", p.Regs)
	}
	specs := []reg.BitSpec{
		reg.Bits(0, 31, reg.RW, 0x00, "CNT").Doc("Timer Counter Register."),
		reg.Bit(0, reg.RW1C, 0x0C, "IRQ_A").Doc("TimerA Interrupt Event."),
		reg.Bit(8, reg.RO, 0x0C, "WRDONE_A"),
		reg.Bit(9, reg.RW, 0x0C, "WR_DIS_A"),
		reg.Bit(16, reg.RW1C, 0x0C, "IRQ_B"),
		reg.Bits(0, 3, reg.RW, 0x10, "MODE_A").Doc("TimerA Mode Select."),
		reg.Bit(13, reg.RW1O, 0x10, "RST_A"),
		reg.Bit(15, reg.RW, 0x10, "CTRL0_EN_A"),
		reg.Bit(3, reg.RO, 0x18, "CLKRDY_A"),
		reg.Bit(2, reg.RW, 0x18, "CTRL1_EN_A"),
	}
	got := p.Layout.Fields()
	if len(got) != len(specs) {
		t.Fatalf("%d fields: %v", len(got), got)
	}
	for i, s := range specs {
		if got[i] != s {
			t.Errorf("field %d: got %+v, want %+v", i, got[i], s)
		}
	}
	if p.Bits[7].Reg != "CTRL0" {
		t.Errorf("bits 7: %+v", p.Bits[7])
	}
}

func TestLayoutErrors(t *testing.T) {
	d := decodeFile(t, "testdata/tmr.svd")
	if _, err := d.Layout("UART"); !errors.Is(err, ErrNoPeripheral) {
		t.Errorf("UART: %v", err)
	}
	if _, err := d.Layout("WDT"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("WDT: %v", err)
	}
	d, err := Decode(strings.NewReader(derivedSVD))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"A", "B", "SELF"} {
		if _, err := d.Periph(name); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: %v", name, err)
		}
		if insts := d.Instances(name); insts != nil {
			t.Errorf("%s instances: %v", name, insts)
		}
	}
	if _, err := d.Periph("DANGLING"); !errors.Is(err, ErrNoPeripheral) {
		t.Errorf("DANGLING: %v", err)
	}
}

const derivedSVD = `<device>
  <name>derived</name>
  <width>32</width>
  <peripherals>
    <peripheral derivedFrom="B"><name>A</name><baseAddress>0x1000</baseAddress></peripheral>
    <peripheral derivedFrom="A"><name>B</name><baseAddress>0x2000</baseAddress></peripheral>
    <peripheral derivedFrom="SELF"><name>SELF</name><baseAddress>0x3000</baseAddress></peripheral>
    <peripheral derivedFrom="NONE"><name>DANGLING</name><baseAddress>0x4000</baseAddress></peripheral>
    <peripheral derivedFrom="Y"><name>Z</name><baseAddress>0x7000</baseAddress></peripheral>
    <peripheral derivedFrom="X"><name>Y</name><baseAddress>0x6000</baseAddress></peripheral>
    <peripheral>
      <name>X</name>
      <baseAddress>0x5000</baseAddress>
      <registers>
        <register>
          <name>DATA</name>
          <addressOffset>0x0</addressOffset>
          <size>32</size>
        </register>
      </registers>
    </peripheral>
  </peripherals>
</device>`

func TestDerivedChain(t *testing.T) {
	d, err := Decode(strings.NewReader(derivedSVD))
	if err != nil {
		t.Fatal(err)
	}
	p, err := d.Periph("Z")
	if err != nil {
		t.Fatal(err)
	}
	want := []Instance{{"X", 0x5000}, {"Y", 0x6000}, {"Z", 0x7000}}
	if p.Name != "X" || !reflect.DeepEqual(p.Instances, want) {
		t.Errorf("Z: %s %v", p.Name, p.Instances)
	}
	if got := d.Instances("Y"); !reflect.DeepEqual(got, want) {
		t.Errorf("Y instances: %v", got)
	}
}

func TestMode(t *testing.T) {
	cases := []struct {
		access, mwv string
		mode        reg.Mode
		ok          bool
	}{
		{"", "", reg.RW, true},
		{"read-write", "", reg.RW, true},
		{"read-only", "", reg.RO, true},
		{"read-write", "oneToClear", reg.RW1C, true},
		{"", "oneToSet", reg.RW1O, true},
		{"write-only", "modify", reg.RW, true},
		{"read-write", "zeroToClear", 0, false},
		{"exotic", "", 0, false},
	}
	for _, c := range cases {
		m, err := Mode(c.access, c.mwv)
		if (err == nil) != c.ok || c.ok && m != c.mode {
			t.Errorf("%q %q: got %v, %v", c.access, c.mwv, m, err)
		}
	}
}

func TestBitRange(t *testing.T) {
	lo, hi, err := bitRange("[23:20]")
	if err != nil || lo != 20 || hi != 23 {
		t.Errorf("got %d %d %v", lo, hi, err)
	}
	for _, s := range []string{"23:20", "[23-20]", "[x:1]", "[]"} {
		if _, _, err := bitRange(s); err == nil {
			t.Errorf("%q accepted", s)
		}
	}
}
