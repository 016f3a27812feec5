// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"errors"
	"reflect"
	"testing"
)

func TestBitSpec(t *testing.T) {
	s := Bits(4, 7, RW, 0x10, "DIV")
	if s.Start != 4 || s.Width != 4 || s.Hi() != 7 {
		t.Errorf("bad spec %+v", s)
	}
	if s.Mask() != 0xF0 {
		t.Errorf("mask: got %#x", s.Mask())
	}
	if got := s.String(); got != "DIV[7:4] RW @0x10" {
		t.Errorf("got %q", got)
	}
	if got := Bit(0, RW1C, 0xC, "IRQ").String(); got != "IRQ[0] RW1C @0xc" {
		t.Errorf("got %q", got)
	}
	if Bits(0, 31, RW, 0, "ALL").Mask() != 0xFFFFFFFF {
		t.Error("full width mask")
	}
}

func TestNewLayoutErrors(t *testing.T) {
	cases := []struct {
		name   string
		fields []BitSpec
		err    error
	}{
		{"wide", []BitSpec{Bits(30, 33, RW, 0, "X")}, ErrFieldWidthOverflow},
		{"reversed", []BitSpec{Bits(5, 4, RW, 0, "X")}, ErrFieldWidthOverflow},
		{"start", []BitSpec{Bit(32, RW, 0, "X")}, ErrFieldWidthOverflow},
		{"zero", []BitSpec{{Name: "X", Width: 0}}, ErrFieldWidthOverflow},
		{"misaligned", []BitSpec{Bit(0, RW, 2, "X")}, ErrMisaligned},
		{"duplicate", []BitSpec{Bit(0, RW, 0, "X"), Bit(1, RW, 4, "X")}, ErrDuplicateField},
		{"overlap", []BitSpec{Bits(0, 3, RW, 8, "A"), Bit(3, RO, 8, "B")}, ErrFieldOverlap},
	}
	for _, c := range cases {
		_, err := NewLayout("T", c.fields...)
		if !errors.Is(err, c.err) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.err)
		}
	}
}

func TestMustLayoutPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	MustLayout("T", Bits(16, 47, RW, 0, "X"))
}

func TestLayout(t *testing.T) {
	l := MustLayout(
		"T",
		Bits(0, 31, RW, 0x0, "CNT"),
		Bit(0, RW1C, 0xC, "IRQ_A"),
		Bit(9, RW, 0xC, "WR_DIS_A"),
		Bit(16, RW1C, 0xC, "IRQ_B"),
		Bit(25, RO, 0xC, "WRDONE_B"),
		Bit(13, RW1O, 0x10, "RST_A"),
		Bit(16, RW1C, 0x1C, "WK_B"),
		Bit(0, RW1C, 0x1C, "WK_A"),
	)
	if l.Name() != "T" || l.Len() != 8 {
		t.Errorf("name %s len %d", l.Name(), l.Len())
	}
	if got := l.Registers(); !reflect.DeepEqual(got, []uintptr{0, 0xC, 0x10, 0x1C}) {
		t.Errorf("registers: %#x", got)
	}
	if got := l.WriteOneMask(0xC); got != 0x10001 {
		t.Errorf("w1 mask: %#x", got)
	}
	if got := l.WriteOneMask(0); got != 0 {
		t.Errorf("w1 mask: %#x", got)
	}
	var names []string
	for _, f := range l.InRegister(0xC) {
		names = append(names, f.Name)
	}
	if want := []string{"WRDONE_B", "IRQ_B", "WR_DIS_A", "IRQ_A"}; !reflect.DeepEqual(names, want) {
		t.Errorf("INTFL fields: got %v, want %v", names, want)
	}
	s, ok := l.Lookup("IRQ_B")
	if !ok || !l.Has(s) {
		t.Error("IRQ_B not found")
	}
	if l.Has(Bit(17, RW1C, 0xC, "IRQ_B")) {
		t.Error("modified IRQ_B accepted")
	}
	hs := l.Hazards()
	if len(hs) != 1 || hs[0].Offset != 0xC {
		t.Fatalf("hazards: %+v", hs)
	}
	if !reflect.DeepEqual(hs[0].WriteOne, []string{"IRQ_B", "IRQ_A"}) ||
		!reflect.DeepEqual(hs[0].Plain, []string{"WR_DIS_A"}) {
		t.Errorf("hazard: %+v", hs[0])
	}
}
