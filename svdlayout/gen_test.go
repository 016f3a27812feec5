// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/embeddedgo/max78000/svd"
)

const regPath = "github.com/embeddedgo/max78000/reg"

func testDevice(t *testing.T) *svd.Device {
	t.Helper()
	f, err := os.Open("../svd/testdata/tmr.svd")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dev, err := svd.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return dev
}

func TestGenerate(t *testing.T) {
	p, err := testDevice(t).Periph("TMR")
	if err != nil {
		t.Fatal(err)
	}
	src, err := generate(p, "tmr", regPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "tmr.go", src, 0); err != nil {
		t.Fatalf("%v\n%s", err, src)
	}
	s := strings.Join(strings.Fields(string(src)), " ")
	for _, want := range []string{
		"// Code generated by svdlayout; DO NOT EDIT.",
		"package tmr",
		`import "github.com/embeddedgo/max78000/reg"`,
		"INTFL uintptr = 0x00C // Timer Interrupt Register.",
		`INTFL_IRQ_A = reg.Bit(0, reg.RW1C, INTFL, "IRQ_A").Doc("TimerA Interrupt Event.")`,
		`INTFL_WRDONE_A = reg.Bit(8, reg.RO, INTFL, "WRDONE_A")`,
		`CTRL0_MODE_A = reg.Bits(0, 3, reg.RW, CTRL0, "MODE_A")`,
		`CTRL0_RST_A = reg.Bit(13, reg.RW1O, CTRL0, "RST_A")`,
		`CTRL0_EN_A = reg.Bit(15, reg.RW, CTRL0, "CTRL0_EN_A")`,
		`CNT_CNT = reg.Bits(0, 31, reg.RW, CNT, "CNT")`,
		"var Bases = [...]uintptr{0x40010000, 0x40011000, 0x40012000}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in:\n%s", want, s)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	if err := save(testDevice(t), "TMR", dir, regPath); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tmr", "layout.go")); err != nil {
		t.Error(err)
	}
	if err := save(testDevice(t), "WDT", dir, regPath); err == nil {
		t.Error("WDT: no error")
	}
}
