// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/embeddedgo/max78000/reg"
)

func run(t *testing.T, image string, args ...string) (string, error) {
	t.Helper()
	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--image", image}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, image string, args ...string) string {
	t.Helper()
	out, err := run(t, image, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestFields(t *testing.T) {
	out := mustRun(t, "unused.hex", "fields")
	for _, s := range []string{"INTFL", "IRQ_A", "RW1C", "7:4", "CLKRDY_A"} {
		if !strings.Contains(out, s) {
			t.Errorf("fields output lacks %q", s)
		}
	}
	out = mustRun(t, "unused.hex", "fields", "--hazards")
	if !strings.Contains(out, "INTFL") || !strings.Contains(out, "CTRL0") {
		t.Errorf("hazards output:\n%s", out)
	}
}

func TestAcknowledge(t *testing.T) {
	image := filepath.Join(t.TempDir(), "tmr.hex")
	mustRun(t, image, "init")
	if _, err := os.Stat(image); err != nil {
		t.Fatal(err)
	}
	mustRun(t, image, "raise", "1", "IRQ_A")
	if out := mustRun(t, image, "read", "1", "IRQ_A"); out != "0x1\n" {
		t.Fatalf("IRQ_A after raise: %q", out)
	}
	out := mustRun(t, image, "clear", "1", "IRQ_A")
	if !strings.HasPrefix(out, "st 0x4001100c ") || !strings.HasSuffix(out, "1\n") {
		t.Errorf("clear stores: %q", out)
	}
	if out := mustRun(t, image, "read", "1", "IRQ_A"); out != "0x0\n" {
		t.Errorf("IRQ_A after clear: %q", out)
	}
	if out := mustRun(t, image, "read", "0", "IRQ_A"); out != "0x0\n" {
		t.Errorf("TMR0 IRQ_A: %q", out)
	}
}

func TestWriteAndToggle(t *testing.T) {
	image := filepath.Join(t.TempDir(), "tmr.hex")
	mustRun(t, image, "write", "2", "CLKDIV_A", "0x3")
	if out := mustRun(t, image, "read", "2", "CLKDIV_A"); out != "0x3\n" {
		t.Errorf("CLKDIV_A: %q", out)
	}
	mustRun(t, image, "toggle", "2", "EN_A")
	if out := mustRun(t, image, "read", "2", "EN_A"); out != "0x1\n" {
		t.Errorf("EN_A: %q", out)
	}
	if out := mustRun(t, image, "read", "2", "CLKDIV_A"); out != "0x3\n" {
		t.Errorf("CLKDIV_A after toggle: %q", out)
	}
	dump := mustRun(t, image, "dump")
	if !strings.Contains(dump, "TMR2.CTRL0") {
		t.Errorf("dump:\n%s", dump)
	}
}

func TestErrors(t *testing.T) {
	image := filepath.Join(t.TempDir(), "tmr.hex")
	if _, err := run(t, image, "toggle", "0", "IRQ_A"); !errors.Is(err, reg.ErrNoToggle) {
		t.Errorf("toggle IRQ_A: %v", err)
	}
	if _, err := run(t, image, "write", "0", "CLKRDY_A", "1"); !errors.Is(err, reg.ErrReadOnly) {
		t.Errorf("write CLKRDY_A: %v", err)
	}
	if _, err := run(t, image, "read", "3", "EN_A"); !errors.Is(err, reg.ErrPortIndexOutOfRange) {
		t.Errorf("read port 3: %v", err)
	}
	if _, err := run(t, image, "read", "0", "NOPE"); !errors.Is(err, reg.ErrUnknownField) {
		t.Errorf("read NOPE: %v", err)
	}
	if _, err := run(t, image, "set", "0", "IRQ_A"); !errors.Is(err, reg.ErrNotSettable) {
		t.Errorf("set IRQ_A: %v", err)
	}
}
