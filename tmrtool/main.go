// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tmrtool inspects the timer register layout and accesses the timer fields
// of a simulated register image stored in an Intel HEX file.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/embeddedgo/max78000/internal/util"
	"github.com/embeddedgo/max78000/mmap"
	"github.com/embeddedgo/max78000/reg"
	"github.com/embeddedgo/max78000/sim"
	"github.com/embeddedgo/max78000/tmr"
)

type session struct {
	mapFile string
	image   string
	addrMap *mmap.Map
	bases   []uintptr
	mem     *sim.Memory
	dev     *reg.Device
}

func (s *session) open(load bool) error {
	s.addrMap = mmap.Default()
	if s.mapFile != "" {
		m, err := mmap.Load(s.mapFile)
		if err != nil {
			return err
		}
		s.addrMap = m
	}
	bases, err := s.addrMap.Ports(tmr.Layout.Name())
	if err != nil {
		return err
	}
	s.bases = bases
	s.mem = sim.New()
	s.mem.Map(tmr.Layout, bases...)
	if load {
		f, err := os.Open(s.image)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			util.Warn("%s: not found, starting from reset values", s.image)
		case err != nil:
			return err
		default:
			err = s.mem.LoadHex(f)
			f.Close()
			if err != nil {
				return err
			}
		}
	}
	s.dev, err = tmr.NewAt(s.mem, bases...)
	return err
}

func (s *session) save() error {
	f, err := os.Create(s.image)
	if err != nil {
		return err
	}
	if err := s.mem.DumpHex(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newRoot() *cobra.Command {
	s := new(session)
	root := &cobra.Command{
		Use:           "tmrtool",
		Short:         "inspect and access the MAX78000 timer registers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&s.image, "image", "tmr.hex", "register image (Intel HEX)")
	pf.StringVar(&s.mapFile, "map", "", "YAML address map (default: built-in)")
	root.AddCommand(
		fieldsCmd(),
		mapCmd(s),
		initCmd(s),
		dumpCmd(s),
		readCmd(s),
		writeCmd(s),
		flagCmd(s, "set", "write 1 to a single-bit field (trigger RW1O)"),
		flagCmd(s, "clear", "clear a single-bit field (acknowledge RW1C)"),
		toggleCmd(s),
		raiseCmd(s),
		tickCmd(s),
	)
	return root
}

func main() {
	util.FatalErr("tmrtool", newRoot().Execute())
}
