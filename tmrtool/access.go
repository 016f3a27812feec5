// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/embeddedgo/max78000/reg"
	"github.com/embeddedgo/max78000/tmr"
)

func (s *session) field(portArg, name string) (reg.Field, error) {
	port, err := strconv.Atoi(portArg)
	if err != nil {
		return reg.Field{}, fmt.Errorf("bad port %q", portArg)
	}
	return s.dev.FieldByName(port, name)
}

func (s *session) printStores(w io.Writer) {
	for _, a := range s.mem.Stores() {
		fmt.Fprintln(w, a)
	}
}

// modify opens the image, runs fn on the field and saves the image.
func (s *session) modify(w io.Writer, args []string, fn func(f reg.Field) error) error {
	if err := s.open(true); err != nil {
		return err
	}
	f, err := s.field(args[0], args[1])
	if err != nil {
		return err
	}
	s.mem.ResetTrace()
	if err := fn(f); err != nil {
		return err
	}
	s.printStores(w)
	return s.save()
}

func initCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "write an image with all registers at their reset value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(false); err != nil {
				return err
			}
			return s.save()
		},
	}
}

func dumpCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "print all timer registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(true); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i := 0; i < s.dev.NumPorts(); i++ {
				p, err := s.dev.Port(i)
				if err != nil {
					return err
				}
				for _, off := range tmr.Layout.Registers() {
					r := p.Register(off)
					fmt.Fprintf(
						w, "TMR%d.%-6s %#08x %#08x\n",
						i, tmr.RegName(off), r.Addr(), s.mem.Peek(r.Addr()),
					)
				}
			}
			return nil
		},
	}
}

func readCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "read PORT FIELD",
		Short: "read a field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(true); err != nil {
				return err
			}
			f, err := s.field(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", f.Read())
			return nil
		},
	}
}

func writeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "write PORT FIELD VALUE",
		Short: "write a field using the protocol of its access mode",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[2], 0, 32)
			if err != nil {
				return err
			}
			return s.modify(cmd.OutOrStdout(), args, func(f reg.Field) error {
				return f.Write(uint32(v))
			})
		},
	}
}

func flagCmd(s *session, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " PORT FIELD",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.modify(cmd.OutOrStdout(), args, func(f reg.Field) error {
				g, err := f.Flag()
				if err != nil {
					return err
				}
				if name == "set" {
					return g.Set()
				}
				return g.Clear()
			})
		},
	}
}

func toggleCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle PORT FIELD",
		Short: "invert a single-bit RW field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.modify(cmd.OutOrStdout(), args, func(f reg.Field) error {
				sw, err := f.Switch()
				if err != nil {
					return err
				}
				sw.Toggle()
				return nil
			})
		},
	}
}

func raiseCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "raise PORT FIELD",
		Short: "set all bits of a field from the hardware side (e.g. an event)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.modify(cmd.OutOrStdout(), args, func(f reg.Field) error {
				s.mem.Raise(f.Addr(), f.Spec().Mask())
				return nil
			})
		},
	}
}

func tickCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "let the hardware complete pending RW1O actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(true); err != nil {
				return err
			}
			s.mem.Tick()
			return s.save()
		},
	}
}
