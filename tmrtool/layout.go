// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/embeddedgo/max78000/tmr"
)

func fieldsCmd() *cobra.Command {
	var hazards bool
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "list the timer bit fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if hazards {
				for _, h := range tmr.Layout.Hazards() {
					fmt.Fprintf(
						w, "%s: write-one %s share the register with RW %s\n",
						tmr.RegName(h.Offset),
						strings.Join(h.WriteOne, ","), strings.Join(h.Plain, ","),
					)
				}
				return nil
			}
			tw := new(tabwriter.Writer)
			tw.Init(w, 0, 0, 1, ' ', 0)
			for _, off := range tmr.Layout.Registers() {
				fmt.Fprintf(tw, "0x%03X\t%s\t\t\t\n", off, tmr.RegName(off))
				for _, f := range tmr.Layout.InRegister(off) {
					bits := fmt.Sprint(f.Start)
					if f.Width > 1 {
						bits = fmt.Sprintf("%d:%d", f.Hi(), f.Start)
					}
					fmt.Fprintf(tw, "\t %s\t %s\t %s\t %s\n", bits, f.Mode, f.Name, f.Descr)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&hazards, "hazards", false, "list registers that mix write-one and RW fields")
	return cmd
}

func mapCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "print the address map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(false); err != nil {
				return err
			}
			return s.addrMap.Encode(cmd.OutOrStdout())
		},
	}
}
