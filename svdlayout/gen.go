// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/tools/imports"

	"github.com/embeddedgo/max78000/svd"
)

func donotedit(w io.Writer) {
	fmt.Fprintln(w, "// Code generated by svdlayout; DO NOT EDIT.")
	fmt.Fprintln(w)
}

// generate returns the source of the package that declares the layout of p.
// regPath is the import path of the reg package.
func generate(p *svd.Periph, pkg, regPath string) ([]byte, error) {
	idents := make(map[string]string)
	ident := func(name, what string) (string, error) {
		id := strings.Map(func(r rune) rune {
			if r == '.' || r == '-' || r == ' ' || r == '[' || r == ']' {
				return '_'
			}
			return r
		}, name)
		if !token.IsIdentifier(id) {
			return "", fmt.Errorf("%s: %q is not a valid identifier", p.Name, id)
		}
		if prev, ok := idents[id]; ok {
			return "", fmt.Errorf("%s: %s %s collides with %s", p.Name, what, id, prev)
		}
		idents[id] = what + " " + name
		return id, nil
	}

	w := new(bytes.Buffer)
	donotedit(w)
	fmt.Fprintf(w, "// Package %s provides the register layout of the %s peripheral.\n", pkg, p.Name)
	if p.Descr != "" {
		fmt.Fprintf(w, "//\n// %s\n", p.Descr)
	}
	fmt.Fprintln(w, "//\n// Instances:")
	tw := new(tabwriter.Writer)
	tw.Init(w, 0, 0, 1, ' ', 0)
	for i, inst := range p.Instances {
		fmt.Fprintf(tw, "//  %s\t %#08x\t port %d\n", inst.Name, inst.Base, i)
	}
	tw.Flush()
	fmt.Fprintf(w, "package %s\n\n", pkg)
	fmt.Fprintf(w, "import %q\n\n", regPath)

	fmt.Fprintln(w, "// Register offsets.")
	fmt.Fprintln(w, "const (")
	regIdent := make(map[string]string, len(p.Regs))
	for _, r := range p.Regs {
		id, err := ident(r.Name, "register")
		if err != nil {
			return nil, err
		}
		regIdent[r.Name] = id
		fmt.Fprintf(w, "\t%s uintptr = 0x%03X", id, r.Offset)
		if r.Descr != "" {
			fmt.Fprintf(w, " // %s", r.Descr)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, ")")

	var fields []string
	fmt.Fprintln(w, "\nvar (")
	for _, b := range p.Bits {
		s := b.Spec
		id, err := ident(b.Reg+"_"+strings.TrimPrefix(s.Name, b.Reg+"_"), "field")
		if err != nil {
			return nil, err
		}
		fields = append(fields, id)
		if s.Width == 1 {
			fmt.Fprintf(
				w, "\t%s = reg.Bit(%d, reg.%v, %s, %q)",
				id, s.Start, s.Mode, regIdent[b.Reg], s.Name,
			)
		} else {
			fmt.Fprintf(
				w, "\t%s = reg.Bits(%d, %d, reg.%v, %s, %q)",
				id, s.Start, s.Hi(), s.Mode, regIdent[b.Reg], s.Name,
			)
		}
		if s.Descr != "" {
			fmt.Fprintf(w, ".Doc(%q)", s.Descr)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, ")")

	fmt.Fprintf(w, "\n// Layout is the register map shared by all %s instances.\n", p.Name)
	fmt.Fprintf(w, "var Layout = reg.MustLayout(\n\t%q,\n", p.Name)
	for _, id := range fields {
		fmt.Fprintf(w, "\t%s,\n", id)
	}
	fmt.Fprintln(w, ")")

	fmt.Fprintln(w, "\n// Bases lists the instance base addresses in port order.")
	fmt.Fprint(w, "var Bases = [...]uintptr{")
	for i, inst := range p.Instances {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%#08x", inst.Base)
	}
	fmt.Fprintln(w, "}")

	return imports.Process(pkg+".go", w.Bytes(), nil)
}
