// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Svdlayout generates register layout packages from CMSIS-SVD files.
//
//	svdlayout [-o DIR] [-reg IMPORT_PATH] SVD_FILE PERIPH...
//
// For every peripheral PERIPH it writes DIR/periph/layout.go declaring the
// register offsets, the fields as reg.BitSpec values, the Layout and the
// base addresses of all instances derived from PERIPH.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/embeddedgo/max78000/internal/util"
	"github.com/embeddedgo/max78000/svd"
)

func save(dev *svd.Device, name, dir, regPath string) error {
	p, err := dev.Periph(name)
	if err != nil {
		return err
	}
	pkg := strings.ToLower(name)
	src, err := generate(p, pkg, regPath)
	if err != nil {
		return err
	}
	dir = filepath.Join(dir, pkg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "layout.go"), src, 0o644)
}

func main() {
	out := flag.String("o", ".", "output directory")
	regPath := flag.String("reg", "", "import path of the reg package (default: MODULE/reg)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: svdlayout [options] SVD_FILE PERIPH...")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
	}
	if *regPath == "" {
		mod, err := util.Module()
		util.FatalErr("module", err)
		*regPath = mod + "/reg"
	}

	f, err := os.Open(flag.Arg(0))
	util.FatalErr("", err)
	dev, err := svd.Decode(f)
	f.Close()
	util.FatalErr(flag.Arg(0), err)

	var g errgroup.Group
	for _, name := range flag.Args()[1:] {
		g.Go(func() error {
			if err := save(dev, name, *out, *regPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	util.FatalErr("svdlayout", g.Wait())
}
