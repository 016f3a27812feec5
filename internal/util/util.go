// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"unicode"

	"golang.org/x/mod/modfile"
)

func Warn(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
}

func Fatal(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// GoMod returns the path to the go.mod file of the main module.
func GoMod() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", err
	}
	gomod := string(bytes.TrimRightFunc(out, unicode.IsSpace))
	if gomod == "" || gomod == os.DevNull {
		return "", fmt.Errorf("go.mod file not found in current directory or any parent directory")
	}
	return filepath.Clean(gomod), nil
}

// ModulePath returns the module path declared in the go.mod file.
func ModulePath(gomod string) (string, error) {
	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", err
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("there is no module directive in %s", gomod)
	}
	return path, nil
}

// Module returns the path of the main module.
func Module() (string, error) {
	gomod, err := GoMod()
	if err != nil {
		return "", err
	}
	return ModulePath(gomod)
}
