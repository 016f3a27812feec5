// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import "errors"

// Access errors. They are returned as is (never wrapped) by the field
// accessors so they can be checked with == in interrupt handlers.
var (
	ErrReadOnly     = errors.New("reg: write to read-only field")
	ErrNotSingleBit = errors.New("reg: field is wider than one bit")
	ErrNoToggle     = errors.New("reg: write-one field cannot be toggled")
	ErrNotSettable  = errors.New("reg: write-one-to-clear field cannot be set")
)

// Resolution errors.
var (
	ErrPortIndexOutOfRange = errors.New("reg: port index out of range")
	ErrUnknownField        = errors.New("reg: unknown field")
)

// Definition errors, reported by NewLayout and NewDevice.
var (
	ErrFieldWidthOverflow = errors.New("reg: field does not fit in 32-bit register")
	ErrMisaligned         = errors.New("reg: register offset not 32-bit aligned")
	ErrDuplicateField     = errors.New("reg: duplicate field name")
	ErrFieldOverlap       = errors.New("reg: overlapping fields")
	ErrNoPorts            = errors.New("reg: device has no ports")
	ErrBadBase            = errors.New("reg: bad port base address")
	ErrNilBus             = errors.New("reg: nil bus")
)
