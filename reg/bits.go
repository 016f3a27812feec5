// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

// Mask returns a word with the width low bits set. Widths above 32 give
// the full word.
func Mask(width uint) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<width - 1
}

// Extract returns the width bits of word starting at bit start, shifted down
// to bit 0.
func Extract(word uint32, start, width uint) uint32 {
	return word >> start & Mask(width)
}

// Insert returns word with the width bits starting at bit start replaced by
// the low width bits of v. Bits of v above the field width are dropped.
func Insert(word uint32, start, width uint, v uint32) uint32 {
	m := Mask(width)
	return word&^(m<<start) | (v&m)<<start
}
