// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// Options controls optional, non-default behaviors of Assemble. The zero
// value reproduces the spec's baseline behavior: masked bitfield
// truncation and no string escape processing.
type Options struct {
	// Checked selects the checked encoder variants, which report an
	// error instead of silently truncating an out-of-range instruction
	// field. Default: masked (bug-compatible) encoding.
	Checked bool

	// EnableEscapes turns on C-style escape processing (\n \t \" \\ \0
	// \xHH) within .ascii/.asciiz string bodies. Default: raw,
	// escape-free copying, matching the source grammar's string literal
	// rule ("no escape processing").
	EnableEscapes bool
}
