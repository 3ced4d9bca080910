// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// decodeRegister reads a MIPS ABI register name starting at a '$' and
// returns its 5-bit numeric encoding. The cursor is expected to be
// positioned at the '$'; on return the cursor is advanced past the
// register spelling (class plus at most one trailing digit). An
// unrecognized class/index reports a warning and yields register 0.
func decodeRegister(c cursor, line int, warn func(line int, format string, args ...interface{})) (reg byte, rest cursor) {
	if !c.at('$') {
		warn(line, "expected register")
		return 0, c
	}
	c = c.consume(1)

	start := c.pos
	for !c.isEOF() && isAlpha(c.src[c.pos]) {
		c = c.consume(1)
	}
	class := c.src[start:c.pos]

	// At most one decimal digit follows a single-letter class.
	index := -1
	if len(class) == 1 && !c.isEOF() && isDigit(c.src[c.pos]) {
		index = int(c.src[c.pos] - '0')
		c = c.consume(1)
	}

	switch {
	case class == "zero":
		return 0, c
	case class == "at":
		return 1, c
	case class == "gp":
		return 28, c
	case class == "sp":
		return 29, c
	case class == "fp":
		return 30, c
	case class == "ra":
		return 31, c
	case class == "v" && index >= 0 && index <= 1:
		return byte(2 + index), c
	case class == "a" && index >= 0 && index <= 3:
		return byte(4 + index), c
	case class == "t" && index >= 0 && index <= 7:
		return byte(8 + index), c
	case class == "t" && index >= 8 && index <= 9:
		return byte(24 + (index - 8)), c
	case class == "s" && index >= 0 && index <= 7:
		return byte(16 + index), c
	case class == "k" && index >= 0 && index <= 1:
		return byte(26 + index), c
	default:
		warn(line, "unknown register")
		return 0, c
	}
}
