// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "encoding/binary"

type warnFunc func(line int, format string, args ...interface{})

func noWarn(int, string, ...interface{}) {}

// parseOperandValues reads a comma-separated list of numeric literals
// from operand text, in the style of the original's
// count_data_operands/write_data_* loops: read a literal, skip
// whitespace, stop unless a comma follows.
func parseOperandValues(operand string, line int) []int64 {
	var values []int64
	c := cursor{src: operand, pos: 0, line: line}
	for {
		c = strip(c)
		if c.isEOF() {
			break
		}
		var v int64
		v, c = getNumericOperand(c)
		values = append(values, v)
		c = strip(c)
		if !c.at(',') {
			break
		}
		c = strip(c.consume(1))
	}
	return values
}

// sizeDataDirective computes the address a data directive advances the
// segment cursor to, without writing anything. warn is called to report
// directive-shape problems (unknown directive, bad string literal,
// unknown alignment); the pass driver passes a.warnf during pass 1 and a
// no-op during pass 2, so that recomputing the identical advance for
// pass 2 (required by the "same cursor movement on both passes"
// invariant) doesn't re-report the same diagnostic twice.
func sizeDataDirective(opts Options, keyword, operand string, curAddr uint32, line int, warn warnFunc) uint32 {
	switch keyword {
	case "byte":
		return curAddr + uint32(len(parseOperandValues(operand, line)))
	case "half":
		return curAddr + 2*uint32(len(parseOperandValues(operand, line)))
	case "word":
		return curAddr + 4*uint32(len(parseOperandValues(operand, line)))
	case "ascii":
		body, ok := sizeStringLiteral(opts, operand, line, warn)
		if !ok {
			return curAddr
		}
		return curAddr + uint32(len(body))
	case "asciiz":
		body, ok := sizeStringLiteral(opts, operand, line, warn)
		if !ok {
			return curAddr
		}
		return curAddr + uint32(len(body)) + 1
	case "align":
		c := strip(cursor{src: operand, pos: 0, line: line})
		n, _ := getNumericOperand(c)
		switch n {
		case 1:
			if curAddr%2 != 0 {
				return curAddr + 1
			}
			return curAddr
		case 2:
			if r := curAddr % 4; r != 0 {
				return curAddr + (4 - r)
			}
			return curAddr
		default:
			warn(line, "unknown alignment")
			return curAddr
		}
	case "space":
		c := strip(cursor{src: operand, pos: 0, line: line})
		n, _ := getNumericOperand(c)
		return curAddr + uint32(n)
	default:
		warn(line, "unknown data directive %s", keyword)
		return curAddr
	}
}

// sizeStringLiteral scans a `"..."`-delimited operand and returns its
// decoded body, reporting a warning if the operand isn't a string
// literal.
func sizeStringLiteral(opts Options, operand string, line int, warn warnFunc) ([]byte, bool) {
	c := strip(cursor{src: operand, pos: 0, line: line})
	body, _, ok := scanString(c, opts.EnableEscapes)
	if !ok {
		warn(line, "expected string literal")
		return nil, false
	}
	return body, true
}

// emitDataDirective writes a data directive's bytes into buf, which is
// the full segment buffer; addr is the absolute address at which the
// directive begins and segOrigin is the segment's base address. No
// diagnostics are reported here: any directive-shape problems were
// already reported while sizing the directive during pass 1.
func emitDataDirective(opts Options, keyword, operand string, buf []byte, addr, segOrigin uint32, line int) {
	off := addr - segOrigin
	switch keyword {
	case "byte":
		for i, v := range parseOperandValues(operand, line) {
			buf[int(off)+i] = byte(v)
		}
	case "half":
		for i, v := range parseOperandValues(operand, line) {
			binary.LittleEndian.PutUint16(buf[int(off)+2*i:], uint16(v))
		}
	case "word":
		for i, v := range parseOperandValues(operand, line) {
			binary.LittleEndian.PutUint32(buf[int(off)+4*i:], uint32(v))
		}
	case "ascii":
		c := strip(cursor{src: operand, pos: 0, line: line})
		body, _, ok := scanString(c, opts.EnableEscapes)
		if !ok {
			return
		}
		copy(buf[off:], body)
	case "asciiz":
		c := strip(cursor{src: operand, pos: 0, line: line})
		body, _, ok := scanString(c, opts.EnableEscapes)
		if !ok {
			return
		}
		n := copy(buf[off:], body)
		buf[int(off)+n] = 0
	case "align", "space":
		// No emission: the buffer is already zero-initialized.
	}
}
