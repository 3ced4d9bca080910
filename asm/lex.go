// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strconv"

// A cursor tracks a position within the full source buffer along with the
// 1-based source line the position falls on. It plays the same role here
// that fstring plays in the 6502 assembler, except it walks the entire
// source as one contiguous string instead of one line at a time, per the
// single-cursor pass driver this assembler's grammar calls for.
type cursor struct {
	src  string
	pos  int
	line int
}

func newCursor(src string) cursor {
	return cursor{src: src, pos: 0, line: 1}
}

func (c cursor) isEOF() bool {
	return c.pos >= len(c.src)
}

func (c cursor) peek() byte {
	if c.isEOF() {
		return 0
	}
	return c.src[c.pos]
}

func (c cursor) at(ch byte) bool {
	return !c.isEOF() && c.src[c.pos] == ch
}

func (c cursor) consume(n int) cursor {
	c.pos += n
	return c
}

// nextLine advances past the current newline character (if any) and to
// the following source line.
func (c cursor) nextLine() cursor {
	if c.at('\n') {
		c = c.consume(1)
	}
	c.line++
	return c
}

// restOfLine returns the text from the cursor up to (but not including)
// the next newline, or to the end of the source if there is none.
func (c cursor) restOfLine() (text string, rest cursor) {
	i := c.pos
	for i < len(c.src) && c.src[i] != '\n' {
		i++
	}
	return c.src[c.pos:i], cursor{src: c.src, pos: i, line: c.line}
}

// isSpaceTab reports whether b is an ASCII space or tab.
func isSpaceTab(b byte) bool { return b == ' ' || b == '\t' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isLabelChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// strip advances past leading space/tab characters. It does not consume
// newlines.
func strip(c cursor) cursor {
	for isSpaceTab(c.peek()) {
		c = c.consume(1)
	}
	return c
}

// labelLen returns the count of leading label characters ([A-Za-z0-9_])
// starting at the cursor.
func labelLen(c cursor) int {
	n := 0
	for n < len(c.src)-c.pos && isLabelChar(c.src[c.pos+n]) {
		n++
	}
	return n
}

// copyKeyword reads the leading run of alphabetic characters at the
// cursor. It stops at the first non-alpha character, so a keyword like
// "la" followed by a digit ends at the digit rather than consuming it.
func copyKeyword(c cursor) (keyword string, rest cursor) {
	start := c.pos
	for !c.isEOF() && isAlpha(c.src[c.pos]) {
		c = c.consume(1)
	}
	return c.src[start:c.pos], c
}

// getNumericOperand parses a numeric literal starting at the cursor. The
// literal may be decimal, "0x..." hex, "0b..." binary, or "0..." octal.
// Scanning consumes hex digits plus the prefix letters 'x'/'b'; the
// resulting token is then parsed with Go's auto-base integer parsing,
// which recognizes exactly those same prefixes.
func getNumericOperand(c cursor) (value int64, rest cursor) {
	start := c.pos
	for !c.isEOF() {
		b := c.src[c.pos]
		if isHexDigit(b) || b == 'x' || b == 'b' {
			c = c.consume(1)
			continue
		}
		break
	}
	token := c.src[start:c.pos]
	if token == "" {
		return 0, c
	}
	v, err := strconv.ParseInt(token, 0, 64)
	if err != nil {
		// A token that does not parse as a whole yields 0; no valid
		// leading part of it is recovered.
		return 0, c
	}
	return v, c
}

// skipOperandSeparator skips whitespace, requires a comma, skips it, then
// skips whitespace again. If the comma is missing, a warning is reported
// through warn and the cursor is returned unchanged past the leading
// whitespace, allowing the caller to attempt to continue parsing.
func skipOperandSeparator(c cursor, warn func(line int, format string, args ...interface{})) cursor {
	c = strip(c)
	if !c.at(',') {
		warn(c.line, "expected ,")
		return c
	}
	c = c.consume(1)
	return strip(c)
}

// scanString scans a `"..."`-delimited string literal body starting at the
// opening quote. No escape processing is performed unless escapes is
// true, in which case the standard C-style escapes are recognized:
// \n \t \" \\ \0 \xHH. The same walk is used during both the pass-1 sizing
// pass and the pass-2 emission pass so that the two stay structurally
// identical (empty strings, trailing-escape edge cases, etc. agree
// trivially).
func scanString(c cursor, escapes bool) (body []byte, rest cursor, ok bool) {
	if !c.at('"') {
		return nil, c, false
	}
	c = c.consume(1)
	var out []byte
	for !c.isEOF() && !c.at('"') {
		b := c.src[c.pos]
		if escapes && b == '\\' && c.pos+1 < len(c.src) {
			esc := c.src[c.pos+1]
			switch esc {
			case 'n':
				out = append(out, '\n')
				c = c.consume(2)
				continue
			case 't':
				out = append(out, '\t')
				c = c.consume(2)
				continue
			case '"':
				out = append(out, '"')
				c = c.consume(2)
				continue
			case '\\':
				out = append(out, '\\')
				c = c.consume(2)
				continue
			case '0':
				out = append(out, 0)
				c = c.consume(2)
				continue
			case 'x':
				if c.pos+3 < len(c.src) && isHexDigit(c.src[c.pos+2]) && isHexDigit(c.src[c.pos+3]) {
					v := hexDigit(c.src[c.pos+2])<<4 | hexDigit(c.src[c.pos+3])
					out = append(out, v)
					c = c.consume(4)
					continue
				}
			}
		}
		out = append(out, b)
		c = c.consume(1)
	}
	if !c.at('"') {
		return out, c, false
	}
	c = c.consume(1)
	return out, c, true
}

func hexDigit(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}
