// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Result holds the two segments produced by a successful assembly.
type Result struct {
	Data *Segment
	Text *Segment
}

// assembler carries the mutable state of a single Assemble call across
// both of its passes.
type assembler struct {
	opts  Options
	trace io.Writer
	warn  io.Writer

	pass   int // 1 or 2
	active SegmentID
	addr   [2]uint32

	data *Segment
	text *Segment
}

func (a *assembler) seg(id SegmentID) *Segment {
	if id == Data {
		return a.data
	}
	return a.text
}

func (a *assembler) tracef(format string, args ...interface{}) {
	fmt.Fprintf(a.trace, format+"\n", args...)
}

// warnf reports a diagnostic attributed to a source line. Directive
// sizing routes its own warnings through an explicit warnFunc parameter
// instead of this method (see sizeDataDirective), so pass 2's silent
// recomputation of the same cursor advance doesn't re-report anything.
// The segment-mismatch warnings in handleDataDirective and
// parseInstructionLine check a.pass at their call sites, and the
// remaining call sites (register decoding, operand separators,
// instruction encoding) are reached only from pass 2, so warnf itself
// needs no pass gating.
func (a *assembler) warnf(line int, format string, args ...interface{}) {
	fmt.Fprintf(a.warn, "%d: warning: "+format+"\n", append([]interface{}{line}, args...)...)
}

// Assemble runs the two-pass assembler over src, writing a trace line per
// recognized source line to trace and a warning line per recovered
// diagnostic to warn. It returns the populated DATA and TEXT segments.
func Assemble(src string, trace, warn io.Writer, opts Options) (*Result, error) {
	a := &assembler{
		opts:  opts,
		trace: trace,
		warn:  warn,
		data:  newSegment(Data),
		text:  newSegment(Text),
	}

	a.pass = 1
	a.tracef("=== pass 1 ===")
	a.runPass(src)

	a.data.Bytes = make([]byte, a.addr[Data]-DataOrigin)
	a.text.Bytes = make([]byte, a.addr[Text]-TextOrigin)

	a.pass = 2
	a.tracef("=== pass 2 ===")
	a.runPass(src)

	return &Result{Data: a.data, Text: a.text}, nil
}

// runPass walks the entire source exactly once, classifying each logical
// line as empty, comment, label, directive, or instruction, and
// dispatching to the directive/instruction handlers below. It is called
// once per pass; a.pass selects sizing-only (pass 1) versus emitting
// (pass 2) behavior at the call sites that need it.
func (a *assembler) runPass(src string) {
	a.active = Text
	a.addr = [2]uint32{DataOrigin, TextOrigin}

	c := newCursor(src)
	for !c.isEOF() {
		c = strip(c)

		switch {
		case c.at('\n'):
			a.tracef("%d: empty line", c.line)
			c = c.nextLine()

		case c.at('#') || c.at(';'):
			a.tracef("%d: comment", c.line)
			_, rest := c.restOfLine()
			c = rest.nextLine()

		default:
			c = a.classifyStatement(c)
		}
	}
}

// classifyStatement handles one label/directive/instruction statement
// starting at c (which is guaranteed not to be at a newline, '#', or
// ';') and returns the cursor positioned at the start of the next line.
func (a *assembler) classifyStatement(c cursor) cursor {
	if ll := labelLen(c); ll > 0 && c.pos+ll < len(c.src) && c.src[c.pos+ll] == ':' {
		return a.parseLabel(c, ll)
	}
	if c.at('.') {
		return a.parseDirectiveLine(c)
	}
	return a.parseInstructionLine(c)
}

// parseLabel records a label definition (on pass 1 only) and either
// advances to the next line or re-enters statement classification on the
// remainder of the current line, so that "label: instruction" on one
// line is handled the same as two separate lines.
func (a *assembler) parseLabel(c cursor, labelLength int) cursor {
	label := c.src[c.pos : c.pos+labelLength]
	line := c.line

	if a.pass == 1 {
		addr := a.addr[a.active]
		a.seg(a.active).Symbols.Push(label, addr)
		a.tracef("%d: label %s = 0x%08x", line, label, addr)
	}

	c = strip(c.consume(labelLength + 1))
	if c.isEOF() || c.at('\n') {
		return c.nextLine()
	}
	return a.classifyStatement(c)
}

// parseDirectiveLine handles a line beginning with '.': segment
// directives switch the active segment; data directives size (pass 1)
// or emit (pass 2) their bytes.
func (a *assembler) parseDirectiveLine(c cursor) cursor {
	line := c.line
	c = c.consume(1) // skip '.'
	var keyword string
	keyword, c = copyKeyword(c)
	c = strip(c)
	operand, rest := c.restOfLine()

	switch keyword {
	case "data":
		a.active = Data
		a.tracef("%d: .data", line)
	case "text":
		a.active = Text
		a.tracef("%d: .text", line)
	default:
		a.handleDataDirective(keyword, operand, line)
	}

	return rest.nextLine()
}

func (a *assembler) handleDataDirective(keyword, operand string, line int) {
	if a.active != Data {
		if a.pass == 1 {
			a.warnf(line, "data directive in text segment")
		}
		return
	}

	addr := a.addr[Data]
	if a.pass == 1 {
		a.addr[Data] = sizeDataDirective(a.opts, keyword, operand, addr, line, a.warnf)
		a.tracef("%d: .%s %s", line, keyword, operand)
	} else {
		emitDataDirective(a.opts, keyword, operand, a.data.Bytes, addr, DataOrigin, line)
		a.addr[Data] = sizeDataDirective(a.opts, keyword, operand, addr, line, noWarn)
		a.tracef("%d: .%s %s -> 0x%08x", line, keyword, operand, addr)
	}
}

// parseInstructionLine handles an instruction mnemonic and its operand
// text.
func (a *assembler) parseInstructionLine(c cursor) cursor {
	line := c.line
	var mnemonic string
	mnemonic, c = copyKeyword(c)
	c = strip(c)
	operand, rest := c.restOfLine()

	if a.active != Text {
		if a.pass == 1 {
			a.warnf(line, "instruction outside text segment")
		}
		return rest.nextLine()
	}

	here := a.addr[Text]
	if a.pass == 1 {
		a.tracef("%d: %s %s", line, mnemonic, operand)
	} else {
		enc, ok := mnemonics[mnemonic]
		if !ok {
			a.warnf(line, "unknown instruction %s", mnemonic)
		} else {
			word := enc(a, operand, here, line)
			binary.LittleEndian.PutUint32(a.text.Bytes[here-TextOrigin:], word)
			a.tracef("%d: %08x  %s %s", here, word, mnemonic, operand)
		}
	}
	a.addr[Text] = here + 4

	return rest.nextLine()
}
