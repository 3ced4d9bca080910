// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// instrEncoder parses an instruction's operand text and returns its
// encoded 32-bit word. here is the instruction's absolute TEXT address.
type instrEncoder func(a *assembler, operand string, here uint32, line int) uint32

var mnemonics = map[string]instrEncoder{
	"and": encRRR(fnAND),
	"or":  encRRR(fnOR),
	"add": encRRR(fnADD),
	"sub": encRRR(fnSUB),
	"slt": encRRR(fnSLT),
	"ori": encOri,
	"lw":  encLoadStore(opLW),
	"sw":  encLoadStore(opSW),
	"lui": encLui,
	"beq": encBeq,
	"j":   encJ,
}

// encRRR builds an encoder for the "rd, rs, rt" R-format ALU mnemonics:
// and, or, add, sub, slt.
func encRRR(funct byte) instrEncoder {
	return func(a *assembler, operand string, here uint32, line int) uint32 {
		regs, _ := a.parseRegisters(operand, 3, line)
		return a.encodeR(opR, regs[1], regs[2], regs[0], 0, funct, line)
	}
}

// encOri encodes "ori rt, rs, imm".
func encOri(a *assembler, operand string, here uint32, line int) uint32 {
	c := strip(cursor{src: operand, line: line})
	var rt, rs byte
	rt, c = decodeRegister(c, line, a.warnf)
	c = strip(c)
	c = skipOperandSeparator(c, a.warnf)
	rs, c = decodeRegister(c, line, a.warnf)
	c = strip(c)
	c = skipOperandSeparator(c, a.warnf)
	imm, _ := getNumericOperand(strip(c))
	return a.encodeI(opORI, rs, rt, int32(imm), line)
}

// encLoadStore builds an encoder for "lw"/"sw": "reg, imm(base)".
func encLoadStore(op byte) instrEncoder {
	return func(a *assembler, operand string, here uint32, line int) uint32 {
		c := strip(cursor{src: operand, line: line})
		var reg byte
		reg, c = decodeRegister(c, line, a.warnf)
		c = strip(c)
		c = skipOperandSeparator(c, a.warnf)
		imm, base, _ := a.parseBaseDisplacement(c, line)
		return a.encodeI(op, base, reg, int32(imm), line)
	}
}

// encLui encodes "lui rt, imm".
func encLui(a *assembler, operand string, here uint32, line int) uint32 {
	c := strip(cursor{src: operand, line: line})
	var rt byte
	rt, c = decodeRegister(c, line, a.warnf)
	c = strip(c)
	c = skipOperandSeparator(c, a.warnf)
	imm, _ := getNumericOperand(strip(c))
	return a.encodeI(opLUI, 0, rt, int32(imm), line)
}

// encBeq encodes "beq rs, rt, label".
func encBeq(a *assembler, operand string, here uint32, line int) uint32 {
	regs, c := a.parseRegisters(operand, 2, line)
	c = skipOperandSeparator(c, a.warnf)
	target := a.parseLabelOperand(c, line, a.text.Symbols)
	imm := relativeJump(here, target)
	return a.encodeI(opBEQ, regs[0], regs[1], imm, line)
}

// encJ encodes "j label".
func encJ(a *assembler, operand string, here uint32, line int) uint32 {
	c := strip(cursor{src: operand, line: line})
	target := a.parseLabelOperand(c, line, a.text.Symbols)
	return a.encodeJ(opJ, target, line)
}

// parseRegisters parses n comma-separated registers from operand,
// returning the decoded registers and the cursor just past the last one.
func (a *assembler) parseRegisters(operand string, n int, line int) ([]byte, cursor) {
	c := strip(cursor{src: operand, line: line})
	regs := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		var r byte
		r, c = decodeRegister(c, line, a.warnf)
		regs = append(regs, r)
		c = strip(c)
		if i < n-1 {
			c = skipOperandSeparator(c, a.warnf)
		}
	}
	return regs, c
}

// parseBaseDisplacement parses "imm(reg)" starting at c.
func (a *assembler) parseBaseDisplacement(c cursor, line int) (imm int64, base byte, rest cursor) {
	imm, c = getNumericOperand(c)
	c = strip(c)
	if !c.at('(') {
		a.warnf(line, "expected (")
	} else {
		c = c.consume(1)
	}
	c = strip(c)
	base, c = decodeRegister(c, line, a.warnf)
	c = strip(c)
	if !c.at(')') {
		a.warnf(line, "expected )")
	} else {
		c = c.consume(1)
	}
	return imm, base, strip(c)
}

// parseLabelOperand reads a label reference starting at c and resolves
// it against table. An unresolved label reports a warning with the
// offending line and yields address 0, per spec §9's recommendation to
// attribute the warning to a source line rather than silently
// propagating the sentinel.
func (a *assembler) parseLabelOperand(c cursor, line int, table *SymbolTable) uint32 {
	n := labelLen(c)
	name := c.src[c.pos : c.pos+n]
	addr, ok := table.Lookup(name)
	if !ok {
		a.warnf(line, "undefined label '%s'", name)
	}
	return addr
}

func (a *assembler) encodeR(op, rs, rt, rd, shamt, funct byte, line int) uint32 {
	if a.opts.Checked {
		w, err := EncodeRChecked(op, rs, rt, rd, shamt, funct)
		if err != nil {
			a.warnf(line, "%v", err)
			return 0
		}
		return w
	}
	return EncodeR(op, rs, rt, rd, shamt, funct)
}

func (a *assembler) encodeI(op, rs, rt byte, imm int32, line int) uint32 {
	if a.opts.Checked {
		w, err := EncodeIChecked(op, rs, rt, imm)
		if err != nil {
			a.warnf(line, "%v", err)
			return 0
		}
		return w
	}
	return EncodeI(op, rs, rt, imm)
}

func (a *assembler) encodeJ(op byte, addr uint32, line int) uint32 {
	if a.opts.Checked {
		w, err := EncodeJChecked(op, addr)
		if err != nil {
			a.warnf(line, "%v", err)
			return 0
		}
		return w
	}
	return EncodeJ(op, addr)
}
