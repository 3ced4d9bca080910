// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func TestSizeDataDirectiveWordByteHalf(t *testing.T) {
	cases := []struct {
		keyword string
		operand string
		advance uint32
	}{
		{"byte", "1,2,3", 3},
		{"half", "1,2", 4},
		{"word", "1,2,3,4", 16},
	}
	for _, c := range cases {
		got := sizeDataDirective(Options{}, c.keyword, c.operand, 0, 1, noWarn)
		if got != c.advance {
			t.Errorf("%s %q: got advance %d, want %d", c.keyword, c.operand, got, c.advance)
		}
	}
}

func TestSizeDataDirectiveAscii(t *testing.T) {
	got := sizeDataDirective(Options{}, "ascii", `"hi"`, 0, 1, noWarn)
	if got != 2 {
		t.Errorf("ascii: got advance %d, want 2", got)
	}
}

func TestSizeDataDirectiveAsciiz(t *testing.T) {
	got := sizeDataDirective(Options{}, "asciiz", `"hi"`, 0, 1, noWarn)
	if got != 3 {
		t.Errorf("asciiz: got advance %d, want 3", got)
	}
}

func TestSizeDataDirectiveAlign(t *testing.T) {
	if got := sizeDataDirective(Options{}, "align", "1", 1, 1, noWarn); got != 2 {
		t.Errorf("align 1 from odd address: got %d, want 2", got)
	}
	if got := sizeDataDirective(Options{}, "align", "1", 2, 1, noWarn); got != 2 {
		t.Errorf("align 1 from even address: got %d, want 2", got)
	}
	if got := sizeDataDirective(Options{}, "align", "2", 1, 1, noWarn); got != 4 {
		t.Errorf("align 2 from address 1: got %d, want 4", got)
	}
}

func TestSizeDataDirectiveUnknownAlignmentWarns(t *testing.T) {
	var warned bool
	warn := func(line int, format string, args ...interface{}) { warned = true }
	got := sizeDataDirective(Options{}, "align", "3", 5, 1, warn)
	if !warned {
		t.Errorf("expected a warning for an unsupported alignment value")
	}
	if got != 5 {
		t.Errorf("cursor should not advance on an unknown alignment, got %d", got)
	}
}

func TestSizeDataDirectiveSpace(t *testing.T) {
	got := sizeDataDirective(Options{}, "space", "8", 0x10010000, 1, noWarn)
	if got != 0x10010008 {
		t.Errorf("space 8: got 0x%x, want 0x10010008", got)
	}
}

func TestSizeDataDirectiveUnknownWarns(t *testing.T) {
	var warned bool
	warn := func(line int, format string, args ...interface{}) { warned = true }
	sizeDataDirective(Options{}, "bogus", "", 0, 1, warn)
	if !warned {
		t.Errorf("expected a warning for an unrecognized directive")
	}
}

func TestEmitDataDirectiveByte(t *testing.T) {
	buf := make([]byte, 3)
	emitDataDirective(Options{}, "byte", "1,2,3", buf, 0, 0, 1)
	want := []byte{1, 2, 3}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestEmitDataDirectiveWordLittleEndian(t *testing.T) {
	buf := make([]byte, 4)
	emitDataDirective(Options{}, "word", "0x11223344", buf, 0, 0, 1)
	want := []byte{0x44, 0x33, 0x22, 0x11}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("byte %d: got 0x%02x, want 0x%02x", i, buf[i], want[i])
		}
	}
}

func TestEmitDataDirectiveAsciiz(t *testing.T) {
	buf := make([]byte, 3)
	emitDataDirective(Options{}, "asciiz", `"hi"`, buf, 0, 0, 1)
	want := []byte{'h', 'i', 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestParseOperandValuesHexOctalBinaryDecimal(t *testing.T) {
	values := parseOperandValues("0x10, 010, 0b101, 9", 1)
	want := []int64{16, 8, 5, 9}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("value %d: got %d, want %d", i, values[i], want[i])
		}
	}
}
