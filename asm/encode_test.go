// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func TestEncodeR(t *testing.T) {
	got := EncodeR(0, 9, 10, 8, 0, fnADD)
	want := uint32(0x012A4020)
	if got != want {
		t.Errorf("EncodeR: got 0x%08x, want 0x%08x", got, want)
	}
}

func TestEncodeRTruncatesOverWideFields(t *testing.T) {
	got := EncodeR(0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	want := EncodeR(0x3f, 0x1f, 0x1f, 0x1f, 0x1f, 0x3f)
	if got != want {
		t.Errorf("EncodeR masking: got 0x%08x, want 0x%08x", got, want)
	}
}

func TestEncodeRCheckedRejectsOutOfRange(t *testing.T) {
	if _, err := EncodeRChecked(0, 0, 0, 32, 0, fnADD); err == nil {
		t.Errorf("expected an error for an out-of-range rd field")
	}
	if _, err := EncodeRChecked(0, 9, 10, 8, 0, fnADD); err != nil {
		t.Errorf("unexpected error for valid fields: %v", err)
	}
}

func TestEncodeI(t *testing.T) {
	got := EncodeI(opLW, 28, 8, 0)
	want := uint32(0x8F880000)
	if got != want {
		t.Errorf("EncodeI: got 0x%08x, want 0x%08x", got, want)
	}
}

func TestEncodeICheckedRejectsOutOfRangeImmediate(t *testing.T) {
	if _, err := EncodeIChecked(opORI, 0, 0, 70000); err == nil {
		t.Errorf("expected an error for an out-of-range immediate")
	}
}

func TestEncodeJ(t *testing.T) {
	got := EncodeJ(opJ, TextOrigin)
	want := uint32(0x08100000)
	if got != want {
		t.Errorf("EncodeJ: got 0x%08x, want 0x%08x", got, want)
	}
}

func TestRelativeJump(t *testing.T) {
	got := relativeJump(TextOrigin, TextOrigin+8)
	if got != 1 {
		t.Errorf("relativeJump: got %d, want 1", got)
	}
}

func TestRelativeJumpBackward(t *testing.T) {
	got := relativeJump(TextOrigin+8, TextOrigin)
	if got != -3 {
		t.Errorf("relativeJump backward: got %d, want -3", got)
	}
}
