// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func TestSymbolTableLookupMiss(t *testing.T) {
	st := newSymbolTable()
	if _, ok := st.Lookup("nope"); ok {
		t.Errorf("expected lookup miss on an empty table")
	}
}

func TestSymbolTablePushAndLookup(t *testing.T) {
	st := newSymbolTable()
	st.Push("a", 0x100)
	st.Push("b", 0x104)

	addr, ok := st.Lookup("a")
	if !ok || addr != 0x100 {
		t.Errorf("lookup a: got (0x%x, %v), want (0x100, true)", addr, ok)
	}
	addr, ok = st.Lookup("b")
	if !ok || addr != 0x104 {
		t.Errorf("lookup b: got (0x%x, %v), want (0x104, true)", addr, ok)
	}
}

func TestSymbolTableLastWriteWins(t *testing.T) {
	st := newSymbolTable()
	st.Push("a", 0x100)
	st.Push("a", 0x200)

	addr, ok := st.Lookup("a")
	if !ok || addr != 0x200 {
		t.Errorf("lookup a: got (0x%x, %v), want (0x200, true)", addr, ok)
	}
	if len(st.Symbols()) != 2 {
		t.Errorf("expected both pushes to remain in iteration order, got %d entries", len(st.Symbols()))
	}
}

func TestSymbolTableIterationOrder(t *testing.T) {
	st := newSymbolTable()
	labels := []string{"z", "a", "m"}
	for i, l := range labels {
		st.Push(l, uint32(i))
	}
	syms := st.Symbols()
	for i, l := range labels {
		if syms[i].Label != l {
			t.Errorf("position %d: got %s, want %s", i, syms[i].Label, l)
		}
	}
}
