// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// A Symbol binds a label to the absolute address it had at its point of
// definition.
type Symbol struct {
	Label   string
	Address uint32
}

// SymbolTable is an append-only, insertion-ordered mapping from label text
// to absolute address. Unlike the sentinel-0 "not found" convention of the
// original implementation, Lookup reports presence explicitly so that an
// unresolved label can be distinguished from one legitimately bound to
// address 0.
type SymbolTable struct {
	order []Symbol
	index map[string]int
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		index: make(map[string]int),
	}
}

// Push appends a new symbol to the table. The original implementation
// performs no duplicate detection ("last write wins if the table is
// consulted after"); Push preserves that: a repeated label overwrites the
// index entry used by Lookup but the earlier entry remains in Symbols for
// iteration (e.g. a `.sym` dump), matching append-only semantics.
func (t *SymbolTable) Push(label string, addr uint32) {
	t.index[label] = len(t.order)
	t.order = append(t.order, Symbol{Label: label, Address: addr})
}

// Lookup consults the name index for the given label and returns its
// bound address along with whether it was found.
func (t *SymbolTable) Lookup(label string) (uint32, bool) {
	i, ok := t.index[label]
	if !ok {
		return 0, false
	}
	return t.order[i].Address, true
}

// Symbols returns the table's contents in definition order.
func (t *SymbolTable) Symbols() []Symbol {
	return t.order
}
