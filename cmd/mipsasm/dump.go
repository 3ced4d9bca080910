// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/arf20/mipsasm/asm"
)

// dumpSegments renders a 16-bytes-per-row hex+ASCII dump of both
// segments, in the style of a disassembler listing: an 8-hex-digit
// address gutter, 16 space-separated hex byte columns, and a trailing
// ASCII column with non-printable bytes shown as '.'.
func dumpSegments(w io.Writer, result *asm.Result) {
	fmt.Fprintf(w, "=== SEGMENT DUMP ===\n")
	dumpSegment(w, result.Data)
	dumpSegment(w, result.Text)
}

func dumpSegment(w io.Writer, seg *asm.Segment) {
	fmt.Fprintf(w, "%s\n", seg.ID)
	org := seg.Origin()
	data := seg.Bytes

	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]

		fmt.Fprintf(w, "%08x ", org+uint32(off))
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(w, "%02x ", row[i])
			} else {
				fmt.Fprint(w, "   ")
			}
		}
		fmt.Fprint(w, " |")
		for _, b := range row {
			if b >= 0x20 && b < 0x7f {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w, "|")
	}
}
