package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/xpl/xpl"
)

// dumpState writes a short human-readable snapshot of the interpreter's
// visible state: cursor position with surrounding context, the boolean
// accumulator and composing mode, and the demo stack's contents. Unlike the
// teacher's memory-and-dictionary dumper, XPL has no addressable memory of
// its own to show; everything dumpable lives in the Context and in
// whatever the host's Userdata holds.
func dumpState(w io.Writer, ctx *xpl.Context, d *demoStack) {
	fmt.Fprintf(w, "cursor: %d\n", ctx.Cursor())
	fmt.Fprintf(w, "context: %s\n", around(ctx.Text(), ctx.Cursor(), 24))
	fmt.Fprintf(w, "bool: %d (%s)\n", ctx.BoolValue(), ctx.BoolComposing())
	fmt.Fprintf(w, "stack: %v\n", d.values)
}

// around renders text[pos-n:pos+n] with a caret marking pos, clamped to the
// bounds of text.
func around(text string, pos, n int) string {
	lo := pos - n
	if lo < 0 {
		lo = 0
	}
	hi := pos + n
	if hi > len(text) {
		hi = len(text)
	}
	return fmt.Sprintf("%q^%q", text[lo:pos], text[pos:hi])
}
