// Package zplprint is a thin, allocation-light wrapper around the standard
// formatter, giving the json5/csv printers' Write functions a single seam for byte
// output (spec.md §6 "the core prints using fprintf-style byte output").
package zplprint

import (
	"bufio"
	"fmt"
	"io"
)

// Printer buffers writes to an underlying io.Writer and surfaces the first
// write error encountered, so callers can chain many Fprint calls and check
// err once at the end (the teacher's pattern for streaming emitters).
type Printer struct {
	w   *bufio.Writer
	err error
}

// New wraps w in a buffered Printer.
func New(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// Fprintf writes a formatted string, no-op once a prior write has failed.
func (p *Printer) Fprintf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// WriteString writes s verbatim.
func (p *Printer) WriteString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}

// WriteByte writes a single byte.
func (p *Printer) WriteByte(b byte) {
	if p.err != nil {
		return
	}
	p.err = p.w.WriteByte(b)
}

// Flush flushes the buffer and returns the first error seen (write or flush).
func (p *Printer) Flush() error {
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}
