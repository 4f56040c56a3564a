// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strbuf provides two string-buffer shapes for formatted
// output (bignumstr itself builds its strings with strings.Builder and
// does not use them): an unbounded Dynamic buffer for
// callers that don't care how large the output gets, and a Fixed buffer
// for callers (embedded targets, fixed-record protocols) that need a
// hard ceiling and a clear error when output would exceed it.
package strbuf

import (
	"strings"

	"github.com/arithlab/bignum/bignum"
)

// Dynamic is a growable string buffer; its zero value is ready to use.
type Dynamic struct {
	b strings.Builder
}

// WriteString appends s, growing as needed. It never fails.
func (d *Dynamic) WriteString(s string) { d.b.WriteString(s) }

// WriteByte appends a single byte.
func (d *Dynamic) WriteByte(c byte) error { return d.b.WriteByte(c) }

// String returns the buffer's contents so far.
func (d *Dynamic) String() string { return d.b.String() }

// Len returns the number of bytes written so far.
func (d *Dynamic) Len() int { return d.b.Len() }

// Reset empties the buffer for reuse.
func (d *Dynamic) Reset() { d.b.Reset() }

// Fixed is a string buffer with a hard capacity: writes that would
// exceed it fail with bignum.ErrBufferSize rather than growing, for
// callers that render into a caller-owned, fixed-size record.
type Fixed struct {
	buf []byte
	n   int
}

// NewFixed returns a Fixed buffer backed by storage of the given
// capacity in bytes.
func NewFixed(capacity int) *Fixed {
	if capacity <= 0 {
		panic("strbuf: capacity must be positive")
	}
	return &Fixed{buf: make([]byte, capacity)}
}

// WriteString appends s, returning bignum.ErrBufferSize if it would not
// fit in the remaining capacity. On failure the buffer is left
// unchanged.
func (f *Fixed) WriteString(s string) error {
	if f.n+len(s) > len(f.buf) {
		return bignum.ErrBufferSize
	}
	copy(f.buf[f.n:], s)
	f.n += len(s)
	return nil
}

// WriteByte appends a single byte, returning bignum.ErrBufferSize if the
// buffer is already full.
func (f *Fixed) WriteByte(c byte) error {
	if f.n >= len(f.buf) {
		return bignum.ErrBufferSize
	}
	f.buf[f.n] = c
	f.n++
	return nil
}

// String returns the buffer's contents so far.
func (f *Fixed) String() string { return string(f.buf[:f.n]) }

// Len returns the number of bytes written so far.
func (f *Fixed) Len() int { return f.n }

// Cap returns the buffer's total capacity in bytes.
func (f *Fixed) Cap() int { return len(f.buf) }

// Reset empties the buffer for reuse without reallocating.
func (f *Fixed) Reset() { f.n = 0 }
