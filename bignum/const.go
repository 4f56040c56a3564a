// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Zero, One, NegOne, and Base are the package's process-wide immutable
// values. They may be used freely as read-only operands from any number
// of independent callers without coordination, since nothing may write
// to them; any attempt to mutate one panics.
var (
	Zero   = newImmutable(0, 1)
	One    = newImmutable(1, 1)
	NegOne = newImmutable(1, -1)
	Base   = newImmutable2(0, 1, 1) // 2**32
)

// newImmutable builds a single-word immutable constant.
func newImmutable(v uint32, sign int) *Int {
	z := &Int{w: []Word{v}, top: 0}
	z.neg = sign < 0 && v != 0
	z.immutable = true
	return z
}

// newImmutable2 builds a two-word immutable constant lo + hi*2**32.
func newImmutable2(lo, hi uint32, sign int) *Int {
	z := &Int{w: []Word{lo, hi}, top: 1}
	z.neg = sign < 0
	z.immutable = true
	return z
}
