// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

// Word is the radix-B digit this package operates on; B = 2**32.
type Word = uint32

const (
	wordBits  = 32
	wordBytes = 4
)

// addWord adds v into dst[0], propagating any carry up through dst[1],
// dst[2], and so on. The caller guarantees dst has enough trailing
// capacity to absorb the carry chain; this is the word-vector primitive
// every carry-propagating operation (add, mulAccum, Montgomery) is built
// from.
func addWord(dst []Word, v Word) {
	if v == 0 {
		return
	}
	old := dst[0]
	dst[0] += v
	if dst[0] >= old {
		return
	}
	// carry
	for i := 1; ; i++ {
		dst[i]++
		if dst[i] != 0 {
			return
		}
	}
}

// addUint64 adds a 64-bit value into dst at word offsets 0 and 1, as two
// calls to addWord.
func addUint64(dst []Word, v uint64) {
	addWord(dst, Word(v))
	addWord(dst[1:], Word(v>>32))
}

// mulAccum multiplies each of the n words of src by m and accumulates the
// 64-bit product into dst, starting at dst[0]. This is the inner loop of
// both schoolbook multiplication and the Montgomery reduction step. dst
// must have room for n+2 words of carry-out.
func mulAccum(dst []Word, src []Word, n int, m Word) {
	for i := 0; i < n; i++ {
		product := uint64(src[i]) * uint64(m)
		addUint64(dst[i:], product)
	}
}

// topSetBitIndex returns the 1-based position of the highest set bit of w,
// or 0 if w is zero. topSetBitIndex(1) == 1, topSetBitIndex(3) == 2,
// topSetBitIndex(0xFFFFFFFF) == 32.
func topSetBitIndex(w Word) int {
	return bits.Len32(w)
}
