// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// DivMod sets q = x/y (quotient truncated toward zero) and r = x - q*y
// (remainder taking x's sign, or zero). q and r must not alias x, y, or
// each other. ErrDivByZero is returned if y is zero; ErrCapacity if q or
// r cannot hold the result. q's capacity is checked against the
// normalised dividend, so it needs one word more than the quotient
// whenever normalising x carries it into an extra top word.
//
// The algorithm is Knuth's Algorithm D: normalise the divisor so its top
// word's high bit is set (shifting the dividend by the same amount),
// then for each quotient digit from the top down, estimate it as a
// 64-by-32 division of the remainder's top two words by the divisor's
// top word, refine against the divisor's second word, and correct by at
// most a couple of decrements once the estimate is tried against the
// full multi-word product — the division never needs more than two
// corrections once the divisor is normalised this way.
func DivMod(q, r, x, y *Int) error {
	q.checkMutable()
	r.checkMutable()
	if y.IsZero() {
		return ErrDivByZero
	}

	if MagLt(x, y) {
		q.SetU(0)
		if err := r.Dup(x); err != nil {
			return err
		}
		return nil
	}

	yn := newScratchSized(y.usedWords() + 1)
	if err := yn.Dup(y); err != nil {
		return err
	}
	yn.setSign(1)
	s := wordBits - topSetBitIndex(yn.w[yn.top])
	if s > 0 {
		if err := yn.Shl(s); err != nil {
			return err
		}
	}

	rn := newScratchSized(x.usedWords() + 2)
	if err := rn.Dup(x); err != nil {
		return err
	}
	rn.setSign(1)
	if s > 0 {
		if err := rn.Shl(s); err != nil {
			return err
		}
	}

	n := yn.usedWords()
	m := rn.usedWords() - n
	if m < 0 {
		m = 0
	}
	if q.Capacity() < m+1 {
		return ErrCapacity
	}
	q.SetU(0)
	if err := q.ClearTop(m + 1); err != nil {
		return err
	}

	ytop := yn.w[yn.top]
	var ytop2 Word
	if yn.top > 0 {
		ytop2 = yn.w[yn.top-1]
	}

	prod := newScratchSized(n + 2)
	shifted := newScratchSized(n + 2 + m)

	for j := m; j >= 0; j-- {
		// The window reads fixed positions j+n, j+n-1, j+n-2 of the
		// remainder, with words above the current top reading as zero;
		// shifting the window down instead would overestimate the top
		// digit by up to a full word.
		hi := rn.wordAt(j + n)
		mid := rn.wordAt(j + n - 1)
		lo := rn.wordAt(j + n - 2)

		guess := estimateQuotientDigit(hi, mid, lo, ytop, ytop2)

		var k Word
		for {
			if guess == 0 {
				k = 0
				break
			}
			if err := MulByWord(prod, yn, guess); err != nil {
				return err
			}
			if err := shifted.Dup(prod); err != nil {
				return err
			}
			if err := shifted.shlWords(j); err != nil {
				return err
			}
			if MagLte(shifted, rn) {
				k = guess
				break
			}
			guess--
		}
		if k > 0 {
			if err := unsignedSub(rn, rn, shifted); err != nil {
				return err
			}
		}
		q.w[j] = k
	}
	q.canon()

	if s > 0 {
		if err := rn.Shr(s); err != nil {
			return err
		}
	}
	if err := r.Dup(rn); err != nil {
		return err
	}

	qneg := x.neg != y.neg && !q.IsZero()
	q.setSign(boolSign(qneg))
	q.canon()

	rneg := x.neg && !r.IsZero()
	r.setSign(boolSign(rneg))
	r.canon()

	return nil
}

// estimateQuotientDigit implements Knuth's Algorithm D steps D3: guess the
// next quotient digit as floor((hi*2^32+mid) / ytop), capped at the
// largest word value, then refine it down using the divisor's second
// word and the remainder's third word so the final multiply-subtract
// correction loop in DivMod needs at most one or two decrements.
func estimateQuotientDigit(hi, mid, lo, ytop, ytop2 Word) Word {
	num := uint64(hi)<<32 | uint64(mid)
	var guess uint64
	if hi >= ytop {
		guess = 0xFFFFFFFF
	} else {
		guess = num / uint64(ytop)
	}

	for guess > 0xFFFFFFFF {
		guess--
	}
	for guess > 0 {
		rem := num - guess*uint64(ytop)
		if rem > 0xFFFFFFFF {
			break
		}
		if guess*uint64(ytop2) > rem<<32|uint64(lo) {
			guess--
			continue
		}
		break
	}
	return Word(guess)
}

// Div sets q = x/y, discarding the remainder into a scratch value.
func Div(q, x, y *Int) error {
	r := newScratch()
	return DivMod(q, r, x, y)
}

// Mod sets r = x - (x/y)*y, discarding the quotient into a scratch value.
func Mod(r, x, y *Int) error {
	q := newScratchSized(x.usedWords() + 1)
	return DivMod(q, r, x, y)
}
