// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Mul sets z = a * b via schoolbook multiplication. z must not alias a or
// b (use Mult if it might); z's capacity must be at least
// LenBits(a)+LenBits(b) bits or ErrCapacity is returned.
func Mul(z, a, b *Int) error {
	z.checkMutable()

	sza, szb := a.LenBits(), b.LenBits()

	if (sza == 1 && Eq32(a, 0)) || (szb == 1 && Eq32(b, 0)) {
		z.Set(0)
		return nil
	}
	if sza == 1 && Eq32(a, 1) {
		return z.Dup(b)
	}
	if szb == 1 && Eq32(b, 1) {
		return z.Dup(a)
	}

	if z.CapacityBits() < sza+szb {
		return ErrCapacity
	}

	if sza > szb {
		a, b = b, a
		sza, szb = szb, sza
	}
	if z == a || z == b {
		panic("bignum: Mul destination must not alias its operands")
	}

	z.Set(0)
	needWords := (sza + szb + wordBits - 1) / wordBits
	if err := z.ClearTop(needWords); err != nil {
		return err
	}

	nb := b.usedWords()
	for i := 0; i <= a.top; i++ {
		mulAccum(z.w[i:], b.w, nb, a.w[i])
	}

	if a.neg != b.neg {
		z.setSign(-1)
	}
	z.canon()
	return nil
}

// MulByWord sets z = a * w. z must not alias a.
func MulByWord(z, a *Int, w Word) error {
	if w == 0 {
		z.checkMutable()
		z.Set(0)
		return nil
	}
	if w == 1 {
		return z.Dup(a)
	}

	z.checkMutable()
	if z == a {
		panic("bignum: MulByWord destination must not alias its operand")
	}

	sza := a.LenBits()
	szw := topSetBitIndex(w)
	if z.CapacityBits() < sza+szw {
		return ErrCapacity
	}

	na := a.usedWords()
	z.Set(0)
	needWords := (sza + szw + wordBits - 1) / wordBits
	if err := z.ClearTop(needWords); err != nil {
		return err
	}
	mulAccum(z.w, a.w, na, w)

	z.setSign(boolSign(a.neg))
	z.canon()
	return nil
}

func boolSign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// Mult is the aliasing-safe wrapper around Mul: if r aliases a or b, it
// multiplies into tmp first and then copies the result into r. tmp must
// not alias a, b, or r.
func Mult(tmp, r, a, b *Int) error {
	if r == a || r == b {
		if err := Mul(tmp, a, b); err != nil {
			return err
		}
		return r.Dup(tmp)
	}
	return Mul(r, a, b)
}

// MultByWord is the aliasing-safe wrapper around MulByWord.
func MultByWord(tmp, r, a *Int, w Word) error {
	if r == a {
		if err := MulByWord(tmp, a, w); err != nil {
			return err
		}
		return r.Dup(tmp)
	}
	return MulByWord(r, a, w)
}
