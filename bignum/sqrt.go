// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Sqrt sets z = floor(sqrt(a)) for non-negative a, via Newton's method:
// starting from a power-of-two guess comfortably above the true root,
// repeatedly average the guess with a/guess until it stops decreasing.
// Newton's method for square roots converges monotonically from above
// once the guess is within range, so the loop's termination condition is
// simply "the new guess is not smaller than the last one". z must not
// alias a.
func Sqrt(z, a *Int) error {
	z.checkMutable()
	if a.neg {
		panic("bignum: Sqrt requires a non-negative operand")
	}
	if a.IsZero() {
		z.SetU(0)
		return nil
	}
	if Eq32(a, 1) {
		z.Set(1)
		return nil
	}

	bits := a.LenBits()
	guessBits := (bits + 1) / 2

	x := newScratch()
	if err := x.SetBit(1, guessBits); err != nil {
		return err
	}

	q := newScratchSized(a.usedWords() + 2)
	r := newScratchSized(a.usedWords() + 2)
	sum := newScratch()
	next := newScratch()

	for {
		if err := DivMod(q, r, a, x); err != nil {
			return err
		}
		if err := Add(sum, x, q); err != nil {
			return err
		}
		if err := sum.Shr(1); err != nil {
			return err
		}
		if MagGte(sum, x) {
			break
		}
		if err := next.Dup(sum); err != nil {
			return err
		}
		x, next = next, x
	}

	return z.Dup(x)
}
