// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// ModMul sets z = a*b mod m, with the result in [0, m). For odd m it
// builds a one-shot MontyContext and routes through Montgomery
// multiplication; for even m it falls back to plain multiply-then-
// reduce. z must not alias a, b, or m.
func ModMul(z, a, b, m *Int) error {
	z.checkMutable()
	if m.IsZero() {
		return ErrDivByZero
	}

	if m.IsOdd() {
		ctx, err := NewMontyContext(m)
		if err != nil {
			return err
		}
		ar, br := newScratch(), newScratch()
		if err := reduceNonNegative(ar, a, m); err != nil {
			return err
		}
		if err := reduceNonNegative(br, b, m); err != nil {
			return err
		}
		am, bm := newScratch(), newScratch()
		if err := ctx.ToMonty(am, ar); err != nil {
			return err
		}
		if err := ctx.ToMonty(bm, br); err != nil {
			return err
		}
		prod := newScratch()
		if err := ctx.MulMod(prod, am, bm); err != nil {
			return err
		}
		return ctx.FromMonty(z, prod)
	}

	prod := newScratchSized(a.usedWords() + b.usedWords() + 1)
	if err := Mul(prod, a, b); err != nil {
		return err
	}
	return reduceNonNegative(z, prod, m)
}

// reduceNonNegative sets z = a mod m in [0, m), unlike plain Mod (whose
// remainder follows the dividend's sign); Montgomery's bookkeeping and
// modular exponentiation both need operands already in that range.
func reduceNonNegative(z, a, m *Int) error {
	if err := Mod(z, a, m); err != nil {
		return err
	}
	if z.neg {
		return Add(z, z, m)
	}
	return nil
}
