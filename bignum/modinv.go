// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// ModInv sets z = a^-1 mod m, the unique value in [0, m) such that
// a*z ≡ 1 (mod m). It is built directly on ExtendedGcd: if gcd(a, m) is
// not 1, no inverse exists and ErrNoInverse is returned. z must not
// alias a or m.
func ModInv(z, a, m *Int) error {
	z.checkMutable()
	if m.IsZero() {
		return ErrDivByZero
	}

	am := newScratch()
	if err := am.Dup(a); err != nil {
		return err
	}
	mm := newScratch()
	if err := mm.Dup(m); err != nil {
		return err
	}
	mm.setSign(1)

	amReduced := newScratch()
	if err := reduceNonNegative(amReduced, am, mm); err != nil {
		return err
	}

	g, s, t := newScratch(), newScratch(), newScratch()
	if err := ExtendedGcd(g, s, t, amReduced, mm); err != nil {
		return err
	}
	if !Eq32(g, 1) {
		return ErrNoInverse
	}

	sReduced := newScratch()
	if err := reduceNonNegative(sReduced, s, mm); err != nil {
		return err
	}
	return z.Dup(sReduced)
}
