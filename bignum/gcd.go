// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Gcd sets v = gcd(|x|, |y|) using the binary GCD algorithm (HAC 14.54):
// strip the common power of two from both operands, then repeatedly
// halve the even one and subtract the smaller from the larger, which
// finds the greatest common divisor using only shifts, subtractions, and
// comparisons — no division. v must not alias x or y.
func Gcd(v, x, y *Int) error {
	return gcdTrace(v, x, y, nil)
}

// emitFor builds the snapshot-and-call helper the traced algorithm
// variants share. The snapshot is duplicated before the callback sees it
// so the algorithm is free to keep mutating its working storage.
func emitFor(trace Tracer) func(label string, value *Int) {
	return func(label string, value *Int) {
		if trace == nil {
			return
		}
		snapshot := newScratch()
		if err := snapshot.Dup(value); err != nil {
			return
		}
		trace(label, snapshot)
	}
}

func gcdTrace(v, x, y *Int, trace Tracer) error {
	v.checkMutable()
	emit := emitFor(trace)

	a := newScratch()
	if err := a.Dup(x); err != nil {
		return err
	}
	a.setSign(1)
	b := newScratch()
	if err := b.Dup(y); err != nil {
		return err
	}
	b.setSign(1)
	emit("a0", a)
	emit("b0", b)

	if a.IsZero() {
		return v.Dup(b)
	}
	if b.IsZero() {
		return v.Dup(a)
	}

	shift := 0
	for a.IsEven() && b.IsEven() {
		a.Shr(1)
		b.Shr(1)
		shift++
	}
	for a.IsEven() {
		a.Shr(1)
	}
	emit("stripped-a", a)
	emit("stripped-b", b)

	for {
		for b.IsEven() {
			b.Shr(1)
		}
		if MagLt(b, a) {
			a, b = b, a
		}
		if err := unsignedSub(b, b, a); err != nil {
			return err
		}
		emit("b-after-sub", b)
		if b.IsZero() {
			break
		}
	}

	if err := v.Dup(a); err != nil {
		return err
	}
	if err := v.Shl(shift); err != nil {
		return err
	}
	emit("v", v)
	return nil
}

// ExtendedGcd sets v = gcd(x, y) and s, t such that s*x + t*y = v, for
// non-negative x and y, using the binary extended Euclidean algorithm
// (HAC 14.61). Like Gcd, it works entirely in shifts and subtractions;
// the coefficients are tracked alongside the two halving chains and
// corrected for parity with +y/-x whenever a halved
// coefficient pair isn't already even. v, s, and t must not alias x, y,
// or each other.
func ExtendedGcd(v, s, t, x, y *Int) error {
	return extendedGcdTrace(v, s, t, x, y, nil)
}

func extendedGcdTrace(v, s, t, x, y *Int, trace Tracer) error {
	v.checkMutable()
	s.checkMutable()
	t.checkMutable()
	emit := emitFor(trace)

	if x.IsZero() {
		if err := v.Dup(y); err != nil {
			return err
		}
		s.SetU(0)
		t.Set(1)
		return nil
	}
	if y.IsZero() {
		if err := v.Dup(x); err != nil {
			return err
		}
		s.Set(1)
		t.SetU(0)
		return nil
	}

	xOrig := newScratch()
	if err := xOrig.Dup(x); err != nil {
		return err
	}
	yOrig := newScratch()
	if err := yOrig.Dup(y); err != nil {
		return err
	}

	shift := 0
	for xOrig.IsEven() && yOrig.IsEven() {
		xOrig.Shr(1)
		yOrig.Shr(1)
		shift++
	}

	xp := newScratch()
	if err := xp.Dup(xOrig); err != nil {
		return err
	}
	yp := newScratch()
	if err := yp.Dup(yOrig); err != nil {
		return err
	}

	A, B, C, D := newScratch(), newScratch(), newScratch(), newScratch()
	A.Set(1)
	B.SetU(0)
	C.SetU(0)
	D.Set(1)

	for {
		for xp.IsEven() {
			if err := xp.Shr(1); err != nil {
				return err
			}
			if A.IsEven() && B.IsEven() {
				A.Shr(1)
				B.Shr(1)
			} else {
				if err := Add(A, A, yOrig); err != nil {
					return err
				}
				A.Shr(1)
				if err := Sub(B, B, xOrig); err != nil {
					return err
				}
				B.Shr(1)
			}
		}
		for yp.IsEven() {
			if err := yp.Shr(1); err != nil {
				return err
			}
			if C.IsEven() && D.IsEven() {
				C.Shr(1)
				D.Shr(1)
			} else {
				if err := Add(C, C, yOrig); err != nil {
					return err
				}
				C.Shr(1)
				if err := Sub(D, D, xOrig); err != nil {
					return err
				}
				D.Shr(1)
			}
		}
		if MagGte(xp, yp) {
			if err := Sub(xp, xp, yp); err != nil {
				return err
			}
			if err := Sub(A, A, C); err != nil {
				return err
			}
			if err := Sub(B, B, D); err != nil {
				return err
			}
		} else {
			if err := Sub(yp, yp, xp); err != nil {
				return err
			}
			if err := Sub(C, C, A); err != nil {
				return err
			}
			if err := Sub(D, D, B); err != nil {
				return err
			}
		}
		emit("A", A)
		emit("B", B)
		emit("C", C)
		emit("D", D)
		if xp.IsZero() {
			break
		}
	}

	if err := s.Dup(C); err != nil {
		return err
	}
	if err := t.Dup(D); err != nil {
		return err
	}
	if err := v.Dup(yp); err != nil {
		return err
	}
	if err := v.Shl(shift); err != nil {
		return err
	}
	emit("v", v)
	return nil
}
