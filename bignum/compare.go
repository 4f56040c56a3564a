// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// MagCmp compares the magnitudes of a and b, ignoring sign, returning -1,
// 0, or +1 as abs(a) is less than, equal to, or greater than abs(b).
func MagCmp(a, b *Int) int {
	la, lb := a.LenBits(), b.LenBits()
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	for i := a.top; i >= 0; i-- {
		wa, wb := a.w[i], b.w[i]
		if wa < wb {
			return -1
		}
		if wa > wb {
			return 1
		}
	}
	return 0
}

// MagLt reports whether abs(a) < abs(b).
func MagLt(a, b *Int) bool { return MagCmp(a, b) < 0 }

// MagLte reports whether abs(a) <= abs(b).
func MagLte(a, b *Int) bool { return MagCmp(a, b) <= 0 }

// MagGt reports whether abs(a) > abs(b).
func MagGt(a, b *Int) bool { return MagCmp(a, b) > 0 }

// MagGte reports whether abs(a) >= abs(b).
func MagGte(a, b *Int) bool { return MagCmp(a, b) >= 0 }

// MagEq reports whether abs(a) == abs(b).
func MagEq(a, b *Int) bool { return MagCmp(a, b) == 0 }

// Cmp compares a and b as signed values, returning -1, 0, or +1 as
// a is less than, equal to, or greater than b. Ordering is lexicographic
// on (sign, bit length, words from the top down).
func Cmp(a, b *Int) int {
	sa, sb := a.GetSign(), b.GetSign()
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	c := MagCmp(a, b)
	if sa < 0 {
		return -c
	}
	return c
}

// Lt reports whether a < b.
func Lt(a, b *Int) bool { return Cmp(a, b) < 0 }

// Lte reports whether a <= b.
func Lte(a, b *Int) bool { return Cmp(a, b) <= 0 }

// Gt reports whether a > b.
func Gt(a, b *Int) bool { return Cmp(a, b) > 0 }

// Gte reports whether a >= b.
func Gte(a, b *Int) bool { return Cmp(a, b) >= 0 }

// Eq reports whether a == b, as signed values.
func Eq(a, b *Int) bool { return Cmp(a, b) == 0 }

// Eq32 reports whether a == v, comparing against a small signed literal
// without requiring the caller to build an Int.
func Eq32(a *Int, v int32) bool {
	if a.top != 0 {
		return false
	}
	if v == 0 {
		return a.w[0] == 0
	}
	if v < 0 {
		return a.w[0] == uint32(-int64(v)) && a.neg
	}
	return a.w[0] == uint32(v) && !a.neg
}

// ConstEq reports whether a == b, like Eq, but runs in time independent of
// the values compared whenever a and b have the same used word length: it
// XORs signs, bit lengths, and the words up to the shorter operand's top
// index into a single accumulator and branches only on that loop bound,
// never on a comparison of the two magnitudes' words against one another. This is the only
// operation in the package that claims any timing guarantee.
func ConstEq(a, b *Int) bool {
	var acc Word
	if a.GetSign() != b.GetSign() {
		acc |= 1
	}
	la, lb := a.LenBits(), b.LenBits()
	acc |= Word(la ^ lb)

	n := a.top
	if b.top < n {
		n = b.top
	}
	for i := 0; i <= n; i++ {
		acc |= a.w[i] ^ b.w[i]
	}
	return acc == 0
}
