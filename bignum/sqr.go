// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Sqr sets z = a*a. If z aliases a, tmp is used as scratch storage (as in
// Mult) and must not alias z or a; otherwise tmp is unused and may be nil.
// Squaring is currently just multiply-with-self — no dedicated squaring
// algorithm — with the same aliasing-safe wrapper shape as
// Mult/MultByWord.
func Sqr(tmp, z, a *Int) error {
	if z == a {
		if err := Mul(tmp, a, a); err != nil {
			return err
		}
		return z.Dup(tmp)
	}
	return Mul(z, a, a)
}
