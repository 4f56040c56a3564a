// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// MontyContext holds the precomputed values Montgomery multiplication
// needs for a fixed odd modulus m: the word count n, the one-word
// reduction multiplier (m' such that m*m' ≡ -1 mod 2^32, found via a
// handful of Newton's-method doublings), and R mod m / R^2 mod m for
// moving values in and out of Montgomery form.
type MontyContext struct {
	m      *Int
	n      int
	mPrime Word
	rMod   *Int
	r2Mod  *Int
	trace  Tracer
}

// NewMontyContext precomputes the constants needed to do repeated
// Montgomery multiplications modulo m. m must be odd; it is not copied,
// so it must not be mutated or go out of scope while the context is in
// use.
func NewMontyContext(m *Int) (*MontyContext, error) {
	if m.IsEven() {
		panic("bignum: Montgomery modulus must be odd")
	}
	n := m.usedWords()

	mPrime := -newtonModInverse(m.w[0])

	r := newScratch()
	if err := r.SetBit(1, n*wordBits); err != nil {
		return nil, err
	}
	rMod := newScratch()
	if err := Mod(rMod, r, m); err != nil {
		return nil, err
	}

	r2 := newScratch()
	if err := Mul(r2, rMod, rMod); err != nil {
		return nil, err
	}
	r2Mod := newScratch()
	if err := Mod(r2Mod, r2, m); err != nil {
		return nil, err
	}

	return &MontyContext{m: m, n: n, mPrime: mPrime, rMod: rMod, r2Mod: r2Mod}, nil
}

// newtonModInverse computes v^-1 mod 2^32 for odd v, via the standard
// doubling-precision Newton iteration (x_{k+1} = x_k*(2 - v*x_k)): each
// iteration doubles the number of correct low bits, so five iterations
// starting from the correct low 3 bits take it past 32.
func newtonModInverse(v Word) Word {
	x := v // correct mod 8 already, since v is odd
	for i := 0; i < 5; i++ {
		x = x * (2 - v*x)
	}
	return x
}

// ToMonty sets z = a*R mod m, a's Montgomery representation.
func (ctx *MontyContext) ToMonty(z, a *Int) error {
	return ctx.MulMod(z, a, ctx.r2Mod)
}

// FromMonty sets z = a*R^-1 mod m, converting a out of Montgomery form.
func (ctx *MontyContext) FromMonty(z, a *Int) error {
	one := newScratch()
	one.Set(1)
	return ctx.MulMod(z, a, one)
}

// MulMod sets z = a*b*R^-1 mod m — Montgomery multiplication, CIOS-style.
// It accumulates a*b into a 2n-word running total the way schoolbook
// multiplication would, except that after adding in a[i]*b it
// immediately cancels the newly-finalised word t[i] by adding a multiple
// of m chosen (via mPrime) to make it a multiple of 2^32; because m is
// odd this is always possible, and because the cancelled words are never
// touched again the whole computation can run forward through a single
// 2n+2-word accumulator without ever explicitly shifting it. The high
// n+1 words of the accumulator are the result, reduced by at most one
// final subtraction of m. Operands outside [0, m) are first reduced mod m.
// z must not alias a or b.
func (ctx *MontyContext) MulMod(z, a, b *Int) error {
	if a.neg || !MagLt(a, ctx.m) {
		ar := newScratch()
		if err := reduceNonNegative(ar, a, ctx.m); err != nil {
			return err
		}
		a = ar
	}
	if b.neg || !MagLt(b, ctx.m) {
		br := newScratch()
		if err := reduceNonNegative(br, b, ctx.m); err != nil {
			return err
		}
		b = br
	}
	n := ctx.n
	nb := b.usedWords()
	nm := ctx.m.usedWords()

	t := newScratchSized(2*n + 2)
	t.SetU(0)

	for i := 0; i < n; i++ {
		var ai Word
		if i <= a.top {
			ai = a.w[i]
		}
		if ai != 0 {
			mulAccum(t.w[i:], b.words(), nb, ai)
		}
		u := t.w[i] * ctx.mPrime
		if u != 0 {
			mulAccum(t.w[i:], ctx.m.words(), nm, u)
		}
	}

	result := newScratchSized(n + 2)
	copy(result.w, t.w[n:])
	result.top = len(result.w) - 1
	result.canon()

	if MagGte(result, ctx.m) {
		if err := unsignedSub(result, result, ctx.m); err != nil {
			return err
		}
	}

	z.checkMutable()
	if err := z.Dup(result); err != nil {
		return err
	}
	ctx.emit("mulmod", z)
	return nil
}

// SqrMod sets z = a*a*R^-1 mod m; a convenience wrapper around MulMod
// for the common case of Montgomery squaring during modular
// exponentiation.
func (ctx *MontyContext) SqrMod(z, a *Int) error {
	if err := ctx.MulMod(z, a, a); err != nil {
		return err
	}
	ctx.emit("sqrmod", z)
	return nil
}
