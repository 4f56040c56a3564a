// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// GcdTraced is Gcd instrumented with an optional Tracer: the working
// values are emitted as they are stripped and reduced, and a nil trace
// behaves exactly like Gcd. v must not alias x or y.
func GcdTraced(v, x, y *Int, trace Tracer) error {
	return gcdTrace(v, x, y, trace)
}

// ExtendedGcdTraced is ExtendedGcd instrumented with an optional Tracer,
// emitting the A, B, C, D coefficient state (HAC 14.61's four halving
// accumulators) after every pass. v, s, and t must not alias x, y, or
// each other.
func ExtendedGcdTraced(v, s, t, x, y *Int, trace Tracer) error {
	return extendedGcdTrace(v, s, t, x, y, trace)
}

// ModExpTraced is ModExp instrumented with an optional Tracer: the
// accumulator's Montgomery form is emitted after every squaring and
// every conditional multiply. It requires an odd m; even moduli fall
// back to the untraced ModExp, since the plain square-and-multiply path
// has no Montgomery state to report on.
func ModExpTraced(z, base, exp, m *Int, trace Tracer) error {
	z.checkMutable()
	if m.IsZero() {
		return ErrDivByZero
	}
	if exp.neg {
		panic("bignum: ModExpTraced requires a non-negative exponent")
	}
	if !m.IsOdd() {
		return ModExp(z, base, exp, m)
	}
	if Eq32(m, 1) {
		z.SetU(0)
		return nil
	}
	if exp.IsZero() {
		z.Set(1)
		return nil
	}
	return modExpMontgomery(z, base, exp, m, trace)
}
