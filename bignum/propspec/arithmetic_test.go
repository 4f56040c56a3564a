// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package propspec

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arithlab/bignum/bignum"
	"github.com/arithlab/bignum/bignumstr"
)

// dec builds a capWords-word Int from a decimal (optionally
// hex, "0x"-prefixed) literal, failing the spec immediately on a parse
// error — every literal below is hand-checked, so a failure here means
// the literal itself is wrong, not the code under test.
func dec(capWords int, s string) *bignum.Int {
	z := bignum.New(capWords)
	ExpectWithOffset(1, parse(z, s)).To(Succeed())
	return z
}

func parse(z *bignum.Int, s string) error {
	if len(s) > 1 && (s[:2] == "0x" || (s[0] == '-' && len(s) > 2 && s[1:3] == "0x")) {
		return bignumstr.ParseHex(z, s)
	}
	return bignumstr.ParseDecimal(z, s)
}

var _ = Describe("Canonicalisation and Dup", func() {
	It("Dup is the identity", func() {
		a := dec(8, "123456789012345678901234567890")
		r := bignum.New(8)
		Expect(r.Dup(a)).To(Succeed())
		Expect(bignum.Eq(r, a)).To(BeTrue())
	})

	It("leaves canonical form after every successful operation", func() {
		a := dec(8, "0xFFFFFFFF")
		b := dec(8, "1")
		r := bignum.New(8)
		Expect(bignum.Add(r, a, b)).To(Succeed())
		// 0xFFFFFFFF + 1 carries into a second word, so the canonical
		// used length grows to 2 and that new top word (the result's
		// byte 4) must be non-zero, not a leftover zero word.
		Expect(r.LenWords()).To(Equal(2))
		Expect(r.GetByte(4)).NotTo(BeZero())
	})

	It("reports zero as non-negative", func() {
		a := dec(4, "5")
		b := dec(4, "5")
		r := bignum.New(4)
		Expect(bignum.Sub(r, a, b)).To(Succeed())
		Expect(r.IsZero()).To(BeTrue())
		Expect(r.GetSign()).To(Equal(1))
	})

	It("reports LenBits(zero) == 1", func() {
		z := bignum.New(4)
		z.SetU(0)
		Expect(z.LenBits()).To(Equal(1))
	})
})

var _ = Describe("Add and Sub", func() {
	It("sub(add(a,b), b) == a", func() {
		a := dec(8, "-98765432109876543210")
		b := dec(8, "123456789")
		sum := bignum.New(8)
		Expect(bignum.Add(sum, a, b)).To(Succeed())
		back := bignum.New(8)
		Expect(bignum.Sub(back, sum, b)).To(Succeed())
		Expect(bignum.Eq(back, a)).To(BeTrue())
	})

	It("is commutative", func() {
		a := dec(8, "17")
		b := dec(8, "-42")
		ab, ba := bignum.New(8), bignum.New(8)
		Expect(bignum.Add(ab, a, b)).To(Succeed())
		Expect(bignum.Add(ba, b, a)).To(Succeed())
		Expect(bignum.Eq(ab, ba)).To(BeTrue())
	})

	It("matches the worked example 0xffffffff + 1 == 0x100000000", func() {
		a := dec(4, "0xffffffff")
		b := dec(4, "1")
		r := bignum.New(4)
		Expect(bignum.Add(r, a, b)).To(Succeed())
		Expect(bignum.Eq(r, dec(4, "0x100000000"))).To(BeTrue())
	})

	It("matches the worked example sub(0,1) == -1, add(-1,2) == 1", func() {
		r := bignum.New(4)
		Expect(bignum.Sub(r, dec(4, "0"), dec(4, "1"))).To(Succeed())
		Expect(bignum.Eq(r, dec(4, "-1"))).To(BeTrue())
		Expect(bignum.Add(r, dec(4, "-1"), dec(4, "2"))).To(Succeed())
		Expect(bignum.Eq(r, dec(4, "1"))).To(BeTrue())
	})

	It("fails with ErrCapacity one bit short of the needed room", func() {
		a := dec(1, "0xffffffff")
		b := dec(1, "1")
		r := bignum.New(1)
		Expect(bignum.Add(r, a, b)).To(MatchError(bignum.ErrCapacity))
	})
})

var _ = Describe("Multiplication and distributivity", func() {
	It("is commutative", func() {
		a, b := dec(4, "12345"), dec(4, "6789")
		ab, ba := bignum.New(8), bignum.New(8)
		tmp := bignum.New(8)
		Expect(bignum.Mult(tmp, ab, a, b)).To(Succeed())
		Expect(bignum.Mult(tmp, ba, b, a)).To(Succeed())
		Expect(bignum.Eq(ab, ba)).To(BeTrue())
	})

	It("distributes over addition: a*(b+c) == a*b + a*c", func() {
		a, b, c := dec(4, "17"), dec(4, "23"), dec(4, "31")
		sum := bignum.New(4)
		Expect(bignum.Add(sum, b, c)).To(Succeed())

		lhs := bignum.New(8)
		tmp := bignum.New(8)
		Expect(bignum.Mult(tmp, lhs, a, sum)).To(Succeed())

		ab, ac := bignum.New(8), bignum.New(8)
		Expect(bignum.Mult(tmp, ab, a, b)).To(Succeed())
		Expect(bignum.Mult(tmp, ac, a, c)).To(Succeed())
		rhs := bignum.New(8)
		Expect(bignum.Add(rhs, ab, ac)).To(Succeed())

		Expect(bignum.Eq(lhs, rhs)).To(BeTrue())
	})

	It("matches the worked example 1234567890^2 == 1524157875019052100", func() {
		a := dec(4, "1234567890")
		r := bignum.New(8)
		tmp := bignum.New(8)
		Expect(bignum.Sqr(tmp, r, a)).To(Succeed())
		Expect(bignum.Eq(r, dec(8, "1524157875019052100"))).To(BeTrue())
	})
})

var _ = Describe("Division", func() {
	It("satisfies a == q*b + r with 0 <= |r| < |b|", func() {
		a, b := dec(4, "-9876543210"), dec(4, "97")
		q, r := bignum.New(4), bignum.New(4)
		Expect(bignum.DivMod(q, r, a, b)).To(Succeed())

		recombined := bignum.New(8)
		tmp := bignum.New(8)
		Expect(bignum.Mult(tmp, recombined, q, b)).To(Succeed())
		Expect(bignum.Add(recombined, recombined, r)).To(Succeed())
		Expect(bignum.Eq(recombined, a)).To(BeTrue())
		Expect(bignum.MagLt(r, b)).To(BeTrue())
	})

	It("matches the worked example divmod(100,7) == (14, 2)", func() {
		q, r := bignum.New(4), bignum.New(4)
		Expect(bignum.DivMod(q, r, dec(4, "100"), dec(4, "7"))).To(Succeed())
		Expect(bignum.Eq32(q, 14)).To(BeTrue())
		Expect(bignum.Eq32(r, 2)).To(BeTrue())
	})

	It("divides cleanly by 1 and by itself", func() {
		a := dec(4, "123456789")
		q, r := bignum.New(4), bignum.New(4)
		Expect(bignum.DivMod(q, r, a, dec(4, "1"))).To(Succeed())
		Expect(bignum.Eq(q, a)).To(BeTrue())
		Expect(r.IsZero()).To(BeTrue())

		Expect(bignum.DivMod(q, r, a, a)).To(Succeed())
		Expect(bignum.Eq32(q, 1)).To(BeTrue())
		Expect(r.IsZero()).To(BeTrue())
	})

	It("rejects division by zero", func() {
		q, r := bignum.New(4), bignum.New(4)
		Expect(bignum.DivMod(q, r, dec(4, "10"), dec(4, "0"))).To(MatchError(bignum.ErrDivByZero))
	})
})

var _ = Describe("Shift", func() {
	It("round-trips: shr(shl(a,k),k) == a", func() {
		a := dec(4, "123456789")
		z := bignum.New(6)
		Expect(z.Dup(a)).To(Succeed())
		Expect(z.Shl(17)).To(Succeed())
		Expect(z.Shr(17)).To(Succeed())
		Expect(bignum.Eq(z, a)).To(BeTrue())
	})

	It("Trunc(a,k) == Mod(a, 2^k) for non-negative a", func() {
		a := dec(4, "123456789")
		truncated := bignum.New(6)
		Expect(truncated.Dup(a)).To(Succeed())
		Expect(truncated.Trunc(10)).To(Succeed())

		modulus := bignum.New(6)
		Expect(modulus.SetBit(1, 10)).To(Succeed())
		modded := bignum.New(6)
		Expect(bignum.Mod(modded, a, modulus)).To(Succeed())

		Expect(bignum.Eq(truncated, modded)).To(BeTrue())
	})
})

var _ = Describe("Sign", func() {
	It("neg(neg(a)) == a", func() {
		a := dec(4, "42")
		z := bignum.New(4)
		Expect(z.Dup(a)).To(Succeed())
		z.Neg()
		z.Neg()
		Expect(bignum.Eq(z, a)).To(BeTrue())
	})

	It("abs(neg(a)) == abs(a)", func() {
		a := dec(4, "42")
		z := bignum.New(4)
		Expect(z.Dup(a)).To(Succeed())
		z.Neg()
		z.Abs()
		Expect(bignum.MagEq(z, a)).To(BeTrue())
	})

	It("GetSign(zero) == +1", func() {
		z := bignum.New(4)
		z.SetU(0)
		Expect(z.GetSign()).To(Equal(1))
	})
})

var _ = Describe("Equality agreement", func() {
	It("Eq and ConstEq agree for equal-length operands", func() {
		a := dec(4, "123456789")
		b := bignum.New(4)
		Expect(b.Dup(a)).To(Succeed())
		Expect(bignum.Eq(a, b)).To(Equal(bignum.ConstEq(a, b)))

		c := dec(4, "123456790")
		Expect(bignum.Eq(a, c)).To(Equal(bignum.ConstEq(a, c)))
	})
})
