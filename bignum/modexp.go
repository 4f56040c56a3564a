// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// ModExp sets z = base^exp mod m, for non-negative exp. For odd m this
// runs HAC 14.94 (Montgomery exponentiation, bit at a time): convert the
// base into Montgomery form, then for each bit of the exponent from the
// top down, square the running accumulator and multiply in the base
// whenever that bit is set, all inside Montgomery form so every step is
// a MulMod. For even m it falls back to the same left-to-right
// square-and-multiply performed with plain ModMul. z must not alias
// base, exp, or m.
func ModExp(z, base, exp, m *Int) error {
	z.checkMutable()
	if m.IsZero() {
		return ErrDivByZero
	}
	if exp.neg {
		panic("bignum: ModExp requires a non-negative exponent")
	}

	if Eq32(m, 1) {
		z.SetU(0)
		return nil
	}
	if exp.IsZero() {
		z.Set(1)
		return nil
	}

	if m.IsOdd() {
		return modExpMontgomery(z, base, exp, m, nil)
	}
	return modExpPlain(z, base, exp, m)
}

func modExpMontgomery(z, base, exp, m *Int, trace Tracer) error {
	ctx, err := NewMontyContext(m)
	if err != nil {
		return err
	}
	if trace != nil {
		ctx = ctx.WithTracer(trace)
	}

	baseReduced := newScratch()
	if err := reduceNonNegative(baseReduced, base, m); err != nil {
		return err
	}

	accMonty := newScratch()
	if err := accMonty.Dup(ctx.rMod); err != nil { // accMonty = 1 in Montgomery form
		return err
	}
	baseMonty := newScratch()
	if err := ctx.ToMonty(baseMonty, baseReduced); err != nil {
		return err
	}

	bits := exp.LenBits()
	tmp := newScratch()
	for i := bits - 1; i >= 0; i-- {
		if err := ctx.SqrMod(tmp, accMonty); err != nil {
			return err
		}
		if err := accMonty.Dup(tmp); err != nil {
			return err
		}
		if exp.GetBit(i) != 0 {
			if err := ctx.MulMod(tmp, accMonty, baseMonty); err != nil {
				return err
			}
			if err := accMonty.Dup(tmp); err != nil {
				return err
			}
		}
	}

	return ctx.FromMonty(z, accMonty)
}

func modExpPlain(z, base, exp, m *Int) error {
	baseReduced := newScratch()
	if err := reduceNonNegative(baseReduced, base, m); err != nil {
		return err
	}

	acc := newScratch()
	acc.Set(1)

	bits := exp.LenBits()
	tmp := newScratch()
	for i := bits - 1; i >= 0; i-- {
		if err := ModMul(tmp, acc, acc, m); err != nil {
			return err
		}
		if err := acc.Dup(tmp); err != nil {
			return err
		}
		if exp.GetBit(i) != 0 {
			if err := ModMul(tmp, acc, baseReduced, m); err != nil {
				return err
			}
			if err := acc.Dup(tmp); err != nil {
				return err
			}
		}
	}

	return z.Dup(acc)
}

// ModExpWindowed is a fixed-window (k=2) variant of ModExp for odd m:
// it precomputes base^0..base^3 in Montgomery form, then consumes the
// exponent two bits at a time instead of one, trading a small table
// (four entries rather than one) for at most one table multiplication
// per two exponent bits, where the bit-at-a-time loop above makes one per
// set bit; the number of squarings is the same. This table is seeded
// directly from each power in turn rather than derived by repeated
// squaring of a single working value, avoiding the windowed variant's
// seeding mistake that the bit-at-a-time revision above was written to
// correct.
func ModExpWindowed(z, base, exp, m *Int) error {
	z.checkMutable()
	if m.IsZero() {
		return ErrDivByZero
	}
	if !m.IsOdd() {
		return ModExp(z, base, exp, m)
	}
	if exp.neg {
		panic("bignum: ModExpWindowed requires a non-negative exponent")
	}
	if Eq32(m, 1) {
		z.SetU(0)
		return nil
	}
	if exp.IsZero() {
		z.Set(1)
		return nil
	}

	ctx, err := NewMontyContext(m)
	if err != nil {
		return err
	}

	baseReduced := newScratch()
	if err := reduceNonNegative(baseReduced, base, m); err != nil {
		return err
	}
	baseMonty := newScratch()
	if err := ctx.ToMonty(baseMonty, baseReduced); err != nil {
		return err
	}

	var table [4]*Int
	table[0] = newScratch()
	if err := table[0].Dup(ctx.rMod); err != nil {
		return err
	}
	table[1] = newScratch()
	if err := table[1].Dup(baseMonty); err != nil {
		return err
	}
	tmp := newScratch()
	for i := 2; i < 4; i++ {
		table[i] = newScratch()
		if err := ctx.MulMod(tmp, table[i-1], baseMonty); err != nil {
			return err
		}
		if err := table[i].Dup(tmp); err != nil {
			return err
		}
	}

	bits := exp.LenBits()
	// Process from the top in 2-bit groups; if bits is odd, the top
	// group is a single bit (equivalent to a leading zero bit).
	pairs := (bits + 1) / 2

	acc := newScratch()
	if err := acc.Dup(ctx.rMod); err != nil {
		return err
	}
	for p := pairs - 1; p >= 0; p-- {
		if err := ctx.SqrMod(tmp, acc); err != nil {
			return err
		}
		if err := acc.Dup(tmp); err != nil {
			return err
		}
		if err := ctx.SqrMod(tmp, acc); err != nil {
			return err
		}
		if err := acc.Dup(tmp); err != nil {
			return err
		}

		hi := p*2 + 1
		lo := p * 2
		digit := exp.GetBit(lo)
		if hi < bits {
			digit |= exp.GetBit(hi) << 1
		}
		if digit != 0 {
			if err := ctx.MulMod(tmp, acc, table[digit]); err != nil {
				return err
			}
			if err := acc.Dup(tmp); err != nil {
				return err
			}
		}
	}

	return ctx.FromMonty(z, acc)
}
