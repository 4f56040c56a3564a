// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bignumstr formats and parses bignum.Int values as signed hex
// and decimal text. String conversion is kept out of the arithmetic
// core on purpose: everything here is a plain caller of the public
// bignum API, with its own allocation behaviour.
package bignumstr

import (
	"strings"

	"github.com/arithlab/bignum/bignum"
)

const hexDigits = "0123456789abcdef"

// FormatHex renders a as a signed hexadecimal string: an optional "-",
// then "0x", then both hex digits of every magnitude byte from the most
// significant down to the least — always an even number of digits, the
// high nibble of the top byte included even when it is zero (so 1 is
// "0x01", not "0x1", and zero itself is "0x00").
func FormatHex(a *bignum.Int) string {
	var b strings.Builder
	if a.GetSign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString("0x")
	nbytes := a.LenBytes()
	for i := nbytes - 1; i >= 0; i-- {
		by := a.GetByte(i)
		b.WriteByte(hexDigits[by>>4])
		b.WriteByte(hexDigits[by&0xf])
	}
	return b.String()
}

// ParseHex parses a signed hexadecimal string (with an optional leading
// "-" and optional "0x"/"0X" prefix) into z. It returns
// bignum.ErrInvalidString on malformed input and bignum.ErrCapacity if z
// is too small to hold the result.
func ParseHex(z *bignum.Int, s string) error {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return bignum.ErrInvalidString
	}

	z.SetU(0)
	for _, r := range s {
		var digit uint8
		switch {
		case r >= '0' && r <= '9':
			digit = uint8(r - '0')
		case r >= 'a' && r <= 'f':
			digit = uint8(r-'a') + 10
		case r >= 'A' && r <= 'F':
			digit = uint8(r-'A') + 10
		default:
			return bignum.ErrInvalidString
		}
		if err := shiftInHexDigit(z, digit); err != nil {
			return err
		}
	}
	if neg {
		z.SetSign(-1)
	}
	return nil
}

func shiftInHexDigit(z *bignum.Int, digit uint8) error {
	if err := z.Shl(4); err != nil {
		return err
	}
	return bignum.AddUnsigned(z, z, constWord(z.Capacity(), uint32(digit)))
}

func constWord(capWords int, v uint32) *bignum.Int {
	w := bignum.New(capWords)
	w.SetU(v)
	return w
}

// FormatDecimal renders a as a signed base-10 string, via repeated
// division by a nine-digit chunk (10^9) so most of the work is spent in
// DivMod rather than per-digit Mod-by-10 calls.
func FormatDecimal(a *bignum.Int) string {
	if a.IsZero() {
		return "0"
	}
	neg := a.GetSign() < 0

	words := a.LenWords() + 1
	if words > bignum.MaxWords {
		words = bignum.MaxWords
	}
	work := bignum.New(words)
	work.Dup(a)
	work.SetSign(1)

	chunkDivisor := constWord(words, 1000000000)
	q := bignum.New(words)
	r := bignum.New(words)

	var chunks []uint32
	for !work.IsZero() {
		if err := bignum.DivMod(q, r, work, chunkDivisor); err != nil {
			break
		}
		chunks = append(chunks, r.GetBits(0, 32))
		work.Dup(q)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		if i == len(chunks)-1 {
			b.WriteString(itoaTrim(chunks[i]))
		} else {
			b.WriteString(itoaPad9(chunks[i]))
		}
	}
	return b.String()
}

func itoaTrim(v uint32) string {
	if v == 0 {
		return "0"
	}
	var digits [10]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return string(digits[i:])
}

func itoaPad9(v uint32) string {
	var digits [9]byte
	for i := 8; i >= 0; i-- {
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return string(digits[:])
}

// ParseDecimal parses a signed base-10 string into z, returning
// bignum.ErrInvalidString on malformed input.
func ParseDecimal(z *bignum.Int, s string) error {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return bignum.ErrInvalidString
	}

	z.SetU(0)
	tmp := bignum.New(z.Capacity())
	for _, r := range s {
		if r < '0' || r > '9' {
			return bignum.ErrInvalidString
		}
		if err := bignum.MultByWord(tmp, z, z, 10); err != nil {
			return err
		}
		if err := bignum.AddUnsigned(z, z, constWord(z.Capacity(), uint32(r-'0'))); err != nil {
			return err
		}
	}
	if neg {
		z.SetSign(-1)
	}
	return nil
}
