// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/arithlab/bignum/bignum"
	"github.com/stretchr/testify/require"
)

func TestRunTracedGcd(t *testing.T) {
	steps, err := runTraced("gcd", 8, []string{"252", "105"})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]
	require.Equal(t, "21", last.Decimal)
}

func TestRunTracedEgcd(t *testing.T) {
	steps, err := runTraced("egcd", 8, []string{"240", "46"})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
}

func TestRunTracedModExp(t *testing.T) {
	steps, err := runTraced("modexp", 8, []string{"4", "13", "497"})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
}

func TestRunTracedMontgomery(t *testing.T) {
	steps, err := runTraced("montgomery", 8, []string{"123", "456", "1000003"})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
}

func TestRunTracedRejectsUnknownOp(t *testing.T) {
	_, err := runTraced("nope", 8, []string{"1", "2"})
	require.Error(t, err)
}

func TestRunTracedRejectsWrongArity(t *testing.T) {
	_, err := runTraced("gcd", 8, []string{"1"})
	require.Error(t, err)
}

func TestTraceRoundTrip(t *testing.T) {
	steps, err := runTraced("gcd", 8, []string{"252", "105"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTrace(&buf, steps))

	readBack, err := ReadTrace(&buf)
	require.NoError(t, err)
	require.Equal(t, steps, readBack)
}

func TestParseOperandHexAndDecimal(t *testing.T) {
	z := bignum.New(4)
	require.NoError(t, parseOperand(z, "0x1a"))
	require.Equal(t, uint32(26), z.GetBits(0, 32))

	z2 := bignum.New(4)
	require.NoError(t, parseOperand(z2, "-26"))
	require.Equal(t, -1, z2.GetSign())
}
