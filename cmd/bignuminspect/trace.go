// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main implements bignuminspect, a terminal step inspector for
// bignum.Tracer traces: run a traced operation (or load a saved trace)
// and walk its intermediate values one labelled step at a time, instead
// of rebuilding the library with debug printing compiled in.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arithlab/bignum/bignum"
	"github.com/arithlab/bignum/bignumstr"
)

// Snapshot is one labelled step of a traced bignum operation: everything
// bignuminspect's right-hand pane needs to render a value without
// depending on the *bignum.Int that produced it remaining alive.
type Snapshot struct {
	Label     string   `json:"label"`
	Sign      int      `json:"sign"`
	Words     []uint32 `json:"words"`
	Hex       string   `json:"hex"`
	Decimal   string   `json:"decimal"`
	Canonical bool     `json:"canonical"`
}

// snapshotOf builds a Snapshot from a value handed to a bignum.Tracer
// callback.
func snapshotOf(label string, value *bignum.Int) Snapshot {
	words := make([]uint32, value.LenWords())
	for i := range words {
		words[i] = value.GetBits(i*32, 32)
	}
	return Snapshot{
		Label:     label,
		Sign:      value.GetSign(),
		Words:     words,
		Hex:       bignumstr.FormatHex(value),
		Decimal:   bignumstr.FormatDecimal(value),
		Canonical: len(words) == 1 || words[len(words)-1] != 0,
	}
}

// collectingTracer returns a bignum.Tracer that appends every step to an
// internal slice, and a func to retrieve the accumulated snapshots afterward.
func collectingTracer() (bignum.Tracer, func() []Snapshot) {
	var steps []Snapshot
	return func(label string, value *bignum.Int) {
		steps = append(steps, snapshotOf(label, value))
	}, func() []Snapshot { return steps }
}

// WriteTrace writes steps to w as newline-delimited JSON, one Snapshot
// per line, so a trace can be saved and replayed without re-running the
// operation that produced it.
func WriteTrace(w io.Writer, steps []Snapshot) error {
	enc := json.NewEncoder(w)
	for _, s := range steps {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

// ReadTrace reads a newline-delimited JSON trace previously written by
// WriteTrace.
func ReadTrace(r io.Reader) ([]Snapshot, error) {
	var steps []Snapshot
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s Snapshot
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("parse trace line: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, scanner.Err()
}

// runTraced dispatches one of the four instrumented operations (gcd,
// egcd, modexp, montgomery) over literal decimal/hex operands and
// returns the steps its Tracer recorded.
func runTraced(op string, capWords int, operands []string) ([]Snapshot, error) {
	args := make([]*bignum.Int, len(operands))
	for i, s := range operands {
		z := bignum.New(capWords)
		if err := parseOperand(z, s); err != nil {
			return nil, fmt.Errorf("operand %d (%q): %w", i, s, err)
		}
		args[i] = z
	}

	trace, steps := collectingTracer()

	switch op {
	case "gcd":
		if len(args) != 2 {
			return nil, fmt.Errorf("gcd needs 2 operands, got %d", len(args))
		}
		v := bignum.New(capWords)
		if err := bignum.GcdTraced(v, args[0], args[1], trace); err != nil {
			return nil, err
		}
	case "egcd":
		if len(args) != 2 {
			return nil, fmt.Errorf("egcd needs 2 operands, got %d", len(args))
		}
		v, s, tt := bignum.New(capWords), bignum.New(capWords), bignum.New(capWords)
		if err := bignum.ExtendedGcdTraced(v, s, tt, args[0], args[1], trace); err != nil {
			return nil, err
		}
	case "modexp":
		if len(args) != 3 {
			return nil, fmt.Errorf("modexp needs 3 operands (base, exp, mod), got %d", len(args))
		}
		z := bignum.New(capWords)
		if err := bignum.ModExpTraced(z, args[0], args[1], args[2], trace); err != nil {
			return nil, err
		}
	case "montgomery":
		if len(args) != 3 {
			return nil, fmt.Errorf("montgomery needs 3 operands (a, b, mod), got %d", len(args))
		}
		if !args[2].IsOdd() {
			return nil, fmt.Errorf("montgomery requires an odd modulus")
		}
		ctx, err := bignum.NewMontyContext(args[2])
		if err != nil {
			return nil, err
		}
		ctx = ctx.WithTracer(trace)
		am, bm, prod := bignum.New(capWords), bignum.New(capWords), bignum.New(capWords)
		if err := ctx.ToMonty(am, args[0]); err != nil {
			return nil, err
		}
		if err := ctx.ToMonty(bm, args[1]); err != nil {
			return nil, err
		}
		if err := ctx.MulMod(prod, am, bm); err != nil {
			return nil, err
		}
		out := bignum.New(capWords)
		if err := ctx.FromMonty(out, prod); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown operation %q (want gcd, egcd, modexp, or montgomery)", op)
	}

	return steps(), nil
}

func parseOperand(z *bignum.Int, s string) error {
	body := s
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return bignumstr.ParseHex(z, s)
	}
	return bignumstr.ParseDecimal(z, s)
}

func loadTraceFile(path string) ([]Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTrace(f)
}

func saveTraceFile(path string, steps []Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTrace(f, steps)
}
