// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Tracer receives a labelled snapshot of an intermediate value during a
// multi-step algorithm (Montgomery reduction, GCD, modular
// exponentiation). label identifies the step ("mulmod", "sqrmod", "a0",
// "b0", "v", and so on); value is a fresh copy of the Int at that point,
// separate from the algorithm's working storage, so it may be retained.
type Tracer func(label string, value *Int)

// WithTracer returns a context wrapping ctx whose Montgomery operations
// (MulMod, SqrMod, ToMonty, FromMonty) call trace after every step. A
// nil trace disables tracing, same as not calling WithTracer at all.
func (ctx *MontyContext) WithTracer(trace Tracer) *MontyContext {
	cp := *ctx
	cp.trace = trace
	return &cp
}

func (ctx *MontyContext) emit(label string, value *Int) {
	if ctx.trace == nil {
		return
	}
	snapshot := newScratch()
	if err := snapshot.Dup(value); err != nil {
		return
	}
	ctx.trace(label, snapshot)
}
