// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bignum implements arbitrary-precision signed integers for
// low-level cryptographic primitives: RSA-style modular exponentiation,
// Diffie-Hellman, and modular inversion.
//
// Values are sign-magnitude, stored as a little-endian vector of 32-bit
// words in caller-owned, fixed-capacity storage. No operation in this
// package grows or reallocates a value's storage: every destination is
// either an Int the caller constructed with New (which carries its own
// backing array) or one passed in explicitly, and every fallible operation
// returns ErrCapacity rather than growing storage. Internal temporaries
// are fixed-size word arrays (see scratch.go); because they are returned
// by pointer, the Go compiler places them on the heap, so operations that
// use them do make fixed-size heap allocations. This is the central way this package
// departs from math/big, which reallocates destinations freely.
//
// Two families of failure exist. Recoverable errors (ErrCapacity,
// ErrDivByZero, ErrNoInverse, ErrInvalidString, ErrBufferSize) are returned
// through the normal error return value. Programmer errors — mutating an
// immutable value, violating an aliasing contract a method documents,
// calling a method on an Int that fails Check — panic: they are a bug in
// the caller, not a condition the caller can usefully recover from.
package bignum
