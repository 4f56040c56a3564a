// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

func TestModInv(t *testing.T) {
	a, m := mustInt(t, 4, 17), mustInt(t, 4, 3120)
	z := New(4)
	if err := ModInv(z, a, m); err != nil {
		t.Fatal(err)
	}
	if !Eq32(z, 2753) {
		t.Errorf("modinv(17,3120) = %v, want 2753", z)
	}

	one := New(4)
	if err := ModMul(one, a, z, m); err != nil {
		t.Fatal(err)
	}
	if !Eq32(one, 1) {
		t.Errorf("17*modinv(17,3120) mod 3120 = %v, want 1", one)
	}
}

func TestModInvNoInverse(t *testing.T) {
	a, m := mustInt(t, 4, 4), mustInt(t, 4, 6)
	z := New(4)
	if err := ModInv(z, a, m); err != ErrNoInverse {
		t.Fatalf("expected ErrNoInverse, got %v", err)
	}
}
