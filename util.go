// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hazmat

import (
	"crypto/rand"
	"crypto/subtle"
)

// RandomBytes returns n bytes read from the operating system's CSPRNG.
// Fails with ErrInvalidParams if n is less than one or if the OS entropy
// source cannot be read. There is no upper bound on n.
func RandomBytes(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidParams
	}
	out := make([]byte, n)
	if _, err := rand.Read(out); err != nil {
		return nil, ErrInvalidParams
	}
	return out, nil
}

// Equal compares a and b in constant time. It returns nil only when the two
// slices have equal length and equal content; every other outcome, length
// mismatch included, is ErrInvalidParams. There is no boolean result: a
// failed comparison on secret-derived data must not look different from a
// malformed one.
//
// This is the only comparison primitive the Verify operations in this
// module use.
func Equal(a, b []byte) error {
	if len(a) != len(b) {
		return ErrInvalidParams
	}
	if subtle.ConstantTimeCompare(a, b) != 1 {
		return ErrInvalidParams
	}
	return nil
}

// Wipe overwrites b with zero bytes. The construction packages call this on
// every secret intermediate they allocate, on error paths as well as on
// success. Callers holding long-lived key material should do the same.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
