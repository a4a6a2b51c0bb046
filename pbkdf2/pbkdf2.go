// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pbkdf2 provides PBKDF2 password-based key derivation over a
// selectable SHA-2 variant.
//
// https://datatracker.ietf.org/doc/html/rfc8018
package pbkdf2

import (
	"encoding/binary"

	hazmat "github.com/dark-bio/hazmat-go"
	"github.com/dark-bio/hazmat-go/hmac"
)

// DeriveKey stretches the password into exactly keyLen bytes using
// iterations rounds of HMAC under the chosen variant. Fails with
// ErrInvalidParams if iterations or keyLen is less than one.
//
// The iteration count is the caller's only knob for wall-clock cost; for
// interactive logins it should be in the hundreds of thousands.
func DeriveKey(password, salt []byte, iterations, keyLen int, h hazmat.Hash) ([]byte, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, hazmat.ErrInvalidParams
	}

	hLen := h.Size()
	blocks := 1 + (keyLen-1)/hLen
	dk := make([]byte, 0, blocks*hLen)

	// Block i: U1 = HMAC(password, salt || BE32(i)),
	// Uj = HMAC(password, U(j-1)), T(i) = U1 xor ... xor U(iterations).
	buf := make([]byte, len(salt)+4)
	copy(buf, salt)
	for i := 1; i <= blocks; i++ {
		binary.BigEndian.PutUint32(buf[len(salt):], uint32(i))

		u := hmac.Sum(password, buf, h)
		t := append([]byte(nil), u...)
		for j := 2; j <= iterations; j++ {
			next := hmac.Sum(password, u, h)
			hazmat.Wipe(u)
			u = next
			for k := range t {
				t[k] ^= u[k]
			}
		}
		hazmat.Wipe(u)
		dk = append(dk, t...)
		hazmat.Wipe(t)
	}

	hazmat.Wipe(dk[keyLen:])
	return dk[:keyLen:keyLen], nil
}

// Verify recomputes DeriveKey and compares the result against expected in
// constant time. Mismatched content, mismatched length, and parameters that
// make the derivation itself fail all collapse into ErrVerification.
func Verify(expected, password, salt []byte, iterations, keyLen int, h hazmat.Hash) error {
	dk, err := DeriveKey(password, salt, iterations, keyLen, h)
	if err != nil {
		return hazmat.ErrVerification
	}
	defer hazmat.Wipe(dk)
	if hazmat.Equal(dk, expected) != nil {
		return hazmat.ErrVerification
	}
	return nil
}
