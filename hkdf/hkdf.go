// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hkdf provides HKDF extract-and-expand key derivation over a
// selectable SHA-2 variant.
//
// https://datatracker.ietf.org/doc/html/rfc5869
package hkdf

import (
	hazmat "github.com/dark-bio/hazmat-go"
	"github.com/dark-bio/hazmat-go/hmac"
)

// Extract condenses the input keying material into a pseudorandom key of
// h.Size() bytes. The salt keys the MAC and the keying material is the
// message, not the other way around. The salt may be empty.
func Extract(salt, ikm []byte, h hazmat.Hash) []byte {
	return hmac.Sum(salt, ikm, h)
}

// Expand stretches a pseudorandom key into length bytes of output keying
// material, mixing in the optional context info. Fails with ErrInvalidParams
// if length is less than one or greater than 255 * h.Size(): the RFC's
// single-byte block counter cannot go further.
func Expand(prk, info []byte, length int, h hazmat.Hash) ([]byte, error) {
	hLen := h.Size()
	if length < 1 || length > 255*hLen {
		return nil, hazmat.ErrInvalidParams
	}

	n := 1 + (length-1)/hLen
	okm := make([]byte, 0, n*hLen)

	// T(0) is empty; T(i) = HMAC(prk, T(i-1) || info || byte(i)).
	var prev []byte
	for i := 1; i <= n; i++ {
		msg := make([]byte, 0, len(prev)+len(info)+1)
		msg = append(msg, prev...)
		msg = append(msg, info...)
		msg = append(msg, byte(i))

		t := hmac.Sum(prk, msg, h)
		hazmat.Wipe(msg)
		hazmat.Wipe(prev)
		okm = append(okm, t...)
		prev = t
	}
	hazmat.Wipe(prev)

	hazmat.Wipe(okm[length:])
	return okm[:length:length], nil
}

// DeriveKey runs Extract and Expand in sequence. The intermediate
// pseudorandom key is wiped whether Expand succeeds or not.
func DeriveKey(salt, ikm, info []byte, length int, h hazmat.Hash) ([]byte, error) {
	prk := Extract(salt, ikm, h)
	defer hazmat.Wipe(prk)
	return Expand(prk, info, length, h)
}

// Verify recomputes DeriveKey and compares the result against expected in
// constant time. Mismatched content, mismatched length, and parameters that
// make the derivation itself fail all collapse into ErrVerification.
func Verify(expected, salt, ikm, info []byte, length int, h hazmat.Hash) error {
	okm, err := DeriveKey(salt, ikm, info, length, h)
	if err != nil {
		return hazmat.ErrVerification
	}
	defer hazmat.Wipe(okm)
	if hazmat.Equal(okm, expected) != nil {
		return hazmat.ErrVerification
	}
	return nil
}
