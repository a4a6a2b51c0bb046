// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package defaults provides a high-level API with fixed, conservative
// algorithm and parameter choices: SHA-512 for the HMAC-based
// constructions and cSHAKE256 for the extendable-output hash. Every
// function forwards to the construction packages; no logic lives here.
package defaults

import (
	hazmat "github.com/dark-bio/hazmat-go"
	"github.com/dark-bio/hazmat-go/cshake"
	"github.com/dark-bio/hazmat-go/hkdf"
	"github.com/dark-bio/hazmat-go/hmac"
	"github.com/dark-bio/hazmat-go/pbkdf2"
)

const (
	// KeySize is the output length of HMAC, PBKDF2 and CShake here, and a
	// sensible length for keys generated with Key.
	KeySize = 64

	// PBKDF2Iterations is the fixed iteration count for PBKDF2. Tuned for
	// password storage, not for interactive derivation of throwaway keys.
	PBKDF2Iterations = 512_000
)

// Key returns a fresh 64-byte key from the OS CSPRNG, suitable as an HMAC
// key or HKDF salt.
func Key() ([]byte, error) {
	return hazmat.RandomBytes(KeySize)
}

// HMAC computes the HMAC-SHA-512 of message under key.
func HMAC(key, message []byte) []byte {
	return hmac.Sum(key, message, hazmat.SHA512)
}

// HMACVerify checks an HMAC-SHA-512 tag in constant time.
func HMACVerify(expected, key, message []byte) error {
	return hmac.Verify(expected, key, message, hazmat.SHA512)
}

// HKDF derives length bytes from the keying material with HKDF-SHA-512.
func HKDF(salt, ikm, info []byte, length int) ([]byte, error) {
	return hkdf.DeriveKey(salt, ikm, info, length, hazmat.SHA512)
}

// HKDFVerify checks an HKDF-SHA-512 derivation in constant time.
func HKDFVerify(expected, salt, ikm, info []byte, length int) error {
	return hkdf.Verify(expected, salt, ikm, info, length, hazmat.SHA512)
}

// PBKDF2 stretches the password into a 64-byte key with
// PBKDF2-HMAC-SHA-512 and PBKDF2Iterations rounds. The salt should come
// from Key or another CSPRNG source and be stored alongside the result.
func PBKDF2(password, salt []byte) ([]byte, error) {
	return pbkdf2.DeriveKey(password, salt, PBKDF2Iterations, KeySize, hazmat.SHA512)
}

// PBKDF2Verify checks a PBKDF2-HMAC-SHA-512 derivation in constant time.
func PBKDF2Verify(expected, password, salt []byte) error {
	return pbkdf2.Verify(expected, password, salt, PBKDF2Iterations, KeySize, hazmat.SHA512)
}

// CShake computes a 64-byte cSHAKE256 digest of input under the
// customization string. The custom string must not be empty; the
// function-name string is fixed empty, as NIST reserves it.
func CShake(input, custom []byte) ([]byte, error) {
	return cshake.Sum(input, nil, custom, KeySize, cshake.CSHAKE256)
}

// CShakeVerify checks a cSHAKE256 digest in constant time.
func CShakeVerify(expected, input, custom []byte) error {
	return cshake.Verify(expected, input, nil, custom, KeySize, cshake.CSHAKE256)
}
