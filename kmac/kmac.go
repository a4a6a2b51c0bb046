// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmac provides the KMAC keyed hash built on the cSHAKE sponge.
//
// https://doi.org/10.6028/NIST.SP.800-185
package kmac

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	hazmat "github.com/dark-bio/hazmat-go"
	"github.com/dark-bio/hazmat-go/cshake"
)

// MinTagSize is the smallest accepted tag length in bytes. SP 800-185
// forbids tags under 32 bits and discourages anything under 64; the lower
// bound here is the 64-bit one.
const MinTagSize = 8

// functionName is the fixed cSHAKE function-name string for KMAC.
var functionName = []byte("KMAC")

// Sum128 computes the KMAC128 tag of message under key with the optional
// customization string. The key must be at least 16 bytes (the security
// strength); the tag length must be between MinTagSize and
// cshake.MaxLength bytes.
func Sum128(key, message, custom []byte, length int) ([]byte, error) {
	if len(key) < 16 {
		return nil, hazmat.ErrInvalidParams
	}
	return sum(sha3.NewCShake128(functionName, custom), cshake.CSHAKE128.Rate(), key, message, custom, length)
}

// Sum256 computes the KMAC256 tag of message under key with the optional
// customization string. The key must be at least 32 bytes (the security
// strength); the tag length must be between MinTagSize and
// cshake.MaxLength bytes.
func Sum256(key, message, custom []byte, length int) ([]byte, error) {
	if len(key) < 32 {
		return nil, hazmat.ErrInvalidParams
	}
	return sum(sha3.NewCShake256(functionName, custom), cshake.CSHAKE256.Rate(), key, message, custom, length)
}

func sum(h sha3.ShakeHash, rate int, key, message, custom []byte, length int) ([]byte, error) {
	if length < MinTagSize || length > cshake.MaxLength {
		return nil, hazmat.ErrInvalidParams
	}
	if len(custom) > cshake.MaxLength {
		return nil, hazmat.ErrInvalidParams
	}

	// newX(K, X, L, S) = cSHAKE(bytepad(encode_string(K), rate) || X ||
	// right_encode(L), L, "KMAC", S); the sponge already absorbed the
	// "KMAC"/custom prefix.
	encoded := make([]byte, 0, 9+len(key))
	encoded = append(encoded, leftEncode(uint64(len(key)*8))...)
	encoded = append(encoded, key...)
	padded := bytepad(encoded, rate)
	h.Write(padded)
	hazmat.Wipe(padded)
	hazmat.Wipe(encoded)

	h.Write(message)
	h.Write(rightEncode(uint64(length * 8)))

	out := make([]byte, length)
	h.Read(out)
	return out, nil
}

// Verify128 recomputes Sum128 and compares the result against expected in
// constant time; any mismatch or parameter failure is ErrVerification.
func Verify128(expected, key, message, custom []byte, length int) error {
	tag, err := Sum128(key, message, custom, length)
	return verify(expected, tag, err)
}

// Verify256 recomputes Sum256 and compares the result against expected in
// constant time; any mismatch or parameter failure is ErrVerification.
func Verify256(expected, key, message, custom []byte, length int) error {
	tag, err := Sum256(key, message, custom, length)
	return verify(expected, tag, err)
}

func verify(expected, tag []byte, err error) error {
	if err != nil {
		return hazmat.ErrVerification
	}
	defer hazmat.Wipe(tag)
	if hazmat.Equal(tag, expected) != nil {
		return hazmat.ErrVerification
	}
	return nil
}

// bytepad prepends left_encode(rate) to the input and zero-pads the result
// to a whole number of rate-sized blocks.
func bytepad(input []byte, rate int) []byte {
	out := make([]byte, 0, 9+len(input)+rate-1)
	out = append(out, leftEncode(uint64(rate))...)
	out = append(out, input...)
	if padlen := rate - len(out)%rate; padlen < rate {
		out = append(out, make([]byte, padlen)...)
	}
	return out
}

// leftEncode emits the minimal big-endian representation of x preceded by a
// byte holding its length; zero encodes as [0x01, 0x00].
func leftEncode(x uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[1:], x)
	// Trim all but the last leading zero byte
	i := byte(1)
	for i < 8 && b[i] == 0 {
		i++
	}
	// Prepend the number of encoded bytes
	b[i-1] = 9 - i
	return b[i-1:]
}

// rightEncode is leftEncode with the length byte appended instead of
// prepended; zero encodes as [0x00, 0x01].
func rightEncode(x uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[:8], x)
	i := byte(0)
	for i < 7 && b[i] == 0 {
		i++
	}
	b[8] = 8 - i
	return b[i:]
}
