// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hmac provides the HMAC keyed-hash construction over a selectable
// SHA-2 variant.
//
// https://datatracker.ietf.org/doc/html/rfc2104
package hmac

import (
	hazmat "github.com/dark-bio/hazmat-go"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// Sum computes the HMAC of message under key. Key and message may have any
// length, including zero; the output is always exactly h.Size() bytes. The
// block-size-adjusted key copies are wiped before returning.
func Sum(key, message []byte, h hazmat.Hash) []byte {
	block := h.BlockSize()

	// Keys longer than the block size are hashed down first, shorter ones
	// zero-padded up to it.
	k := make([]byte, block)
	if len(key) > block {
		d := h.New()
		d.Write(key)
		d.Sum(k[:0])
	} else {
		copy(k, key)
	}
	defer hazmat.Wipe(k)

	pad := make([]byte, block)
	defer hazmat.Wipe(pad)

	inner := h.New()
	for i := range k {
		pad[i] = k[i] ^ ipad
	}
	inner.Write(pad)
	inner.Write(message)
	innerSum := inner.Sum(nil)
	defer hazmat.Wipe(innerSum)

	outer := h.New()
	for i := range k {
		pad[i] = k[i] ^ opad
	}
	outer.Write(pad)
	outer.Write(innerSum)
	return outer.Sum(nil)
}

// Verify recomputes the HMAC of message under key and compares it against
// expected in constant time. Any mismatch fails with ErrVerification.
func Verify(expected, key, message []byte, h hazmat.Hash) error {
	mac := Sum(key, message, h)
	defer hazmat.Wipe(mac)
	if hazmat.Equal(mac, expected) != nil {
		return hazmat.ErrVerification
	}
	return nil
}
