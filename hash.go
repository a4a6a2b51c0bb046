// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hazmat

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Hash selects the SHA-2 variant used by the HMAC-based constructions.
// The zero value is not a valid variant.
type Hash int

const (
	SHA256 Hash = 1 + iota
	SHA384
	SHA512
)

// Size returns the digest length of the variant in bytes.
func (h Hash) Size() int {
	switch h {
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	}
	panic("hazmat: unknown hash variant")
}

// BlockSize returns the internal block length of the variant in bytes.
func (h Hash) BlockSize() int {
	switch h {
	case SHA256:
		return sha256.BlockSize
	case SHA384, SHA512:
		return sha512.BlockSize
	}
	panic("hazmat: unknown hash variant")
}

// New returns a fresh digest instance for the variant.
func (h Hash) New() hash.Hash {
	switch h {
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	}
	panic("hazmat: unknown hash variant")
}

// String returns the lowercase name of the variant.
func (h Hash) String() string {
	switch h {
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	}
	panic("hazmat: unknown hash variant")
}

// ParseHash maps a variant name, as produced by String, back to its Hash
// value. Unknown names fail with ErrInvalidParams.
func ParseHash(name string) (Hash, error) {
	switch name {
	case "sha256":
		return SHA256, nil
	case "sha384":
		return SHA384, nil
	case "sha512":
		return SHA512, nil
	}
	return 0, ErrInvalidParams
}
