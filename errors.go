// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hazmat

import "errors"

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidParams is returned for malformed or out-of-range parameters:
	// zero or negative lengths, lengths exceeding a construction's hard
	// maximum, empty mandatory fields, or a failed CSPRNG read. It is always
	// raised before any secret-dependent computation starts.
	ErrInvalidParams = errors.New("hazmat: invalid or out-of-range parameters")

	// ErrVerification is returned by the Verify operations when a recomputed
	// value does not match the caller-supplied candidate. Wrong length and
	// wrong content are indistinguishable on purpose.
	ErrVerification = errors.New("hazmat: verification failed")
)
