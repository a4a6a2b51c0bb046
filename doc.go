// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hazmat provides the shared building blocks for the construction
// packages in this module: hash variant selection, an OS-backed CSPRNG,
// constant-time comparison, secret wiping, and the error taxonomy.
//
// The constructions themselves live in the subpackages hmac, hkdf, pbkdf2,
// cshake and kmac. Package defaults exposes a high-level API with fixed,
// conservative parameter choices.
package hazmat
