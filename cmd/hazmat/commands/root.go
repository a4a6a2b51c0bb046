// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands implements the hazmat CLI. The commands only parse
// flags and print hex; all computation happens in the library packages.
package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	hazmat "github.com/dark-bio/hazmat-go"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "hazmat",
		Short:         "Keyed hashing and key derivation toolbox",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(randCmd(), hmacCmd(), hkdfCmd(), pbkdf2Cmd(), cshakeCmd())
	return root.Execute()
}

// parseHex decodes a hex flag value, naming the flag in the error.
func parseHex(flag, value string) ([]byte, error) {
	out, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return out, nil
}

// parseHashFlag maps the --hash flag to a variant.
func parseHashFlag(name string) (hazmat.Hash, error) {
	h, err := hazmat.ParseHash(name)
	if err != nil {
		return 0, fmt.Errorf("--hash: unknown variant %q (sha256, sha384, sha512)", name)
	}
	return h, nil
}
