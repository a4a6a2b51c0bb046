// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dark-bio/hazmat-go/hkdf"
)

// hkdf --ikm <hex> [--salt <hex>] [--info <hex>] [--length <n>] [--hash <variant>]
func hkdfCmd() *cobra.Command {
	var (
		saltHex string
		ikmHex  string
		infoHex string
		length  int
		hashed  string
	)
	cmd := &cobra.Command{
		Use:   "hkdf",
		Short: "Derive a key with HKDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, err := parseHex("salt", saltHex)
			if err != nil {
				return err
			}
			ikm, err := parseHex("ikm", ikmHex)
			if err != nil {
				return err
			}
			info, err := parseHex("info", infoHex)
			if err != nil {
				return err
			}
			h, err := parseHashFlag(hashed)
			if err != nil {
				return err
			}
			okm, err := hkdf.DeriveKey(salt, ikm, info, length, h)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(okm))
			return nil
		},
	}
	cmd.Flags().StringVar(&saltHex, "salt", "", "salt (hex, may be empty)")
	cmd.Flags().StringVar(&ikmHex, "ikm", "", "input keying material (hex)")
	cmd.Flags().StringVar(&infoHex, "info", "", "context info (hex, may be empty)")
	cmd.Flags().IntVar(&length, "length", 32, "output length in bytes")
	cmd.Flags().StringVar(&hashed, "hash", "sha512", "hash variant: sha256, sha384 or sha512")
	_ = cmd.MarkFlagRequired("ikm")
	return cmd
}
