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

	"github.com/dark-bio/hazmat-go/pbkdf2"
)

// pbkdf2 --password <string> --salt <hex> [--iterations <n>] [--length <n>] [--hash <variant>]
func pbkdf2Cmd() *cobra.Command {
	var (
		password   string
		saltHex    string
		iterations int
		length     int
		hashed     string
	)
	cmd := &cobra.Command{
		Use:   "pbkdf2",
		Short: "Derive a key from a password with PBKDF2",
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, err := parseHex("salt", saltHex)
			if err != nil {
				return err
			}
			h, err := parseHashFlag(hashed)
			if err != nil {
				return err
			}
			dk, err := pbkdf2.DeriveKey([]byte(password), salt, iterations, length, h)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(dk))
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&saltHex, "salt", "", "salt (hex)")
	cmd.Flags().IntVar(&iterations, "iterations", 512_000, "iteration count")
	cmd.Flags().IntVar(&length, "length", 64, "output length in bytes")
	cmd.Flags().StringVar(&hashed, "hash", "sha512", "hash variant: sha256, sha384 or sha512")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("salt")
	return cmd
}
