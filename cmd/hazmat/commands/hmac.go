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

	"github.com/dark-bio/hazmat-go/hmac"
)

// hmac --key <hex> --message <hex> [--hash <variant>]
func hmacCmd() *cobra.Command {
	var (
		keyHex string
		msgHex string
		hashed string
	)
	cmd := &cobra.Command{
		Use:   "hmac",
		Short: "Compute an HMAC tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseHex("key", keyHex)
			if err != nil {
				return err
			}
			msg, err := parseHex("message", msgHex)
			if err != nil {
				return err
			}
			h, err := parseHashFlag(hashed)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(hmac.Sum(key, msg, h)))
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "MAC key (hex)")
	cmd.Flags().StringVar(&msgHex, "message", "", "message (hex)")
	cmd.Flags().StringVar(&hashed, "hash", "sha512", "hash variant: sha256, sha384 or sha512")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
