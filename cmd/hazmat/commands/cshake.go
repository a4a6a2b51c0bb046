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

	"github.com/dark-bio/hazmat-go/cshake"
)

// cshake --input <hex> --custom <string> [--name <string>] [--length <n>] [--variant 128|256]
func cshakeCmd() *cobra.Command {
	var (
		inputHex string
		name     string
		custom   string
		length   int
		variant  int
	)
	cmd := &cobra.Command{
		Use:   "cshake",
		Short: "Compute a cSHAKE digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseHex("input", inputHex)
			if err != nil {
				return err
			}
			var v cshake.Variant
			switch variant {
			case 128:
				v = cshake.CSHAKE128
			case 256:
				v = cshake.CSHAKE256
			default:
				return fmt.Errorf("--variant: must be 128 or 256, got %d", variant)
			}
			digest, err := cshake.Sum(input, []byte(name), []byte(custom), length, v)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(digest))
			return nil
		},
	}
	cmd.Flags().StringVar(&inputHex, "input", "", "main input (hex, may be empty)")
	cmd.Flags().StringVar(&name, "name", "", "function-name string (reserved for NIST, usually empty)")
	cmd.Flags().StringVar(&custom, "custom", "", "customization string")
	cmd.Flags().IntVar(&length, "length", 64, "output length in bytes")
	cmd.Flags().IntVar(&variant, "variant", 256, "sponge variant: 128 or 256")
	return cmd
}
