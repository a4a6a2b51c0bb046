// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	hazmat "github.com/dark-bio/hazmat-go"
)

// rand <bytes>: print random bytes from the OS CSPRNG as hex.
func randCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand <bytes>",
		Short: "Generate random bytes from the OS CSPRNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("byte count: %w", err)
			}
			out, err := hazmat.RandomBytes(n)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(out))
			return nil
		},
	}
}
