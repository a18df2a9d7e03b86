// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command d2stash parses a Diablo II stash file, reports its contents,
// optionally re-sorts and re-encodes it in place (spec §6).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "d2stash",
		Short:        "Decode, sort, and re-encode a Diablo II stash file",
		SilenceUsage: true,
	}
	root.AddCommand(newParseCmd())
	return root
}
