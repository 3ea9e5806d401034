// Copyright (c) 2025 The rcdgen authors
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// rcdgen compiles an RCD source file into the binary data files it
// describes. With no argument the source is read from standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dashdan/rcdgen/ast"
	"github.com/dashdan/rcdgen/resolver"
	"github.com/dashdan/rcdgen/syntax"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rcdgen [file]",
		Short: "Compile RCD game data files",
		Args:  cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args)
		},
	}
	setupFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupFlags configures the flag surface. Besides help there are no flags.
func setupFlags(flags *pflag.FlagSet) {
	flags.SortFlags = false
}

func run(args []string) error {
	var root *ast.NamedValueList
	var err error
	if len(args) == 1 {
		root, err = syntax.ParseFile(args[0])
	} else {
		var src []byte
		src, err = io.ReadAll(os.Stdin)
		if err == nil {
			root, err = syntax.Parse(src)
		}
	}
	if err != nil {
		return err
	}

	result, err := resolver.Resolve(root)
	if err != nil {
		return err
	}
	for _, warn := range result.Warnings {
		fmt.Fprintln(os.Stderr, warn)
	}

	for _, fn := range result.Files.Files {
		if err := fn.Write(); err != nil {
			return err
		}
	}
	return nil
}
