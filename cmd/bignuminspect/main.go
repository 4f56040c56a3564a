// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	capacityWords int
	outPath       string
)

func main() {
	root := &cobra.Command{
		Use:   "bignuminspect",
		Short: "Step through a traced bignum operation in a terminal UI",
	}
	root.PersistentFlags().IntVar(&capacityWords, "capacity", 64, "word capacity for operands")
	root.AddCommand(runCmd(), loadCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <gcd|egcd|modexp|montgomery> <operand...>",
		Short: "Run a traced operation and open the step inspector",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			operands := args[1:]
			steps, err := runTraced(op, capacityWords, operands)
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := saveTraceFile(outPath, steps); err != nil {
					return err
				}
			}
			return NewTUI(op, steps).Run()
		},
	}
	cmd.Flags().StringVar(&outPath, "save", "", "save the trace as newline-delimited JSON before opening the UI")
	return cmd
}

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <trace-file>",
		Short: "Open the step inspector on a previously saved trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := loadTraceFile(args[0])
			if err != nil {
				return err
			}
			return NewTUI(args[0], steps).Run()
		},
	}
}
