// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bignumcheck replays scripted bignum expressions (lines of the
// form check("LHS OP RHS")) or runs its built-in property suite, for
// quickly sanity-checking the bignum package's arithmetic from the
// command line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "bignumcheck",
		Short: "Evaluate bignum expressions and verify arithmetic properties",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.AddCommand(runCmd(), propsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script...>",
		Short: `Replay check("LHS OP RHS") lines from one or more script files`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			total, failed := 0, 0
			for _, path := range args {
				t, f, err := runScript(out, path, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				total += t
				failed += f
			}
			fmt.Fprintf(out, "%d/%d passed\n", total-failed, total)
			if failed > 0 {
				return fmt.Errorf("%d expression(s) failed", failed)
			}
			return nil
		},
	}
}

// runScript replays every check(...) line of the script at path, one
// line at a time rather than parsing the whole file up front.
func runScript(out io.Writer, path string, cfg Config) (total, failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		expr, ok := extractCheck(strings.TrimSpace(scanner.Text()))
		if !ok {
			continue
		}
		total++
		passed, lhs, rhs, err := check(expr, cfg.CapacityWords)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "ERROR %-50s %v\n", expr, err)
		case !passed:
			failed++
			fmt.Fprintf(out, "FAIL  %-50s (lhs=%s rhs=%s)\n", expr, lhs, rhs)
		case cfg.Verbose:
			fmt.Fprintf(out, "PASS  %-50s\n", expr)
		}
	}
	return total, failed, scanner.Err()
}

// extractCheck recognises a bare "LHS OP RHS" line as well as the
// literal check("...") call syntax (optionally trailed with ");"), and
// skips blank lines and "//"/"#" comments.
func extractCheck(line string) (string, bool) {
	if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
		return "", false
	}
	if strings.HasPrefix(line, `check("`) {
		line = strings.TrimPrefix(line, `check("`)
		line = strings.TrimSuffix(line, `");`)
		line = strings.TrimSuffix(line, `")`)
		return line, true
	}
	return line, true
}

func propsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "Run the built-in arithmetic property checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failures := 0
			for _, expr := range builtinProperties {
				ok, lhs, rhs, err := check(expr, cfg.CapacityWords)
				switch {
				case err != nil:
					fmt.Fprintf(out, "ERROR %-50s %v\n", expr, err)
					failures++
				case !ok:
					fmt.Fprintf(out, "FAIL  %-50s (lhs=%s rhs=%s)\n", expr, lhs, rhs)
					failures++
				default:
					fmt.Fprintf(out, "PASS  %-50s\n", expr)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d propert%s failed", failures, plural(failures))
			}
			return nil
		},
	}
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// builtinProperties are the worked end-to-end scenarios every release
// must keep passing, in the same check("LHS OP RHS") syntax the script
// files use.
var builtinProperties = []string{
	"0x1 == 0x1",
	"0x0 != 0x1",
	"-1 < 1",
	"-1 <= -1",
	"1 >= 1",
	"1 > -1",
	"add(0xffffffff,1) == 0x100000000",
	"sub(0,1) == -1",
	"add(-1,2) == 1",
	"mul(1234567890,1234567890) == 1524157875019052100",
	"div(100,7) == 14",
	"mod(100,7) == 2",
	"gcd(252,105) == 21",
	"egcd-v(252,105) == 21",
	"modexp(4,13,497) == 445",
	"modinv(17,3120) == 2753",
	"modmul(17,2753,3120) == 1",
}
