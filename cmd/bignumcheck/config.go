// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arithlab/bignum/bignum"
)

// Config is bignumcheck's on-disk configuration: the word capacity new
// operands are allocated with, and whether run also prints a PASS line
// for each passing check.
type Config struct {
	CapacityWords int  `toml:"capacity_words"`
	Verbose       bool `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{CapacityWords: 64, Verbose: false}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	// The mul/sqr evaluators allocate double-width results, so the
	// configured operand capacity must leave room for that doubling
	// within the library's word cap.
	if cfg.CapacityWords < 1 || cfg.CapacityWords > bignum.MaxWords/2-1 {
		return cfg, fmt.Errorf("capacity_words must be in [1, %d], got %d",
			bignum.MaxWords/2-1, cfg.CapacityWords)
	}
	return cfg, nil
}
