// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli turns the command line of the compiler-flags tool into an explicit configuration.
//
// Usage:
//
//	compiler-flags --defines|--defines-r<N>|--includes <compiler-invocation-text>
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUsage = errors.New("usage: compiler-flags --defines|--defines-r<N>|--includes <compiler-invocation-text>")

type Mode string

const (
	ModeDefines  Mode = "defines"
	ModeIncludes Mode = "includes"
)

const (
	definesArg  = "--defines"
	includesArg = "--includes"
	// Suffix of definesArg selecting the number of passes, e.g. --defines-r3.
	repeatSuffix = "-r"
)

type Config struct {
	Mode Mode
	// Number of times the scan is run over Input. Always at least 1.
	RepeatCount int
	// Compiler invocation to scan.
	Input string
}

// ParseArgs parses the arguments following the program name. Arguments after the compiler invocation are ignored.
func ParseArgs(args []string) (Config, error) {
	if len(args) < 2 {
		return Config{}, fmt.Errorf("expected 2 arguments, got %d: %w", len(args), ErrUsage)
	}

	conf := Config{RepeatCount: 1, Input: args[1]}
	switch mode := args[0]; {
	case mode == includesArg:
		conf.Mode = ModeIncludes
	case mode == definesArg:
		conf.Mode = ModeDefines
	case strings.HasPrefix(mode, definesArg+repeatSuffix):
		count, err := strconv.Atoi(strings.TrimPrefix(mode, definesArg+repeatSuffix))
		if err != nil {
			return Config{}, fmt.Errorf("invalid repeat count in %q: %w", mode, ErrUsage)
		}
		conf.Mode = ModeDefines
		conf.RepeatCount = max(count, 1)
	default:
		return Config{}, fmt.Errorf("unknown mode %q: %w", mode, ErrUsage)
	}
	return conf, nil
}
