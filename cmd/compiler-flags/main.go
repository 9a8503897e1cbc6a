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

// compiler-flags prints the macro definitions (-D) or include search paths (-I) found in a compiler invocation, as a
// space separated list.
//
//	compiler-flags --defines "-DFOO -DBAR=1 -O2"          prints: FOO BAR=1
//	compiler-flags --includes "-Iinclude -Isrc/inc -Wall" prints: include src/inc
//
// --defines-r<N> runs the defines scan N times and prints the result after every pass. Exits with status 1 and prints
// "bad" when the result does not fit in a buffer of the input size.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/EngFlow/compiler_flags/internal/cli"
	"github.com/EngFlow/compiler_flags/internal/lexer"
	"github.com/EngFlow/compiler_flags/internal/macros"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "compiler-flags: ", 0)

	conf, err := cli.ParseArgs(args)
	if err != nil {
		logger.Print(err)
		return 1
	}

	// Extracted values are a subset of the input, so its length is always enough.
	out := lexer.NewBuffer(make([]byte, len(conf.Input)))
	code := scanAndPrint(conf, out, stdout, logger)
	if code == 0 && conf.Mode == cli.ModeDefines {
		warnInvalidDefinitions(out.String(), logger)
	}
	return code
}

// Compilers reject definitions which are not identifiers; report them without changing the result.
func warnInvalidDefinitions(defines string, logger *log.Logger) {
	if _, err := macros.ParseDefinitions(defines); err != nil {
		logger.Printf("warning: %v", err)
	}
}

// Run the scan selected by conf RepeatCount times, printing the result of every pass to stdout. Returns the exit code.
func scanAndPrint(conf cli.Config, out *lexer.Buffer, stdout io.Writer, logger *log.Logger) int {
	scan := lexer.ScanDefines
	if conf.Mode == cli.ModeIncludes {
		scan = lexer.ScanIncludes
	}

	for pass := 1; ; pass++ {
		if !scan(conf.Input, out) {
			logger.Printf("%s scan failed in pass %d: %v (%d bytes)", conf.Mode, pass, lexer.ErrCapacityExceeded, out.Cap())
			fmt.Fprintln(stdout, "bad")
			return 1
		}
		if _, err := stdout.Write(out.Bytes()); err != nil {
			logger.Printf("failed to write the result: %v", err)
			return 1
		}
		if pass >= conf.RepeatCount {
			return 0
		}
	}
}
