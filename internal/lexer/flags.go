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

package lexer

import (
	"fmt"
	"strings"
)

// Separator written between the extracted flag values, so the result is itself a whitespace separated list.
const separator = " "

func flagPrefix(t TokenType) string {
	switch t {
	case TokenType_DefineFlag:
		return "-D"
	case TokenType_IncludeFlag:
		return "-I"
	default:
		return ""
	}
}

// Return the value of the flag token. A bare flag takes the following argument as its value ("-D NAME"), unless
// that argument is another option or there is none, in which case the value is empty.
func (lx *Lexer) flagValue(flag Token) string {
	if payload := flag.Payload(); payload != "" {
		return payload
	}

	lookAhead := *lx
	next := lookAhead.NextArgument()
	if next.Type == TokenType_EOF || strings.HasPrefix(next.Content, "-") {
		return ""
	}
	*lx = lookAhead
	return next.Content
}

// Extract writes the values of all flags of the given type found in commandLine to out, in order of appearance and
// separated by a single space. out is reset first.
//
// Returns an error wrapping ErrCapacityExceeded if out is too small to hold all the values. In that case out is left
// empty, never truncated.
func Extract(commandLine string, flag TokenType, out *Buffer) error {
	if !flag.IsFlag() {
		return fmt.Errorf("cannot extract values of %v", flag)
	}

	out.Reset()
	lx := NewLexer(commandLine)
	first := true
	for token := range lx.AllArguments() {
		if token.Type != flag {
			continue
		}
		value := lx.flagValue(token)

		var err error
		if !first {
			err = out.Append(separator)
		}
		if err == nil {
			err = out.Append(value)
		}
		if err != nil {
			out.Reset()
			return fmt.Errorf("writing %v at offset %d: %w", flag, token.Offset, err)
		}
		first = false
	}
	return nil
}

// ScanDefines writes the macro definitions (NAME or NAME=VALUE) passed with -D flags in commandLine to out. Reports
// whether the whole command line was scanned and all definitions fit in out; on failure out is empty.
func ScanDefines(commandLine string, out *Buffer) bool {
	return Extract(commandLine, TokenType_DefineFlag, out) == nil
}

// ScanIncludes writes the include search paths passed with -I flags in commandLine to out. Reports whether the whole
// command line was scanned and all paths fit in out; on failure out is empty.
func ScanIncludes(commandLine string, out *Buffer) bool {
	return Extract(commandLine, TokenType_IncludeFlag, out) == nil
}
