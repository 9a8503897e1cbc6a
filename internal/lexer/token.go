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

import "strings"

type TokenType int

const (
	// Special token type indicating the end of the input (or default value).
	TokenType_EOF TokenType = iota

	// One or more whitespace characters separating arguments.
	TokenType_Whitespace

	// Every argument that is not one of the flags below, e.g. -O2 or main.c.
	TokenType_Argument

	// Macro definition flag, "-D" optionally followed by NAME or NAME=VALUE.
	TokenType_DefineFlag

	// Include search path flag, "-I" optionally followed by a path.
	TokenType_IncludeFlag
)

func (t TokenType) String() string {
	switch t {
	case TokenType_EOF:
		return "end of input"
	case TokenType_Whitespace:
		return "whitespace"
	case TokenType_Argument:
		return "argument"
	case TokenType_DefineFlag:
		return "flag '-D'"
	case TokenType_IncludeFlag:
		return "flag '-I'"
	default:
		return "unknown token"
	}
}

func (t TokenType) IsFlag() bool {
	return t == TokenType_DefineFlag || t == TokenType_IncludeFlag
}

// Token is a view into the command line: Content is input[Offset:Offset+len(Content)].
type Token struct {
	Type    TokenType
	Offset  int
	Content string
}

var TokenEOF = Token{Type: TokenType_EOF}

// Payload returns the flag value attached to the token, e.g. "FOO=1" for "-DFOO=1". Empty for bare flags and for
// tokens which are not flags.
func (t Token) Payload() string {
	prefix := flagPrefix(t.Type)
	if prefix == "" || !strings.HasPrefix(t.Content, prefix) {
		return ""
	}
	return t.Content[len(prefix):]
}
