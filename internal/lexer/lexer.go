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

// Package lexer breaks a single compiler invocation line into arguments and extracts the values of the preprocessor
// related flags: macro definitions (-D) and include search paths (-I).
//
// Arguments are separated by whitespace only. Quoting, escaping and response files are not interpreted.
package lexer

import (
	"iter"
	"strings"
)

// Characters separating arguments on the command line.
const whitespace = " \t\n\v\f\r"

// Lexer breaks the command line into a sequence of tokens. It never copies the input, every token is a substring of it.
type Lexer struct {
	input  string
	offset int
}

func NewLexer(commandLine string) *Lexer {
	return &Lexer{input: commandLine}
}

func isWhitespace(c byte) bool {
	return strings.IndexByte(whitespace, c) >= 0
}

func classify(argument string) TokenType {
	switch {
	case strings.HasPrefix(argument, flagPrefix(TokenType_DefineFlag)):
		return TokenType_DefineFlag
	case strings.HasPrefix(argument, flagPrefix(TokenType_IncludeFlag)):
		return TokenType_IncludeFlag
	default:
		return TokenType_Argument
	}
}

// Return the next token extracted from the input data left to process. A run of whitespace characters is always a
// single token, so there are no empty arguments. If no more tokens are left, returns TokenEOF.
func (lx *Lexer) NextToken() Token {
	if lx.offset >= len(lx.input) {
		return TokenEOF
	}

	begin := lx.offset
	end := begin
	tokenType := TokenType_Whitespace
	if isWhitespace(lx.input[begin]) {
		for end < len(lx.input) && isWhitespace(lx.input[end]) {
			end++
		}
	} else {
		for end < len(lx.input) && !isWhitespace(lx.input[end]) {
			end++
		}
		tokenType = classify(lx.input[begin:end])
	}

	lx.offset = end
	return Token{Type: tokenType, Offset: begin, Content: lx.input[begin:end]}
}

// NextArgument is like NextToken, but skips whitespace.
func (lx *Lexer) NextArgument() Token {
	for {
		if token := lx.NextToken(); token.Type != TokenType_Whitespace {
			return token
		}
	}
}

// Return an iterator over all tokens left in the input, whitespace included. TokenEOF is not yielded.
func (lx *Lexer) AllTokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for token := lx.NextToken(); token.Type != TokenType_EOF; token = lx.NextToken() {
			if !yield(token) {
				return
			}
		}
	}
}

// Return an iterator over all arguments left in the input.
func (lx *Lexer) AllArguments() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for token := lx.NextArgument(); token.Type != TokenType_EOF; token = lx.NextArgument() {
			if !yield(token) {
				return
			}
		}
	}
}
