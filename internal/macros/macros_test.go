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

package macros

import (
	"testing"

	"github.com/EngFlow/compiler_flags/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	testCases := []struct {
		entry    string
		expected Definition
		rendered string
	}{
		{entry: "FOO", expected: Definition{Name: "FOO"}, rendered: "FOO"},
		{entry: "BAR=1", expected: Definition{Name: "BAR", Value: "1", HasValue: true}, rendered: "BAR=1"},
		{entry: "EMPTY=", expected: Definition{Name: "EMPTY", HasValue: true}, rendered: "EMPTY="},
		{entry: "EQ=a=b", expected: Definition{Name: "EQ", Value: "a=b", HasValue: true}, rendered: "EQ=a=b"},
		{entry: "-D__ANDROID__", expected: Definition{Name: "__ANDROID__"}, rendered: "__ANDROID__"},
		{entry: `MSG="hi"`, expected: Definition{Name: "MSG", Value: `"hi"`, HasValue: true}, rendered: `MSG="hi"`},
	}

	for _, tc := range testCases {
		got, err := ParseDefinition(tc.entry)
		require.NoError(t, err, "entry: %q", tc.entry)
		assert.Equal(t, tc.expected, got)
		assert.Equal(t, tc.rendered, got.String())
	}

	invalid := []string{
		"",
		"=1",
		"1ABC",
		"BAD-NAME=1",
		"-D",
	}
	for _, entry := range invalid {
		_, err := ParseDefinition(entry)
		assert.Error(t, err, "entry: %q", entry)
	}
}

func TestParseDefinitions(t *testing.T) {
	got, err := ParseDefinitions("NDEBUG  VERSION=3 _GNU_SOURCE")
	require.NoError(t, err)
	assert.Equal(t, []Definition{
		{Name: "NDEBUG"},
		{Name: "VERSION", Value: "3", HasValue: true},
		{Name: "_GNU_SOURCE"},
	}, got)

	got, err = ParseDefinitions("")
	assert.NoError(t, err)
	assert.Empty(t, got)

	got, err = ParseDefinitions("A 1B C=2 D-E")
	assert.Equal(t, []Definition{{Name: "A"}, {Name: "C", Value: "2", HasValue: true}}, got)
	assert.ErrorContains(t, err, "1B")
	assert.ErrorContains(t, err, "D-E")
}

func TestParseScannedDefinitions(t *testing.T) {
	commandLine := "-c -DFOO -D BAR=2 -Iinclude -D -O2 -DBAZ= main.c"
	out := lexer.NewBuffer(make([]byte, len(commandLine)))
	require.True(t, lexer.ScanDefines(commandLine, out))

	got, err := ParseDefinitions(out.String())
	require.NoError(t, err)
	assert.Equal(t, []Definition{
		{Name: "FOO"},
		{Name: "BAR", Value: "2", HasValue: true},
		{Name: "BAZ", HasValue: true},
	}, got)
}
