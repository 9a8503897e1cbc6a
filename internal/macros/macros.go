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

// Package macros interprets the result of a defines scan as a list of macro definitions.
package macros

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Single macro definition, as passed to the compiler with -DNAME or -DNAME=VALUE.
type Definition struct {
	Name  string
	Value string
	// Distinguishes -DNAME= (empty value) from -DNAME (implicitly defined as 1 by compilers).
	HasValue bool
}

// A valid macro identifier must follow these rules:
// * First character must be ‘_’ or a letter.
// * Subsequent characters may be ‘_’, letters, or decimal digits.
var MacroIdentifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseDefinition splits a single NAME or NAME=VALUE entry. The value is kept verbatim, it may contain further '='.
func ParseDefinition(entry string) (Definition, error) {
	entry = strings.TrimPrefix(entry, "-D") // tolerate gcc/clang style
	name, value, hasValue := strings.Cut(entry, "=")

	if !MacroIdentifierRegex.MatchString(name) {
		return Definition{}, fmt.Errorf("invalid macro name %q", name)
	}
	return Definition{Name: name, Value: value, HasValue: hasValue}, nil
}

// ParseDefinitions converts the space separated output of a defines scan into definitions, keeping their order.
// Empty entries (left by a bare -D) are skipped. Returns error if at least one entry failed to parse; the remaining
// entries are still returned.
func ParseDefinitions(defines string) ([]Definition, error) {
	var out []Definition
	var parsingErrors []error
	for entry := range strings.SplitSeq(defines, " ") {
		if entry == "" {
			continue
		}
		defn, err := ParseDefinition(entry)
		if err != nil {
			parsingErrors = append(parsingErrors, fmt.Errorf("failed to parse %v: %w", entry, err))
			continue
		}
		out = append(out, defn)
	}
	return out, errors.Join(parsingErrors...)
}

func (d Definition) String() string {
	if d.HasValue {
		return d.Name + "=" + d.Value
	}
	return d.Name
}
