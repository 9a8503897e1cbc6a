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

import "errors"

var ErrCapacityExceeded = errors.New("output buffer capacity exceeded")

// Buffer is a fixed capacity text buffer over memory owned by the caller. Writes never go past the end of the wrapped
// slice and the bytes after the written text are always zero.
//
// A Buffer must not be used from multiple goroutines at once.
type Buffer struct {
	data   []byte
	length int
}

// Wrap the given slice. Its length is the capacity of the buffer; the content is cleared.
func NewBuffer(data []byte) *Buffer {
	b := &Buffer{data: data}
	b.Reset()
	return b
}

// Append copies text at the end of the written data. If text does not fit in the remaining capacity nothing is
// written and ErrCapacityExceeded is returned.
func (b *Buffer) Append(text string) error {
	if len(text) > len(b.data)-b.length {
		return ErrCapacityExceeded
	}
	b.length += copy(b.data[b.length:], text)
	return nil
}

// Reset empties the buffer and zeroes the whole underlying slice.
func (b *Buffer) Reset() {
	clear(b.data)
	b.length = 0
}

func (b *Buffer) Len() int { return b.length }
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns the written data. The slice aliases the buffer and is valid until the next modification.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

func (b *Buffer) String() string { return string(b.data[:b.length]) }
