// Copyright 2025 The sceldict Authors
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

// Package cursor implements a bounds-checked little-endian reader over an
// in-memory buffer.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// ErrOutOfBounds indicates a read or seek past the end of the buffer. It is
// a normal end-of-data signal; callers stop the current parse strategy
// rather than failing the whole decode.
var ErrOutOfBounds = errors.New("out of bounds")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Cursor is a sequential reader over a byte buffer. All multi-byte integer
// reads are little-endian. The zero position is the start of the buffer.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a new Cursor positioned at the start of buf. The Cursor does
// not copy buf; the caller must not modify it while reading.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current position in the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// AtEnd reports whether the cursor has consumed the entire buffer.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.buf)
}

// Seek moves the cursor to the absolute position pos. Seeking to the end of
// the buffer is allowed; seeking beyond it or to a negative position
// returns ErrOutOfBounds.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return fmt.Errorf("%w: seek to %d of %d", ErrOutOfBounds, pos, len(c.buf))
	}
	c.pos = pos
	return nil
}

// Skip moves the cursor n bytes relative to the current position.
func (c *Cursor) Skip(n int) error {
	return c.Seek(c.pos + n)
}

// ReadBytes reads the next n bytes. The returned slice aliases the
// underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, fmt.Errorf("%w: read %d bytes at %d of %d", ErrOutOfBounds, n, c.pos, len(c.buf))
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUint16 reads a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUTF16String reads byteLen bytes and decodes them as UTF-16LE text.
// The decoded text is truncated at the first embedded NUL code unit.
// Malformed code units decode to U+FFFD rather than failing the read.
func (c *Cursor) ReadUTF16String(byteLen int) (string, error) {
	b, err := c.ReadBytes(byteLen)
	if err != nil {
		return "", err
	}
	return DecodeUTF16(b), nil
}

// DecodeUTF16 decodes b as UTF-16LE, truncating at the first NUL code unit
// pair. An odd trailing byte is ignored.
func DecodeUTF16(b []byte) string {
	b = b[:len(b)&^1]
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	decoded, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		// The decoder substitutes U+FFFD for malformed input rather than
		// returning an error, but guard against future behavior changes.
		return ""
	}
	return string(decoded)
}
