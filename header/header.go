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

// Package header reads the fixed-offset header of a Sogou cell dictionary
// file.
//
// The header holds a magic signature, descriptive metadata encoded as
// NUL-padded UTF-16LE at fixed offsets, and the declared word count. A
// version byte directly after the magic selects where the word record
// table starts.
package header

import (
	"bytes"

	"github.com/ASC8384/sceldict/internal/cursor"
)

// Magic is the 4-byte signature at offset 0 of a cell dictionary file.
var Magic = []byte{0x40, 0x15, 0x00, 0x00}

// Fixed offsets into the file.
const (
	offVersion     = 0x04
	offWordCount   = 0x124
	offName        = 0x130
	offCategory    = 0x338
	offDescription = 0x540
	offSamples     = 0xd40

	lenName        = 0x200
	lenCategory    = 0x200
	lenDescription = 0x800
	lenSamples     = 0x800

	// Record table offsets selected by the version byte.
	recordOffset    = 0x2628
	recordOffsetAlt = 0x26c4

	versionAlt = 0x45
)

// Header holds the decoded file header.
type Header struct {
	// Structured is true when the magic signature matched and the
	// structured syllable-table and record layout can be attempted.
	Structured bool

	// DeclaredWordCount is the word count stated in the header. It is
	// advisory; the record parser relies on the end-of-table sentinel.
	DeclaredWordCount int

	// RecordOffset is the offset of the word record table.
	RecordOffset int

	Name        string
	Category    string
	Description string
	Samples     string
}

// Parse reads the header from buf. Parse never fails: on a magic mismatch
// or a truncated buffer it reports Structured false and extracts whatever
// metadata fields still fit.
func Parse(buf []byte) *Header {
	h := &Header{
		RecordOffset: recordOffset,
	}

	if len(buf) >= len(Magic) && bytes.Equal(buf[:len(Magic)], Magic) {
		h.Structured = true
	}
	if len(buf) > offVersion && buf[offVersion] == versionAlt {
		h.RecordOffset = recordOffsetAlt
	}

	c := cursor.New(buf)
	if err := c.Seek(offWordCount); err == nil {
		if n, err := c.ReadUint32(); err == nil {
			h.DeclaredWordCount = int(n)
		}
	}

	h.Name = readString(c, offName, lenName)
	h.Category = readString(c, offCategory, lenCategory)
	h.Description = readString(c, offDescription, lenDescription)
	h.Samples = readString(c, offSamples, lenSamples)

	return h
}

// readString reads a fixed-size UTF-16LE field, tolerating truncation by
// reading only the bytes present.
func readString(c *cursor.Cursor, off, size int) string {
	if err := c.Seek(off); err != nil {
		return ""
	}
	if r := c.Remaining(); r < size {
		size = r
	}
	s, err := c.ReadUTF16String(size)
	if err != nil {
		return ""
	}
	return s
}
