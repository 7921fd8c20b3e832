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

// Package testutil builds synthetic cell dictionary buffers for tests.
package testutil

import (
	"encoding/binary"
	"unicode/utf16"
)

// Fixed layout offsets mirroring the cell dictionary format.
const (
	offWordCount = 0x124
	offName      = 0x130
	offCategory  = 0x338
	offDesc      = 0x540
	offSamples   = 0xd40
	offTable     = 0x1540
	offRecords   = 0x2628
)

// Magic is a full valid 8-byte signature.
var Magic = []byte{0x40, 0x15, 0x00, 0x00, 0x44, 0x43, 0x53, 0x01}

// Syllable is a syllable table entry.
type Syllable struct {
	Index    uint16
	Syllable string
}

// Group is a homophone group of words sharing a syllable index sequence.
type Group struct {
	Indices   []uint16
	Words     []string
	Frequency uint32
}

// Dict describes a synthetic cell dictionary.
type Dict struct {
	Name        string
	Category    string
	Description string
	Samples     string
	Syllables   []Syllable
	Groups      []Group

	// DeclaredWordCount overrides the computed word count when nonzero.
	DeclaredWordCount int
}

// MakeDict builds a binary cell dictionary buffer for d.
func MakeDict(d Dict) []byte {
	buf := make([]byte, offRecords)
	copy(buf, Magic)

	wordCount := d.DeclaredWordCount
	if wordCount == 0 {
		for _, g := range d.Groups {
			wordCount += len(g.Words)
		}
	}
	//nolint:gosec // test fixture, counts are small.
	binary.LittleEndian.PutUint32(buf[offWordCount:], uint32(wordCount))

	putUTF16(buf[offName:offName+0x200], d.Name)
	putUTF16(buf[offCategory:offCategory+0x200], d.Category)
	putUTF16(buf[offDesc:offDesc+0x800], d.Description)
	putUTF16(buf[offSamples:offSamples+0x800], d.Samples)

	// Syllable table.
	table := make([]byte, 4)
	//nolint:gosec // test fixture.
	binary.LittleEndian.PutUint32(table, uint32(len(d.Syllables)))
	for _, s := range d.Syllables {
		table = appendUint16(table, s.Index)
		encoded := EncodeUTF16(s.Syllable)
		table = appendUint16(table, uint16(len(encoded)))
		table = append(table, encoded...)
	}
	copy(buf[offTable:], table)

	// Word records.
	for _, g := range d.Groups {
		buf = appendUint16(buf, uint16(len(g.Words)))
		buf = appendUint16(buf, uint16(len(g.Indices)*2))
		for _, idx := range g.Indices {
			buf = appendUint16(buf, idx)
		}
		for _, w := range g.Words {
			encoded := EncodeUTF16(w)
			buf = appendUint16(buf, uint16(len(encoded)))
			buf = append(buf, encoded...)

			var trailer [12]byte
			binary.LittleEndian.PutUint32(trailer[2:], g.Frequency)
			buf = append(buf, trailer[:]...)
		}
	}
	// End-of-table sentinel.
	buf = appendUint16(buf, 0)
	buf = appendUint16(buf, 0)

	return buf
}

// EncodeUTF16 encodes s as UTF-16LE bytes.
func EncodeUTF16(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = appendUint16(b, u)
	}
	return b
}

func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func putUTF16(dst []byte, s string) {
	copy(dst, EncodeUTF16(s))
}
