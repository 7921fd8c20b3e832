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

// Package pytable reads the pinyin syllable table embedded in a cell
// dictionary file.
package pytable

import (
	"github.com/ASC8384/sceldict/internal/cursor"
)

// Offset is the fixed offset of the syllable table in a structured cell
// dictionary file.
const Offset = 0x1540

// maxSyllableBytes bounds a single syllable entry. The longest pinyin
// syllable is 6 letters; anything larger is a corrupt length field.
const maxSyllableBytes = 32

// Table maps syllable indices to romanized syllable strings. A Table is
// built once per decode and read-only afterward.
type Table struct {
	syllables map[uint16]string
	size      int
}

// Parse reads the syllable table from buf. It returns the table and the
// number of entries that failed to decode. A single bad entry is counted
// and skipped; only running out of buffer stops the loop early.
func Parse(buf []byte) (*Table, int) {
	t := &Table{
		syllables: map[uint16]string{},
	}
	errCount := 0

	c := cursor.New(buf)
	if err := c.Seek(Offset); err != nil {
		return t, errCount
	}
	count, err := c.ReadUint32()
	if err != nil {
		return t, errCount
	}

	for i := uint32(0); i < count; i++ {
		idx, err := c.ReadUint16()
		if err != nil {
			break
		}
		byteLen, err := c.ReadUint16()
		if err != nil {
			break
		}
		if int(byteLen) > maxSyllableBytes {
			// A corrupt length field poisons every subsequent read; treat
			// it as the end of the table.
			errCount++
			break
		}
		syl, err := c.ReadUTF16String(int(byteLen))
		if err != nil {
			break
		}
		if syl == "" || !validSyllable(syl) {
			errCount++
			continue
		}
		t.syllables[idx] = syl
	}

	t.size = len(t.syllables)
	return t, errCount
}

// Size returns the number of syllables in the table.
func (t *Table) Size() int {
	return t.size
}

// Syllable resolves a syllable index. Indices absent from the table map to
// a synthetic single-letter placeholder derived from the distance past the
// table end, or "?" when the distance exceeds the alphabet.
func (t *Table) Syllable(idx uint16) string {
	if s, ok := t.syllables[idx]; ok {
		return s
	}
	if d := int(idx) - t.size; d >= 0 && d < 26 {
		return string(rune('a' + d))
	}
	return "?"
}

// validSyllable reports whether s looks like a romanized syllable: ASCII
// lowercase letters only.
func validSyllable(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
