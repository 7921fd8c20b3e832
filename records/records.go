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

// Package records reads the homophone-grouped word records of a structured
// cell dictionary file.
//
// A record is a group of words sharing one pinyin index sequence:
//
//	u16 homophoneCount
//	u16 pinyinIndexByteLen
//	pinyinIndexByteLen/2 x u16 syllable indices
//	homophoneCount x (u16 wordByteLen, wordByteLen bytes UTF-16LE word,
//	                  12-byte trailer: u16 flag, u32 frequency, 6 reserved)
//
// A zero homophone count or a zero index length is the end-of-table
// sentinel.
package records

import (
	"github.com/ASC8384/sceldict/internal/cursor"
	"github.com/ASC8384/sceldict/internal/hanzi"
	"github.com/ASC8384/sceldict/pytable"
)

// trailerLen is the fixed per-word metadata trailer size.
const trailerLen = 12

// Word is a decoded word record.
type Word struct {
	// Text is the word itself.
	Text string

	// Syllables is the romanized syllable sequence shared by the word's
	// homophone group.
	Syllables []string

	// Frequency is the frequency field of the record trailer.
	Frequency uint32
}

// Stats counts parse outcomes.
type Stats struct {
	// Accepted is the number of words that passed validation.
	Accepted int

	// Rejected is the number of decoded words dropped by validation.
	Rejected int
}

// Parse reads word records from buf starting at offset, resolving syllable
// indices through tbl. Parsing stops normally at the zero sentinel or when
// the buffer runs out; a single invalid word only increments the rejected
// counter.
func Parse(buf []byte, offset int, tbl *pytable.Table) ([]Word, Stats) {
	var words []Word
	var stats Stats

	c := cursor.New(buf)
	if err := c.Seek(offset); err != nil {
		return nil, stats
	}

	for {
		homophones, err := c.ReadUint16()
		if err != nil {
			break
		}
		indexBytes, err := c.ReadUint16()
		if err != nil {
			break
		}
		if homophones == 0 || indexBytes == 0 {
			// End-of-table sentinel.
			break
		}

		syllables, err := readSyllables(c, int(indexBytes), tbl)
		if err != nil {
			break
		}

		if err := readHomophones(c, int(homophones), syllables, &words, &stats); err != nil {
			break
		}
	}

	return words, stats
}

// readSyllables reads indexBytes/2 syllable indices and resolves each
// through the table.
func readSyllables(c *cursor.Cursor, indexBytes int, tbl *pytable.Table) ([]string, error) {
	n := indexBytes / 2
	syllables := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		syllables = append(syllables, tbl.Syllable(idx))
	}
	if indexBytes%2 != 0 {
		// Keep subsequent reads aligned past an odd length field.
		if err := c.Skip(1); err != nil {
			return nil, err
		}
	}
	return syllables, nil
}

// readHomophones reads count words sharing syllables, appending accepted
// words to out. Running out of buffer is returned to stop the outer loop;
// an invalid word or trailer only counts against stats.
func readHomophones(c *cursor.Cursor, count int, syllables []string, out *[]Word, stats *Stats) error {
	for i := 0; i < count; i++ {
		wordLen, err := c.ReadUint16()
		if err != nil {
			return err
		}
		text, err := c.ReadUTF16String(int(wordLen))
		if err != nil {
			return err
		}

		// Trailer: u16 flag, u32 frequency, 6 reserved bytes. The flag and
		// reserved bytes are discarded.
		if err := c.Skip(2); err != nil {
			return err
		}
		freq, err := c.ReadUint32()
		if err != nil {
			return err
		}
		if err := c.Skip(trailerLen - 2 - 4); err != nil {
			return err
		}

		if !hanzi.ValidWord(text) {
			stats.Rejected++
			continue
		}
		*out = append(*out, Word{
			Text:      text,
			Syllables: syllables,
			Frequency: freq,
		})
		stats.Accepted++
	}
	return nil
}
