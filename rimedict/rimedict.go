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

// Package rimedict writes word lists as Rime dictionary files.
//
// Two dialects are supported. The weighted dialect appends a positional
// weight column so earlier entries rank higher; the simple dialect emits
// only word and syllables under a fixed descriptive comment header. Both
// are deterministic: identical entries and date produce byte-identical
// output.
//
// The serializer neither reorders nor deduplicates entries; ordering and
// uniqueness are the caller's responsibility. Entries with an empty
// syllable sequence are dropped rather than emitted with a blank column.
package rimedict

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// simpleHeader is the fixed comment block of the simple dialect.
const simpleHeader = `# Rime dictionary
# encoding: utf-8
#
# Luna Pinyin Extended Dictionary
#
# 部署位置：
# ~/.config/ibus/rime  (Linux)
# ~/Library/Rime  (Mac OS)
# %APPDATA%\Rime  (Windows)
#
# 重新部署即可
#
`

// Entry is a word with its romanized syllable sequence.
type Entry struct {
	Word      string
	Syllables []string
}

// WriteWeighted writes entries in the weighted dialect. Entry i of n
// receives weight n-i, so the earliest entries get the highest weight.
func WriteWeighted(w io.Writer, name string, date time.Time, entries []Entry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Rime dictionary\n# encoding: utf-8\n#\n")
	fmt.Fprintf(bw, "---\nname: %s\nversion: %q\nsort: by_weight\nuse_preset_vocabulary: true\n...\n\n",
		name, date.Format("2006.01.02"))

	n := len(entries)
	for i, e := range entries {
		if len(e.Syllables) == 0 {
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\t%d\n", e.Word, strings.Join(e.Syllables, " "), n-i)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing weighted dictionary: %w", err)
	}
	return nil
}

// WriteSimple writes entries in the simple dialect: the fixed comment
// header, a metadata block with a date-only version, then word and
// syllables with no weight column.
func WriteSimple(w io.Writer, name string, date time.Time, entries []Entry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, simpleHeader)
	fmt.Fprintf(bw, "---\nname: %s\nversion: %q\nsort: by_weight\nuse_preset_vocabulary: true\n...\n\n",
		name, date.Format("2006.01.02"))

	for _, e := range entries {
		if len(e.Syllables) == 0 {
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\n", e.Word, strings.Join(e.Syllables, " "))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing simple dictionary: %w", err)
	}
	return nil
}

// ParseSimple reads entry lines previously written in either dialect,
// skipping the comment header and metadata block. A trailing weight
// column, if present, is ignored.
func ParseSimple(r io.Reader) ([]Entry, error) {
	var entries []Entry

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "\t") {
			// Metadata block lines ("---", "name: ...", "...").
			continue
		}
		fields := strings.Split(line, "\t")
		e := Entry{Word: fields[0]}
		if len(fields) > 1 && fields[1] != "" {
			e.Syllables = strings.Fields(fields[1])
		}
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	return entries, nil
}
