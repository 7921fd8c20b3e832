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

// Package wordlist persists deduplicated word sets as sorted UTF-8 text,
// one word per line.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Set is a set of unique words.
type Set map[string]struct{}

// Load reads a persisted word set from path. A missing file yields an
// empty set, not an error.
func Load(path string) (Set, error) {
	set := Set{}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return set, nil
		}
		return nil, fmt.Errorf("opening word list %q: %w", path, err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		if word := strings.TrimSpace(s.Text()); word != "" {
			set[word] = struct{}{}
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %q: %w", path, err)
	}

	return set, nil
}

// Merge adds every word of batch to the set. Merging the same batch twice
// is a no-op.
func (s Set) Merge(batch []string) {
	for _, word := range batch {
		s[word] = struct{}{}
	}
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the words in ascending code-point order.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	slices.Sort(words)
	return words
}

// Save writes the set to path, sorted, one word per line with a trailing
// newline. The write is atomic: a temporary file in the same directory is
// renamed over the target.
func (s Set) Save(path string) error {
	return WriteWords(path, s.Sorted())
}

// WriteWords writes words to path in the given order, one per line. Like
// Save, the write goes through a temporary file and a rename.
func WriteWords(path string, words []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, word := range words {
		fmt.Fprintf(w, "%s\n", word)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %q: %w", path, err)
	}
	return nil
}
