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

// Package hanzi classifies decoded dictionary words.
package hanzi

import "strings"

// MaxWordLen is the maximum accepted word length in runes.
const MaxWordLen = 10

// punctuation is the small set of non-CJK-block punctuation accepted in
// dictionary words.
const punctuation = "·—…《》「」"

// ValidRune reports whether r may appear in a dictionary word.
func ValidRune(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Unified Ideographs Extension A
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK Symbols and Punctuation
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // Halfwidth and Fullwidth Forms
		return true
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return strings.ContainsRune(punctuation, r)
}

// ValidWord reports whether s is an acceptable dictionary word: between one
// and MaxWordLen runes, all of which satisfy ValidRune.
func ValidWord(s string) bool {
	n := 0
	for _, r := range s {
		if !ValidRune(r) {
			return false
		}
		n++
	}
	return n >= 1 && n <= MaxWordLen
}

// RuneLen returns the length of s in runes.
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
