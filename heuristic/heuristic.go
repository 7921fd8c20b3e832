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

// Package heuristic recovers words from cell dictionary buffers whose
// structured layout is absent or corrupt.
//
// Two independent strategies are tried in priority order: a sliding
// pattern scan for UTF-16LE windows that decode to plausible words, and a
// structured retry at a short list of known alternate record-table
// offsets. Both strategies terminate on any input, including empty and
// truncated buffers.
package heuristic

import (
	"github.com/ASC8384/sceldict/internal/cursor"
	"github.com/ASC8384/sceldict/internal/hanzi"
)

const (
	// Window sizes tried by the pattern scan, in bytes.
	minWindow = 4
	maxWindow = 40

	// Length-prefix bounds accepted by the alternate-offset retry.
	minRecordLen = 2
	maxRecordLen = 60

	// maxOffsetWords caps the words accepted at a single alternate
	// offset.
	maxOffsetWords = 1000

	// minWordRunes is the minimum word length accepted by recovery.
	// Single runes match far too often in arbitrary bytes.
	minWordRunes = 2
)

// Offsets are the known record-table start offsets tried by the
// alternate-offset retry, in order.
var Offsets = []int{0x2628, 0x26c4, 0x1540}

// Strategy identifies a recovery strategy.
type Strategy string

const (
	// StrategyPatternScan is the sliding-window UTF-16LE scan.
	StrategyPatternScan Strategy = "pattern-scan"

	// StrategyOffsetRetry is the alternate-offset structured retry.
	StrategyOffsetRetry Strategy = "offset-retry"
)

// Result is the outcome of a successful recovery.
type Result struct {
	// Words are the recovered words, deduplicated, in discovery order.
	Words []string

	// Strategy is the strategy that produced the words.
	Strategy Strategy

	// Offset is the winning start offset for StrategyOffsetRetry, and -1
	// for StrategyPatternScan.
	Offset int
}

// Recover tries each strategy in priority order and returns the first
// result with at least one word. ok is false when every strategy comes up
// empty.
func Recover(buf []byte) (Result, bool) {
	if words := PatternScan(buf); len(words) > 0 {
		return Result{
			Words:    words,
			Strategy: StrategyPatternScan,
			Offset:   -1,
		}, true
	}
	if words, offset := OffsetRetry(buf); len(words) > 0 {
		return Result{
			Words:    words,
			Strategy: StrategyOffsetRetry,
			Offset:   offset,
		}, true
	}
	return Result{}, false
}

// PatternScan slides a window across buf looking for UTF-16LE code units
// whose high byte is in the CJK Unified range. At each candidate offset it
// tries even-length windows from minWindow to maxWindow and accepts the
// first one decoding to a valid word. The scan resumes one byte past the
// accepted window's start so overlapping candidates are still considered.
func PatternScan(buf []byte) []string {
	var words []string
	seen := map[string]bool{}

	for off := 0; off+minWindow <= len(buf); off++ {
		// buf[off+1] is the high byte of the first UTF-16LE code unit.
		if buf[off+1] < 0x4E || buf[off+1] > 0x9F {
			continue
		}
		for w := minWindow; w <= maxWindow && off+w <= len(buf); w += 2 {
			text := cursor.DecodeUTF16(buf[off : off+w])
			if !hanzi.ValidWord(text) || hanzi.RuneLen(text) < minWordRunes {
				continue
			}
			if !seen[text] {
				seen[text] = true
				words = append(words, text)
			}
			break
		}
	}

	return words
}

// OffsetRetry speculatively reads length-prefixed records at each known
// alternate offset and returns the words from the offset accepting the
// most. At every position it skips a 2-byte field, reads a u16 length,
// sanity-checks it, and attempts a word decode; the position then advances
// by a single byte regardless of success to tolerate misalignment.
func OffsetRetry(buf []byte) ([]string, int) {
	var best []string
	bestOffset := -1

	for _, start := range Offsets {
		words := scanAt(buf, start)
		if len(words) > len(best) {
			best = words
			bestOffset = start
		}
	}

	return best, bestOffset
}

// scanAt runs the speculative record scan from a single start offset.
func scanAt(buf []byte, start int) []string {
	if start >= len(buf) {
		return nil
	}

	var words []string
	seen := map[string]bool{}

	for pos := start; pos+4 <= len(buf) && len(words) < maxOffsetWords; pos++ {
		// Skip a putative 2-byte count field, then read the length.
		l := int(buf[pos+2]) | int(buf[pos+3])<<8
		if l < minRecordLen || l > maxRecordLen || l%2 != 0 {
			continue
		}
		if pos+4+l > len(buf) {
			continue
		}
		text := cursor.DecodeUTF16(buf[pos+4 : pos+4+l])
		if !hanzi.ValidWord(text) || hanzi.RuneLen(text) < minWordRunes {
			continue
		}
		if !seen[text] {
			seen[text] = true
			words = append(words, text)
		}
	}

	return words
}
