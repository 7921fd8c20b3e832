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

package pytable_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ASC8384/sceldict/internal/testutil"
	"github.com/ASC8384/sceldict/pytable"
)

func TestParse(t *testing.T) {
	t.Parallel()

	buf := testutil.MakeDict(testutil.Dict{
		Syllables: []testutil.Syllable{
			{Index: 0, Syllable: "wang"},
			{Index: 1, Syllable: "luo"},
			{Index: 2, Syllable: "liu"},
		},
	})

	tbl, errCount := pytable.Parse(buf)

	if got, want := errCount, 0; got != want {
		t.Errorf("error count: got %d, want %d", got, want)
	}
	if got, want := tbl.Size(), 3; got != want {
		t.Errorf("Size: got %d, want %d", got, want)
	}
	for idx, want := range map[uint16]string{0: "wang", 1: "luo", 2: "liu"} {
		if diff := cmp.Diff(want, tbl.Syllable(idx)); diff != "" {
			t.Errorf("Syllable(%d) (-want +got):\n%s", idx, diff)
		}
	}
}

func TestTable_syntheticSyllable(t *testing.T) {
	t.Parallel()

	buf := testutil.MakeDict(testutil.Dict{
		Syllables: []testutil.Syllable{
			{Index: 0, Syllable: "wang"},
			{Index: 1, Syllable: "luo"},
		},
	})
	tbl, _ := pytable.Parse(buf)

	tests := []struct {
		idx      uint16
		expected string
	}{
		// Unmapped indices resolve to 'a' + (index - tableSize).
		{2, "a"},
		{3, "b"},
		{27, "z"},
		{28, "?"},
		{1000, "?"},
	}
	for _, tc := range tests {
		if got := tbl.Syllable(tc.idx); got != tc.expected {
			t.Errorf("Syllable(%d): got %q, want %q", tc.idx, got, tc.expected)
		}
	}
}

func TestParse_badEntry(t *testing.T) {
	t.Parallel()

	buf := testutil.MakeDict(testutil.Dict{
		Syllables: []testutil.Syllable{
			{Index: 0, Syllable: "wang"},
			{Index: 1, Syllable: "网"}, // not a romanized syllable
			{Index: 2, Syllable: "luo"},
		},
	})

	tbl, errCount := pytable.Parse(buf)

	if got, want := errCount, 1; got != want {
		t.Errorf("error count: got %d, want %d", got, want)
	}
	// The bad entry is skipped; the loop continues.
	if got, want := tbl.Size(), 2; got != want {
		t.Errorf("Size: got %d, want %d", got, want)
	}
	if diff := cmp.Diff("luo", tbl.Syllable(2)); diff != "" {
		t.Errorf("Syllable(2) (-want +got):\n%s", diff)
	}
}

func TestParse_truncated(t *testing.T) {
	t.Parallel()

	full := testutil.MakeDict(testutil.Dict{
		Syllables: []testutil.Syllable{
			{Index: 0, Syllable: "wang"},
			{Index: 1, Syllable: "luo"},
		},
	})

	// Truncating inside the table stops the loop without error.
	tbl, _ := pytable.Parse(full[:pytable.Offset+10])
	if got := tbl.Size(); got > 1 {
		t.Errorf("Size: got %d, want at most 1", got)
	}

	// A buffer ending before the table yields an empty table.
	tbl, errCount := pytable.Parse(full[:0x100])
	if got, want := tbl.Size(), 0; got != want {
		t.Errorf("Size: got %d, want %d", got, want)
	}
	if got, want := errCount, 0; got != want {
		t.Errorf("error count: got %d, want %d", got, want)
	}
}
