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

package cursor_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ASC8384/sceldict/internal/cursor"
)

func TestCursor_ReadUint16(t *testing.T) {
	t.Parallel()

	c := cursor.New([]byte{0x34, 0x12, 0xff})

	v, err := c.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if got, want := v, uint16(0x1234); got != want {
		t.Errorf("ReadUint16: got %#x, want %#x", got, want)
	}

	// Only one byte remains.
	if _, err := c.ReadUint16(); !errors.Is(err, cursor.ErrOutOfBounds) {
		t.Errorf("ReadUint16: got %v, want ErrOutOfBounds", err)
	}
	// A failed read must not advance.
	if got, want := c.Pos(), 2; got != want {
		t.Errorf("Pos: got %d, want %d", got, want)
	}
}

func TestCursor_ReadUint32(t *testing.T) {
	t.Parallel()

	c := cursor.New([]byte{0x78, 0x56, 0x34, 0x12})

	v, err := c.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32: %v", err)
	}
	if got, want := v, uint32(0x12345678); got != want {
		t.Errorf("ReadUint32: got %#x, want %#x", got, want)
	}
	if !c.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}
}

func TestCursor_ReadUint32_truncated(t *testing.T) {
	t.Parallel()

	// Every truncation of a 4-byte read returns ErrOutOfBounds, never
	// panics.
	for size := 0; size < 4; size++ {
		c := cursor.New(make([]byte, size))
		if _, err := c.ReadUint32(); !errors.Is(err, cursor.ErrOutOfBounds) {
			t.Errorf("ReadUint32 with %d bytes: got %v, want ErrOutOfBounds", size, err)
		}
	}
}

func TestCursor_Seek(t *testing.T) {
	t.Parallel()

	c := cursor.New(make([]byte, 8))

	if err := c.Seek(8); err != nil {
		t.Errorf("Seek(8): %v", err)
	}
	if !c.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}
	if err := c.Seek(9); !errors.Is(err, cursor.ErrOutOfBounds) {
		t.Errorf("Seek(9): got %v, want ErrOutOfBounds", err)
	}
	if err := c.Seek(-1); !errors.Is(err, cursor.ErrOutOfBounds) {
		t.Errorf("Seek(-1): got %v, want ErrOutOfBounds", err)
	}

	if err := c.Seek(4); err != nil {
		t.Fatalf("Seek(4): %v", err)
	}
	if err := c.Skip(-2); err != nil {
		t.Fatalf("Skip(-2): %v", err)
	}
	if got, want := c.Pos(), 2; got != want {
		t.Errorf("Pos: got %d, want %d", got, want)
	}
	if got, want := c.Remaining(), 6; got != want {
		t.Errorf("Remaining: got %d, want %d", got, want)
	}
}

func TestCursor_ReadUTF16String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buf     []byte
		byteLen int

		expected string
		err      error
	}{
		{
			name:     "ascii",
			buf:      []byte{'a', 0, 'b', 0},
			byteLen:  4,
			expected: "ab",
		},
		{
			name: "cjk",
			// 网络 is U+7F51 U+7EDC.
			buf:      []byte{0x51, 0x7f, 0xdc, 0x7e},
			byteLen:  4,
			expected: "网络",
		},
		{
			name:     "nul truncation",
			buf:      []byte{'a', 0, 0, 0, 'b', 0},
			byteLen:  6,
			expected: "a",
		},
		{
			name:     "empty",
			buf:      []byte{},
			byteLen:  0,
			expected: "",
		},
		{
			name:    "out of bounds",
			buf:     []byte{'a', 0},
			byteLen: 4,
			err:     cursor.ErrOutOfBounds,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := cursor.New(tc.buf)
			got, err := c.ReadUTF16String(tc.byteLen)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ReadUTF16String: got err %v, want %v", err, tc.err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("ReadUTF16String (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeUTF16_oddLength(t *testing.T) {
	t.Parallel()

	// A trailing odd byte is ignored.
	got := cursor.DecodeUTF16([]byte{'a', 0, 'x'})
	if diff := cmp.Diff("a", got); diff != "" {
		t.Errorf("DecodeUTF16 (-want +got):\n%s", diff)
	}
}
