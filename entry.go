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

package sceldict

// Entry is a decoded dictionary entry. Entries are created by the decoder
// and never mutated afterward.
type Entry struct {
	// Word is the dictionary word.
	Word string

	// Syllables is the romanized syllable sequence for the word. It is
	// empty for entries recovered heuristically; callers resolve those
	// through a romanization collaborator before serializing.
	Syllables []string

	// Weight is the frequency field from the word's record trailer, or
	// zero when the word was recovered heuristically.
	Weight int
}
