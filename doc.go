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

// Package sceldict implements a decoder for Sogou cell dictionary (.scel)
// files in pure Go.
//
// A cell dictionary file contains several sections:
//  1. A fixed-offset header with a magic signature, descriptive metadata
//     (name, category, description, samples) and a declared word count.
//  2. A pinyin syllable table mapping numeric indices to romanized
//     syllables.
//  3. A table of homophone-grouped word records, each carrying a syllable
//     index sequence and one or more UTF-16LE words.
//
// Decode tries the structured layout first and falls back to heuristic
// recovery (a sliding UTF-16LE pattern scan, then a structured retry at
// alternate offsets) when the layout is absent or corrupt. Every decode
// outcome carries a ParseReport describing what was accepted, what was
// rejected, and which strategy succeeded.
package sceldict
