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

// Package pinyin romanizes dictionary words into pinyin syllables.
package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Resolver returns the lowercase, tone-free syllable sequence for a word,
// best-effort, conceptually one syllable per character. An empty result
// means the word could not be romanized; callers drop such words rather
// than emitting blank syllables.
type Resolver interface {
	Syllables(word string) []string
}

// HanResolver resolves syllables through a built-in Han character reading
// table. ASCII letters and digits pass through lowercased; other
// unreadable characters are skipped.
type HanResolver struct {
	args gopinyin.Args
}

// NewHanResolver returns a new HanResolver.
func NewHanResolver() *HanResolver {
	args := gopinyin.NewArgs()
	args.Fallback = func(r rune, _ gopinyin.Args) []string {
		if unicode.IsLetter(r) && r < unicode.MaxASCII || unicode.IsDigit(r) {
			return []string{strings.ToLower(string(r))}
		}
		return nil
	}
	return &HanResolver{args: args}
}

// Syllables implements Resolver.
func (p *HanResolver) Syllables(word string) []string {
	return gopinyin.LazyPinyin(word, p.args)
}
