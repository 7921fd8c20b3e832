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

import (
	"errors"
	"fmt"
	"os"

	"github.com/ASC8384/sceldict/header"
	"github.com/ASC8384/sceldict/heuristic"
	"github.com/ASC8384/sceldict/pytable"
	"github.com/ASC8384/sceldict/records"
)

// ErrDecodeFailed indicates that every parse strategy was exhausted
// without producing a single entry.
var ErrDecodeFailed = errors.New("no entries decoded")

// DecodeFailedError is returned when decoding produces no entries. It
// wraps ErrDecodeFailed and carries the accumulated ParseReport.
type DecodeFailedError struct {
	Report ParseReport
}

// Error implements error.
func (e *DecodeFailedError) Error() string {
	return fmt.Sprintf("%v (%v)", ErrDecodeFailed, e.Report)
}

// Unwrap implements errors.Unwrap.
func (e *DecodeFailedError) Unwrap() error {
	return ErrDecodeFailed
}

// sampleWords are the placeholder entries substituted on total decode
// failure when Options.SampleOnFailure is set.
var sampleWords = []string{"网络流行词1", "网络流行词2", "测试词条"}

// Options are options for decoding a cell dictionary.
type Options struct {
	// SampleOnFailure substitutes fixed sample entries when every parse
	// strategy fails, instead of returning a DecodeFailedError. It exists
	// for pipeline debugging and should stay off in production use.
	SampleOnFailure bool
}

// DefaultOptions is the default options for Decode.
var DefaultOptions = &Options{}

// Dict is a decoded cell dictionary.
type Dict struct {
	header  *header.Header
	entries []Entry
	report  ParseReport
}

// Open reads and decodes the cell dictionary file at path.
func Open(path string, options *Options) (*Dict, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return Decode(buf, options)
}

// Decode decodes a cell dictionary from buf. The structured layout is
// tried first; if it yields nothing, heuristic recovery runs. When every
// strategy comes up empty Decode returns a DecodeFailedError carrying the
// accumulated ParseReport, unless options opt into sample substitution.
func Decode(buf []byte, options *Options) (*Dict, error) {
	if options == nil {
		options = DefaultOptions
	}

	d := &Dict{
		header: header.Parse(buf),
		report: ParseReport{
			Strategy: StrategyNone,
			Offset:   -1,
		},
	}

	if d.header.Structured {
		tbl, sylErrs := pytable.Parse(buf)
		d.report.SyllableErrors = sylErrs

		words, stats := records.Parse(buf, d.header.RecordOffset, tbl)
		d.report.Rejected = stats.Rejected
		if stats.Accepted > 0 {
			d.report.Accepted = stats.Accepted
			d.report.Strategy = StrategyStructured
			d.report.Offset = d.header.RecordOffset
			for _, w := range words {
				d.entries = append(d.entries, Entry{
					Word:      w.Text,
					Syllables: w.Syllables,
					Weight:    int(w.Frequency),
				})
			}
			return d, nil
		}
	}

	if result, ok := heuristic.Recover(buf); ok {
		d.report.Accepted = len(result.Words)
		d.report.Strategy = Strategy(result.Strategy)
		d.report.Offset = result.Offset
		for _, w := range result.Words {
			d.entries = append(d.entries, Entry{Word: w})
		}
		return d, nil
	}

	if options.SampleOnFailure {
		d.report.Accepted = len(sampleWords)
		d.report.Strategy = StrategySample
		for _, w := range sampleWords {
			d.entries = append(d.entries, Entry{Word: w})
		}
		return d, nil
	}

	return nil, &DecodeFailedError{Report: d.report}
}

// Entries returns the decoded entries in file order.
func (d *Dict) Entries() []Entry {
	return d.entries
}

// Words returns the decoded words in file order.
func (d *Dict) Words() []string {
	words := make([]string, len(d.entries))
	for i, e := range d.entries {
		words[i] = e.Word
	}
	return words
}

// Report returns the ParseReport for the decode.
func (d *Dict) Report() ParseReport {
	return d.report
}

// Name returns the dictionary name from the header.
func (d *Dict) Name() string {
	return d.header.Name
}

// Category returns the dictionary category from the header.
func (d *Dict) Category() string {
	return d.header.Category
}

// Description returns the dictionary description from the header.
func (d *Dict) Description() string {
	return d.header.Description
}

// Samples returns the header's example words.
func (d *Dict) Samples() string {
	return d.header.Samples
}

// DeclaredWordCount returns the word count stated in the header. It may
// differ from len(Entries()) for corrupt files.
func (d *Dict) DeclaredWordCount() int {
	return d.header.DeclaredWordCount
}
