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

import "fmt"

// Strategy identifies the parse strategy that produced a decode outcome.
type Strategy string

const (
	// StrategyStructured is the structured syllable-table and record
	// parse.
	StrategyStructured Strategy = "structured"

	// StrategyPatternScan is the heuristic sliding-window scan.
	StrategyPatternScan Strategy = "pattern-scan"

	// StrategyOffsetRetry is the heuristic alternate-offset retry.
	StrategyOffsetRetry Strategy = "offset-retry"

	// StrategySample marks fabricated sample entries substituted on total
	// failure. It only appears when Options.SampleOnFailure is set.
	StrategySample Strategy = "sample"

	// StrategyNone means no strategy produced any entries.
	StrategyNone Strategy = "none"
)

// ParseReport describes a decode outcome. It is attached to every decode,
// successful or not.
type ParseReport struct {
	// Accepted is the number of entries that passed validation.
	Accepted int

	// Rejected is the number of decoded words dropped by validation.
	Rejected int

	// SyllableErrors is the number of syllable table entries that failed
	// to decode.
	SyllableErrors int

	// Strategy is the strategy that produced the entries.
	Strategy Strategy

	// Offset is the record-table offset used by the winning strategy, or
	// -1 when no fixed offset applies.
	Offset int
}

// String implements fmt.Stringer.
func (r ParseReport) String() string {
	return fmt.Sprintf("strategy=%s offset=%#x accepted=%d rejected=%d syllable_errors=%d",
		r.Strategy, r.Offset, r.Accepted, r.Rejected, r.SyllableErrors)
}
