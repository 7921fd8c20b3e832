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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ASC8384/sceldict"
	"github.com/ASC8384/sceldict/pinyin"
	"github.com/ASC8384/sceldict/rimedict"
	"github.com/ASC8384/sceldict/wordlist"
)

// Output file names inside the data directory.
const (
	currentWordsFile     = "sogou_network_words_current.txt"
	accumulatedWordsFile = "sogou_network_words_accumulated.txt"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a cell dictionary file to Rime dictionaries",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "write output files to `DIR`",
				Aliases: []string{"d"},
				Value:   "data",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Rime dictionary base `NAME`",
				Value: "luna_pinyin.sogoupopular",
			},
			&cli.BoolFlag{
				Name:  "current-only",
				Usage: "only write the current-batch outputs",
			},
			&cli.BoolFlag{
				Name:  "accumulated-only",
				Usage: "only write the accumulated outputs",
			},
			&cli.BoolFlag{
				Name:  "sample-on-failure",
				Usage: "substitute sample entries when decoding fails",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one FILE argument", ErrFlagParse)
			}

			d, err := sceldict.Open(c.Args().First(), &sceldict.Options{
				SampleOnFailure: c.Bool("sample-on-failure"),
			})
			if err != nil {
				return fmt.Errorf("decoding %q: %w", c.Args().First(), err)
			}
			fmt.Fprintf(c.App.Writer, "decoded %s: %s\n", c.Args().First(), d.Report())

			return runConvert(c, d)
		},
	}
}

// runConvert writes the current and accumulated outputs for a decoded
// dictionary, honoring the --current-only/--accumulated-only flags.
func runConvert(c *cli.Context, d *sceldict.Dict) error {
	dataDir := c.String("data-dir")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dataDir, err)
	}

	name := c.String("name")
	resolver := pinyin.NewHanResolver()
	now := time.Now()

	if !c.Bool("accumulated-only") {
		if err := writeCurrent(dataDir, name, now, d, resolver); err != nil {
			return err
		}
	}

	if !c.Bool("current-only") {
		if err := writeAccumulated(dataDir, name, now, d.Words(), resolver); err != nil {
			return err
		}
	}

	return nil
}

// writeCurrent writes the current batch word list and its weighted Rime
// dictionary, preserving decode order.
func writeCurrent(dataDir, name string, now time.Time, d *sceldict.Dict, resolver pinyin.Resolver) error {
	txtPath := filepath.Join(dataDir, currentWordsFile)
	if err := wordlist.WriteWords(txtPath, d.Words()); err != nil {
		return fmt.Errorf("writing current word list: %w", err)
	}

	entries := make([]rimedict.Entry, 0, len(d.Entries()))
	for _, e := range d.Entries() {
		syllables := e.Syllables
		if len(syllables) == 0 {
			syllables = resolver.Syllables(e.Word)
		}
		entries = append(entries, rimedict.Entry{
			Word:      e.Word,
			Syllables: syllables,
		})
	}

	yamlPath := filepath.Join(dataDir, name+".current.dict.yaml")
	f, err := os.Create(yamlPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", yamlPath, err)
	}
	defer f.Close()

	if err := rimedict.WriteWeighted(f, name+".current", now, entries); err != nil {
		return err
	}
	return nil
}

// writeAccumulated merges the batch into the persisted accumulated set and
// writes the merged word list and its simple Rime dictionary.
func writeAccumulated(dataDir, name string, now time.Time, batch []string, resolver pinyin.Resolver) error {
	txtPath := filepath.Join(dataDir, accumulatedWordsFile)
	set, err := wordlist.Load(txtPath)
	if err != nil {
		return fmt.Errorf("loading accumulated word list: %w", err)
	}
	set.Merge(batch)
	if err := set.Save(txtPath); err != nil {
		return fmt.Errorf("writing accumulated word list: %w", err)
	}

	words := set.Sorted()
	entries := make([]rimedict.Entry, 0, len(words))
	for _, w := range words {
		entries = append(entries, rimedict.Entry{
			Word:      w,
			Syllables: resolver.Syllables(w),
		})
	}

	yamlPath := filepath.Join(dataDir, name+".dict.yaml")
	f, err := os.Create(yamlPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", yamlPath, err)
	}
	defer f.Close()

	if err := rimedict.WriteSimple(f, name, now, entries); err != nil {
		return err
	}
	return nil
}
