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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ASC8384/sceldict"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print cell dictionary metadata",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
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

			report := d.Report()
			tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
			tbl.AddRow("Name", d.Name())
			tbl.AddRow("Category", d.Category())
			tbl.AddRow("Description", d.Description())
			tbl.AddRow("Samples", d.Samples())
			tbl.AddRow("Declared words", d.DeclaredWordCount())
			tbl.AddRow("Decoded words", report.Accepted)
			tbl.AddRow("Rejected words", report.Rejected)
			tbl.AddRow("Strategy", report.Strategy)
			tbl.Print()

			return nil
		},
	}
}
