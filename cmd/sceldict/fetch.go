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
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ASC8384/sceldict"
	"github.com/ASC8384/sceldict/fetch"
)

const versionInfoFile = "version_info.json"

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Download the latest cell dictionary and convert it",
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
			&cli.StringFlag{
				Name:  "detail-url",
				Usage: "dictionary detail page `URL`",
				Value: fetch.DefaultDetailURL,
			},
			&cli.StringFlag{
				Name:  "download-url",
				Usage: "cell file download `URL`",
				Value: fetch.DefaultDownloadURL,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "convert even when the local version is current",
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
			client := fetch.NewClient(&fetch.Options{
				DetailURL:   c.String("detail-url"),
				DownloadURL: c.String("download-url"),
			})

			latest, err := client.LatestVersion(c.Context)
			if err != nil {
				return fmt.Errorf("fetching version info: %w", err)
			}

			statePath := filepath.Join(c.String("data-dir"), versionInfoFile)
			local, err := fetch.LoadVersionInfo(statePath)
			if err != nil {
				return err
			}

			if latest.Version <= local.Version && !c.Bool("force") {
				fmt.Fprintf(c.App.Writer, "version %d is current, nothing to do\n", local.Version)
				return nil
			}

			buf, err := client.Download(c.Context)
			if err != nil {
				return fmt.Errorf("downloading cell dictionary: %w", err)
			}

			d, err := sceldict.Decode(buf, &sceldict.Options{
				SampleOnFailure: c.Bool("sample-on-failure"),
			})
			if err != nil {
				return fmt.Errorf("decoding downloaded dictionary: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "decoded version %d: %s\n", latest.Version, d.Report())

			if err := runConvert(c, d); err != nil {
				return err
			}

			if err := fetch.SaveVersionInfo(statePath, latest); err != nil {
				return err
			}
			return nil
		},
	}
}
