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

// Command sceldict decodes Sogou cell dictionaries and exports Rime
// dictionary files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newSceldictApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode := ExitCodeUnknownError
		if errors.Is(err, ErrFlagParse) {
			exitCode = ExitCodeFlagParseError
		}
		var eerr cli.ExitCoder
		if errors.As(err, &eerr) {
			exitCode = eerr.ExitCode()
		}
		os.Exit(exitCode)
	}
}
