// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/desugar"
)

// outputLevel specifies what is written for each rewritten file.
type outputLevel uint8

const (
	// outputSource writes the rewritten source.
	outputSource outputLevel = iota

	// outputStats writes one line of counters per file.
	outputStats
)

// MarshalText implements [encoding.TextMarshaler].
func (o outputLevel) MarshalText() ([]byte, error) {
	switch o {
	case outputSource:
		return []byte("source"), nil

	case outputStats:
		return []byte("stats"), nil

	default:
		return nil, fmt.Errorf("unknown output level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *outputLevel) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "source":
		*o = outputSource

	case "stats":
		*o = outputStats

	default:
		return fmt.Errorf("unknown output level %q", string(text))
	}

	return nil
}

func (o outputLevel) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return err.Error()
	}

	return string(text)
}

// Set implements [pflag.Value].
func (o *outputLevel) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements [pflag.Value].
func (outputLevel) Type() string { return "format" }

// write renders results to w, preceding each file by a path comment when header is set.
func (o outputLevel) write(w io.Writer, sources []desugar.Source, results []desugar.Result, header bool) error {
	for i, res := range results {
		var err error

		switch o {
		case outputStats:
			_, err = fmt.Fprintf(w, "%s\t%s\n", sources[i].Path, stats(res))

		default:
			if header {
				if _, err := fmt.Fprintf(w, "# %s\n", sources[i].Path); err != nil {
					return err
				}
			}

			_, err = w.Write(render(sources[i], res))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func stats(res desugar.Result) string {
	if res.Skipped {
		return "skipped"
	}

	return fmt.Sprintf("classes=%d rewritten=%d", res.Classes, res.Rewritten)
}

// render returns the rewritten source of a file. Skipped files are returned unchanged.
func render(src desugar.Source, res desugar.Result) []byte {
	if res.Skipped {
		return src.Data
	}

	return []byte(ast.PrintFile(res.File) + "\n")
}
