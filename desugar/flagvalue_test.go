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

package desugar_test

import (
	"flag"
	"io"
	"strings"
	"testing"

	. "fillmore-labs.com/rbdesugar/desugar"
	"fillmore-labs.com/rbdesugar/internal/config"
)

func TestRecognizerValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial bool
		args    []string
		want    bool
		wantErr bool
	}{
		{"enable", false, []string{"-prop"}, true, false},
		{"disable", true, []string{"-prop=false"}, false, false},
		{"off", true, []string{"-prop=Off"}, false, false},
		{"on", false, []string{"-prop=on"}, true, false},
		{"numeric", false, []string{"-prop=1"}, true, false},
		{"invalid", true, []string{"-prop=maybe"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			var flags config.Recognizers
			flags.Set(config.Prop, tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			fv := NewRecognizerValue(&flags, config.Prop)
			fs.Var(fv, "prop", "enable the prop recognizer")

			// when
			err := fs.Parse(tt.args)

			// then
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, want error %t", err, tt.wantErr)
			}

			if fv.Get() != tt.want {
				t.Errorf("Get() = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(config.Prop) != tt.want {
				t.Errorf("Prop enabled = %v, want %v", flags.Enabled(config.Prop), tt.want)
			}
		})
	}
}

func TestRecognizerValueUsage(t *testing.T) {
	t.Parallel()

	// given
	flags := config.DefaultRecognizers()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewRecognizerValue(&flags, config.Delegate), "delegate", "enable the delegate recognizer")

	var out strings.Builder
	fs.SetOutput(&out)

	// when
	fs.Usage()

	// then
	const want = `
  -delegate
    	enable the delegate recognizer (default true)
`
	if got := out.String(); !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
