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

package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/rbdesugar/desugar"
	. "fillmore-labs.com/rbdesugar/settings"
)

const allSettings = `---
version: "1.2.0"
recognizers:
  prop: true
  minitest: false
generated: true
initializer: false
verify: true
parallelism: 2
`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
		err      error
	}{
		{"all", allSettings, 6, nil},
		{"minimal", `version: "1"`, 0, nil},
		{"empty", ``, 0, ErrVersion},
		{"no_version", `verify: false`, 0, ErrVersion},
		{"future_version", `version: "2.0.0"`, 0, ErrVersion},
		{"bad_version", `version: "one"`, 0, ErrVersion},
		{"unknown_recognizer", "version: \"1\"\nrecognizers:\n  macro: true\n", 0, ErrUnknownRecognizer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := Load(strings.NewReader(tc.settings))
			if !errors.Is(err, tc.err) {
				t.Fatalf("Load() error = %v, want %v", err, tc.err)
			}

			if err != nil {
				return
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), desugar.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("version: \"1\"\nmax-lines: 3\n"))
	if err == nil {
		t.Error("Expected error for unknown key")
	}

	if errors.Is(err, ErrVersion) {
		t.Errorf("Unexpected version error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	// given
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(allSettings), 0o600); err != nil {
		t.Fatal(err)
	}

	// when
	s, err := LoadFile(path)

	// then
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if s.Parallelism == nil || *s.Parallelism != 2 {
		t.Errorf("Got parallelism %v, want 2", s.Parallelism)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected %v, got %v", os.ErrNotExist, err)
	}
}
