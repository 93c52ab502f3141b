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

package settings

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/rbdesugar/desugar"
)

// DefaultFile is the name of the settings file looked up in the working directory.
const DefaultFile = ".rbdesugar.yaml"

// supportedVersions constrains the version key of settings files.
const supportedVersions = "^1"

var (
	// ErrVersion is returned for settings files with a missing or unsupported version.
	ErrVersion = errors.New("unsupported settings version")

	// ErrUnknownRecognizer is returned for settings naming a recognizer family that does not exist.
	ErrUnknownRecognizer = errors.New("unknown recognizer")
)

// Settings represents the contents of a settings file.
type Settings struct {
	// Version is the schema version of the file.
	Version string `yaml:"version"`
	// Recognizers enables or disables recognizer families by name.
	Recognizers map[string]bool `yaml:"recognizers,omitempty"`
	// Generated enables rewriting of generated files.
	Generated *bool `yaml:"generated,omitempty"`
	// Initializer enables initializer synthesis for T::Struct classes.
	Initializer *bool `yaml:"initializer,omitempty"`
	// Verify enables structural verification of rewritten files.
	Verify *bool `yaml:"verify,omitempty"`
	// Parallelism limits the number of files rewritten concurrently.
	Parallelism *int `yaml:"parallelism,omitempty"`
}

// LoadFile reads and validates the settings file at path.
func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Load reads and validates settings. Unknown keys are rejected.
func Load(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("can't decode settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks the version and recognizer names of s.
func (s Settings) Validate() error {
	if err := checkVersion(s.Version); err != nil {
		return err
	}

	families := desugar.Families()
	for _, name := range slices.Sorted(maps.Keys(s.Recognizers)) {
		if !slices.Contains(families, name) {
			return fmt.Errorf("%w %q", ErrUnknownRecognizer, name)
		}
	}

	return nil
}

func checkVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: missing version", ErrVersion)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrVersion, version, err)
	}

	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}

	if !c.Check(v) {
		return fmt.Errorf("%w %s, want %s", ErrVersion, v, supportedVersions)
	}

	return nil
}

// Options converts [Settings] into a list of [desugar.Option].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []desugar.Option {
	var opts []desugar.Option

	for _, name := range slices.Sorted(maps.Keys(s.Recognizers)) {
		opts = append(opts, desugar.WithRecognizer(name, s.Recognizers[name]))
	}

	opts = appendOption(opts, s.Generated, desugar.WithGenerated)
	opts = appendOption(opts, s.Initializer, desugar.WithInitializer)
	opts = appendOption(opts, s.Verify, desugar.WithVerify)
	opts = appendOption(opts, s.Parallelism, desugar.WithParallelism)

	return opts
}

// appendOption appends a non-nil setting to a [desugar.Option] list.
func appendOption[T any](opts []desugar.Option, value *T, constructor func(T) desugar.Option) []desugar.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
