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

package desugar

import (
	"log/slog"

	"fillmore-labs.com/rbdesugar/internal/config"
)

// Option configures specific behavior of a [New] desugarer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRecognizer is an [Option] to enable or disable a recognizer family by name,
// e.g. "prop" or "wrap-instance". Unknown names are ignored; see [Families].
func WithRecognizer(name string, enabled bool) Option {
	return recognizerOption{name: name, enabled: enabled}
}

type recognizerOption struct {
	name    string
	enabled bool
}

func (o recognizerOption) apply(r *runOptions) {
	if f, ok := config.ParseFamily(o.name); ok {
		r.recognizers.Set(f, o.enabled)
	}
}

func (o recognizerOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithGenerated is an [Option] to configure rewriting of generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithInitializer is an [Option] to configure initializer synthesis for T::Struct classes.
func WithInitializer(initializer bool) Option { return initializerOption{initializer: initializer} }

type initializerOption struct{ initializer bool }

func (o initializerOption) apply(r *runOptions) {
	r.behavior.Set(config.SynthesizeInitializer, o.initializer)
}

func (o initializerOption) LogAttr() slog.Attr {
	return slog.Bool("initializer", o.initializer)
}

// WithVerify is an [Option] to configure structural verification of rewritten files.
func WithVerify(verify bool) Option { return verifyOption{verify: verify} }

type verifyOption struct{ verify bool }

func (o verifyOption) apply(r *runOptions) {
	r.behavior.Set(config.Verify, o.verify)
}

func (o verifyOption) LogAttr() slog.Attr {
	return slog.Bool("verify", o.verify)
}

// WithLogger is an [Option] to set the logger receiving per-file progress. A nil logger discards.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithParallelism is an [Option] to limit the number of files rewritten concurrently.
// Values below one select GOMAXPROCS.
func WithParallelism(parallelism int) Option { return parallelismOption{parallelism: parallelism} }

type parallelismOption struct{ parallelism int }

func (o parallelismOption) apply(r *runOptions) {
	r.parallelism = o.parallelism
}

func (o parallelismOption) LogAttr() slog.Attr {
	return slog.Int("parallelism", o.parallelism)
}
