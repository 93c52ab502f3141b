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
	"runtime"

	"fillmore-labs.com/rbdesugar/internal/config"
	"fillmore-labs.com/rbdesugar/internal/rewrite"
)

// runOptions represent the configuration of a [Desugarer].
type runOptions struct {
	// recognizers represents the recognizer families to be enabled.
	recognizers config.Recognizers

	// behavior holds behavioral options.
	behavior config.Behavior

	logger *slog.Logger

	// parallelism limits the number of files rewritten concurrently, GOMAXPROCS when below one.
	parallelism int
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		recognizers: config.DefaultRecognizers(),
		behavior:    config.DefaultBehavior(),
	}
}

func (r *runOptions) stage() rewrite.Stage {
	return rewrite.New(r.recognizers, r.behavior)
}

func (r *runOptions) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return r.logger
}

func (r *runOptions) limit() int {
	if r.parallelism < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return r.parallelism
}
