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
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/config"
	"fillmore-labs.com/rbdesugar/internal/ruby"
	"fillmore-labs.com/rbdesugar/internal/verify"
)

// Re-exported errors.
var (
	// ErrSyntax is returned for source code that does not parse.
	ErrSyntax = ruby.ErrSyntax

	// ErrMalformed is returned when a rewritten file fails structural verification.
	ErrMalformed = verify.ErrMalformed
)

// Desugarer rewrites class-body idioms of Ruby files into explicit method definitions.
// A Desugarer is safe for concurrent use once configured.
type Desugarer struct {
	r *runOptions
}

// New creates a new [Desugarer] configured by opts.
func New(opts ...Option) *Desugarer {
	return &Desugarer{r: makeRunOptions(opts)}
}

// Families returns the names of all recognizer families, in priority order.
func Families() []string {
	names := make([]string, 0, len(config.AllFamilies))
	for _, f := range config.AllFamilies {
		names = append(names, f.String())
	}

	return names
}

// Enabled returns the names of the recognizer families enabled in d, in priority order.
func (d *Desugarer) Enabled() []string {
	var names []string
	for f := range d.r.recognizers.Select(config.AllFamilies[:]) {
		names = append(names, f.String())
	}

	return names
}

// Result is the outcome of rewriting a single file.
type Result struct {
	File *ast.File

	// Skipped is set for generated files that were left unchanged.
	Skipped bool

	// Classes counts the class and module definitions visited.
	Classes int

	// Rewritten counts the class and module definitions that were replaced.
	Rewritten int
}

// Source is a named Ruby source file.
type Source struct {
	Path string
	Data []byte
}

// Rewrite rewrites every class definition of f in place.
//
// Violations of internal invariants panic with an error of type *astutil.InternalError.
func (d *Desugarer) Rewrite(ctx context.Context, f *ast.File) (Result, error) {
	ctx, task := trace.NewTask(ctx, "Desugar")
	defer task.End()

	trace.Log(ctx, "path", f.Path)

	logger := d.r.log()

	if f.Generated && !d.r.behavior.Enabled(config.IncludeGenerated) {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipping generated file", slog.String("path", f.Path))

		return Result{File: f, Skipped: true}, nil
	}

	stats := d.r.stage().Run(ctx, f)

	if d.r.behavior.Enabled(config.Verify) {
		if err := verify.File(f); err != nil {
			return Result{}, fmt.Errorf("desugar: %w", err)
		}
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Rewrote file",
		slog.String("path", f.Path),
		slog.Int("classes", stats.Classes),
		slog.Int("rewritten", stats.Rewritten))

	return Result{File: f, Classes: stats.Classes, Rewritten: stats.Rewritten}, nil
}

// RewriteSource parses src and rewrites the resulting file.
func (d *Desugarer) RewriteSource(ctx context.Context, path string, src []byte) (Result, error) {
	f, err := ruby.Parse(ctx, path, src)
	if err != nil {
		return Result{}, fmt.Errorf("desugar: %w", err)
	}

	return d.Rewrite(ctx, f)
}

// RewriteFiles parses and rewrites independent files concurrently.
// Results are returned in input order. The first error cancels the remaining files.
func (d *Desugarer) RewriteFiles(ctx context.Context, files []Source) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.r.limit())

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := d.RewriteSource(ctx, file.Path, file.Data)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
