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
	"context"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillmore-labs.com/rbdesugar/desugar"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] files...",
		Short: "Rewrite files again whenever they change",
		Long: `Rewrites the given files once, then again on every write until interrupted.

Directories containing the files are watched, so editors replacing a file
on save are picked up. Syntax errors are logged and do not stop watching.`,
		Args: cobra.MinimumNArgs(1),
		RunE: o.watch,
	}
}

type fileWatcher struct {
	d      *desugar.Desugarer
	out    io.Writer
	logger *zap.Logger
	output outputLevel
	files  map[string]struct{}
}

func (o *rootOptions) watch(cmd *cobra.Command, args []string) error {
	d, err := o.desugarer(cmd)
	if err != nil {
		return err
	}

	fw, dirs, err := newFileWatcher(d, cmd.OutOrStdout(), o.logger, o.output, args)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	ctx := cmd.Context()

	for _, path := range slices.Sorted(maps.Keys(fw.files)) {
		fw.rewrite(ctx, path)
	}

	fw.run(ctx, w)

	return nil
}

// newFileWatcher returns a watcher for paths and the directories to watch.
func newFileWatcher(d *desugar.Desugarer, out io.Writer, logger *zap.Logger, output outputLevel, paths []string) (*fileWatcher, []string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fw := &fileWatcher{
		d:      d,
		out:    out,
		logger: logger,
		output: output,
		files:  make(map[string]struct{}, len(paths)),
	}

	dirs := make(map[string]struct{})

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, nil, err
		}

		fw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	return fw, slices.Sorted(maps.Keys(dirs)), nil
}

func (fw *fileWatcher) run(ctx context.Context, w *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			fw.logger.Debug("Watch stopped", zap.Error(ctx.Err()))

			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}

			fw.handleEvent(ctx, event)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			fw.logger.Warn("Watch error", zap.Error(err))
		}
	}
}

// handleEvent rewrites a watched file on write or create and reports whether it did.
func (fw *fileWatcher) handleEvent(ctx context.Context, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	path := filepath.Clean(event.Name)
	if _, ok := fw.files[path]; !ok {
		return false
	}

	fw.logger.Debug("File changed", zap.String("path", path), zap.Stringer("op", event.Op))

	return fw.rewrite(ctx, path)
}

func (fw *fileWatcher) rewrite(ctx context.Context, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fw.logger.Warn("Can't read file", zap.String("path", path), zap.Error(err))

		return false
	}

	res, err := fw.d.RewriteSource(ctx, path, data)
	if err != nil {
		fw.logger.Warn("Can't rewrite file", zap.String("path", path), zap.Error(err))

		return false
	}

	src := desugar.Source{Path: path, Data: data}
	if err := fw.output.write(fw.out, []desugar.Source{src}, []desugar.Result{res}, true); err != nil {
		fw.logger.Warn("Can't write output", zap.String("path", path), zap.Error(err))

		return false
	}

	return true
}
