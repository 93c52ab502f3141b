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
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
	"golang.org/x/tools/txtar"

	"fillmore-labs.com/rbdesugar/desugar"
	"fillmore-labs.com/rbdesugar/settings"
)

// ErrArchiveArgs is returned when --archive is not given exactly one archive.
var ErrArchiveArgs = errors.New("--archive needs exactly one archive path or -")

type rootOptions struct {
	config  string
	archive bool
	verbose bool
	output  outputLevel

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rbdesugar [flags] files...",
		Short: "Rewrite Ruby class-body DSL calls into explicit method definitions",
		Long: `rbdesugar rewrites class-body idioms (prop, const, Struct.new, delegate,
attr_reader and friends) into the method definitions they stand for.

Rewritten sources are printed to standard output. With --archive, a txtar archive
of sources is read and a txtar archive of rewritten sources is written.`,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: o.initLogger,
		PersistentPostRun: o.syncLogger,
		RunE:              o.run,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.config, "config", "", "settings file (default "+settings.DefaultFile+" if present)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	pf.Var(&o.output, "output", "output format: source or stats")

	// Flag values are replayed onto the configured desugarer in [rootOptions.desugarer].
	template := flag.NewFlagSet("rbdesugar", flag.ContinueOnError)
	desugar.New().RegisterFlags(template)
	pf.AddGoFlagSet(template)

	cmd.Flags().BoolVar(&o.archive, "archive", false, "read a txtar archive of sources and write a txtar archive")

	cmd.AddCommand(newWatchCmd(o))

	return cmd
}

func (o *rootOptions) initLogger(_ *cobra.Command, _ []string) error {
	config := zap.NewProductionConfig()
	if o.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	o.logger = logger

	return nil
}

func (o *rootOptions) syncLogger(_ *cobra.Command, _ []string) {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}

// desugarer builds a [desugar.Desugarer] from the settings file, overridden by the flags set on cmd.
func (o *rootOptions) desugarer(cmd *cobra.Command) (*desugar.Desugarer, error) {
	s, err := o.loadSettings()
	if err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := append(s.Options(), desugar.WithLogger(slog.New(zapslog.NewHandler(logger.Core()))))
	d := desugar.New(opts...)

	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	d.RegisterFlags(flags)

	var errs []error

	cmd.Flags().Visit(func(f *pflag.Flag) {
		if flags.Lookup(f.Name) == nil {
			return
		}

		if err := flags.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	logger.Debug("Configured recognizers", zap.Strings("enabled", d.Enabled()))

	return d, nil
}

func (o *rootOptions) loadSettings() (settings.Settings, error) {
	path := o.config
	if path == "" {
		if _, err := os.Stat(settings.DefaultFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return settings.Settings{}, nil
			}

			return settings.Settings{}, err
		}

		path = settings.DefaultFile
	}

	return settings.LoadFile(path)
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	d, err := o.desugarer(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if o.archive {
		if len(args) != 1 {
			return ErrArchiveArgs
		}

		return o.runArchive(ctx, d, cmd, args[0])
	}

	sources, err := readSources(args)
	if err != nil {
		return err
	}

	results, err := d.RewriteFiles(ctx, sources)
	if err != nil {
		return err
	}

	return o.output.write(cmd.OutOrStdout(), sources, results, len(sources) > 1)
}

func (o *rootOptions) runArchive(ctx context.Context, d *desugar.Desugarer, cmd *cobra.Command, path string) error {
	data, err := readArchive(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	ar := txtar.Parse(data)

	sources := make([]desugar.Source, 0, len(ar.Files))
	for _, file := range ar.Files {
		sources = append(sources, desugar.Source{Path: file.Name, Data: file.Data})
	}

	results, err := d.RewriteFiles(ctx, sources)
	if err != nil {
		return err
	}

	if o.output == outputStats {
		return o.output.write(cmd.OutOrStdout(), sources, results, false)
	}

	out := &txtar.Archive{Comment: ar.Comment, Files: make([]txtar.File, 0, len(results))}
	for i, res := range results {
		out.Files = append(out.Files, txtar.File{Name: sources[i].Path, Data: render(sources[i], res)})
	}

	_, err = cmd.OutOrStdout().Write(txtar.Format(out))

	return err
}

func readArchive(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func readSources(paths []string) ([]desugar.Source, error) {
	sources := make([]desugar.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		sources = append(sources, desugar.Source{Path: path, Data: data})
	}

	return sources, nil
}
