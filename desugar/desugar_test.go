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
	"context"
	"errors"
	"flag"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"fillmore-labs.com/rbdesugar/ast"
	. "fillmore-labs.com/rbdesugar/desugar"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	if len(archives) == 0 {
		t.Fatal("No test archives found")
	}

	for _, name := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(name), ".txtar"), func(t *testing.T) {
			t.Parallel()

			// given
			ar, err := txtar.ParseFile(name)
			if err != nil {
				t.Fatal(err)
			}

			d := New()

			fs := flag.NewFlagSet(name, flag.ContinueOnError)
			d.RegisterFlags(fs)

			if err := fs.Parse(archiveFlags(ar)); err != nil {
				t.Fatalf("Invalid flags: %v", err)
			}

			input, want := archiveFile(t, ar, "input.rb"), archiveFile(t, ar, "output.rb")

			// when
			res, err := d.RewriteSource(context.Background(), "input.rb", input)

			// then
			if err != nil {
				t.Fatalf("RewriteSource() failed: %v", err)
			}

			got := ast.PrintFile(res.File)
			if diff := cmp.Diff(strings.TrimRight(string(want), "\n"), got); diff != "" {
				t.Errorf("RewriteSource() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// archiveFlags returns the command line flags in the archive comment, one or more per line starting with '-'.
func archiveFlags(ar *txtar.Archive) []string {
	var args []string

	for line := range strings.Lines(string(ar.Comment)) {
		if strings.HasPrefix(line, "-") {
			args = append(args, strings.Fields(line)...)
		}
	}

	return args
}

func archiveFile(t *testing.T, ar *txtar.Archive, name string) []byte {
	t.Helper()

	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}

	t.Fatalf("Archive has no file %s", name)

	return nil
}

func TestRewriteFiles(t *testing.T) {
	t.Parallel()

	// given
	files := []Source{
		{Path: "a.rb", Data: []byte("class A < T::Struct\n  prop :a, Integer\nend\n")},
		{Path: "b.rb", Data: []byte("class B\n  def b; end\nend\n")},
		{Path: "c.rb", Data: []byte("# @generated\nclass C\n  attr_reader :c\nend\n")},
	}

	d := New(WithParallelism(2))

	// when
	results, err := d.RewriteFiles(context.Background(), files)

	// then
	if err != nil {
		t.Fatalf("RewriteFiles() failed: %v", err)
	}

	if len(results) != len(files) {
		t.Fatalf("Got %d results, want %d", len(results), len(files))
	}

	for i, res := range results {
		if res.File.Path != files[i].Path {
			t.Errorf("Result %d is for %s, want %s", i, res.File.Path, files[i].Path)
		}
	}

	if got := []int{results[0].Rewritten, results[1].Rewritten, results[2].Rewritten}; !cmp.Equal(got, []int{1, 0, 0}) {
		t.Errorf("Got rewritten counts %v", got)
	}

	if !results[2].Skipped {
		t.Error("Expected generated file to be skipped")
	}
}

func TestRewriteFilesGenerated(t *testing.T) {
	t.Parallel()

	files := []Source{{Path: "c.rb", Data: []byte("# @generated\nclass C\n  attr_reader :c\nend\n")}}

	results, err := New(WithGenerated(true)).RewriteFiles(context.Background(), files)
	if err != nil {
		t.Fatalf("RewriteFiles() failed: %v", err)
	}

	if results[0].Skipped || results[0].Rewritten != 1 {
		t.Errorf("Got %+v, want a rewritten generated file", results[0])
	}
}

func TestRewriteFilesSyntaxError(t *testing.T) {
	t.Parallel()

	files := []Source{
		{Path: "ok.rb", Data: []byte("class A; end\n")},
		{Path: "bad.rb", Data: []byte("class A\n  def (\n")},
	}

	_, err := New().RewriteFiles(context.Background(), files)
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Expected %v, got %v", ErrSyntax, err)
	}
}

func TestRewriteFilesCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().RewriteFiles(ctx, []Source{{Path: "a.rb", Data: []byte("class A; end\n")}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected %v, got %v", context.Canceled, err)
	}
}

func TestRewriteVerifies(t *testing.T) {
	t.Parallel()

	// given
	var loc ast.Loc

	f := &ast.File{Path: "a.rb", Root: &ast.Seq{Stats: []ast.Expr{
		&ast.MethodDef{Loc: loc, Name: "broken"},
	}}}

	// when
	_, err := New().Rewrite(context.Background(), f)
	_, errNoVerify := New(WithVerify(false)).Rewrite(context.Background(), f)

	// then
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected %v, got %v", ErrMalformed, err)
	}

	if errNoVerify != nil {
		t.Errorf("Unexpected error without verification: %v", errNoVerify)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	// given
	src := []byte("class A < T::Struct\n  prop :a, Integer\n  attr_reader :b\nend\n")

	tests := []struct {
		name string
		opts Options
		want int // top-level body length
	}{
		{"default", nil, 2 + 5 + 1},
		{"no_prop", Options{WithRecognizer("prop", false)}, 2},
		{"no_attr", Options{WithRecognizer("attr", false)}, 2 + 5 + 1},
		{"no_initializer", Options{WithInitializer(false)}, 5 + 1},
		{"nested", Options{Options{WithInitializer(false)}, nil, WithRecognizer("unknown", false)}, 5 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			res, err := New(tt.opts...).RewriteSource(context.Background(), "a.rb", src)

			// then
			if err != nil {
				t.Fatalf("RewriteSource() failed: %v", err)
			}

			cd, ok := res.File.Root.Stats[0].(*ast.ClassDef)
			if !ok {
				t.Fatalf("Expected class definition, got %T", res.File.Root.Stats[0])
			}

			if len(cd.Body) != tt.want {
				t.Errorf("Got %d statements, want %d:\n%s", len(cd.Body), tt.want, ast.Print(cd))
			}
		})
	}
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	families := Families()
	if len(families) != 14 || families[0] != "prop" || families[len(families)-1] != "wrap-instance" {
		t.Errorf("Got families %v", families)
	}
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	// given
	d := New(WithRecognizer("prop", false), WithRecognizer("wrap-instance", false))

	// when
	enabled := d.Enabled()

	// then
	if slices.Contains(enabled, "prop") || slices.Contains(enabled, "wrap-instance") {
		t.Errorf("Disabled families reported as enabled: %v", enabled)
	}

	if len(enabled) != len(Families())-2 || enabled[0] != "encrypted-prop" {
		t.Errorf("Got enabled families %v", enabled)
	}
}
