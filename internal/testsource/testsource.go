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

// Package testsource provides utilities for parsing Ruby source fragments in tests.
//
// It is designed to simplify testing of the rewriter by handling the boilerplate
// of wrapping class-body statements and materializing source trees on disk.
package testsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/ruby"
)

// Parse parses a Ruby class body fragment into a tree.
// The provided source `src` is wrapped in `class <header>` ... `end`, which allows
// testing statement-level code without manually writing the surrounding class.
// A header of "A < T::Struct" produces a T::Struct subclass.
//
// Returns:
//   - *ast.File: The parsed file containing the single class.
//   - *ast.ClassDef: The wrapping class definition.
func Parse(tb testing.TB, header, src string) (*ast.File, *ast.ClassDef) {
	tb.Helper()

	const filename = "test.rb"

	f := ParseFile(tb, filename, wrapSource(header, src))

	cd := firstClassDef(f)
	if cd == nil {
		tb.Fatal("Can't find class definition")
	}

	return f, cd
}

// ParseFile parses a complete Ruby source file, failing the test on syntax errors.
func ParseFile(tb testing.TB, path, src string) *ast.File {
	tb.Helper()

	f, err := ruby.Parse(context.Background(), path, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// WriteFiles writes the files of ar below dir and returns their paths in archive order.
func WriteFiles(tb testing.TB, dir string, ar *txtar.Archive) []string {
	tb.Helper()

	paths := make([]string, 0, len(ar.Files))
	for _, file := range ar.Files {
		path := filepath.Join(dir, filepath.FromSlash(file.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("Can't create directory for %s: %v", file.Name, err)
		}

		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			tb.Fatalf("Can't write %s: %v", file.Name, err)
		}

		paths = append(paths, path)
	}

	return paths
}

func wrapSource(header, src string) string {
	var b strings.Builder
	b.Grow(len("class \n\nend\n") + len(header) + len(src))

	b.WriteString("class ")
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(src)
	b.WriteString("\nend\n")

	return b.String()
}

func firstClassDef(f *ast.File) *ast.ClassDef {
	if f.Root == nil {
		return nil
	}

	for _, e := range f.Root.Stats {
		if cd, ok := e.(*ast.ClassDef); ok {
			return cd
		}
	}

	return nil
}
