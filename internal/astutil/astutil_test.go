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

package astutil_test

import (
	"testing"

	"fillmore-labs.com/rbdesugar/ast"
	. "fillmore-labs.com/rbdesugar/internal/astutil"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	src := "class A\n  prop :a, Integer\nend\n"
	f := &ast.File{Path: "a.rb", Source: []byte(src), Root: &ast.Seq{}}

	cf := NewCurrentFile(f)

	tests := []struct {
		offset    uint32
		line, col int
	}{
		{0, 1, 1},
		{8, 2, 1},
		{10, 2, 3},
		{27, 3, 1},
	}

	for _, tt := range tests {
		if line, col := cf.Position(tt.offset); line != tt.line || col != tt.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}

	if got, want := cf.Where(&ast.EmptyTree{Loc: ast.Loc{Begin: 10, End: 26}}), "a.rb:2:3"; got != want {
		t.Errorf("Where() = %q, want %q", got, want)
	}

	if got, want := NewCurrentFile(nil).Where(&ast.EmptyTree{}), ":0:0"; got != want {
		t.Errorf("Where() without file = %q, want %q", got, want)
	}
}

func TestHasGeneratedMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"generated", "# typed: true\n# @generated\nclass A; end\n", true},
		{"autogenerated", "# This file is autogenerated. DO NOT EDIT.\n", true},
		{"plain", "# typed: true\nclass A; end\n", false},
		{"after_code", "class A; end\n# @generated\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasGeneratedMarker([]byte(tt.src)); got != tt.want {
				t.Errorf("HasGeneratedMarker() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnforce(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()

		err, ok := r.(*InternalError)
		if !ok {
			t.Fatalf("Expected *InternalError panic, got %v", r)
		}

		if got, want := err.Error(), "Internal Error: empty replacement for prop"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}()

	Enforce(true, "not reached")
	Enforce(false, "empty replacement for %s", "prop")
}
