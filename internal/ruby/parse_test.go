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

package ruby_test

import (
	"context"
	"errors"
	"testing"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/dsl"
	. "fillmore-labs.com/rbdesugar/internal/ruby"
)

const structSource = `# typed: true
class A < T::Struct
  # a comment
  prop :a, Integer
  const :b, String, default: "x"

  def foo(x, y = 1, z:, w: nil, *rest, &blk)
    @x = x
  end
end
`

func TestParseClass(t *testing.T) {
	t.Parallel()

	// given
	src := []byte(structSource)

	// when
	f, err := Parse(context.Background(), "a.rb", src)

	// then
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if f.Generated {
		t.Error("File marked as generated")
	}

	if len(f.Root.Stats) != 1 {
		t.Fatalf("Got %d top-level statements, want 1", len(f.Root.Stats))
	}

	cd, ok := f.Root.Stats[0].(*ast.ClassDef)
	if !ok {
		t.Fatalf("Expected class definition, got %T", f.Root.Stats[0])
	}

	if len(cd.Ancestors) != 1 || !dsl.IsTStruct(cd.Ancestors[0]) {
		t.Errorf("Expected T::Struct ancestor, got %v", cd.Ancestors)
	}

	if len(cd.Body) != 3 {
		t.Fatalf("Got %d class statements, want 3:\n%s", len(cd.Body), ast.Print(cd))
	}

	prop, ok := cd.Body[0].(*ast.Send)
	if !ok || prop.Fun != "prop" || prop.Recv != nil || len(prop.Args) != 2 {
		t.Errorf("Got %s, want prop(:a, Integer)", ast.Print(cd.Body[0]))
	}

	cnst, ok := cd.Body[1].(*ast.Send)
	if !ok || cnst.Fun != "const" || len(cnst.Args) != 3 {
		t.Fatalf("Got %s, want const(:b, String, default: \"x\")", ast.Print(cd.Body[1]))
	}

	h, ok := cnst.Args[2].(*ast.Hash)
	if !ok {
		t.Fatalf("Expected trailing hash, got %T", cnst.Args[2])
	}

	if keys, values, ok := ast.HashEntries(h); !ok || len(keys) != 1 || keys[0] != "default" || ast.Print(values[0]) != `"x"` {
		t.Errorf("Got options %s", ast.Print(h))
	}

	m, ok := cd.Body[2].(*ast.MethodDef)
	if !ok {
		t.Fatalf("Expected method definition, got %T", cd.Body[2])
	}

	if got, want := ast.Print(m), "def foo(x, y = 1, z:, w: nil, *rest, &blk)\n  @x = x\nend"; got != want {
		t.Errorf("Got\n%s\nwant\n%s", got, want)
	}
}

func TestParseCalls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"assign", "A = Struct.new(:a, :b)", "A = Struct.new(:a, :b)"},
		{"root_const", "::Foo::Bar", "::Foo::Bar"},
		{"element", "ActiveRecord::Migration[5.1]", "ActiveRecord::Migration[5.1]"},
		{"sig", "sig { params(x: Integer).returns(String) }", "sig { params(x: Integer).returns(String) }"},
		{"private_def", "private def foo; end", "private(def foo; end)"},
		{"self_method", "def self.call; end", "def self.call; end"},
		{"wrap", "x = Foo.wrap_instance(y)", "x = Foo.wrap_instance(y)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse(context.Background(), "t.rb", []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.src, err)
			}

			if got := ast.PrintFile(f); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse(context.Background(), "bad.rb", []byte("class A\n  def foo(\nend\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Expected %v, got %v", ErrSyntax, err)
	}
}

func TestParseGenerated(t *testing.T) {
	t.Parallel()

	f, err := Parse(context.Background(), "gen.rb", []byte("# @generated\nclass A; end\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !f.Generated {
		t.Error("Expected generated file")
	}
}
