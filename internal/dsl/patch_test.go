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

package dsl_test

import (
	"testing"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/config"
	. "fillmore-labs.com/rbdesugar/internal/dsl"
)

func TestPatches(t *testing.T) {
	t.Parallel()

	intParams := hash(sym("x"), cnst("Integer"))

	tests := []struct {
		name  string
		patch func(Context, *ast.ClassDef)
		class func() *ast.ClassDef
		want  string
	}{
		{
			name:  "command",
			patch: PatchCommand,
			class: func() *ast.ClassDef {
				return ast.NewClass(loc, cnst("Foo"), []ast.Expr{ast.ConstPath(loc, false, "Opus", "Command")}, []ast.Expr{
					ast.Sig(loc, intParams, cnst("String")),
					ast.Method1(loc, "call", "x", nil),
					call("other"),
				})
			},
			want: `class Foo < Opus::Command
  sig { params(x: Integer).returns(String) }
  def call(x); end
  sig { params(x: Integer).returns(String) }
  def self.call(x); end
  other
end`,
		},
		{
			name:  "command_with_class_call",
			patch: PatchCommand,
			class: func() *ast.ClassDef {
				return ast.NewClass(loc, cnst("Foo"), []ast.Expr{ast.ConstPath(loc, false, "Opus", "Command")}, []ast.Expr{
					ast.Method1(loc, "call", "x", nil),
					ast.Method(loc, "call", nil, nil, ast.MethodSelf),
				})
			},
			want: `class Foo < Opus::Command
  def call(x); end
  def self.call; end
end`,
		},
		{
			name:  "rails",
			patch: PatchRails,
			class: func() *ast.ClassDef {
				migration := ast.Call(loc, ast.ConstPath(loc, false, "ActiveRecord", "Migration"), "[]",
					&ast.Literal{Loc: loc, Kind: ast.LitFloat, Value: "5.1"})

				return ast.NewClass(loc, cnst("AddFoo"), []ast.Expr{migration}, nil)
			},
			want: "class AddFoo < ActiveRecord::Migration::Compatibility::V5_1; end",
		},
		{
			name:  "enum",
			patch: PatchEnum,
			class: func() *ast.ClassDef {
				return ast.NewClass(loc, cnst("Suit"), []ast.Expr{ast.ConstPath(loc, false, "T", "Enum")}, []ast.Expr{
					withBlock(call("enums"), assign("Spades", call("new")), assign("Hearts", call("new", ast.String(loc, "h")))),
					assign("Other", call("new")),
					assign("Value", ast.Call(loc, cnst("Foo"), "new")),
				})
			},
			want: `class Suit < T::Enum
  enums do
    Spades = T.let(new, self)
    Hearts = T.let(new("h"), self)
  end
  Other = T.let(new, self)
  Value = Foo.new
end`,
		},
		{
			name:  "enum_plain_class",
			patch: PatchEnum,
			class: func() *ast.ClassDef {
				return ast.NewClass(loc, cnst("Suit"), nil, []ast.Expr{assign("Spades", call("new"))})
			},
			want: `class Suit
  Spades = new
end`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			cd := tt.class()

			// when
			tt.patch(Context{}, cd)

			// then
			if got := ast.Print(cd); got != tt.want {
				t.Errorf("Got\n%s\nwant\n%s", got, tt.want)
			}

			// Patches are idempotent.
			tt.patch(Context{}, cd)

			if got := ast.Print(cd); got != tt.want {
				t.Errorf("Second application changed the class:\n%s", got)
			}
		})
	}
}

func TestRegistries(t *testing.T) {
	t.Parallel()

	enabled := config.NewBitMask(config.AttrReader, config.Prop, config.Enum, config.Struct)

	sends := SendRecognizers(enabled)
	if len(sends) != 2 || sends[0].Family != config.Prop || sends[1].Family != config.AttrReader {
		t.Errorf("Got send recognizers %v", families(sends))
	}

	if assigns := AssignRecognizers(enabled); len(assigns) != 1 || assigns[0].Family != config.Struct {
		t.Errorf("Got %d assign recognizers", len(assigns))
	}

	if p := Patches(enabled); len(p) != 1 || p[0].Family != config.Enum {
		t.Errorf("Got %d patches", len(p))
	}

	if got := len(SendRecognizers(config.DefaultRecognizers())); got != 7 {
		t.Errorf("Got %d default send recognizers, want 7", got)
	}
}

func families[S ast.Expr](rs []Recognizer[S]) []config.Family {
	out := make([]config.Family, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Family)
	}

	return out
}

func TestIsTStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr ast.Expr
		want bool
	}{
		{"relative", ast.ConstPath(loc, false, "T", "Struct"), true},
		{"root", ast.ConstPath(loc, true, "T", "Struct"), true},
		{"bare", cnst("Struct"), false},
		{"other", ast.ConstPath(loc, false, "T", "InexactStruct"), false},
		{"nested", ast.ConstPath(loc, false, "A", "T", "Struct"), false},
		{"call", call("Struct"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsTStruct(tt.expr); got != tt.want {
				t.Errorf("IsTStruct(%s) = %t, want %t", ast.Print(tt.expr), got, tt.want)
			}
		})
	}
}
