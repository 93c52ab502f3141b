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
	. "fillmore-labs.com/rbdesugar/internal/dsl"
)

var loc ast.Loc

func sym(name string) ast.Expr { return ast.Symbol(loc, name) }

func cnst(name string) ast.Expr { return ast.Const(loc, nil, name) }

func hash(kv ...ast.Expr) *ast.Hash {
	h := ast.NewHash(loc, nil, nil)
	for i := 0; i+1 < len(kv); i += 2 {
		h.Keys = append(h.Keys, kv[i])
		h.Values = append(h.Values, kv[i+1])
	}

	return h
}

func call(fun string, args ...ast.Expr) *ast.Send { return ast.Call(loc, nil, fun, args...) }

func printNodes(nodes []ast.Expr) string { return ast.Print(&ast.Seq{Stats: nodes}) }

func TestProp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		send      *ast.Send
		want      string
		optional  bool
		immutable bool
	}{
		{
			name: "mutable",
			send: call("prop", sym("a"), cnst("Integer")),
			want: `sig { returns(Integer) }
def a
  T.unsafe(nil)
end
sig { params(arg0: Integer).returns(Integer) }
def a=(arg0)
  T.unsafe(nil)
end
class Mutator < Chalk::ODM::Mutator
  sig { returns(Integer) }
  def a; end
  sig { params(arg0: Integer).returns(Integer) }
  def a=(arg0); end
end`,
		},
		{
			name: "const",
			send: call("const", ast.String(loc, "b"), cnst("String")),
			want: `sig { returns(String) }
def b
  T.unsafe(nil)
end
class Mutator < Chalk::ODM::Mutator
  sig { returns(String) }
  def b; end
end`,
			immutable: true,
		},
		{
			name: "array",
			send: call("prop", sym("c"), hash(sym("array"), cnst("Integer"))),
			want: `sig { returns(T::Array[Integer]) }
def c
  T.unsafe(nil)
end
sig { params(arg0: T::Array[Integer]).returns(T::Array[Integer]) }
def c=(arg0)
  T.unsafe(nil)
end
class Mutator < Chalk::ODM::Mutator
  sig { returns(T::Array[Integer]) }
  def c; end
  sig { params(arg0: T::Array[Integer]).returns(T::Array[Integer]) }
  def c=(arg0); end
end`,
		},
		{
			name: "type_override",
			send: call("prop", sym("d"), cnst("String"), hash(sym("type"), cnst("Symbol"), sym("immutable"), ast.True(loc))),
			want: `sig { returns(Symbol) }
def d
  T.unsafe(nil)
end
class Mutator < Chalk::ODM::Mutator
  sig { returns(Symbol) }
  def d; end
end`,
			immutable: true,
		},
		{
			name: "default",
			send: call("prop", sym("e"), cnst("String"), hash(sym("default"), ast.String(loc, ""))),
			want: `sig { returns(String) }
def e
  T.unsafe(nil)
end
sig { params(arg0: String).returns(String) }
def e=(arg0)
  T.unsafe(nil)
end
class Mutator < Chalk::ODM::Mutator
  sig { returns(String) }
  def e; end
  sig { params(arg0: String).returns(String) }
  def e=(arg0); end
end`,
			optional: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			before := ast.Print(tt.send)

			// when
			res, ok := Prop(Context{}, tt.send, nil)

			// then
			if !ok {
				t.Fatalf("Prop(%s) declined", before)
			}

			if got := printNodes(res.Nodes); got != tt.want {
				t.Errorf("Prop(%s) =\n%s\nwant\n%s", before, got, tt.want)
			}

			if res.Prop == nil {
				t.Fatal("Expected property metadata")
			}

			if res.Prop.Optional != tt.optional || res.Prop.Immutable != tt.immutable {
				t.Errorf("Got optional=%t immutable=%t, want optional=%t immutable=%t",
					res.Prop.Optional, res.Prop.Immutable, tt.optional, tt.immutable)
			}

			if after := ast.Print(tt.send); after != before {
				t.Errorf("Prop modified its input: %s", after)
			}
		})
	}
}

func TestPropNilable(t *testing.T) {
	t.Parallel()

	send := call("prop", sym("n"), ast.Nilable(loc, cnst("Integer")))

	res, ok := Prop(Context{}, send, nil)
	if !ok {
		t.Fatal("Prop declined")
	}

	if !res.Prop.Optional {
		t.Error("Expected T.nilable property to be optional")
	}

	if got, want := ast.Print(res.Prop.Type), "T.nilable(Integer)"; got != want {
		t.Errorf("Got type %s, want %s", got, want)
	}
}

func TestPropDeclines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		send *ast.Send
	}{
		{"unknown_key", call("prop", sym("d"), hash(sym("unknownKey"), cnst("Integer")))},
		{"string_key", call("prop", sym("d"), cnst("Integer"), hash(ast.String(loc, "type"), cnst("Integer")))},
		{"no_type", call("prop", sym("d"))},
		{"non_literal_name", call("prop", ast.NewLocal(loc, "d"), cnst("Integer"))},
		{"extra_positional", call("prop", sym("d"), cnst("Integer"), cnst("String"))},
		{"too_many", call("prop", sym("d"), cnst("Integer"), cnst("String"), hash())},
		{"explicit_receiver", ast.Call(loc, cnst("Foo"), "prop", sym("d"), cnst("Integer"))},
		{"other_call", call("property", sym("d"), cnst("Integer"))},
		{"block", &ast.Send{Loc: loc, Fun: "prop", Args: []ast.Expr{sym("d"), cnst("Integer")}, Block: &ast.Block{Loc: loc}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if res, ok := Prop(Context{}, tt.send, nil); ok {
				t.Errorf("Prop(%s) = %s, want decline", ast.Print(tt.send), printNodes(res.Nodes))
			}
		})
	}
}

func TestPropCopiesType(t *testing.T) {
	t.Parallel()

	typ := cnst("Integer")
	send := call("prop", sym("a"), typ)

	res, ok := Prop(Context{}, send, nil)
	if !ok {
		t.Fatal("Prop declined")
	}

	ast.Inspect(&ast.Seq{Stats: res.Nodes}, func(e ast.Expr) bool {
		if e == typ {
			t.Error("Emitted nodes share the declared type expression")
		}

		return true
	})
}
