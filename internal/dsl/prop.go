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

package dsl

import "fillmore-labs.com/rbdesugar/ast"

// Prop desugars property declarations of the form
//
//	prop :foo, Type
//
// into
//
//	sig {returns(Type)}
//	def foo; T.unsafe(nil); end
//	sig {params(arg0: Type).returns(Type)}
//	def foo=(arg0); T.unsafe(nil); end
//	class Mutator < Chalk::ODM::Mutator
//	  sig {returns(Type)}
//	  def foo; end
//	  sig {params(arg0: Type).returns(Type)}
//	  def foo=(arg0); end
//	end
//
// `const ...` is the same as `prop ..., immutable: true`. In the trailing options,
// `type: Type` overrides the second argument and `array: Type` overrides it with
// `T::Array[Type]`. Any deviation from this shape declines.
//
// The extracted [Property] is used to synthesize an initializer for T::Struct classes.
func Prop(_ Context, send *ast.Send, _ ast.Expr) (Result, bool) {
	var immutable bool

	switch send.Fun {
	case "prop":

	case "const":
		immutable = true

	default:
		return noMatch()
	}

	if !ast.IsImplicitSelf(send.Recv) || send.Block != nil || len(send.Args) < 1 || len(send.Args) > 3 {
		return noMatch()
	}

	name, ok := ast.LiteralName(send.Args[0])
	if !ok || name == "" {
		return noMatch()
	}

	rest := send.Args[1:]

	var opts propOptions
	if h, ok := ast.TrailingHash(rest); ok {
		if opts, ok = parsePropOptions(h); !ok {
			return noMatch()
		}

		rest = rest[:len(rest)-1]
	}

	loc := send.Loc

	var typ ast.Expr

	switch {
	case len(rest) > 1:
		return noMatch()

	case opts.typ != nil:
		typ = opts.typ

	case opts.array != nil:
		typ = ast.ArrayOf(loc, opts.array)

	case len(rest) == 1:
		typ = rest[0]

	default:
		return noMatch() // type is mandatory
	}

	prop := &Property{
		Name:      name,
		Type:      typ,
		Optional:  opts.optional || isNilable(typ),
		Immutable: immutable || opts.immutable,
	}

	nodes := accessors(loc, prop, ast.Unsafe(loc, ast.Nil(loc)))
	nodes = append(nodes, mutator(loc, prop))

	return Result{Nodes: nodes, Prop: prop}, true
}

type propOptions struct {
	typ, array          ast.Expr
	immutable, optional bool
}

// parsePropOptions interprets the trailing options of a property declaration.
// Unknown keys decline the whole declaration.
func parsePropOptions(h *ast.Hash) (propOptions, bool) {
	keys, values, ok := ast.HashEntries(h)
	if !ok {
		return propOptions{}, false
	}

	var opts propOptions

	for i, key := range keys {
		value := values[i]

		switch key {
		case "type":
			opts.typ = value

		case "array":
			opts.array = value

		case "immutable":
			opts.immutable = ast.IsTrue(value)

		case "default":
			opts.optional = true

		case "optional":
			opts.optional = opts.optional || ast.IsTrue(value)

		default:
			return propOptions{}, false
		}
	}

	return opts, true
}

// accessors returns the getter and, unless immutable, the setter of a property with their signatures.
// Each use of the property type is an independent copy.
func accessors(loc ast.Loc, prop *Property, body ast.Expr) []ast.Expr {
	nodes := []ast.Expr{
		ast.Sig(loc, nil, ast.Copy(prop.Type)),
		ast.Method0(loc, prop.Name, ast.Copy(body)),
	}

	if prop.Immutable {
		return nodes
	}

	return append(nodes,
		ast.Sig(loc, argParams(loc, "arg0", prop.Type), ast.Copy(prop.Type)),
		ast.Method1(loc, prop.Name+"=", "arg0", ast.Copy(body)),
	)
}

// mutator returns the companion Mutator class restating the accessor signatures.
func mutator(loc ast.Loc, prop *Property) *ast.ClassDef {
	return ast.NewClass(loc,
		ast.Const(loc, nil, "Mutator"),
		[]ast.Expr{ast.ConstPath(loc, false, "Chalk", "ODM", "Mutator")},
		accessors(loc, prop, nil),
	)
}

// argParams returns the params hash for a single typed parameter.
func argParams(loc ast.Loc, name string, typ ast.Expr) *ast.Hash {
	return ast.NewHash(loc, []ast.Expr{ast.Symbol(loc, name)}, []ast.Expr{ast.Copy(typ)})
}
