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

// DSLBuilder desugars builder declarations
//
//	dsl_optional :name, Type
//	dsl_required :name, Type
//
// into a class-level setter
//
//	sig {params(name: Type).returns(T.untyped)}
//	def self.name(name); end
//
// and a class-level getter
//
//	sig {returns(T.nilable(Type))}
//	def self.get_name; T.unsafe(nil); end
//
// The getter type is nilable for optional declarations without `default:`.
// `skip_setter: true` and `skip_getter: true` omit the respective method.
func DSLBuilder(_ Context, send *ast.Send, _ ast.Expr) (Result, bool) {
	var optional bool

	switch send.Fun {
	case "dsl_optional":
		optional = true

	case "dsl_required":

	default:
		return noMatch()
	}

	if !ast.IsImplicitSelf(send.Recv) || send.Block != nil || len(send.Args) < 2 || len(send.Args) > 3 {
		return noMatch()
	}

	name, ok := ast.LiteralName(send.Args[0])
	if !ok || name == "" {
		return noMatch()
	}

	typ := send.Args[1]
	if _, ok := typ.(*ast.Hash); ok {
		return noMatch()
	}

	var skipSetter, skipGetter, hasDefault bool

	if len(send.Args) == 3 {
		h, ok := send.Args[2].(*ast.Hash)
		if !ok {
			return noMatch()
		}

		keys, values, ok := ast.HashEntries(h)
		if !ok {
			return noMatch()
		}

		for i, key := range keys {
			switch key {
			case "skip_setter":
				skipSetter = ast.IsTrue(values[i])

			case "skip_getter":
				skipGetter = ast.IsTrue(values[i])

			case "default":
				hasDefault = true

			default:
				return noMatch()
			}
		}
	}

	if skipSetter && skipGetter {
		return noMatch()
	}

	loc := send.Loc

	var nodes []ast.Expr

	if !skipSetter {
		nodes = append(nodes,
			ast.Sig(loc, argParams(loc, name, typ), ast.Untyped(loc)),
			ast.Method(loc, name, []ast.Expr{ast.NewLocal(loc, name)}, nil, ast.MethodSelf),
		)
	}

	if !skipGetter {
		var ret ast.Expr = ast.Copy(typ)
		if optional && !hasDefault {
			ret = ast.Nilable(loc, ret)
		}

		nodes = append(nodes,
			ast.Sig(loc, nil, ret),
			ast.Method(loc, "get_"+name, nil, ast.Unsafe(loc, ast.Nil(loc)), ast.MethodSelf),
		)
	}

	return match(nodes...)
}
