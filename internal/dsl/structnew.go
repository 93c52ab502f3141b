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

// StructNew desugars
//
//	A = Struct.new(:a, :b)
//
// into
//
//	class A < ::Struct
//	  sig {returns(BasicObject)}
//	  def a; T.unsafe(nil); end
//	  sig {params(arg0: BasicObject).returns(BasicObject)}
//	  def a=(arg0); T.unsafe(nil); end
//	  ...
//	  sig {params(a: BasicObject, b: BasicObject).void}
//	  def initialize(a = nil, b = nil); end
//	end
//
// With `keyword_init: true` the initializer takes keyword parameters.
// The statements of an attached block are appended to the class body.
func StructNew(_ Context, asgn *ast.Assign, _ ast.Expr) (Result, bool) {
	name, ok := asgn.Lhs.(*ast.ConstLit)
	if !ok {
		return noMatch()
	}

	send, ok := asgn.Rhs.(*ast.Send)
	if !ok || send.Fun != "new" || !ast.IsConstPath(send.Recv, "Struct") {
		return noMatch()
	}

	args := send.Args

	var keywordInit bool
	if h, ok := ast.TrailingHash(args); ok {
		keys, values, ok := ast.HashEntries(h)
		if !ok || len(keys) != 1 || keys[0] != "keyword_init" || !ast.IsBoolean(values[0]) {
			return noMatch()
		}

		keywordInit = ast.IsTrue(values[0])
		args = args[:len(args)-1]
	}

	if len(args) == 0 {
		return noMatch()
	}

	members := make([]string, 0, len(args))

	for _, arg := range args {
		member, ok := ast.SymbolName(arg)
		if !ok || member == "" {
			return noMatch()
		}

		members = append(members, member)
	}

	extra, ok := blockStats(send.Block)
	if !ok {
		return noMatch()
	}

	loc := asgn.Loc
	body := make([]ast.Expr, 0, 4*len(members)+2+len(extra))
	accessorBody := ast.Unsafe(loc, ast.Nil(loc))

	for _, member := range members {
		prop := &Property{Name: member, Type: ast.Const(loc, nil, "BasicObject")}
		body = append(body, accessors(loc, prop, accessorBody)...)
	}

	params := ast.NewHash(loc, nil, nil)
	initArgs := make([]ast.Expr, 0, len(members))

	for _, member := range members {
		params.Keys = append(params.Keys, ast.Symbol(loc, member))
		params.Values = append(params.Values, ast.Const(loc, nil, "BasicObject"))

		var arg ast.Expr
		if keywordInit {
			arg = ast.Keyword(loc, member)
		} else {
			arg = ast.NewLocal(loc, member)
		}

		initArgs = append(initArgs, ast.Optional(loc, arg, ast.Nil(loc)))
	}

	body = append(body,
		ast.SigVoid(loc, params),
		ast.Method(loc, "initialize", initArgs, nil, ast.MethodSynthesized),
	)
	body = append(body, extra...)

	return match(ast.NewClass(loc, name, []ast.Expr{ast.ConstPath(loc, true, "Struct")}, body))
}
