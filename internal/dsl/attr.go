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

// AttrReader desugars attribute shorthands
//
//	attr_reader :foo
//	attr_writer :bar
//	attr_accessor :baz
//
// into
//
//	def foo; @foo; end
//	def bar=(bar); @bar = bar; end
//	def baz; @baz; end
//	def baz=(baz); @baz = baz; end
//
// A preceding `sig {returns(Type)}` applies to the first generated method only, so
// every further method receives its own signature derived from Type. Writers always
// receive one, since the preceding signature declares no parameter.
func AttrReader(_ Context, send *ast.Send, prev ast.Expr) (Result, bool) {
	var reader, writer bool

	switch send.Fun {
	case "attr_reader":
		reader = true

	case "attr_writer":
		writer = true

	case "attr_accessor":
		reader, writer = true, true

	default:
		return noMatch()
	}

	if !ast.IsImplicitSelf(send.Recv) || send.Block != nil || len(send.Args) == 0 {
		return noMatch()
	}

	names := make([]string, 0, len(send.Args))

	for _, arg := range send.Args {
		name, ok := ast.LiteralName(arg)
		if !ok || name == "" {
			return noMatch()
		}

		names = append(names, name)
	}

	var typ ast.Expr
	if sig, ok := ast.IsSig(prev); ok {
		typ, _ = ast.SigReturns(sig)
	}

	loc := send.Loc

	var nodes []ast.Expr

	emit := func(takesArg bool, sig func() ast.Expr, def ast.Expr) {
		if typ != nil && (takesArg || len(nodes) > 0) {
			nodes = append(nodes, sig())
		}

		nodes = append(nodes, def)
	}

	for _, name := range names {
		if reader {
			emit(false,
				func() ast.Expr { return ast.Sig(loc, nil, ast.Copy(typ)) },
				ast.Method0(loc, name, ast.Ivar(loc, name)),
			)
		}

		if writer {
			emit(true,
				func() ast.Expr { return ast.Sig(loc, argParams(loc, name, typ), ast.Copy(typ)) },
				ast.Method1(loc, name+"=", name, &ast.Assign{Loc: loc, Lhs: ast.Ivar(loc, name), Rhs: ast.NewLocal(loc, name)}),
			)
		}
	}

	return match(nodes...)
}
