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

// Delegate desugars
//
//	delegate :foo, :bar, to: :target, prefix: true
//
// into a stub per delegated name
//
//	def target_foo(*arg0, &blk); end
//	def target_bar(*arg0, &blk); end
//
// `prefix:` takes true (the target name) or a symbol. `allow_nil:` is accepted and ignored.
func Delegate(_ Context, send *ast.Send, _ ast.Expr) (Result, bool) {
	if !isPlainCall(send, "delegate") {
		return noMatch()
	}

	h, ok := ast.TrailingHash(send.Args)
	if !ok || len(send.Args) < 2 {
		return noMatch()
	}

	keys, values, ok := ast.HashEntries(h)
	if !ok {
		return noMatch()
	}

	var (
		target, prefix string
		hasTarget      bool
		prefixValue    ast.Expr
	)

	for i, key := range keys {
		switch key {
		case "to":
			if target, hasTarget = ast.SymbolName(values[i]); !hasTarget {
				return noMatch()
			}

		case "prefix":
			prefixValue = values[i]

		case "allow_nil":

		default:
			return noMatch()
		}
	}

	if !hasTarget {
		return noMatch()
	}

	if prefixValue != nil {
		switch {
		case ast.IsTrue(prefixValue):
			prefix = target + "_"

		case ast.IsBoolean(prefixValue):

		default:
			p, ok := ast.LiteralName(prefixValue)
			if !ok {
				return noMatch()
			}

			prefix = p + "_"
		}
	}

	loc := send.Loc
	names := send.Args[:len(send.Args)-1]
	nodes := make([]ast.Expr, 0, len(names))

	for _, arg := range names {
		name, ok := ast.SymbolName(arg)
		if !ok || name == "" {
			return noMatch()
		}

		args := []ast.Expr{
			&ast.RestArg{Loc: loc, Name: "arg0"},
			&ast.BlockArg{Loc: loc, Name: "blk"},
		}
		nodes = append(nodes, ast.Method(loc, prefix+name, args, nil, 0))
	}

	return match(nodes...)
}
