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

// Minitest desugars minitest spec blocks
//
//	describe "thing" do
//	  before do ... end
//	  it "works" do ... end
//	end
//
// into
//
//	class <describe 'thing'> < self
//	  def setup; ...; end
//	  def <it 'works'>; ...; end
//	end
//
// Nested blocks are rewritten recursively. `it`, `before` and `after` are also recognized
// directly in a class body.
func Minitest(_ Context, send *ast.Send, _ ast.Expr) (Result, bool) {
	e, ok := specNode(send)
	if !ok {
		return noMatch()
	}

	return match(e)
}

// specNode rewrites a single minitest call.
func specNode(send *ast.Send) (ast.Expr, bool) {
	if send.Block == nil || !ast.IsImplicitSelf(send.Recv) || len(send.Block.Params) > 0 {
		return nil, false
	}

	loc := send.Loc

	switch send.Fun {
	case "describe":
		name, ok := specName(send)
		if !ok {
			return nil, false
		}

		stats, _ := blockStats(send.Block)

		return ast.NewClass(loc,
			ast.Const(loc, nil, "<describe "+name+">"),
			[]ast.Expr{&ast.Self{Loc: loc}},
			specBody(stats),
		), true

	case "it":
		name, ok := specName(send)
		if !ok {
			return nil, false
		}

		return ast.Method0(loc, "<it "+name+">", send.Block.Body), true

	case "before", "after":
		if len(send.Args) != 0 {
			return nil, false
		}

		fun := "setup"
		if send.Fun == "after" {
			fun = "teardown"
		}

		return ast.Method0(loc, fun, send.Block.Body), true

	default:
		return nil, false
	}
}

// specBody rewrites the statements of a describe block.
func specBody(stats []ast.Expr) []ast.Expr {
	body := make([]ast.Expr, 0, len(stats))

	for _, stat := range stats {
		if s, ok := stat.(*ast.Send); ok {
			if e, ok := specNode(s); ok {
				body = append(body, e)

				continue
			}
		}

		body = append(body, stat)
	}

	return body
}

// specName renders the single name argument of describe or it.
func specName(send *ast.Send) (string, bool) {
	if len(send.Args) != 1 {
		return "", false
	}

	switch a := send.Args[0].(type) {
	case *ast.Literal:
		if a.Kind != ast.LitString && a.Kind != ast.LitSymbol {
			return "", false
		}

		return "'" + a.Value + "'", true

	case *ast.ConstLit:
		return a.Name, true

	default:
		return "", false
	}
}
