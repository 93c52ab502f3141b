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

// ClassNew desugars
//
//	A = Class.new(Parent) do ... end
//
// into
//
//	class A < Parent
//	  ...
//	end
func ClassNew(_ Context, asgn *ast.Assign, _ ast.Expr) (Result, bool) {
	name, ok := asgn.Lhs.(*ast.ConstLit)
	if !ok {
		return noMatch()
	}

	send, ok := asgn.Rhs.(*ast.Send)
	if !ok || send.Fun != "new" || !ast.IsConstPath(send.Recv, "Class") || len(send.Args) > 1 {
		return noMatch()
	}

	var ancestors []ast.Expr

	if len(send.Args) == 1 {
		parent, ok := send.Args[0].(*ast.ConstLit)
		if !ok {
			return noMatch()
		}

		ancestors = []ast.Expr{parent}
	}

	body, ok := blockStats(send.Block)
	if !ok {
		return noMatch()
	}

	return match(ast.NewClass(asgn.Loc, name, ancestors, body))
}
