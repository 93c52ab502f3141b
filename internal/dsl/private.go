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

// Private desugars visibility modifiers applied to a method definition
//
//	private def foo; end
//	private_class_method def self.bar; end
//
// into the method definition with its visibility set.
func Private(_ Context, send *ast.Send, _ ast.Expr) (Result, bool) {
	if !ast.IsImplicitSelf(send.Recv) || send.Block != nil || len(send.Args) != 1 {
		return noMatch()
	}

	def, ok := send.Args[0].(*ast.MethodDef)
	if !ok {
		return noMatch()
	}

	var visibility ast.Visibility

	switch send.Fun {
	case "private":
		visibility = ast.Private

	case "protected":
		visibility = ast.Protected

	case "public":
		visibility = ast.Public

	case "private_class_method":
		if !def.IsSelf() {
			return noMatch()
		}

		visibility = ast.Private

	default:
		return noMatch()
	}

	if send.Fun != "private_class_method" && def.IsSelf() {
		return noMatch()
	}

	m := *def
	m.Visibility = visibility

	return match(&m)
}
