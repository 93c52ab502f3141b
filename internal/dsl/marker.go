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

// IsTStruct determines whether an expression is syntactically T::Struct or ::T::Struct.
// This might not refer to the T::Struct of the runtime library; constants are not resolved at this stage.
func IsTStruct(e ast.Expr) bool {
	return ast.IsConstPath(e, "T", "Struct")
}

// isNilable reports whether a type expression is syntactically T.nilable(...).
func isNilable(typ ast.Expr) bool {
	s, ok := typ.(*ast.Send)

	return ok && s.Fun == "nilable" && len(s.Args) == 1 && ast.IsConstPath(s.Recv, "T")
}

// hasAncestor reports whether any ancestor of cd spells the constant path names.
func hasAncestor(cd *ast.ClassDef, names ...string) bool {
	for _, a := range cd.Ancestors {
		if ast.IsConstPath(a, names...) {
			return true
		}
	}

	return false
}

// isPlainCall reports whether send is an implicit-self call to fun without a block.
func isPlainCall(send *ast.Send, fun string) bool {
	return send.Fun == fun && ast.IsImplicitSelf(send.Recv) && send.Block == nil
}

// blockStats returns the statements of a parameterless block, or false when the block takes parameters.
func blockStats(b *ast.Block) ([]ast.Expr, bool) {
	if b == nil {
		return nil, true
	}

	if len(b.Params) > 0 {
		return nil, false
	}

	switch body := b.Body.(type) {
	case nil, *ast.EmptyTree:
		return nil, true

	case *ast.Seq:
		return body.Stats, true

	default:
		return []ast.Expr{body}, true
	}
}
