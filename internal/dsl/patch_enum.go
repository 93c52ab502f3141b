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

// PatchEnum types enum values of T::Enum and Opus::Enum subclasses:
//
//	class Suit < T::Enum
//	  enums do
//	    Spades = new
//	  end
//	end
//
// becomes
//
//	class Suit < T::Enum
//	  enums do
//	    Spades = T.let(new, self)
//	  end
//	end
//
// Values assigned directly in the class body are rewritten as well.
func PatchEnum(_ Context, cd *ast.ClassDef) {
	if cd.Kind != ast.Class || (!hasAncestor(cd, "T", "Enum") && !hasAncestor(cd, "Opus", "Enum")) {
		return
	}

	for _, stat := range cd.Body {
		if s, ok := stat.(*ast.Send); ok && s.Fun == "enums" && ast.IsImplicitSelf(s.Recv) && s.Block != nil {
			stats, _ := blockStats(s.Block)
			for _, stat := range stats {
				letEnumValue(stat)
			}

			continue
		}

		letEnumValue(stat)
	}
}

// letEnumValue wraps the right-hand side of `A = new(...)` in T.let(..., self).
func letEnumValue(stat ast.Expr) {
	asgn, ok := stat.(*ast.Assign)
	if !ok {
		return
	}

	if _, ok := asgn.Lhs.(*ast.ConstLit); !ok {
		return
	}

	switch rhs := asgn.Rhs.(type) {
	case *ast.Send:
		if rhs.Fun != "new" || !ast.IsImplicitSelf(rhs.Recv) {
			return
		}

	case *ast.Local: // argumentless call parsed as identifier
		if rhs.Name != "new" {
			return
		}

	default:
		return
	}

	loc := asgn.Rhs.Location()
	asgn.Rhs = ast.Let(loc, asgn.Rhs, &ast.Self{Loc: loc})
}
