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

package astutil

import (
	"iter"

	"fillmore-labs.com/rbdesugar/ast"
)

// StmtIndex is the position of a statement in the original body of a class definition.
// It identifies the statement for the duration of one class visit.
type StmtIndex int32

// AllStatements yields the statements of body with their indices, in source order.
func AllStatements(body []ast.Expr) iter.Seq2[StmtIndex, ast.Expr] {
	return func(yield func(StmtIndex, ast.Expr) bool) {
		for i, stmt := range body {
			if !yield(StmtIndex(i), stmt) {
				return
			}
		}
	}
}
